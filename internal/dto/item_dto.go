package dto

// ItemRequest is shared by create and update. Price is a pointer so a
// missing field can be told apart from an explicit zero.
type ItemRequest struct {
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Tax         *float64 `json:"tax"`
}
