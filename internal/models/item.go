package models

import "time"

type Item struct {
	ID          int64    `db:"id" json:"id"`
	Name        string   `db:"name" json:"name"`
	Description *string  `db:"description" json:"description"`
	Price       float64  `db:"price" json:"price"`
	Tax         *float64 `db:"tax" json:"tax"`

	// UserID records the creator; NULL for rows that predate ownership tracking.
	UserID *int64 `db:"user_id" json:"user_id"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
