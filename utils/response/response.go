package response

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse mirrors the wire format of every failure payload.
type ErrorResponse struct {
	Detail string `json:"detail"`
	Path   string `json:"path,omitempty"`
}

func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func Error(w http.ResponseWriter, code int, detail string) {
	JSON(w, code, ErrorResponse{Detail: detail})
}

func NotFoundPath(w http.ResponseWriter, path string) {
	JSON(w, http.StatusNotFound, ErrorResponse{Detail: "resource not found", Path: path})
}
