// Package respond writes JSON responses.
package respond

import (
	"encoding/json"
	"net/http"
)

type message struct {
	Message string `json:"message"`
}

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Message writes {"message": msg} with the given status code.
func Message(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, message{Message: msg})
}
