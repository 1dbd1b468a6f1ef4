package response

import (
	"encoding/json"
	"net/http"
)

// Message is the body of every error response.
type Message struct {
	Message string `json:"message"`
}

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes {"message": message} with the given status code.
func Error(w http.ResponseWriter, code int, message string) {
	JSON(w, code, Message{Message: message})
}
