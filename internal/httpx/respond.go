// Package httpx holds the JSON response helpers shared by all handlers.
// Every failure body has the same shape: {"success": false, "message": ...},
// so clients never have to parse more than one error format.
package httpx

import (
	"encoding/json"
	"net/http"
)

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// Error writes the standard failure envelope.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]interface{}{
		"success": false,
		"message": message,
	})
}

// Message writes a success envelope with a human-readable message.
func Message(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]interface{}{
		"success": true,
		"message": message,
	})
}
