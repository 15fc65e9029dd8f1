// Package httpx holds the small JSON request/response helpers shared by all
// handlers.
package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

// Respond writes v as a JSON response with the given status code.
func Respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}

// Error writes a JSON error body {"message": ...} with the given status code.
func Error(w http.ResponseWriter, status int, message string) {
	Respond(w, status, map[string]string{"message": message})
}
