// Package api provides the HTTP handlers for the Mergington activities API.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

// MessageResponse is returned by successful signup and unregister requests.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the error envelope; clients read the reason from detail.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, ErrorResponse{Detail: detail})
}
