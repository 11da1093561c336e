package api

import (
	"net/http"

	"github.com/mergington/activities/internal/system"
)

// HealthResponse is the JSON response for the /health endpoint.
type HealthResponse struct {
	Status     string       `json:"status"`
	Version    string       `json:"version"`
	Activities int          `json:"activities"`
	System     system.Stats `json:"system"`
}

// HealthHandler handles GET /health requests.
type HealthHandler struct {
	version string
	store   ActivityStore
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(version string, store ActivityStore) *HealthHandler {
	return &HealthHandler{
		version: version,
		store:   store,
	}
}

// ServeHTTP implements http.Handler for the health check endpoint.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:     "healthy",
		Version:    h.version,
		Activities: h.store.Len(),
		System:     system.GetStats(),
	})
}
