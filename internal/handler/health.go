package handler

import (
	"net/http"
	"time"
)

// HealthHandler reports liveness for deployment monitoring.
type HealthHandler struct {
	environment string
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(environment string) *HealthHandler {
	return &HealthHandler{environment: environment}
}

// HandleHealth responds with a 200 OK and a JSON body indicating the server is healthy.
// GET /api/health
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":      "ok",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"environment": h.environment,
	})
}
