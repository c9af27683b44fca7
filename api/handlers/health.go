// ABOUTME: Health handler reports process liveness and uptime
// ABOUTME: Lightweight endpoint for load balancer and container probes

package handlers

import (
	"net/http"
	"time"

	"newswire-collector/api/dto/responses"
)

// HealthHandler handles liveness probes
type HealthHandler struct {
	started time.Time
}

// NewHealthHandler creates a new health handler
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{started: time.Now()}
}

// RegisterRoutes registers health routes
func (h *HealthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", h.Health)
}

// Health handles the GET /health endpoint
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, responses.HealthResponse{
		Status: "ok",
		Uptime: time.Since(h.started).Round(time.Second).String(),
	})
}
