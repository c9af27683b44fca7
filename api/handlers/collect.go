// ABOUTME: Collect handler queues background collection runs
// ABOUTME: Requests return immediately; the worker pool executes the run

package handlers

import (
	"context"
	"net/http"

	"newswire-collector/api/dto/responses"
)

// CollectionTrigger queues a background collection run
type CollectionTrigger interface {
	TriggerRun(ctx context.Context, trigger string) error
}

// CollectHandler handles collection trigger requests
type CollectHandler struct {
	worker CollectionTrigger
}

// NewCollectHandler creates a new collect handler
func NewCollectHandler(worker CollectionTrigger) *CollectHandler {
	return &CollectHandler{worker: worker}
}

// RegisterRoutes registers collection routes
func (h *CollectHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /collect", h.Collect)
}

// Collect handles the POST /collect endpoint
func (h *CollectHandler) Collect(w http.ResponseWriter, r *http.Request) {
	if err := h.worker.TriggerRun(r.Context(), "api"); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusAccepted, responses.CollectResponse{Status: "queued"})
}
