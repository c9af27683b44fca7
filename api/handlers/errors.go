// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	"encoding/json"
	"net/http"

	"newswire-collector/core/errors"
)

// errorResponse is the envelope for error replies
type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON serializes v as the response body with the given status
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError converts domain errors to appropriate HTTP responses
func writeError(w http.ResponseWriter, err error) {
	if err == nil {
		return
	}

	switch {
	case errors.IsNotFound(err):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})

	case errors.IsValidation(err):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})

	case errors.IsExternalAPI(err):
		status := http.StatusBadGateway
		if apiErr, ok := err.(*errors.ExternalAPIError); ok {
			switch {
			case apiErr.StatusCode >= 500:
				status = http.StatusServiceUnavailable
			case apiErr.StatusCode == http.StatusTooManyRequests:
				status = http.StatusTooManyRequests
			}
		}
		writeJSON(w, status, errorResponse{Error: err.Error()})

	default:
		// Unknown errors stay opaque; the logging middleware records them
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}
