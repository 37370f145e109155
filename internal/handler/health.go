package handler

import (
	"net/http"
	"time"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
}

// Health returns the liveness status of the service. It deliberately
// does not probe the SMTP relay; a send is the only real check.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Service:   "email-service",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
