package server

import (
	"encoding/json"
	"net/http"
)

// HealthHandler reports service liveness. Implements the [Handler] interface
// for registration with a [Router].
type HealthHandler struct {
	version string
}

// NewHealthHandler creates a health check handler advertising version.
func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{version: version}
}

// Routes returns the HTTP routes this handler serves.
func (h *HealthHandler) Routes() []string {
	return []string{"GET /healthz"}
}

// ServeHTTP writes the liveness payload.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"version": h.version,
	})
}
