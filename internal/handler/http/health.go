package http

import (
	"net/http"

	"github.com/MKhiriev/recipe-tracker/internal/utils"
)

// healthz answers 200 when both stores respond to a ping and 503 otherwise.
func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	health := h.services.HealthService.Check(r.Context())

	status := http.StatusOK
	if !health.Healthy() {
		status = http.StatusServiceUnavailable
	}

	utils.WriteJSON(w, health, status)
}
