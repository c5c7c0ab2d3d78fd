package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/kanban-pipeline/internal/adapters/http/dto"
	"github.com/jsamuelsen11/kanban-pipeline/internal/platform/logging"
	"github.com/jsamuelsen11/kanban-pipeline/internal/ports"
)

// HealthHandler serves the liveness and readiness probes. Neither requires
// a principal.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler creates a new HealthHandler with the given health registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. Always returns 200 OK.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, dto.LivenessResponse{Status: dto.HealthOK})
}

// Readiness handles GET /health/ready: 200 when the store and every
// registered downstream answer, 503 otherwise.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	resp := dto.ToReadinessResponse(h.registry.CheckAll(r.Context()))

	if !resp.Ready() {
		logging.FromContext(r.Context()).WarnContext(r.Context(), "readiness check failed",
			slog.Any("failed", resp.Failed))
		writeJSON(w, http.StatusServiceUnavailable, resp)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
