package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/kanban-pipeline/internal/adapters/http/dto"
	"github.com/jsamuelsen11/kanban-pipeline/internal/ports"
)

// MetricsHandler serves pipeline analytics.
type MetricsHandler struct {
	svc ports.MetricsService
}

// NewMetricsHandler creates a new MetricsHandler with the given service port.
func NewMetricsHandler(svc ports.MetricsService) *MetricsHandler {
	return &MetricsHandler{svc: svc}
}

// GetMetrics handles GET /api/v1/metrics?boardId&agentId&dateFrom&dateTo.
func (h *MetricsHandler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	filter, err := parseMetricsFilter(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	m, err := h.svc.GetMetrics(r.Context(), p, filter)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToMetricsResponse(m))
}
