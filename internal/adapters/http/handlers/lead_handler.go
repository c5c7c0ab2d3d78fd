package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/kanban-pipeline/internal/adapters/http/dto"
	"github.com/jsamuelsen11/kanban-pipeline/internal/domain"
	"github.com/jsamuelsen11/kanban-pipeline/internal/ports"
)

// LeadHandler handles HTTP requests for leads, moves and timelines.
type LeadHandler struct {
	svc ports.LeadService
}

// NewLeadHandler creates a new LeadHandler with the given service port.
func NewLeadHandler(svc ports.LeadService) *LeadHandler {
	return &LeadHandler{svc: svc}
}

// CreateLead handles POST /api/v1/leads.
func (h *LeadHandler) CreateLead(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.CreateLeadRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateLead(r.Context(), p, req.ToDomain(), req.BoardID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToLeadResponse(created))
}

// GetLead handles GET /api/v1/leads/{leadId}.
func (h *LeadHandler) GetLead(w http.ResponseWriter, r *http.Request) {
	p, leadID, ok := leadRequest(w, r)
	if !ok {
		return
	}

	l, err := h.svc.GetLead(r.Context(), p, leadID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToLeadResponse(l))
}

// MoveLead handles POST /api/v1/leads/{leadId}/move. A move to the column the
// lead already occupies answers 200 with moved=false.
func (h *LeadHandler) MoveLead(w http.ResponseWriter, r *http.Request) {
	p, leadID, ok := leadRequest(w, r)
	if !ok {
		return
	}

	var req dto.MoveLeadRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := h.svc.MoveLead(r.Context(), p, leadID, req.ColumnID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToMoveLeadResponse(res))
}

// GetLeadTimeline handles GET /api/v1/leads/{leadId}/timeline.
func (h *LeadHandler) GetLeadTimeline(w http.ResponseWriter, r *http.Request) {
	p, leadID, ok := leadRequest(w, r)
	if !ok {
		return
	}

	entries, err := h.svc.GetLeadTimeline(r.Context(), p, leadID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTimelineResponse(entries))
}

// AddTimelineEntry handles POST /api/v1/leads/{leadId}/timeline.
func (h *LeadHandler) AddTimelineEntry(w http.ResponseWriter, r *http.Request) {
	p, leadID, ok := leadRequest(w, r)
	if !ok {
		return
	}

	var req dto.AddTimelineEntryRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.AddTimelineEntry(r.Context(), p, req.ToDomain(leadID))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToTimelineEntryResponse(created))
}

// leadRequest resolves the principal and lead id shared by every
// /leads/{leadId} route. On failure it writes the error response.
func leadRequest(w http.ResponseWriter, r *http.Request) (domain.Principal, string, bool) {
	p, err := principal(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return p, "", false
	}
	leadID, err := pathParam(r, ParamLeadID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return p, "", false
	}
	return p, leadID, true
}
