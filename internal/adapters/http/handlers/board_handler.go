package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/kanban-pipeline/internal/adapters/http/dto"
	"github.com/jsamuelsen11/kanban-pipeline/internal/ports"
)

// BoardHandler handles HTTP requests for boards and their columns.
type BoardHandler struct {
	svc ports.BoardService
}

// NewBoardHandler creates a new BoardHandler with the given service port.
func NewBoardHandler(svc ports.BoardService) *BoardHandler {
	return &BoardHandler{svc: svc}
}

// ListBoards handles GET /api/v1/boards.
func (h *BoardHandler) ListBoards(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	overviews, err := h.svc.ListBoards(r.Context(), p)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToBoardListResponse(overviews))
}

// CreateBoard handles POST /api/v1/boards.
func (h *BoardHandler) CreateBoard(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.CreateBoardRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateBoard(r.Context(), p, req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToBoardResponse(created))
}

// GetBoard handles GET /api/v1/boards/{boardId}.
func (h *BoardHandler) GetBoard(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	boardID, err := pathParam(r, ParamBoardID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	b, err := h.svc.GetBoard(r.Context(), p, boardID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToBoardResponse(b))
}

// ReorderColumns handles PUT /api/v1/boards/{boardId}/columns/order.
func (h *BoardHandler) ReorderColumns(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	boardID, err := pathParam(r, ParamBoardID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.ReorderColumnsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	b, err := h.svc.ReorderColumns(r.Context(), p, ports.ReorderRequest{
		BoardID:         boardID,
		Positions:       req.ToDomain(),
		ExpectedVersion: req.IfVersion,
	})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToBoardResponse(b))
}

// CreateColumn handles POST /api/v1/boards/{boardId}/columns.
func (h *BoardHandler) CreateColumn(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	boardID, err := pathParam(r, ParamBoardID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.CreateColumnRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateColumn(r.Context(), p, req.ToDomain(boardID))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToColumnResponse(created))
}

// UpdateColumn handles PATCH /api/v1/columns/{columnId}.
func (h *BoardHandler) UpdateColumn(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	columnID, err := pathParam(r, ParamColumnID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateColumnRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateColumn(r.Context(), p, columnID, req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToColumnResponse(updated))
}

// DeleteColumn handles DELETE /api/v1/columns/{columnId}.
func (h *BoardHandler) DeleteColumn(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	columnID, err := pathParam(r, ParamColumnID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeleteColumn(r.Context(), p, columnID); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
