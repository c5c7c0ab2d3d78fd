package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/kanban-pipeline/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/kanban-pipeline/internal/domain"
	"github.com/jsamuelsen11/kanban-pipeline/internal/domain/board"
	"github.com/jsamuelsen11/kanban-pipeline/internal/domain/lead"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

// newRequest builds a request already carrying principal p, as the
// Principal middleware would leave it.
func newRequest(t *testing.T, method, target string, body io.Reader, p domain.Principal) *http.Request {
	t.Helper()
	r := httptest.NewRequest(method, target, body)
	return r.WithContext(middleware.WithPrincipal(r.Context(), p))
}

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func validBoard() board.Board {
	return board.Board{
		ID:      "b1",
		Name:    "Vendas",
		Version: 1,
		Columns: []board.Column{
			{ID: "c1", BoardID: "b1", Name: "Novo", Color: board.DefaultColor, Order: 0, IsInitial: true, CreatedAt: testTime, UpdatedAt: testTime},
			{ID: "c2", BoardID: "b1", Name: "Fechado", Color: board.DefaultColor, Order: 1, IsFinal: true, CreatedAt: testTime, UpdatedAt: testTime},
		},
		CreatedAt: testTime,
		UpdatedAt: testTime,
	}
}

func validLead() lead.Lead {
	col := "c1"
	return lead.Lead{
		ID:             "l1",
		AgentID:        "a1",
		Name:           "Maria",
		KanbanColumnID: &col,
		CreatedAt:      testTime,
		UpdatedAt:      testTime,
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
