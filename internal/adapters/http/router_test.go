package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	adapthttp "github.com/jsamuelsen11/kanban-pipeline/internal/adapters/http"
	"github.com/jsamuelsen11/kanban-pipeline/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/kanban-pipeline/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/kanban-pipeline/internal/domain"
	"github.com/jsamuelsen11/kanban-pipeline/internal/domain/analytics"
	"github.com/jsamuelsen11/kanban-pipeline/internal/ports"
	"github.com/jsamuelsen11/kanban-pipeline/mocks"
)

const (
	roleHeader  = "X-Principal-Role"
	scopeHeader = "X-Principal-Scope"
)

type testServices struct {
	board    *mocks.MockBoardService
	lead     *mocks.MockLeadService
	metrics  *mocks.MockMetricsService
	registry *mocks.MockHealthRegistry
}

func newTestRouter(t *testing.T, mws ...func(http.Handler) http.Handler) (http.Handler, testServices) {
	t.Helper()
	svcs := testServices{
		board:    mocks.NewMockBoardService(t),
		lead:     mocks.NewMockLeadService(t),
		metrics:  mocks.NewMockMetricsService(t),
		registry: mocks.NewMockHealthRegistry(t),
	}

	router := adapthttp.NewRouter(adapthttp.Handlers{
		Board:   handlers.NewBoardHandler(svcs.board),
		Lead:    handlers.NewLeadHandler(svcs.lead),
		Metrics: handlers.NewMetricsHandler(svcs.metrics),
		Health:  handlers.NewHealthHandler(svcs.registry),
	}, middleware.NewHeaderResolver(roleHeader, scopeHeader), mws...)
	return router, svcs
}

func TestRouter_AllRoutesRegistered(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	expectedRoutes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/health/live"},
		{http.MethodGet, "/health/ready"},
		{http.MethodGet, "/api/v1/boards"},
		{http.MethodPost, "/api/v1/boards"},
		{http.MethodGet, "/api/v1/boards/{boardId}"},
		{http.MethodPost, "/api/v1/boards/{boardId}/columns"},
		{http.MethodPut, "/api/v1/boards/{boardId}/columns/order"},
		{http.MethodPatch, "/api/v1/columns/{columnId}"},
		{http.MethodDelete, "/api/v1/columns/{columnId}"},
		{http.MethodPost, "/api/v1/leads"},
		{http.MethodGet, "/api/v1/leads/{leadId}"},
		{http.MethodPost, "/api/v1/leads/{leadId}/move"},
		{http.MethodGet, "/api/v1/leads/{leadId}/timeline"},
		{http.MethodPost, "/api/v1/leads/{leadId}/timeline"},
		{http.MethodGet, "/api/v1/metrics"},
	}

	chiRouter, ok := router.(*chi.Mux)
	if !ok {
		t.Fatal("router is not *chi.Mux")
	}

	registered := make(map[string]bool)
	err := chi.Walk(chiRouter, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	if err != nil {
		t.Fatalf("chi.Walk error: %v", err)
	}

	for _, expected := range expectedRoutes {
		key := expected.method + " " + expected.path
		if !registered[key] {
			t.Errorf("route %s not registered", key)
		}
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	t.Parallel()

	called := false
	testMW := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			next.ServeHTTP(w, r)
		})
	}

	router, svcs := newTestRouter(t, testMW)
	svcs.registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	router.ServeHTTP(rec, req)

	if !called {
		t.Error("middleware was not called")
	}
}

func TestRouter_HealthNeedsNoPrincipal(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRouter_APIRequiresPrincipal(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/boards", nil))

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusForbidden)
	}
}

func TestRouter_IntegrationListBoards(t *testing.T) {
	t.Parallel()

	router, svcs := newTestRouter(t)
	svcs.board.EXPECT().ListBoards(mock.Anything, domain.Scoped("a1")).Return([]ports.BoardOverview{}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/boards", nil)
	req.Header.Set(roleHeader, "SCOPED")
	req.Header.Set(scopeHeader, "a1")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRouter_IntegrationMetricsQuery(t *testing.T) {
	t.Parallel()

	router, svcs := newTestRouter(t)
	svcs.metrics.EXPECT().GetMetrics(mock.Anything, domain.Admin(), mock.Anything).
		Return(&analytics.Metrics{}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/metrics?boardId=b1", nil)
	req.Header.Set(roleHeader, "ADMIN")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRouter_NotFoundReturns404(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want application/problem+json", ct)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/boards", nil)
	req.Header.Set(roleHeader, "ADMIN")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want application/problem+json", ct)
	}
}
