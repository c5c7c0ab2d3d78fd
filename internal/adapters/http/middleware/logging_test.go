package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/kanban-pipeline/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/kanban-pipeline/internal/platform/logging"
)

func TestLogging_StartAndCompletion(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"l1"}`))
	}))

	serve(h, httptest.NewRequest(http.MethodPost, "/api/v1/leads", http.NoBody))

	out := buf.String()
	for _, want := range []string{"request started", "request completed", "method=POST", "status=201", "bytes=11", "level=INFO"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestLogging_LevelFollowsStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code int
		want string
	}{
		{code: http.StatusOK, want: "level=INFO msg=\"request completed\""},
		{code: http.StatusConflict, want: "level=WARN msg=\"request completed\""},
		{code: http.StatusBadGateway, want: "level=ERROR msg=\"request completed\""},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.code), func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			h := middleware.Logging(testLogger(&buf))(status(tt.code))
			serve(h, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("log output missing %q:\n%s", tt.want, buf.String())
			}
		})
	}
}

func TestLogging_UsesRoutePattern(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := chi.NewRouter()
	r.Use(middleware.Logging(testLogger(&buf)))
	r.Post("/api/v1/leads/{leadId}/move", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	serve(r, httptest.NewRequest(http.MethodPost, "/api/v1/leads/l-9/move", http.NoBody))

	if !strings.Contains(buf.String(), "route=/api/v1/leads/{leadId}/move") {
		t.Errorf("log output missing route pattern:\n%s", buf.String())
	}
}

func TestLogging_ContextLoggerCarriesIDs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := middleware.RequestID()(middleware.CorrelationID()(middleware.Logging(testLogger(&buf))(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logging.FromContext(r.Context()).InfoContext(r.Context(), "moving lead")
			w.WriteHeader(http.StatusOK)
		}),
	)))

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req.Header.Set(middleware.HeaderRequestID, "req-log")
	req.Header.Set(middleware.HeaderCorrelationID, "corr-log")
	serve(h, req)

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if !strings.Contains(line, "request_id=req-log") || !strings.Contains(line, "correlation_id=corr-log") {
			t.Errorf("log line missing ids: %s", line)
		}
	}
	if !strings.Contains(buf.String(), "moving lead") {
		t.Error("handler log line not written through context logger")
	}
}

func TestLogging_DebugRedactsCredentials(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := middleware.Logging(testLogger(&buf))(status(http.StatusOK))

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req.Header.Set("Authorization", "Bearer secret-token-value")
	req.Header.Set("X-Principal-Role", "ADMIN")
	serve(h, req)

	out := buf.String()
	if strings.Contains(out, "secret-token-value") {
		t.Errorf("authorization value leaked:\n%s", out)
	}
	if !strings.Contains(out, "X-Principal-Role=ADMIN") {
		t.Errorf("non-sensitive header missing:\n%s", out)
	}
}
