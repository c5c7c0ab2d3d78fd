package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/kanban-pipeline/internal/platform/telemetry"
)

// Chain composes middleware so that the first argument is outermost:
// Chain(a, b)(h) is a(b(h)).
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(handler http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			handler = middlewares[i](handler)
		}
		return handler
	}
}

// Stack returns the server-wide middleware in the order it must run.
// Recovery is outermost so that it also catches panics in the others, and
// Timeout is innermost so that logging and tracing see the 504.
func Stack(logger *slog.Logger, metrics *telemetry.Metrics, timeout time.Duration) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		Recovery(logger),
		RequestID(),
		CorrelationID(),
		OpenTelemetry(metrics),
		Logging(logger),
		Timeout(timeout),
	}
}
