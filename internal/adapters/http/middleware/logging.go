package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/kanban-pipeline/internal/platform/logging"
)

// Logging returns middleware that logs each request's start and outcome.
// The child logger it stores in the context carries request_id and
// correlation_id, so every log line a handler writes can be joined back to
// the request. Completion is logged at error level for 5xx, warn for 4xx and
// info otherwise, labelled with the matched route pattern.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			child := logger.With(
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			)
			ctx = logging.WithLogger(ctx, child)

			child.InfoContext(ctx, "request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)
			if child.Enabled(ctx, slog.LevelDebug) {
				child.DebugContext(ctx, "request headers", headerArgs(r.Header)...)
			}

			rec := newStatusRecorder(w)
			next.ServeHTTP(rec, r.WithContext(ctx))

			child.Log(ctx, completionLevel(rec.status), "request completed",
				slog.String("method", r.Method),
				slog.String("route", routeOf(r)),
				slog.Int("status", rec.status),
				slog.Int64("bytes", rec.bytes),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

func completionLevel(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

func headerArgs(h http.Header) []any {
	attrs := RedactHeaders(h)
	args := make([]any, len(attrs))
	for i, a := range attrs {
		args[i] = a
	}
	return args
}
