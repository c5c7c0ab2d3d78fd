package middleware

import (
	"context"
	"net/http"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/kanban-pipeline/internal/platform/httpclient"
)

// Tracing headers accepted from callers and echoed on every response.
const (
	HeaderRequestID     = "X-Request-ID"
	HeaderCorrelationID = "X-Correlation-ID"
)

// maxIDLength bounds caller-supplied ids so they stay safe to log.
const maxIDLength = 128

type (
	requestIDKey     struct{}
	correlationIDKey struct{}
)

// WithRequestID stores id in ctx, both for this package and for the
// outbound client so downstream calls carry the same X-Request-ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	ctx = context.WithValue(ctx, requestIDKey{}, id)
	return httpclient.WithRequestID(ctx, id)
}

// RequestIDFromContext returns the request id, or "" if none was stored.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// WithCorrelationID stores id in ctx and in the outbound client context.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	ctx = context.WithValue(ctx, correlationIDKey{}, id)
	return httpclient.WithCorrelationID(ctx, id)
}

// CorrelationIDFromContext returns the correlation id, or "" if none was
// stored.
func CorrelationIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey{}).(string)
	return id
}

// RequestID returns middleware that assigns every request an id. A usable
// X-Request-ID from the caller is kept; otherwise a random UUID is issued.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := acceptID(r.Header.Get(HeaderRequestID))
			if id == "" {
				id = uuid.NewString()
			}
			w.Header().Set(HeaderRequestID, id)
			next.ServeHTTP(w, r.WithContext(WithRequestID(r.Context(), id)))
		})
	}
}

// CorrelationID returns middleware that ties a request to the business flow
// it belongs to. A usable X-Correlation-ID from the caller is kept;
// otherwise the request id is reused, so RequestID must run first.
func CorrelationID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := acceptID(r.Header.Get(HeaderCorrelationID))
			if id == "" {
				id = RequestIDFromContext(r.Context())
			}
			w.Header().Set(HeaderCorrelationID, id)
			next.ServeHTTP(w, r.WithContext(WithCorrelationID(r.Context(), id)))
		})
	}
}

// acceptID returns the trimmed caller id, or "" when it is too long or
// contains spaces or control characters.
func acceptID(raw string) string {
	id := strings.TrimSpace(raw)
	if len(id) > maxIDLength {
		return ""
	}
	if strings.ContainsFunc(id, func(r rune) bool {
		return unicode.IsSpace(r) || !unicode.IsPrint(r)
	}) {
		return ""
	}
	return id
}
