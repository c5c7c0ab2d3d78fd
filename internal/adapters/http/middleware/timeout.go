package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/kanban-pipeline/internal/adapters/http/dto"
	"github.com/jsamuelsen11/kanban-pipeline/internal/platform/logging"
)

// Timeout returns middleware that bounds each request by d. The handler
// runs against a buffered writer under a context carrying the deadline;
// if it has not finished when the deadline passes, the buffered output is
// dropped and a 504 problem response is sent instead. Store transactions
// observe the same context and roll back.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			buf := &bufferedWriter{header: make(http.Header)}
			done := make(chan struct{})
			panicked := make(chan any, 1)

			go func() {
				defer func() {
					if v := recover(); v != nil {
						panicked <- v
					}
					close(done)
				}()
				next.ServeHTTP(buf, r.WithContext(ctx))
			}()

			select {
			case <-done:
				select {
				case v := <-panicked:
					panic(v)
				default:
				}
				buf.mu.Lock()
				defer buf.mu.Unlock()
				buf.copyTo(w)
			case <-ctx.Done():
				buf.mu.Lock()
				defer buf.mu.Unlock()
				buf.abandoned = true

				logging.FromContext(r.Context()).WarnContext(r.Context(), "request deadline exceeded",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Duration("timeout", d),
				)
				dto.WriteProblem(w, r, http.StatusGatewayTimeout,
					fmt.Sprintf("request did not complete within %s", d))
			}
		})
	}
}

// bufferedWriter holds a handler's response until it is known whether the
// handler beat the deadline. Writes after abandonment are discarded.
type bufferedWriter struct {
	mu          sync.Mutex
	header      http.Header
	body        []byte
	status      int
	wroteHeader bool
	abandoned   bool
}

func (b *bufferedWriter) Header() http.Header {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.header
}

func (b *bufferedWriter) WriteHeader(code int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.wroteHeader || b.abandoned {
		return
	}
	b.status = code
	b.wroteHeader = true
}

func (b *bufferedWriter) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.abandoned {
		return 0, http.ErrHandlerTimeout
	}
	if !b.wroteHeader {
		b.status = http.StatusOK
		b.wroteHeader = true
	}
	b.body = append(b.body, p...)
	return len(p), nil
}

// copyTo replays the buffered response. Must be called with b.mu held.
func (b *bufferedWriter) copyTo(w http.ResponseWriter) {
	maps.Copy(w.Header(), b.header)
	if b.wroteHeader {
		w.WriteHeader(b.status)
	}
	if len(b.body) > 0 {
		_, _ = w.Write(b.body)
	}
}
