package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/kanban-pipeline/internal/adapters/http/dto"
)

// errPanic is what a client sees for a recovered panic; the value and stack
// only go to the log.
var errPanic = errors.New("handler panicked")

// Recovery returns middleware that turns a handler panic into an RFC 9457
// 500 response. The panic is logged with its stack and the request id that
// RequestID echoed on the response. If the handler had already started the
// response, only the log entry is written.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := newStatusRecorder(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("request_id", rec.Header().Get(HeaderRequestID)),
					slog.String("method", r.Method),
					slog.String("route", routeOf(r)),
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
				)

				if !rec.wroteHeader {
					dto.WriteErrorResponse(rec, r, errPanic)
				}
			}()

			next.ServeHTTP(rec, r)
		})
	}
}
