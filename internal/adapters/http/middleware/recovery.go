package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/todo-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-service/internal/platform/logging"
)

// Recovery returns middleware that recovers from panics in downstream handlers.
// The panic value and stack trace are logged; the client receives the generic
// 500 envelope. If the response headers have already been written, only the
// log entry is emitted.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}

				logging.FromContextOr(r.Context(), logger).ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				)

				if !rw.headerWritten {
					dto.WriteEnvelope(rw, r, http.StatusInternalServerError, dto.MsgInternalError, nil)
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
