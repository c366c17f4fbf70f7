package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/sorbit-app/sorbit-auth/internal/server/handlers"
)

// Recovery intercepts panics, logs the stack trace, and returns a generic
// 500 body with no internal detail.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic recovered",
						"error", err,
						"method", r.Method,
						"path", r.URL.Path,
						"remote_addr", r.RemoteAddr,
						"stack", string(debug.Stack()),
					)

					handlers.WriteError(logger, w, "Server error", http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
