package middleware

import (
	"log/slog"
	"mime"
	"net/http"

	"github.com/sorbit-app/sorbit-auth/internal/server/handlers"
)

// RequireJSON rejects POST bodies that are not application/json with 415.
// Media type parameters (charset) are allowed.
func RequireJSON(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
			if err != nil || mediaType != "application/json" {
				handlers.WriteError(logger, w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
