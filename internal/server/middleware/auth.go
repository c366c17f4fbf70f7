package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/sorbit-app/sorbit-auth/internal/server/handlers"
	"github.com/sorbit-app/sorbit-auth/internal/server/token"
)

// SessionGuard validates the bearer access token on protected routes and
// attaches the caller identity to the request context. Every failure mode
// past the header check gets the same response body, so the client cannot
// tell a bad signature from an expired token.
func SessionGuard(logger *slog.Logger, issuer *token.Issuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
				logger.WarnContext(r.Context(), "missing or malformed authorization header")
				handlers.WriteError(logger, w, "Missing or invalid authorization header", http.StatusUnauthorized)
				return
			}

			claims, err := issuer.VerifyAccessToken(parts[1])
			if err != nil {
				logger.WarnContext(r.Context(), "access token rejected", slog.Any("error", err))
				handlers.WriteError(logger, w, "Invalid or expired token", http.StatusUnauthorized)
				return
			}

			userID, err := claims.UserID()
			if err != nil {
				logger.WarnContext(r.Context(), "access token has malformed subject", slog.Any("error", err))
				handlers.WriteError(logger, w, "Invalid or expired token", http.StatusUnauthorized)
				return
			}

			ctx := handlers.WithIdentity(r.Context(), handlers.Identity{
				ID:    userID,
				Email: claims.Email,
			})

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
