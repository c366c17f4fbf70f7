package server

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/rs/cors"
	"github.com/ulule/limiter/v3"
	limiterhttp "github.com/ulule/limiter/v3/drivers/middleware/stdlib"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/sorbit-app/sorbit-auth/internal/config"
	"github.com/sorbit-app/sorbit-auth/internal/server/handlers"
	"github.com/sorbit-app/sorbit-auth/internal/server/middleware"
	"github.com/sorbit-app/sorbit-auth/internal/server/token"
)

// maxBodyBytes caps request bodies at 1 MiB; auth payloads are tiny.
const maxBodyBytes = 1 << 20

// NewRouter assembles the HTTP surface: auth endpoints behind content-type
// and rate-limit checks, /me behind the session guard, /health open, and a
// JSON 404 for everything else. The outer chain is recovery, logging, CORS.
func NewRouter(
	logger *slog.Logger,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	issuer *token.Issuer,
) (http.Handler, error) {
	rate, err := limiter.NewRateFromFormatted(cfg.AuthRateLimit)
	if err != nil {
		return nil, fmt.Errorf("invalid auth rate limit %q: %w", cfg.AuthRateLimit, err)
	}
	rateLimit := limiterhttp.NewMiddleware(limiter.New(memory.NewStore(), rate))

	requireJSON := middleware.RequireJSON(logger)
	guard := middleware.SessionGuard(logger, issuer)

	// Auth POST endpoints: rate limited, JSON bodies only
	post := func(h http.HandlerFunc) http.Handler {
		return rateLimit.Handler(requireJSON(maxBody(h)))
	}

	mux := http.NewServeMux()
	mux.Handle("POST /api/auth/register", post(authHandler.Register))
	mux.Handle("POST /api/auth/login", post(authHandler.Login))
	mux.Handle("POST /api/auth/refresh", post(authHandler.Refresh))
	mux.Handle("POST /api/auth/logout", post(authHandler.Logout))
	mux.Handle("GET /api/auth/me", rateLimit.Handler(guard(http.HandlerFunc(authHandler.Me))))
	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		handlers.WriteError(logger, w, "Not found", http.StatusNotFound)
	})

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	var handler http.Handler = corsHandler.Handler(mux)
	handler = middleware.LoggingWithSkip(logger, []string{"/health"})(handler)
	handler = middleware.Recovery(logger)(handler)

	return handler, nil
}

func maxBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		next.ServeHTTP(w, r)
	})
}
