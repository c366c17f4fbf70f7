package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/sorbit-app/sorbit-auth/pkg/api"
)

// Pinger reports whether the backing storage is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles health check requests
type HealthHandler struct {
	logger *slog.Logger
	db     Pinger
}

// NewHealthHandler creates a new handler for health checks
func NewHealthHandler(logger *slog.Logger, db Pinger) *HealthHandler {
	return &HealthHandler{
		logger: logger,
		db:     db,
	}
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.db.Ping(ctx); err != nil {
		h.logger.ErrorContext(ctx, "health check failed: database unreachable", slog.Any("error", err))
		WriteError(h.logger, w, "Server error", http.StatusInternalServerError)
		return
	}

	WriteJSON(h.logger, w, api.HealthResponse{Status: "ok"}, http.StatusOK)
}
