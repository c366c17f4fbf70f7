package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sorbit-app/sorbit-auth/internal/models"
	"github.com/sorbit-app/sorbit-auth/internal/server/auth"
	"github.com/sorbit-app/sorbit-auth/pkg/api"
)

// AuthHandler exposes the auth service over HTTP
type AuthHandler struct {
	logger  *slog.Logger
	service *auth.Service
}

// NewAuthHandler creates a new handler for the auth endpoints
func NewAuthHandler(logger *slog.Logger, service *auth.Service) *AuthHandler {
	return &AuthHandler{
		logger:  logger,
		service: service,
	}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode register request", slog.Any("error", err))
		WriteError(h.logger, w, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, pair, err := h.service.Register(ctx, req.Email, req.Password, req.Name)
	if err != nil {
		h.writeAuthError(ctx, w, err)
		return
	}

	resp := api.AuthResponse{
		User:         publicUser(user, false),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}

	WriteJSON(h.logger, w, resp, http.StatusCreated)
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode login request", slog.Any("error", err))
		WriteError(h.logger, w, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, pair, err := h.service.Login(ctx, req.Email, req.Password)
	if err != nil {
		h.writeAuthError(ctx, w, err)
		return
	}

	resp := api.AuthResponse{
		User:         publicUser(user, false),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}

	WriteJSON(h.logger, w, resp, http.StatusOK)
}

// Refresh handles POST /api/auth/refresh
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode refresh request", slog.Any("error", err))
		WriteError(h.logger, w, "Invalid request body", http.StatusBadRequest)
		return
	}

	pair, err := h.service.Refresh(ctx, req.RefreshToken)
	if err != nil {
		h.writeAuthError(ctx, w, err)
		return
	}

	resp := api.TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}

	WriteJSON(h.logger, w, resp, http.StatusOK)
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode logout request", slog.Any("error", err))
		WriteError(h.logger, w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.Logout(ctx, req.RefreshToken); err != nil {
		h.writeAuthError(ctx, w, err)
		return
	}

	WriteJSON(h.logger, w, api.LogoutResponse{Success: true}, http.StatusOK)
}

// Me handles GET /api/auth/me, behind the session guard
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identity, ok := IdentityFrom(ctx)
	if !ok {
		// Route is registered behind the session guard; reaching here
		// without an identity is a wiring bug
		h.logger.ErrorContext(ctx, "no identity in request context")
		WriteError(h.logger, w, "Server error", http.StatusInternalServerError)
		return
	}

	user, err := h.service.Me(ctx, identity.ID)
	if err != nil {
		h.writeAuthError(ctx, w, err)
		return
	}

	WriteJSON(h.logger, w, api.UserResponse{User: publicUser(user, true)}, http.StatusOK)
}

// writeAuthError translates domain errors to HTTP. Anything outside the
// taxonomy is logged and surfaced as a generic 500 with no internal detail.
func (h *AuthHandler) writeAuthError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, auth.ErrEmailPasswordRequired):
		WriteError(h.logger, w, "Email and password are required", http.StatusBadRequest)
	case errors.Is(err, auth.ErrRefreshTokenRequired):
		WriteError(h.logger, w, "Refresh token is required", http.StatusBadRequest)
	case errors.Is(err, auth.ErrEmailInUse):
		WriteError(h.logger, w, "Email already in use", http.StatusConflict)
	case errors.Is(err, auth.ErrInvalidCredentials):
		WriteError(h.logger, w, "Invalid credentials", http.StatusUnauthorized)
	case errors.Is(err, auth.ErrRefreshTokenInvalid):
		WriteError(h.logger, w, "Invalid or expired refresh token", http.StatusUnauthorized)
	case errors.Is(err, auth.ErrRefreshTokenNotRecognized):
		WriteError(h.logger, w, "Refresh token not recognized", http.StatusUnauthorized)
	case errors.Is(err, auth.ErrUserNotFound):
		WriteError(h.logger, w, "User not found", http.StatusNotFound)
	default:
		h.logger.ErrorContext(ctx, "unhandled auth error", slog.Any("error", err))
		WriteError(h.logger, w, "Server error", http.StatusInternalServerError)
	}
}

func publicUser(user *models.User, withCreatedAt bool) api.User {
	p := api.User{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
	}
	if withCreatedAt {
		createdAt := user.CreatedAt
		p.CreatedAt = &createdAt
	}
	return p
}
