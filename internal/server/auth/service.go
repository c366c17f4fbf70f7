package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sorbit-app/sorbit-auth/internal/crypto"
	"github.com/sorbit-app/sorbit-auth/internal/models"
	"github.com/sorbit-app/sorbit-auth/internal/server/storage"
	"github.com/sorbit-app/sorbit-auth/internal/server/token"
	"github.com/sorbit-app/sorbit-auth/internal/validation"
)

// TokenPair is an access/refresh token pair issued together.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Service orchestrates registration, login, token rotation, and logout over
// the credential store, the refresh token ledger, and the token issuer. All
// dependencies are injected; the service owns no global state.
type Service struct {
	logger *slog.Logger
	users  storage.UserStorage
	tokens storage.TokenStorage
	issuer *token.Issuer
}

// NewService creates a new auth service.
func NewService(logger *slog.Logger, users storage.UserStorage, tokens storage.TokenStorage, issuer *token.Issuer) *Service {
	return &Service{
		logger: logger,
		users:  users,
		tokens: tokens,
		issuer: issuer,
	}
}

// Register creates a new user and issues its first token pair.
// The email unique constraint is enforced in the database, so two
// concurrent registrations with the same email cannot both succeed.
func (s *Service) Register(ctx context.Context, email, password, name string) (*models.User, *TokenPair, error) {
	if email == "" || password == "" {
		return nil, nil, ErrEmailPasswordRequired
	}

	normalized := validation.NormalizeEmail(email)

	passwordHash, err := crypto.HashPassword(password)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        normalized,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	if name != "" {
		user.Name = &name
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrEmailExists) {
			s.logger.WarnContext(ctx, "registration rejected: email already registered", slog.String("email", normalized))
			return nil, nil, ErrEmailInUse
		}
		return nil, nil, fmt.Errorf("failed to create user: %w", err)
	}

	pair, err := s.issueAndRecord(ctx, user.ID, user.Email)
	if err != nil {
		return nil, nil, err
	}

	s.logger.InfoContext(ctx, "user registered",
		slog.Int64("user_id", user.ID),
		slog.String("email", user.Email))

	return user, pair, nil
}

// Login verifies credentials and issues a new token pair. Unknown email and
// wrong password return the same error.
func (s *Service) Login(ctx context.Context, email, password string) (*models.User, *TokenPair, error) {
	if email == "" || password == "" {
		return nil, nil, ErrEmailPasswordRequired
	}

	normalized := validation.NormalizeEmail(email)

	user, err := s.users.GetUserByEmail(ctx, normalized)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			s.logger.WarnContext(ctx, "login failed: unknown email", slog.String("email", normalized))
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !crypto.VerifyPassword(password, user.PasswordHash) {
		s.logger.WarnContext(ctx, "login failed: wrong password", slog.Int64("user_id", user.ID))
		return nil, nil, ErrInvalidCredentials
	}

	pair, err := s.issueAndRecord(ctx, user.ID, user.Email)
	if err != nil {
		return nil, nil, err
	}

	s.logger.InfoContext(ctx, "user logged in", slog.Int64("user_id", user.ID))

	return user, pair, nil
}

// Refresh rotates a refresh token: the presented record is revoked and a
// brand-new pair bound to the same subject and email is issued. A token that
// verifies but is absent from the ledger or already revoked is rejected;
// that is what detects replay of a rotated-away token.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	if refreshToken == "" {
		return nil, ErrRefreshTokenRequired
	}

	claims, err := s.issuer.VerifyRefreshToken(refreshToken)
	if err != nil {
		s.logger.WarnContext(ctx, "refresh rejected: token verification failed", slog.Any("error", err))
		return nil, ErrRefreshTokenInvalid
	}

	userID, err := claims.UserID()
	if err != nil {
		s.logger.WarnContext(ctx, "refresh rejected: malformed subject claim", slog.Any("error", err))
		return nil, ErrRefreshTokenInvalid
	}

	record, err := s.tokens.GetRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, storage.ErrTokenNotFound) {
			s.logger.WarnContext(ctx, "refresh rejected: token not in ledger", slog.Int64("user_id", userID))
			return nil, ErrRefreshTokenNotRecognized
		}
		return nil, fmt.Errorf("failed to get refresh token: %w", err)
	}
	if record.Revoked {
		s.logger.WarnContext(ctx, "refresh rejected: token already revoked", slog.Int64("user_id", userID))
		return nil, ErrRefreshTokenNotRecognized
	}

	accessToken, err := s.issuer.SignAccessToken(userID, claims.Email)
	if err != nil {
		return nil, err
	}

	newRefreshToken, expiresAt, err := s.issuer.SignRefreshToken(userID, claims.Email)
	if err != nil {
		return nil, err
	}

	replacement := &models.RefreshToken{
		UserID:    record.UserID,
		Token:     newRefreshToken,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}

	rotated, err := s.tokens.RotateRefreshToken(ctx, record.ID, replacement)
	if err != nil {
		return nil, fmt.Errorf("failed to rotate refresh token: %w", err)
	}
	if !rotated {
		// A concurrent refresh with the same token won the rotation
		s.logger.WarnContext(ctx, "refresh rejected: lost rotation race", slog.Int64("user_id", userID))
		return nil, ErrRefreshTokenNotRecognized
	}

	s.logger.InfoContext(ctx, "refresh token rotated", slog.Int64("user_id", userID))

	return &TokenPair{AccessToken: accessToken, RefreshToken: newRefreshToken}, nil
}

// Logout revokes the presented refresh token. Idempotent and deliberately
// oblivious: an unknown, foreign, or already-revoked token succeeds the same
// way, revealing nothing about what the ledger holds.
func (s *Service) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return ErrRefreshTokenRequired
	}

	if err := s.tokens.RevokeRefreshToken(ctx, refreshToken); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	return nil
}

// Me returns the profile of the user identified by a verified access token
// subject. The user may have been removed out-of-band since the token was
// issued.
func (s *Service) Me(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// issueAndRecord mints an access/refresh pair and records the refresh token
// in the ledger with the expiry the token itself asserts.
func (s *Service) issueAndRecord(ctx context.Context, userID int64, email string) (*TokenPair, error) {
	accessToken, err := s.issuer.SignAccessToken(userID, email)
	if err != nil {
		return nil, err
	}

	refreshToken, expiresAt, err := s.issuer.SignRefreshToken(userID, email)
	if err != nil {
		return nil, err
	}

	record := &models.RefreshToken{
		UserID:    userID,
		Token:     refreshToken,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}

	if err := s.tokens.SaveRefreshToken(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to save refresh token: %w", err)
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
