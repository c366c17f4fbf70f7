package storage

import (
	"context"

	"github.com/sorbit-app/sorbit-auth/internal/models"
)

// TokenStorage defines interface for the refresh token ledger.
// The ledger is insert-only: records are revoked, never deleted, so
// rotated-away predecessors remain available for audit.
type TokenStorage interface {
	// SaveRefreshToken inserts a new ledger record and fills in the
	// assigned ID.
	SaveRefreshToken(ctx context.Context, token *models.RefreshToken) error

	// GetRefreshToken retrieves a ledger record by token value.
	// Returns ErrTokenNotFound if the token was never recorded.
	GetRefreshToken(ctx context.Context, token string) (*models.RefreshToken, error)

	// GetUserTokens retrieves all ledger records for a user, newest
	// first. Returns an empty slice if none exist.
	GetUserTokens(ctx context.Context, userID int64) ([]*models.RefreshToken, error)

	// RotateRefreshToken revokes the record with the given ID and
	// inserts its replacement in a single transaction. The revoke is
	// conditional on revoked=0; returns false without inserting when
	// the record was already revoked or does not exist, so two
	// concurrent rotations of the same token cannot both succeed.
	RotateRefreshToken(ctx context.Context, oldID int64, replacement *models.RefreshToken) (bool, error)

	// RevokeRefreshToken marks the record with the given token value
	// revoked. Idempotent: revoking an already-revoked or unknown
	// token is a no-op, not an error.
	RevokeRefreshToken(ctx context.Context, token string) error
}
