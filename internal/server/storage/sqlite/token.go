package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sorbit-app/sorbit-auth/internal/models"
	"github.com/sorbit-app/sorbit-auth/internal/server/storage"
)

// SaveRefreshToken inserts a new ledger record and fills in the assigned ID
func (s *Storage) SaveRefreshToken(ctx context.Context, token *models.RefreshToken) error {
	query := `
		INSERT INTO refresh_tokens (user_id, token, expires_at, revoked, created_at)
		VALUES (?, ?, ?, 0, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		token.UserID,
		token.Token,
		token.ExpiresAt,
		token.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to save refresh token: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted token id: %w", err)
	}
	token.ID = id

	return nil
}

// GetRefreshToken retrieves a ledger record by token value
func (s *Storage) GetRefreshToken(ctx context.Context, token string) (*models.RefreshToken, error) {
	query := `
		SELECT id, user_id, token, expires_at, revoked, created_at
		FROM refresh_tokens
		WHERE token = ?
	`

	record := &models.RefreshToken{}

	err := s.db.QueryRowContext(ctx, query, token).Scan(
		&record.ID,
		&record.UserID,
		&record.Token,
		&record.ExpiresAt,
		&record.Revoked,
		&record.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrTokenNotFound
		}
		return nil, fmt.Errorf("failed to get refresh token: %w", err)
	}

	return record, nil
}

// GetUserTokens retrieves all ledger records for a user, newest first
func (s *Storage) GetUserTokens(ctx context.Context, userID int64) ([]*models.RefreshToken, error) {
	query := `
		SELECT id, user_id, token, expires_at, revoked, created_at
		FROM refresh_tokens
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query user tokens: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	tokens := []*models.RefreshToken{}

	for rows.Next() {
		token := &models.RefreshToken{}
		if err := rows.Scan(
			&token.ID,
			&token.UserID,
			&token.Token,
			&token.ExpiresAt,
			&token.Revoked,
			&token.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan token: %w", err)
		}
		tokens = append(tokens, token)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return tokens, nil
}

// RotateRefreshToken revokes the record with the given ID and inserts its
// replacement in one transaction. The revoke only matches revoked=0, so a
// token presented twice concurrently rotates at most once.
func (s *Storage) RotateRefreshToken(ctx context.Context, oldID int64, replacement *models.RefreshToken) (bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	result, err := tx.ExecContext(ctx,
		`UPDATE refresh_tokens SET revoked = 1 WHERE id = ? AND revoked = 0`,
		oldID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		// Already revoked or unknown: the rotation loses the race
		return false, nil
	}

	insert, err := tx.ExecContext(ctx,
		`INSERT INTO refresh_tokens (user_id, token, expires_at, revoked, created_at)
		 VALUES (?, ?, ?, 0, ?)`,
		replacement.UserID,
		replacement.Token,
		replacement.ExpiresAt,
		replacement.CreatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("failed to save replacement token: %w", err)
	}

	id, err := insert.LastInsertId()
	if err != nil {
		return false, fmt.Errorf("failed to get inserted token id: %w", err)
	}
	replacement.ID = id

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit rotation: %w", err)
	}

	return true, nil
}

// RevokeRefreshToken marks the record with the given token value revoked.
// Idempotent: unknown and already-revoked tokens are a no-op.
func (s *Storage) RevokeRefreshToken(ctx context.Context, token string) error {
	query := `UPDATE refresh_tokens SET revoked = 1 WHERE token = ?`

	if _, err := s.db.ExecContext(ctx, query, token); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	return nil
}
