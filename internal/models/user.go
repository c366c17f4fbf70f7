package models

import "time"

// User represents a registered account. PasswordHash never leaves the
// auth service; handlers expose users through the api.User view only.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Name         *string
	CreatedAt    time.Time
}

// RefreshToken is a ledger record for an issued refresh token.
// Records are insert-only; the revoked flag transitions false -> true
// exactly once and never reverts. Revoked records stay in the ledger.
type RefreshToken struct {
	ID        int64
	UserID    int64
	Token     string
	ExpiresAt time.Time
	Revoked   bool
	CreatedAt time.Time
}
