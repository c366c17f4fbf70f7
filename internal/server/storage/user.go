package storage

import (
	"context"

	"github.com/sorbit-app/sorbit-auth/internal/models"
)

// UserStorage defines interface for user data persistence.
// Emails are stored normalized (lowercase); lookups expect the caller
// to normalize first.
type UserStorage interface {
	// CreateUser inserts a new user and fills in the assigned ID.
	// Returns ErrEmailExists if the email is already taken; the unique
	// constraint is enforced in the database, not just here, so
	// concurrent registrations with the same email cannot both succeed.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves user by normalized email.
	// Returns ErrUserNotFound if user doesn't exist.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves user by ID.
	// Returns ErrUserNotFound if user doesn't exist.
	GetUserByID(ctx context.Context, userID int64) (*models.User, error)
}
