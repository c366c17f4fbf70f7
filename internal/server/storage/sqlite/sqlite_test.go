package sqlite

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sorbit-app/sorbit-auth/internal/models"
)

func setupTestStorage(t *testing.T) (*Storage, func()) {
	t.Helper()
	ctx := context.Background()

	// In-memory database, migrated by goose on open
	storage, err := New(ctx, ":memory:")
	require.NoError(t, err)

	cleanup := func() {
		_ = storage.Close()
	}

	return storage, cleanup
}

var testUserSeq int

func createTestUser(t *testing.T, ctx context.Context, s *Storage) int64 {
	t.Helper()
	testUserSeq++

	user := &models.User{
		Email:        fmt.Sprintf("user%d@example.com", testUserSeq),
		PasswordHash: "$2a$12$fakefakefakefakefakefake",
		CreatedAt:    time.Now(),
	}

	err := s.CreateUser(ctx, user)
	require.NoError(t, err)

	return user.ID
}
