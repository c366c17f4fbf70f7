package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_ACCESS_SECRET", "access-secret")
	t.Setenv("JWT_REFRESH_SECRET", "refresh-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "4000", cfg.Port)
	assert.Equal(t, "./data/sorbit.db", cfg.DatabasePath)
	assert.Equal(t, "access-secret", cfg.AccessSecret)
	assert.Equal(t, "refresh-secret", cfg.RefreshSecret)
	assert.Equal(t, 15*time.Minute, cfg.AccessTTL)
	assert.Equal(t, 168*time.Hour, cfg.RefreshTTL)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
	assert.Equal(t, "60-M", cfg.AuthRateLimit)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JWT_ACCESS_SECRET", "a")
	t.Setenv("JWT_REFRESH_SECRET", "r")
	t.Setenv("PORT", "8080")
	t.Setenv("DATABASE_PATH", "/tmp/auth.db")
	t.Setenv("JWT_ACCESS_EXPIRES_IN", "5m")
	t.Setenv("JWT_REFRESH_EXPIRES_IN", "24h")
	t.Setenv("AUTH_RATE_LIMIT", "10-S")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "/tmp/auth.db", cfg.DatabasePath)
	assert.Equal(t, 5*time.Minute, cfg.AccessTTL)
	assert.Equal(t, 24*time.Hour, cfg.RefreshTTL)
	assert.Equal(t, "10-S", cfg.AuthRateLimit)
}

func TestLoadCORSOrigins(t *testing.T) {
	t.Setenv("JWT_ACCESS_SECRET", "a")
	t.Setenv("JWT_REFRESH_SECRET", "r")
	t.Setenv("CORS_ORIGIN", "https://app.example.com, https://staging.example.com ,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t,
		[]string{"https://app.example.com", "https://staging.example.com"},
		cfg.CORSOrigins)
}

func TestLoadMissingSecrets(t *testing.T) {
	tests := []struct {
		name    string
		access  string
		refresh string
	}{
		{"both missing", "", ""},
		{"access missing", "", "r"},
		{"refresh missing", "a", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("JWT_ACCESS_SECRET", tt.access)
			t.Setenv("JWT_REFRESH_SECRET", tt.refresh)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "JWT_ACCESS_SECRET")
		})
	}
}

func TestLoadInvalidTTL(t *testing.T) {
	t.Setenv("JWT_ACCESS_SECRET", "a")
	t.Setenv("JWT_REFRESH_SECRET", "r")
	t.Setenv("JWT_ACCESS_EXPIRES_IN", "0s")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TTL")
}
