package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds service configuration.
type Config struct {
	Port         string
	DatabasePath string

	// Access and refresh tokens are signed with independent secrets.
	AccessSecret  string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration

	// CORSOrigins is the allowlist for cross-origin requests.
	CORSOrigins []string

	// AuthRateLimit is a ulule/limiter formatted rate, e.g. "60-M".
	AuthRateLimit string
}

// Load reads configuration from environment variables, honoring a .env file
// if present. Signing secrets have no defaults: the service refuses to start
// without them rather than failing on the first signing attempt.
func Load() (*Config, error) {
	// Ignore error if no .env file exists
	_ = godotenv.Load()

	viper.SetDefault("PORT", "4000")
	viper.SetDefault("DATABASE_PATH", "./data/sorbit.db")
	viper.SetDefault("JWT_ACCESS_EXPIRES_IN", "15m")
	viper.SetDefault("JWT_REFRESH_EXPIRES_IN", "168h")
	viper.SetDefault("CORS_ORIGIN", "http://localhost:3000")
	viper.SetDefault("AUTH_RATE_LIMIT", "60-M")

	viper.AutomaticEnv()

	cfg := &Config{
		Port:          viper.GetString("PORT"),
		DatabasePath:  viper.GetString("DATABASE_PATH"),
		AccessSecret:  viper.GetString("JWT_ACCESS_SECRET"),
		RefreshSecret: viper.GetString("JWT_REFRESH_SECRET"),
		AccessTTL:     viper.GetDuration("JWT_ACCESS_EXPIRES_IN"),
		RefreshTTL:    viper.GetDuration("JWT_REFRESH_EXPIRES_IN"),
		AuthRateLimit: viper.GetString("AUTH_RATE_LIMIT"),
	}

	for _, origin := range strings.Split(viper.GetString("CORS_ORIGIN"), ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
		}
	}

	if cfg.AccessSecret == "" || cfg.RefreshSecret == "" {
		return nil, errors.New("JWT secrets are not set: configure JWT_ACCESS_SECRET and JWT_REFRESH_SECRET")
	}
	if cfg.AccessTTL <= 0 || cfg.RefreshTTL <= 0 {
		return nil, errors.New("token TTLs must be positive durations")
	}

	return cfg, nil
}
