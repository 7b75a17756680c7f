package config_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-approval/internal/config"
)

// clearEnv blanks every variable Load reads so the host environment
// cannot leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "LOG_LEVEL", "CORS_ORIGINS", "PROFILE_STORE", "DATABASE_URL",
		"REDIS_URL", "REDIS_KEY", "RATE_LIMIT_PER_MINUTE", "MAX_BODY_BYTES",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, slog.LevelInfo, cfg.LogLevel)
	require.Equal(t, []string{"http://localhost:5173"}, cfg.CORSOrigins)
	require.Equal(t, config.StoreMemory, cfg.ProfileStore)
	require.Equal(t, "travel_approval_profiles", cfg.RedisKey)
	require.Equal(t, 100, cfg.RateLimitPerMinute)
	require.Equal(t, int64(1<<20), cfg.MaxBodyBytes)
}

func TestLoad_overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "https://app.example.com, https://admin.example.com")
	t.Setenv("PROFILE_STORE", "Postgres")
	t.Setenv("DATABASE_URL", "postgres://user:pass@db:5432/travel")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "0")
	t.Setenv("MAX_BODY_BYTES", "4096")

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, slog.LevelDebug, cfg.LogLevel)
	require.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.CORSOrigins)
	require.Equal(t, config.StorePostgres, cfg.ProfileStore)
	require.Equal(t, "postgres://user:pass@db:5432/travel", cfg.DatabaseURL)
	require.Equal(t, 0, cfg.RateLimitPerMinute)
	require.Equal(t, int64(4096), cfg.MaxBodyBytes)
}

func TestLoad_redisStore(t *testing.T) {
	clearEnv(t)
	t.Setenv("PROFILE_STORE", "redis")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("REDIS_KEY", "profiles")

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	require.Equal(t, "profiles", cfg.RedisKey)
}

func TestLoad_missingRequired(t *testing.T) {
	tests := []struct {
		store   string
		missing string
	}{
		{"postgres", "DATABASE_URL"},
		{"redis", "REDIS_URL"},
	}
	for _, tc := range tests {
		t.Run(tc.store, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("PROFILE_STORE", tc.store)

			_, err := config.Load()

			require.ErrorContains(t, err, tc.missing)
		})
	}
}

// All problems are reported at once, not just the first.
func TestLoad_reportsEveryProblem(t *testing.T) {
	clearEnv(t)
	t.Setenv("PROFILE_STORE", "sqlite")
	t.Setenv("LOG_LEVEL", "loud")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "many")
	t.Setenv("MAX_BODY_BYTES", "-1")

	_, err := config.Load()

	require.Error(t, err)
	require.ErrorContains(t, err, "PROFILE_STORE")
	require.ErrorContains(t, err, "LOG_LEVEL")
	require.ErrorContains(t, err, "RATE_LIMIT_PER_MINUTE")
	require.ErrorContains(t, err, "MAX_BODY_BYTES")
}
