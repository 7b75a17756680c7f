// Package config loads and validates the API server configuration from
// environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Profile store backends selectable with PROFILE_STORE.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel is the minimum level logged: debug, info, warn or error.
	// Defaults to info.
	LogLevel slog.Level

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"]. CORS_ORIGINS takes a
	// comma-separated list.
	CORSOrigins []string

	// ProfileStore picks where saved profiles live: memory (default),
	// postgres or redis.
	ProfileStore string

	// DatabaseURL is the Postgres connection string. Required for postgres.
	DatabaseURL string

	// RedisURL is a redis:// URL. Required for redis.
	RedisURL string

	// RedisKey is the hash that holds the profiles.
	RedisKey string

	// RateLimitPerMinute caps requests per client IP. 0 disables the limit.
	RateLimitPerMinute int

	// MaxBodyBytes caps request body size. Defaults to 1 MiB.
	MaxBodyBytes int64
}

// Load reads configuration from environment variables and returns a Config.
// Every problem found (missing required variables, unparsable values) is
// reported in the one returned error.
func Load() (Config, error) {
	cfg := Config{
		Port:         getEnv("PORT", "8080"),
		CORSOrigins:  splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		ProfileStore: strings.ToLower(getEnv("PROFILE_STORE", StoreMemory)),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		RedisURL:     os.Getenv("REDIS_URL"),
		RedisKey:     getEnv("REDIS_KEY", "travel_approval_profiles"),
	}

	var (
		missing  []string
		problems []error
	)

	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		problems = append(problems, fmt.Errorf("LOG_LEVEL: %w", err))
	}

	switch cfg.ProfileStore {
	case StoreMemory:
	case StorePostgres:
		if cfg.DatabaseURL == "" {
			missing = append(missing, "DATABASE_URL")
		}
	case StoreRedis:
		if cfg.RedisURL == "" {
			missing = append(missing, "REDIS_URL")
		}
	default:
		problems = append(problems, fmt.Errorf("PROFILE_STORE: unknown store %q (want memory, postgres or redis)", cfg.ProfileStore))
	}

	limit, err := getInt("RATE_LIMIT_PER_MINUTE", 100)
	if err != nil {
		problems = append(problems, err)
	}
	cfg.RateLimitPerMinute = limit

	maxBody, err := getInt("MAX_BODY_BYTES", 1<<20)
	if err != nil {
		problems = append(problems, err)
	} else if maxBody <= 0 {
		problems = append(problems, fmt.Errorf("MAX_BODY_BYTES: must be positive, got %d", maxBody))
	}
	cfg.MaxBodyBytes = int64(maxBody)

	if len(missing) > 0 {
		problems = append([]error{
			fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", ")),
		}, problems...)
	}
	if len(problems) > 0 {
		return Config{}, errors.Join(problems...)
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fallback, fmt.Errorf("%s: %q is not an integer", key, v)
	}
	return n, nil
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
