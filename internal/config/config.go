// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	GitHubToken     string
	ListenAddr      string
	PublicURL       string
	CacheControl    string
	UpstreamTimeout time.Duration
	LogoMaxBytes    int64
	HTTPCache       bool
	RateLimitWait   bool
	LogLevel        slog.Level
}

// HasGitHubToken returns true when a GitHub token is configured. Without one
// the service still works, with the lower anonymous rate limit.
func (c *Config) HasGitHubToken() bool {
	return c.GitHubToken != ""
}

// Load reads configuration from environment variables and returns a validated Config.
// Every variable is optional. STARMILESTONE_GITHUB_TOKEN falls back to GITHUB_TOKEN.
// Defaults: STARMILESTONE_LISTEN_ADDR (127.0.0.1:8080),
// STARMILESTONE_CACHE_CONTROL (no-store, max-age=0), STARMILESTONE_UPSTREAM_TIMEOUT (10s),
// STARMILESTONE_LOGO_MAX_BYTES (1 MiB), STARMILESTONE_HTTP_CACHE (false),
// STARMILESTONE_RATELIMIT_WAIT (false), STARMILESTONE_LOG_LEVEL (info).
func Load() (*Config, error) {
	token := os.Getenv("STARMILESTONE_GITHUB_TOKEN")
	if token == "" {
		token = os.Getenv("GITHUB_TOKEN")
	}

	listenAddr := "127.0.0.1:8080"
	if v, ok := os.LookupEnv("STARMILESTONE_LISTEN_ADDR"); ok {
		listenAddr = v
	}

	cacheControl := "no-store, max-age=0"
	if v, ok := os.LookupEnv("STARMILESTONE_CACHE_CONTROL"); ok {
		cacheControl = v
	}

	upstreamTimeout := 10 * time.Second
	if v, ok := os.LookupEnv("STARMILESTONE_UPSTREAM_TIMEOUT"); ok {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("STARMILESTONE_UPSTREAM_TIMEOUT has invalid duration %q: %w", v, err)
		}
		if parsed <= 0 {
			return nil, fmt.Errorf("STARMILESTONE_UPSTREAM_TIMEOUT must be positive, got %s", parsed)
		}
		upstreamTimeout = parsed
	}

	logoMaxBytes := int64(1 << 20)
	if v, ok := os.LookupEnv("STARMILESTONE_LOGO_MAX_BYTES"); ok {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("STARMILESTONE_LOGO_MAX_BYTES must be a positive integer, got %q", v)
		}
		logoMaxBytes = parsed
	}

	httpCache, err := lookupBool("STARMILESTONE_HTTP_CACHE")
	if err != nil {
		return nil, err
	}

	rateLimitWait, err := lookupBool("STARMILESTONE_RATELIMIT_WAIT")
	if err != nil {
		return nil, err
	}

	logLevel := slog.LevelInfo
	if v, ok := os.LookupEnv("STARMILESTONE_LOG_LEVEL"); ok && v != "" {
		if err := logLevel.UnmarshalText([]byte(v)); err != nil {
			return nil, fmt.Errorf("STARMILESTONE_LOG_LEVEL has invalid level %q: %w", v, err)
		}
	}

	return &Config{
		GitHubToken:     token,
		ListenAddr:      listenAddr,
		PublicURL:       os.Getenv("STARMILESTONE_PUBLIC_URL"),
		CacheControl:    cacheControl,
		UpstreamTimeout: upstreamTimeout,
		LogoMaxBytes:    logoMaxBytes,
		HTTPCache:       httpCache,
		RateLimitWait:   rateLimitWait,
		LogLevel:        logLevel,
	}, nil
}

// lookupBool parses an optional boolean variable; unset or empty is false.
func lookupBool(key string) (bool, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s has invalid boolean %q: %w", key, v, err)
	}
	return b, nil
}
