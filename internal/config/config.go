// Package config provides environment-driven configuration for kindred.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration values.
type Config struct {
	Port          string
	ListenHost    string
	CORSOrigins   []string
	LogLevel      string
	MaxSessions   int
	SessionTTL    time.Duration
	ScenariosFile string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Port:          envOrDefault("PORT", "4040"),
		ListenHost:    envOrDefault("LISTEN_HOST", "127.0.0.1"),
		LogLevel:      envOrDefault("LOG_LEVEL", "info"),
		ScenariosFile: envOrDefault("SCENARIOS_FILE", ""),
	}

	maxSessions, err := strconv.Atoi(envOrDefault("MAX_SESSIONS", "100"))
	if err != nil {
		return nil, fmt.Errorf("MAX_SESSIONS must be a valid integer: %w", err)
	}
	cfg.MaxSessions = maxSessions

	ttl, err := time.ParseDuration(envOrDefault("SESSION_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("SESSION_TTL must be a valid duration (e.g. 30m, 24h): %w", err)
	}
	cfg.SessionTTL = ttl

	origins := envOrDefault("CORS_ORIGINS", "http://localhost:3000")
	cfg.CORSOrigins = strings.Split(origins, ",")

	for i, o := range cfg.CORSOrigins {
		cfg.CORSOrigins[i] = strings.TrimSpace(o)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// Addr returns the listen address in host:port format.
func (c *Config) Addr() string {
	return c.ListenHost + ":" + c.Port
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
