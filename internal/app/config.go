package app

import (
	"fmt"
	"time"
)

// DefaultRegistryURL is the registry queried when neither the settings file
// nor a flag names one.
const DefaultRegistryURL = "https://registry.recipekit.dev"

// Config holds all the necessary configuration for one invocation.
type Config struct {
	RegistryURL string
	CacheTTL    time.Duration
	MaxAttempts int

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and fills unset fields with their defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.RegistryURL == "" {
		cfg.RegistryURL = DefaultRegistryURL
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 15 * time.Minute
	}
	if cfg.CacheTTL < 0 {
		return nil, fmt.Errorf("cache TTL must not be negative, got %s", cfg.CacheTTL)
	}
	if cfg.MaxAttempts == 0 {
		cfg.MaxAttempts = 3
	}
	if cfg.MaxAttempts < 1 {
		return nil, fmt.Errorf("retry attempts must be at least 1, got %d", cfg.MaxAttempts)
	}

	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", cfg.LogFormat)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	return &cfg, nil
}
