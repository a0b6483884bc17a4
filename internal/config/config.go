package config

import (
	"fmt"
	"os"
	"time"
)

// Config represents the CLI configuration.
type Config struct {
	// BaseURL of the Winja API, e.g. "https://api.winja.app/api".
	BaseURL string

	// Email and Password of the administrator account. When both are empty
	// the CLI relies on a previously stored session.
	Email    string
	Password string

	// SessionPath overrides where the session file lives. Empty means the
	// user config directory.
	SessionPath string

	RequestTimeout time.Duration
	Retry          bool
	Debug          bool
}

// Provide loads configuration from environment variables with sensible
// defaults.
func Provide() (*Config, error) {
	cfg := &Config{
		BaseURL:        os.Getenv("WINJA_BASE_URL"),
		Email:          os.Getenv("WINJA_EMAIL"),
		Password:       os.Getenv("WINJA_PASSWORD"),
		SessionPath:    os.Getenv("WINJA_SESSION_PATH"),
		RequestTimeout: getDuration("WINJA_REQUEST_TIMEOUT", 30*time.Second),
		Retry:          getBool("WINJA_RETRY", true),
		Debug:          getBool("WINJA_DEBUG", false),
	}

	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("WINJA_BASE_URL not provided")
	}

	return cfg, nil
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}

func getBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	return value == "1" || value == "true"
}
