// Package config loads the server configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/mmynk/mealplanner/pkg/logging"
)

// DevJWTSecret is used when JWT_SECRET is unset. Validate refuses it
// outside development.
const DevJWTSecret = "dev-secret-change-me"

// Config holds all configuration for the server.
type Config struct {
	// Server configuration
	Port        int
	StaticPath  string
	Environment string

	// Storage
	DBPath string

	// Auth
	JWTSecret string
	TokenTTL  time.Duration

	// Grocery catalog override file; empty uses the embedded French catalog.
	CatalogPath string

	// Logging
	LogLevel  slog.Level
	LogFormat logging.Format
}

// Load reads the configuration from environment variables, applies
// defaults, then validates it.
func Load() (*Config, error) {
	return LoadFrom(os.Getenv)
}

// LoadFrom is Load with a custom variable lookup.
func LoadFrom(getenv func(string) string) (*Config, error) {
	get := func(key, fallback string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return fallback
	}

	cfg := &Config{
		StaticPath:  get("STATIC_PATH", "../frontend/static"),
		Environment: get("ENV", "development"),
		DBPath:      get("DB_PATH", "./data/mealplanner.db"),
		JWTSecret:   get("JWT_SECRET", DevJWTSecret),
		CatalogPath: getenv("CATALOG_PATH"),
		LogLevel:    logging.ParseLevel(getenv("LOG_LEVEL")),
		LogFormat:   logging.ParseFormat(getenv("LOG_FORMAT")),
	}

	port, err := strconv.Atoi(get("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}
	cfg.Port = port

	ttl, err := time.ParseDuration(get("TOKEN_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_TTL: %w", err)
	}
	cfg.TokenTTL = ttl

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// ValidationError reports one invalid field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks field ranges and production requirements.
func (c *Config) Validate() error {
	var errs []error
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, ValidationError{Field: "PORT", Message: "must be between 1 and 65535"})
	}
	if c.DBPath == "" {
		errs = append(errs, ValidationError{Field: "DB_PATH", Message: "is required"})
	}
	if c.TokenTTL <= 0 {
		errs = append(errs, ValidationError{Field: "TOKEN_TTL", Message: "must be positive"})
	}
	if c.Environment == "production" && c.JWTSecret == DevJWTSecret {
		errs = append(errs, ValidationError{Field: "JWT_SECRET", Message: "must be set in production"})
	}
	if len(c.JWTSecret) < 16 {
		errs = append(errs, ValidationError{Field: "JWT_SECRET", Message: "must be at least 16 characters"})
	}
	if c.CatalogPath != "" {
		if _, err := os.Stat(c.CatalogPath); err != nil {
			errs = append(errs, ValidationError{Field: "CATALOG_PATH", Message: err.Error()})
		}
	}
	return errors.Join(errs...)
}

// Addr is the listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
