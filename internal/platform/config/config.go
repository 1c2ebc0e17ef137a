// Copyright (c) 2026 Miranda Hotel. All rights reserved.

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a
strongly-typed Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: once loaded, configuration is read-only.
  - DI-Friendly: passed to core components (DB, Redis, token service)
    via constructors. No global state.
  - Fail fast: a missing SECRET_KEY aborts startup instead of silently
    falling back to a development value.
*/
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// # Configuration Schema

// Config holds all runtime configuration for the Miranda API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Store (Redis) — backs the login attempt throttle.
	RedisURL string `env:"REDIS_URL,required"`

	// SecretKey signs access tokens. Absence is a startup failure; there is
	// deliberately no built-in default.
	SecretKey string `env:"SECRET_KEY,required"`

	// TokenLookup is the comma-separated token source precedence for the
	// session resolver: "header,cookie" or "cookie,header".
	TokenLookup string `env:"TOKEN_LOOKUP" envDefault:"header,cookie"`

	// ClientBaseURL is the allowed CORS origin of the admin frontend.
	ClientBaseURL string `env:"CLIENT_BASE_URL"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {
	cfg := &Config{}

	// Fails if any field marked 'required' is missing — including SECRET_KEY,
	// which makes a misconfigured signer a fatal startup error.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.validateTokenLookup(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// TokenSources returns the parsed token lookup order.
func (c *Config) TokenSources() []string {
	parts := strings.Split(c.TokenLookup, ",")
	sources := make([]string, 0, len(parts))
	for _, p := range parts {
		sources = append(sources, strings.TrimSpace(p))
	}
	return sources
}

// validateTokenLookup rejects lookup sources the session resolver
// does not understand.
func (c *Config) validateTokenLookup() error {
	for _, source := range c.TokenSources() {
		if source != "header" && source != "cookie" {
			return fmt.Errorf("config: unknown token source %q in TOKEN_LOOKUP", source)
		}
	}
	return nil
}

// AllowedOrigin returns the CORS origin of the admin frontend.
func (c *Config) AllowedOrigin() string {
	return c.ClientBaseURL
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
