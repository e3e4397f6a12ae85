// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrInsecure is returned when production runs with development credentials.
var ErrInsecure = errors.New("config: insecure production settings")

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host string `env:"APP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"APP_PORT" envDefault:"8080"`
	Env  string `env:"APP_ENV" envDefault:"development"` // "development", "production", "testing"

	// PostgreSQL connection
	DBHost     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	DBPort     string `env:"POSTGRES_PORT" envDefault:"5432"`
	DBUser     string `env:"POSTGRES_USER" envDefault:"smartslug"`
	DBPassword string `env:"POSTGRES_PASSWORD" envDefault:"changeme"`
	DBName     string `env:"POSTGRES_DB" envDefault:"smartslug"`

	// Valkey (Redis-compatible cache)
	ValkeyHost     string `env:"VALKEY_HOST" envDefault:"localhost"`
	ValkeyPort     string `env:"VALKEY_PORT" envDefault:"6379"`
	ValkeyPassword string `env:"VALKEY_PASSWORD"`

	// Slug policy
	ReservedSlugs   []string      `env:"SLUG_RESERVED" envSeparator:","`
	MaxSlugAttempts int           `env:"SLUG_MAX_ATTEMPTS" envDefault:"0"`
	SlugCache       bool          `env:"SLUG_CACHE" envDefault:"true"`
	SlugCacheTTL    time.Duration `env:"SLUG_CACHE_TTL" envDefault:"10m"`
}

var dotenv sync.Once

// Load reads an optional .env file, then the environment. Returns an error
// if a value does not parse or critical values are missing in production mode.
func Load() (*Config, error) {
	dotenv.Do(func() {
		// A missing .env file is fine.
		_ = godotenv.Load()
	})

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.ReservedSlugs = normalizeWords(cfg.ReservedSlugs)

	if cfg.MaxSlugAttempts < 0 {
		return nil, fmt.Errorf("SLUG_MAX_ATTEMPTS must not be negative, got %d", cfg.MaxSlugAttempts)
	}
	if cfg.Env == "production" && cfg.DBPassword == "changeme" {
		return nil, fmt.Errorf("%w: POSTGRES_PASSWORD must be set in production", ErrInsecure)
	}

	return cfg, nil
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
	)
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// CacheEnabled reports whether the slug cache should connect to Valkey.
func (c *Config) CacheEnabled() bool {
	return c.SlugCache && c.ValkeyHost != ""
}

// normalizeWords trims and lowercases words, dropping empties.
func normalizeWords(words []string) []string {
	out := words[:0]
	for _, w := range words {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			out = append(out, w)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
