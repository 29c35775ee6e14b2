// Package config loads process configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"showcase/api/internal/seed"
)

type Config struct {
	// DatabaseURL selects the postgres backend when set; the memory
	// backend is used otherwise.
	DatabaseURL     string        `env:"DATABASE_URL"`
	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:":5000"`
	DBTimeout       time.Duration `env:"DB_TIMEOUT" envDefault:"5s"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"json"`
	SeedGuard       string        `env:"SEED_GUARD" envDefault:"per-collection"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.HTTPAddr == "" {
		return errors.New("HTTP_ADDR must not be empty")
	}
	if c.DBTimeout <= 0 {
		return fmt.Errorf("DB_TIMEOUT must be positive, got %s", c.DBTimeout)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive, got %s", c.RequestTimeout)
	}
	if _, err := seed.ParseGuard(c.SeedGuard); err != nil {
		return fmt.Errorf("SEED_GUARD: %w", err)
	}
	return nil
}

// Guard returns the parsed seed guard. Call after Validate.
func (c Config) Guard() seed.Guard {
	g, _ := seed.ParseGuard(c.SeedGuard)
	return g
}

// UsesDatabase reports whether the postgres backend is configured.
func (c Config) UsesDatabase() bool { return c.DatabaseURL != "" }
