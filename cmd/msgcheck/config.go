package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/validmsg/pkg/logger"
)

// Config is read from the environment, optionally seeded from a .env file.
// Command-line flags take precedence.
type Config struct {
	Dir      string `env:"VALIDMSG_DIR"`
	LogLevel string `env:"VALIDMSG_LOG_LEVEL" envDefault:"warn"`
	Sentry   logger.SentryConfig
}

// Flags are the command-line options.
type Flags struct {
	Dir         string `goopt:"name:dir;short:d;desc:Directory scanned for validations/messages files"`
	Key         string `goopt:"name:key;short:k;desc:Rule key to print"`
	Description string `goopt:"name:description;desc:Description substituted into the message"`
	LogLevel    string `goopt:"name:log-level;short:l;desc:Log level (debug, info, warn, error)"`
	Check       bool   `goopt:"name:check;short:c;desc:Report keys the default set does not know"`
}

func loadConfig() (Config, error) {
	// .env is optional when variables come from the environment.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c *Config) apply(f *Flags) {
	if f.Dir != "" {
		c.Dir = f.Dir
	}
	if f.LogLevel != "" {
		c.LogLevel = f.LogLevel
	}
}
