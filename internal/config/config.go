// Package config loads productform settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"
)

// Config holds the command's settings.
type Config struct {
	Addr            string        `env:"PRODUCTFORM_ADDR" envDefault:":8080"`
	LogLevel        string        `env:"PRODUCTFORM_LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"PRODUCTFORM_LOG_FORMAT" envDefault:"text"`
	SchemaFile      string        `env:"PRODUCTFORM_SCHEMA_FILE"`
	ShutdownTimeout time.Duration `env:"PRODUCTFORM_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load reads an optional .env file from the working directory, then parses
// the environment into a Config and validates it.
func Load() (Config, error) {
	// The .env file is optional.
	_ = godotenv.Load()
	return Parse()
}

// Parse reads the environment into a Config and validates it.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Validate checks the settings.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Addr, validation.Required),
		validation.Field(&c.LogLevel, validation.In("debug", "info", "warn", "error")),
		validation.Field(&c.LogFormat, validation.In("text", "json")),
		validation.Field(&c.ShutdownTimeout, validation.Min(time.Duration(0))),
	)
}
