/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/suparena/keymap/errors"
)

// Config holds the keymap tool configuration
type Config struct {
	// SchemaPath is the YAML schema to load
	SchemaPath string
	// Environment is "development" or "production"
	Environment string
	// LogLevel is a zap level name
	LogLevel string
	// Strict rejects unmapped document fields
	Strict bool
}

// Load reads the given .env files and then the environment. Without files it
// reads ".env" when one exists; named files must exist.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && (len(files) > 0 || !os.IsNotExist(err)) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	cfg := &Config{
		SchemaPath:  getEnv("KEYMAP_SCHEMA", "keymap.yaml"),
		Environment: getEnv("KEYMAP_ENV", "development"),
		LogLevel:    getEnv("KEYMAP_LOG_LEVEL", "info"),
		Strict:      getEnvBool("KEYMAP_STRICT", false),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration values
func (c *Config) Validate() error {
	if c.Environment != "development" && c.Environment != "production" {
		return errors.NewValidationError("KEYMAP_ENV", fmt.Sprintf("unknown environment %q", c.Environment))
	}
	if _, err := zap.ParseAtomicLevel(c.LogLevel); err != nil {
		return errors.NewValidationError("KEYMAP_LOG_LEVEL", err.Error())
	}
	return nil
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// NewLogger builds the zap logger for the configuration
func (c *Config) NewLogger() (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}

	zc := zap.NewDevelopmentConfig()
	if c.IsProduction() {
		zc = zap.NewProductionConfig()
	}
	zc.Level = level
	return zc.Build()
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
