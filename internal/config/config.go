// Package config loads cmd/atemclient's settings from environment
// variables with flag overrides, the way the teacher's server configures
// itself — scaled down to what a thin CLI client needs.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds cmd/atemclient's settings.
type Config struct {
	Address    string `env:"ATEM_ADDRESS" default:""`
	LogLevel   string `env:"ATEM_LOG_LEVEL" default:"info"`
	BufferSize int    `env:"ATEM_BUFFER_SIZE" default:"1500"`
}

// LoadOptions holds command-line override values; a zero value leaves the
// environment or default in place.
type LoadOptions struct {
	Address    string
	LogLevel   string
	BufferSize int
}

// Load reads Config from the environment with opts taking precedence,
// then validates it.
func Load(opts LoadOptions) (*Config, error) {
	cfg := &Config{
		Address:    getOverrideOrEnv(opts.Address, "ATEM_ADDRESS", ""),
		LogLevel:   getOverrideOrEnv(opts.LogLevel, "ATEM_LOG_LEVEL", "info"),
		BufferSize: getIntOverrideOrEnv(opts.BufferSize, "ATEM_BUFFER_SIZE", 1500),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration is usable.
func (c *Config) Validate() error {
	if c.Address == "" {
		return fmt.Errorf("address must be set (ATEM_ADDRESS or -address)")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	if c.BufferSize < 1500 {
		return fmt.Errorf("buffer size must be at least 1500 bytes, got %d", c.BufferSize)
	}

	return nil
}

func getOverrideOrEnv(override, envKey, defaultValue string) string {
	if override != "" {
		return override
	}
	if value := os.Getenv(envKey); value != "" {
		return value
	}
	return defaultValue
}

func getIntOverrideOrEnv(override int, envKey string, defaultValue int) int {
	if override != 0 {
		return override
	}
	if value := os.Getenv(envKey); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
