// Package config loads process configuration from the environment and the
// optional settings document that carries user-tuned hue boundaries and the
// ΔE conflict threshold.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config is the environment-driven process configuration.
type Config struct {
	LogLevel        string  `envconfig:"COLOR_MCP_LOG_LEVEL" default:"info"`
	SettingsPath    string  `envconfig:"COLOR_MCP_SETTINGS"`
	DeltaEThreshold float64 `envconfig:"COLOR_MCP_DELTA_E" default:"2.0"`
	Workers         int     `envconfig:"COLOR_MCP_WORKERS" default:"4"`
	OCRLanguage     string  `envconfig:"COLOR_MCP_OCR_LANG" default:"por"`
	WhiteBalance    bool    `envconfig:"COLOR_MCP_WHITE_BALANCE" default:"false"`
}

// Debug reports whether debug logging is enabled.
func (c Config) Debug() bool {
	return c.LogLevel == "debug"
}

// FromEnv reads Config from the environment.
func FromEnv() (Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return Config{}, fmt.Errorf("failed to read environment: %w", err)
	}
	if c.DeltaEThreshold <= 0 {
		return Config{}, fmt.Errorf("COLOR_MCP_DELTA_E=%v: %w", c.DeltaEThreshold, ErrInvalidThreshold)
	}
	if c.Workers < 1 {
		c.Workers = 1
	}
	return c, nil
}
