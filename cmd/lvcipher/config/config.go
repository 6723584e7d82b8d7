// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"strings"
)

// Defaults.
const (
	DefaultLogLevel  = "warn"
	DefaultShowTable = false
	// DefaultColumns of 0 means "not configured"; tableroute.New rejects it.
	DefaultColumns = 0
)

// ErrInvalidConfig marks a configuration that failed Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full CLI configuration.
type Config struct {
	Alpha  AlphaConfig  `yaml:"alpha"`
	Route  RouteConfig  `yaml:"route"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}

// AlphaConfig configures the substitution engine.
type AlphaConfig struct {
	// Key is the default substitution key; --key overrides it.
	Key string `yaml:"key"`
}

// RouteConfig configures the route engine.
type RouteConfig struct {
	// Columns is the default column count; --columns overrides it.
	Columns int `yaml:"columns"`
}

// OutputConfig controls what the CLI prints besides results.
type OutputConfig struct {
	// ShowTable prints the route table before the ciphertext.
	ShowTable bool `yaml:"show_table"`
}

// LogConfig controls the slog handler.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
}

// Default returns a Config filled with default values.
func Default() *Config {
	return &Config{
		Route:  RouteConfig{Columns: DefaultColumns},
		Output: OutputConfig{ShowTable: DefaultShowTable},
		Log:    LogConfig{Level: DefaultLogLevel},
	}
}

// validLevels lists accepted log levels.
var validLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Validate checks value ranges. It returns an error wrapping ErrInvalidConfig.
func Validate(cfg *Config) error {
	var problems []string
	if cfg.Route.Columns < 0 {
		problems = append(problems, fmt.Sprintf("route.columns must not be negative, got %d", cfg.Route.Columns))
	}
	if !validLevels[strings.ToLower(cfg.Log.Level)] {
		problems = append(problems, fmt.Sprintf("log.level %q is not one of debug, info, warn, error", cfg.Log.Level))
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}
