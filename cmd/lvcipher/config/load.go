// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Environment variable names.
const (
	EnvAlphaKey     = "LVCIPHER_ALPHA_KEY"
	EnvRouteColumns = "LVCIPHER_ROUTE_COLUMNS"
	EnvShowTable    = "LVCIPHER_SHOW_TABLE"
	EnvLogLevel     = "LVCIPHER_LOG_LEVEL"
)

// Load builds a Config from defaults, the YAML file at path and the
// environment, then validates it. When required is false a missing file
// is skipped; an unreadable or malformed file is always an error.
func Load(path string, required bool) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
			}
		case errors.Is(err, fs.ErrNotExist) && !required:
			// optional file
		default:
			return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// applyEnvOverrides copies LVCIPHER_* variables over cfg.
func applyEnvOverrides(cfg *Config) error {
	if val, ok := os.LookupEnv(EnvAlphaKey); ok {
		cfg.Alpha.Key = val
	}
	if val := os.Getenv(EnvRouteColumns); val != "" {
		n, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvRouteColumns, val, err)
		}
		cfg.Route.Columns = n
	}
	if val := os.Getenv(EnvShowTable); val != "" {
		b, err := strconv.ParseBool(val)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvShowTable, val, err)
		}
		cfg.Output.ShowTable = b
	}
	if val := os.Getenv(EnvLogLevel); val != "" {
		cfg.Log.Level = val
	}
	return nil
}
