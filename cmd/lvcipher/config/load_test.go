package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcipher/cmd/lvcipher/config"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lvcipher.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

// TestLoad_Defaults returns defaults when the optional file is absent.
func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"), false)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 0, cfg.Route.Columns)
}

// TestLoad_MissingRequired fails when the caller asked for a specific file.
func TestLoad_MissingRequired(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"), true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read configuration file")
}

// TestLoad_File reads every section.
func TestLoad_File(t *testing.T) {
	path := writeFile(t, `
alpha:
  key: ключ
route:
  columns: 4
output:
  show_table: true
log:
  level: debug
`)
	cfg, err := config.Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, "ключ", cfg.Alpha.Key)
	assert.Equal(t, 4, cfg.Route.Columns)
	assert.True(t, cfg.Output.ShowTable)
	assert.Equal(t, "debug", cfg.Log.Level)
}

// TestLoad_Malformed reports YAML syntax errors.
func TestLoad_Malformed(t *testing.T) {
	path := writeFile(t, "route: [columns\n")
	_, err := config.Load(path, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse configuration file")
}

// TestLoad_EnvOverrides lets the environment win over the file.
func TestLoad_EnvOverrides(t *testing.T) {
	path := writeFile(t, "alpha:\n  key: КЛЮЧ\nroute:\n  columns: 4\n")
	t.Setenv(config.EnvAlphaKey, "ШИФР")
	t.Setenv(config.EnvRouteColumns, "6")
	t.Setenv(config.EnvShowTable, "true")
	t.Setenv(config.EnvLogLevel, "error")

	cfg, err := config.Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, "ШИФР", cfg.Alpha.Key)
	assert.Equal(t, 6, cfg.Route.Columns)
	assert.True(t, cfg.Output.ShowTable)
	assert.Equal(t, "error", cfg.Log.Level)
}

// TestLoad_BadEnv rejects unparsable numbers and booleans.
func TestLoad_BadEnv(t *testing.T) {
	t.Setenv(config.EnvRouteColumns, "three")
	_, err := config.Load("", false)
	assert.Error(t, err)

	t.Setenv(config.EnvRouteColumns, "")
	t.Setenv(config.EnvShowTable, "maybe")
	_, err = config.Load("", false)
	assert.Error(t, err)
}

// TestValidate covers the invalid ranges.
func TestValidate(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, config.Validate(cfg))

	cfg.Route.Columns = -2
	assert.ErrorIs(t, config.Validate(cfg), config.ErrInvalidConfig)

	cfg = config.Default()
	cfg.Log.Level = "loud"
	assert.ErrorIs(t, config.Validate(cfg), config.ErrInvalidConfig)

	path := writeFile(t, "route:\n  columns: -1\n")
	_, err := config.Load(path, true)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
