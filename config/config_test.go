/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/suparena/keymap/errors"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{"KEYMAP_SCHEMA", "KEYMAP_ENV", "KEYMAP_LOG_LEVEL", "KEYMAP_STRICT"} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	// no .env next to the package
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "keymap.yaml", cfg.SchemaPath)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.Strict)
	assert.False(t, cfg.IsProduction())
}

func TestLoadFromEnvFile(t *testing.T) {
	clearEnv(t)
	// godotenv does not override variables that are already set, even when empty
	for _, key := range []string{"KEYMAP_SCHEMA", "KEYMAP_ENV", "KEYMAP_STRICT"} {
		require.NoError(t, os.Unsetenv(key))
	}
	t.Cleanup(func() {
		for _, key := range []string{"KEYMAP_SCHEMA", "KEYMAP_ENV", "KEYMAP_STRICT"} {
			os.Unsetenv(key)
		}
	})

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("KEYMAP_SCHEMA=types.yaml\nKEYMAP_ENV=production\nKEYMAP_STRICT=true\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "types.yaml", cfg.SchemaPath)
	assert.True(t, cfg.IsProduction())
	assert.True(t, cfg.Strict)
}

func TestLoadMissingEnvFile(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		ok   bool
	}{
		{name: "valid", cfg: Config{Environment: "development", LogLevel: "debug"}, ok: true},
		{name: "bad environment", cfg: Config{Environment: "staging", LogLevel: "info"}},
		{name: "bad level", cfg: Config{Environment: "production", LogLevel: "loud"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestNewLogger(t *testing.T) {
	cfg := &Config{Environment: "production", LogLevel: "warn"}
	logger, err := cfg.NewLogger()
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
}
