// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.yaml",

		"APP_REMEMBER_TOKEN_KEY": "remember-secret",
		"APP_BCRYPT_COST":        "12",

		"STORAGE_DB_DRIVER":         "sqlite3",
		"STORAGE_DB_DATABASE_URI":   "file:test.db",
		"STORAGE_DB_QUERY_TIMEOUT":  "2s",
		"STORAGE_DB_MAX_OPEN_CONNS": "4",
		"STORAGE_DB_RETRY_ATTEMPTS": "5",
		"STORAGE_DB_RETRY_DELAY":    "10ms",

		"LOG_LEVEL": "warn",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, "/path/to/config.yaml", cfg.FilePath)
	assert.Equal(t, "remember-secret", cfg.App.RememberTokenKey)
	assert.Equal(t, 12, cfg.App.BcryptCost)
	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
	assert.Equal(t, "file:test.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 2*time.Second, cfg.Storage.DB.QueryTimeout)
	assert.Equal(t, 4, cfg.Storage.DB.MaxOpenConns)
	assert.Equal(t, uint64(5), cfg.Storage.DB.RetryAttempts)
	assert.Equal(t, 10*time.Millisecond, cfg.Storage.DB.RetryDelay)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("STORAGE_DB_QUERY_TIMEOUT", "soon")

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestLoadDotEnv_MissingFileIsIgnored(t *testing.T) {
	require.NoError(t, loadDotEnv(filepath.Join(t.TempDir(), ".env")))
	require.NoError(t, loadDotEnv(""))
}

func TestLoadDotEnv_ExportsVariables(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("APP_REMEMBER_TOKEN_KEY=from-dotenv\n"), 0o600))

	// register cleanup of the variable godotenv is about to set
	t.Setenv("APP_REMEMBER_TOKEN_KEY", "")
	require.NoError(t, os.Unsetenv("APP_REMEMBER_TOKEN_KEY"))

	require.NoError(t, loadDotEnv(path))

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, "from-dotenv", cfg.App.RememberTokenKey)
}

func TestLoadDotEnv_DoesNotOverrideEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("LOG_LEVEL=debug\n"), 0o600))
	t.Setenv("LOG_LEVEL", "error")

	require.NoError(t, loadDotEnv(path))
	assert.Equal(t, "error", os.Getenv("LOG_LEVEL"))
}
