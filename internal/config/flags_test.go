// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, rest, err := ParseFlags([]string{
		"-driver", "sqlite3",
		"-d", "file:flags.db",
		"-query-timeout", "3s",
		"-max-open-conns", "2",
		"-retry-attempts", "1",
		"-retry-delay", "5ms",
		"-remember-token-key", "key",
		"-bcrypt-cost", "4",
		"-log-level", "debug",
		"-config", "cfg.json",
		"feed", "-user", "1",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"feed", "-user", "1"}, rest)
	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
	assert.Equal(t, "file:flags.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 3*time.Second, cfg.Storage.DB.QueryTimeout)
	assert.Equal(t, 2, cfg.Storage.DB.MaxOpenConns)
	assert.Equal(t, uint64(1), cfg.Storage.DB.RetryAttempts)
	assert.Equal(t, 5*time.Millisecond, cfg.Storage.DB.RetryDelay)
	assert.Equal(t, "key", cfg.App.RememberTokenKey)
	assert.Equal(t, 4, cfg.App.BcryptCost)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "cfg.json", cfg.FilePath)
}

func TestParseFlags_NoFlags(t *testing.T) {
	cfg, rest, err := ParseFlags([]string{"migrate"})
	require.NoError(t, err)

	assert.Equal(t, &StructuredConfig{}, cfg)
	assert.Equal(t, []string{"migrate"}, rest)
}

func TestParseFlags_ShortConfigAlias(t *testing.T) {
	cfg, _, err := ParseFlags([]string{"-c", "short.yaml"})
	require.NoError(t, err)
	assert.Equal(t, "short.yaml", cfg.FilePath)
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	_, _, err := ParseFlags([]string{"-unknown"})
	require.Error(t, err)
}
