// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"time"
)

// ParseFlags parses the global configuration flags from args and returns
// them as a partial config along with the remaining positional arguments.
//
// Flags:
//
//	-driver database driver (pgx or sqlite3)
//	-d database DSN
//	-query-timeout per-statement timeout (e.g. "5s")
//	-max-open-conns connection pool size
//	-retry-attempts retries of a retryable statement
//	-retry-delay initial retry backoff (e.g. "50ms")
//	-remember-token-key remember token digest key
//	-bcrypt-cost password digest cost
//	-log-level minimal log level
//	-c/-config JSON or YAML file path with configs
func ParseFlags(args []string) (*StructuredConfig, []string, error) {
	fs := flag.NewFlagSet("microblog", flag.ContinueOnError)

	var (
		driver           string
		databaseDSN      string
		queryTimeout     time.Duration
		maxOpenConns     int
		retryAttempts    uint64
		retryDelay       time.Duration
		rememberTokenKey string
		bcryptCost       int
		logLevel         string
		configPath       string
	)

	fs.StringVar(&driver, "driver", "", "Database driver (pgx or sqlite3)")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.DurationVar(&queryTimeout, "query-timeout", 0, "Per-statement timeout (e.g., 5s)")
	fs.IntVar(&maxOpenConns, "max-open-conns", 0, "Connection pool size")
	fs.Uint64Var(&retryAttempts, "retry-attempts", 0, "Retries of a retryable statement")
	fs.DurationVar(&retryDelay, "retry-delay", 0, "Initial retry backoff (e.g., 50ms)")
	fs.StringVar(&rememberTokenKey, "remember-token-key", "", "Remember token digest key")
	fs.IntVar(&bcryptCost, "bcrypt-cost", 0, "Password digest cost")
	fs.StringVar(&logLevel, "log-level", "", "Minimal log level")
	fs.StringVar(&configPath, "c", "", "Config file path")
	fs.StringVar(&configPath, "config", "", "Config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			RememberTokenKey: rememberTokenKey,
			BcryptCost:       bcryptCost,
		},
		Storage: Storage{
			DB: DB{
				Driver:        driver,
				DSN:           databaseDSN,
				QueryTimeout:  queryTimeout,
				MaxOpenConns:  maxOpenConns,
				RetryAttempts: retryAttempts,
				RetryDelay:    retryDelay,
			},
		},
		Log: Log{
			Level: logLevel,
		},
		FilePath: configPath,
	}, fs.Args(), nil
}
