// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-micropost/internal/config"
	"github.com/MKhiriev/go-micropost/internal/logger"
	"github.com/MKhiriev/go-micropost/migrations"
)

const defaultRetryDelay = 50 * time.Millisecond

// DB is a database handle shared by all repositories. Besides the pool it
// carries the dialect-specific statement builder and error classifier, and
// the timeout/retry policy applied to every statement.
type DB struct {
	*sql.DB
	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger

	queryTimeout  time.Duration
	retryAttempts uint64
	retryDelay    time.Duration
}

// NewConnect opens a connection for the configured driver.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		log.Error().Str("func", "NewConnect").Str("driver", cfg.Driver).Msg("unsupported driver")
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

func newDB(conn *sql.DB, cfg config.DB, classifier ErrorClassificator, placeholder sq.PlaceholderFormat, log *logger.Logger) *DB {
	db := &DB{
		DB:                 conn,
		driver:             cfg.Driver,
		builder:            sq.StatementBuilder.PlaceholderFormat(placeholder),
		errorClassificator: classifier,
		logger:             log,
		queryTimeout:       cfg.QueryTimeout,
		retryAttempts:      cfg.RetryAttempts,
		retryDelay:         cfg.RetryDelay,
	}
	if db.retryDelay <= 0 {
		db.retryDelay = defaultRetryDelay
	}
	return db
}

// Migrate applies the embedded schema migrations for the connection's dialect.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.driver)
}

// Driver returns the name of the database/sql driver in use.
func (db *DB) Driver() string {
	return db.driver
}

// do runs op under the per-statement timeout. Failures the classifier marks
// as retryable are retried with exponential backoff; any other failure is
// returned at once.
func (db *DB) do(ctx context.Context, op func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(db.retryAttempts, retry.NewExponential(db.retryDelay))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		opCtx := ctx
		if db.queryTimeout > 0 {
			var cancel context.CancelFunc
			opCtx, cancel = context.WithTimeout(ctx, db.queryTimeout)
			defer cancel()
		}

		err := op(opCtx)
		if err != nil && db.errorClassificator.Classify(err) == Retryable {
			logger.FromContext(ctx).Warn().Err(err).
				Str("func", "DB.do").
				Msg("retryable database error, retrying")
			return retry.RetryableError(err)
		}
		return err
	})
}

// violation is a shortcut for db.errorClassificator.Violation.
func (db *DB) violation(err error) ConstraintViolation {
	return db.errorClassificator.Violation(err)
}
