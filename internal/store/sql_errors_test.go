// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name          string
		err           error
		wantClass     ErrorClassification
		wantViolation ConstraintViolation
	}{
		{name: "nil", err: nil, wantClass: NonRetryable, wantViolation: NoViolation},
		{name: "plain error", err: errors.New("boom"), wantClass: NonRetryable, wantViolation: NoViolation},
		{name: "connection failure", err: pgError(pgerrcode.ConnectionFailure), wantClass: Retryable, wantViolation: NoViolation},
		{name: "serialization failure", err: pgError(pgerrcode.SerializationFailure), wantClass: Retryable, wantViolation: NoViolation},
		{name: "cannot connect now", err: pgError(pgerrcode.CannotConnectNow), wantClass: Retryable, wantViolation: NoViolation},
		{name: "unique", err: pgError(pgerrcode.UniqueViolation), wantClass: NonRetryable, wantViolation: UniqueViolation},
		{name: "foreign key", err: pgError(pgerrcode.ForeignKeyViolation), wantClass: NonRetryable, wantViolation: ForeignKeyViolation},
		{name: "not null", err: pgError(pgerrcode.NotNullViolation), wantClass: NonRetryable, wantViolation: NotNullViolation},
		{name: "check", err: pgError(pgerrcode.CheckViolation), wantClass: NonRetryable, wantViolation: CheckViolation},
		{name: "wrapped unique", err: fmt.Errorf("%w: %w", ErrExecutingStatement, pgError(pgerrcode.UniqueViolation)), wantClass: NonRetryable, wantViolation: UniqueViolation},
		{name: "syntax error", err: pgError(pgerrcode.SyntaxError), wantClass: NonRetryable, wantViolation: NoViolation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantClass, c.Classify(tt.err))
			assert.Equal(t, tt.wantViolation, c.Violation(tt.err))
		})
	}
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	constraint := func(ext sqlite3.ErrNoExtended) error {
		return sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: ext}
	}

	tests := []struct {
		name          string
		err           error
		wantClass     ErrorClassification
		wantViolation ConstraintViolation
	}{
		{name: "plain error", err: errors.New("boom"), wantClass: NonRetryable, wantViolation: NoViolation},
		{name: "busy", err: sqlite3.Error{Code: sqlite3.ErrBusy}, wantClass: Retryable, wantViolation: NoViolation},
		{name: "locked", err: sqlite3.Error{Code: sqlite3.ErrLocked}, wantClass: Retryable, wantViolation: NoViolation},
		{name: "unique", err: constraint(sqlite3.ErrConstraintUnique), wantClass: NonRetryable, wantViolation: UniqueViolation},
		{name: "primary key", err: constraint(sqlite3.ErrConstraintPrimaryKey), wantClass: NonRetryable, wantViolation: UniqueViolation},
		{name: "foreign key", err: constraint(sqlite3.ErrConstraintForeignKey), wantClass: NonRetryable, wantViolation: ForeignKeyViolation},
		{name: "not null", err: constraint(sqlite3.ErrConstraintNotNull), wantClass: NonRetryable, wantViolation: NotNullViolation},
		{name: "check", err: constraint(sqlite3.ErrConstraintCheck), wantClass: NonRetryable, wantViolation: CheckViolation},
		{name: "wrapped foreign key", err: fmt.Errorf("insert: %w", constraint(sqlite3.ErrConstraintForeignKey)), wantClass: NonRetryable, wantViolation: ForeignKeyViolation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantClass, c.Classify(tt.err))
			assert.Equal(t, tt.wantViolation, c.Violation(tt.err))
		})
	}
}
