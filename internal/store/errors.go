// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an INSERT or UPDATE of a user
	// violates the case-insensitive unique index on email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when a query or statement targets a user
	// that does not exist, including foreign keys pointing to a missing user.
	ErrUserNotFound = errors.New("no user was found")

	// ErrRelationshipAlreadyExists is returned when a follow edge with the
	// same (follower_id, followed_id) pair is already stored.
	ErrRelationshipAlreadyExists = errors.New("relationship already exists")

	// ErrRelationshipNotFound is returned when a DELETE of a follow edge
	// matches no row.
	ErrRelationshipNotFound = errors.New("relationship was not found")

	// ErrSelfRelationship is returned when a follow edge would point from a
	// user to the same user.
	ErrSelfRelationship = errors.New("relationship from a user to itself")

	// ErrMicropostNotFound is returned when a micropost (scoped to its
	// author) does not exist.
	ErrMicropostNotFound = errors.New("micropost was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result set
	// fails mid-way.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrUnsupportedDriver is returned when the configured driver is
	// neither pgx nor sqlite3.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// ErrForeignKeyViolation is returned when a statement references a row that
// does not exist and no more specific sentinel applies.
var ErrForeignKeyViolation = errors.New("foreign key violation")
