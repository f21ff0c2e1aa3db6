// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-micropost/internal/logger"
	"github.com/MKhiriev/go-micropost/models"
)

// userRepository is the database/sql implementation of [UserRepository].
// It handles user account creation, lookup and removal against the "users"
// table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// rowScanner is implemented by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(
		&user.UserID,
		&user.Name,
		&user.Email,
		&user.PasswordDigest,
		&user.RememberDigest,
		&user.Admin,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	return user, err
}

// CreateUser persists a new user and returns it with the database-assigned
// UserID. The email is stored lowercased. A zero CreatedAt or UpdatedAt is
// filled with the current UTC time.
//
// Error handling:
//   - unique violation on email → [ErrEmailAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.Email = strings.ToLower(user.Email)
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	if user.UpdatedAt.IsZero() {
		user.UpdatedAt = user.CreatedAt
	}

	query, args, err := buildInsertUserQuery(r.db.builder, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to create query")
		return models.User{}, err
	}

	err = r.db.do(ctx, func(ctx context.Context) error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&user.UserID)
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		if r.db.violation(err) == UniqueViolation {
			return models.User{}, ErrEmailAlreadyExists
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return user, nil
}

// UpdateUser overwrites name, email, password digest, remember digest and
// updated_at of the user identified by user.UserID.
func (r *userRepository) UpdateUser(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	user.Email = strings.ToLower(user.Email)
	if user.UpdatedAt.IsZero() {
		user.UpdatedAt = time.Now().UTC()
	}

	query, args, err := buildUpdateUserQuery(r.db.builder, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("failed to create query")
		return err
	}

	err = r.execAffectingOne(ctx, query, args, ErrUserNotFound)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Int64("user_id", user.UserID).Msg("error updating user")
		if r.db.violation(err) == UniqueViolation {
			return ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

// SetAdmin sets the admin flag of the user.
func (r *userRepository) SetAdmin(ctx context.Context, userID int64, admin bool) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSetAdminQuery(r.db.builder, userID, admin)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.SetAdmin").Msg("failed to create query")
		return err
	}

	if err = r.execAffectingOne(ctx, query, args, ErrUserNotFound); err != nil {
		log.Err(err).Str("func", "*userRepository.SetAdmin").Int64("user_id", userID).Msg("error setting admin flag")
		return err
	}
	return nil
}

func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByID", sq.Eq{"user_id": userID})
}

// FindUserByEmail matches the email case-insensitively.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByEmail", sq.Eq{"email": strings.ToLower(email)})
}

func (r *userRepository) FindUserByRememberDigest(ctx context.Context, digest string) (models.User, error) {
	if digest == "" {
		return models.User{}, ErrUserNotFound
	}
	return r.findUser(ctx, "*userRepository.FindUserByRememberDigest", sq.Eq{"remember_digest": digest})
}

func (r *userRepository) findUser(ctx context.Context, funcName string, where sq.Sqlizer) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserQuery(r.db.builder, where)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to create query")
		return models.User{}, err
	}

	var user models.User
	err = r.db.do(ctx, func(ctx context.Context) error {
		var scanErr error
		user, scanErr = scanUser(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrUserNotFound
	case err != nil:
		log.Err(err).Str("func", funcName).Msg("error finding user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// ListUsers returns a page of users ordered by UserID.
func (r *userRepository) ListUsers(ctx context.Context, page models.Page) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListUsersQuery(r.db.builder, page)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("failed to create query")
		return nil, err
	}

	return queryUsers(ctx, r.db, "*userRepository.ListUsers", query, args)
}

// DeleteUser removes the user. Microposts and relationships referencing the
// user are removed by ON DELETE CASCADE.
func (r *userRepository) DeleteUser(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteUserQuery(r.db.builder, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("failed to create query")
		return err
	}

	if err = r.execAffectingOne(ctx, query, args, ErrUserNotFound); err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Int64("user_id", userID).Msg("error deleting user")
		return err
	}
	return nil
}

func (r *userRepository) execAffectingOne(ctx context.Context, query string, args []any, notFound error) error {
	return execAffectingOne(ctx, r.db, query, args, notFound)
}

// execAffectingOne executes a DML statement and returns notFound when it
// affected no row. Driver errors are returned wrapped in
// [ErrExecutingStatement] with the original error kept in the chain.
func execAffectingOne(ctx context.Context, db *DB, query string, args []any, notFound error) error {
	var affected int64
	err := db.do(ctx, func(ctx context.Context) error {
		res, err := db.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return notFound
	}
	return nil
}

// queryUsers runs a SELECT over [userColumns] and scans every row.
func queryUsers(ctx context.Context, db *DB, funcName, query string, args []any) ([]models.User, error) {
	log := logger.FromContext(ctx)

	var users []models.User
	err := db.do(ctx, func(ctx context.Context) error {
		rows, err := db.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		users = make([]models.User, 0, 16)
		for rows.Next() {
			user, scanErr := scanUser(rows)
			if scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
			}
			users = append(users, user)
		}
		if rowsErr := rows.Err(); rowsErr != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error listing users")
		return nil, err
	}

	return users, nil
}

// queryInt64s runs a single-column SELECT and collects its values.
func queryInt64s(ctx context.Context, db *DB, funcName, query string, args []any) ([]int64, error) {
	log := logger.FromContext(ctx)

	var ids []int64
	err := db.do(ctx, func(ctx context.Context) error {
		rows, err := db.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		ids = make([]int64, 0, 16)
		for rows.Next() {
			var id int64
			if scanErr := rows.Scan(&id); scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
			}
			ids = append(ids, id)
		}
		if rowsErr := rows.Err(); rowsErr != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error querying ids")
		return nil, err
	}

	return ids, nil
}

// queryCount runs a SELECT COUNT(*) statement.
func queryCount(ctx context.Context, db *DB, funcName, query string, args []any) (int64, error) {
	var count int64
	err := db.do(ctx, func(ctx context.Context) error {
		return db.QueryRowContext(ctx, query, args...).Scan(&count)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("error counting rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return count, nil
}
