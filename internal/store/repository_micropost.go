// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-micropost/internal/logger"
	"github.com/MKhiriev/go-micropost/models"
)

// micropostRepository is the database/sql implementation of
// [MicropostRepository] over the "microposts" table.
type micropostRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewMicropostRepository constructs a [MicropostRepository].
func NewMicropostRepository(db *DB, logger *logger.Logger) MicropostRepository {
	logger.Debug().Msg("creating micropost repository")
	return &micropostRepository{
		db:     db,
		logger: logger,
	}
}

// CreateMicropost inserts post and returns it with the assigned
// MicropostID. A zero CreatedAt is filled with the current UTC time.
// An unknown author yields [ErrUserNotFound].
func (r *micropostRepository) CreateMicropost(ctx context.Context, post models.Micropost) (models.Micropost, error) {
	log := logger.FromContext(ctx)

	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now().UTC()
	}

	query, args, err := buildInsertMicropostQuery(r.db.builder, post)
	if err != nil {
		log.Err(err).Str("func", "*micropostRepository.CreateMicropost").Msg("failed to create query")
		return models.Micropost{}, err
	}

	err = r.db.do(ctx, func(ctx context.Context) error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&post.MicropostID)
	})
	if err != nil {
		log.Err(err).Str("func", "*micropostRepository.CreateMicropost").Int64("user_id", post.UserID).Msg("error inserting micropost")
		if r.db.violation(err) == ForeignKeyViolation {
			return models.Micropost{}, fmt.Errorf("%w: %w", ErrUserNotFound, ErrForeignKeyViolation)
		}
		return models.Micropost{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return post, nil
}

// DeleteMicropost removes the micropost if it was authored by userID,
// otherwise it returns [ErrMicropostNotFound].
func (r *micropostRepository) DeleteMicropost(ctx context.Context, userID, micropostID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteMicropostQuery(r.db.builder, userID, micropostID)
	if err != nil {
		log.Err(err).Str("func", "*micropostRepository.DeleteMicropost").Msg("failed to create query")
		return err
	}

	if err = execAffectingOne(ctx, r.db, query, args, ErrMicropostNotFound); err != nil {
		log.Err(err).
			Str("func", "*micropostRepository.DeleteMicropost").
			Int64("user_id", userID).
			Int64("micropost_id", micropostID).
			Msg("error deleting micropost")
		return err
	}
	return nil
}

func (r *micropostRepository) UserMicroposts(ctx context.Context, userID int64, page models.Page) ([]models.Micropost, error) {
	query, args, err := buildUserMicropostsQuery(r.db.builder, userID, page)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*micropostRepository.UserMicroposts").Msg("failed to create query")
		return nil, err
	}
	return r.queryMicroposts(ctx, "*micropostRepository.UserMicroposts", query, args)
}

func (r *micropostRepository) CountMicroposts(ctx context.Context, userID int64) (int64, error) {
	query, args, err := buildCountMicropostsQuery(r.db.builder, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*micropostRepository.CountMicroposts").Msg("failed to create query")
		return 0, err
	}
	return queryCount(ctx, r.db, "*micropostRepository.CountMicroposts", query, args)
}

// Feed returns the posts of userID and of the users userID follows, newest
// first, from a single query. Edges created or removed later are reflected
// on the next call.
func (r *micropostRepository) Feed(ctx context.Context, userID int64, page models.Page) ([]models.Micropost, error) {
	query, args, err := buildFeedQuery(r.db.builder, userID, page)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*micropostRepository.Feed").Msg("failed to create query")
		return nil, err
	}
	return r.queryMicroposts(ctx, "*micropostRepository.Feed", query, args)
}

func (r *micropostRepository) queryMicroposts(ctx context.Context, funcName, query string, args []any) ([]models.Micropost, error) {
	log := logger.FromContext(ctx)

	var posts []models.Micropost
	err := r.db.do(ctx, func(ctx context.Context) error {
		rows, err := r.db.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		posts = make([]models.Micropost, 0, 32)
		for rows.Next() {
			var post models.Micropost
			if scanErr := rows.Scan(&post.MicropostID, &post.UserID, &post.Content, &post.CreatedAt); scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
			}
			posts = append(posts, post)
		}
		if rowsErr := rows.Err(); rowsErr != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error querying microposts")
		return nil, err
	}

	return posts, nil
}
