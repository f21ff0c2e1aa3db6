// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-micropost/internal/logger"
	"github.com/MKhiriev/go-micropost/models"
)

// relationshipRepository is the database/sql implementation of
// [RelationshipRepository] over the "relationships" table.
type relationshipRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewRelationshipRepository constructs a [RelationshipRepository].
func NewRelationshipRepository(db *DB, logger *logger.Logger) RelationshipRepository {
	logger.Debug().Msg("creating relationship repository")
	return &relationshipRepository{
		db:     db,
		logger: logger,
	}
}

// CreateRelationship inserts the edge follower → followed. Uniqueness and
// the ban on self edges are enforced by table constraints, so concurrent
// duplicate inserts resolve to exactly one row.
//
// Error handling:
//   - unique violation → [ErrRelationshipAlreadyExists].
//   - check violation → [ErrSelfRelationship].
//   - foreign key violation → [ErrUserNotFound].
func (r *relationshipRepository) CreateRelationship(ctx context.Context, followerID, followedID int64) (models.Relationship, error) {
	log := logger.FromContext(ctx)

	rel := models.Relationship{
		FollowerID: followerID,
		FollowedID: followedID,
		CreatedAt:  time.Now().UTC(),
	}

	query, args, err := buildInsertRelationshipQuery(r.db.builder, rel)
	if err != nil {
		log.Err(err).Str("func", "*relationshipRepository.CreateRelationship").Msg("failed to create query")
		return models.Relationship{}, err
	}

	err = r.db.do(ctx, func(ctx context.Context) error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&rel.RelationshipID)
	})
	if err != nil {
		log.Err(err).
			Str("func", "*relationshipRepository.CreateRelationship").
			Int64("follower_id", followerID).
			Int64("followed_id", followedID).
			Msg("error inserting relationship")

		switch r.db.violation(err) {
		case UniqueViolation:
			return models.Relationship{}, ErrRelationshipAlreadyExists
		case CheckViolation:
			return models.Relationship{}, ErrSelfRelationship
		case ForeignKeyViolation:
			return models.Relationship{}, fmt.Errorf("%w: %w", ErrUserNotFound, ErrForeignKeyViolation)
		}
		return models.Relationship{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return rel, nil
}

// DeleteRelationship removes the edge follower → followed. It returns
// [ErrRelationshipNotFound] when no such edge exists.
func (r *relationshipRepository) DeleteRelationship(ctx context.Context, followerID, followedID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteRelationshipQuery(r.db.builder, followerID, followedID)
	if err != nil {
		log.Err(err).Str("func", "*relationshipRepository.DeleteRelationship").Msg("failed to create query")
		return err
	}

	if err = execAffectingOne(ctx, r.db, query, args, ErrRelationshipNotFound); err != nil {
		log.Err(err).
			Str("func", "*relationshipRepository.DeleteRelationship").
			Int64("follower_id", followerID).
			Int64("followed_id", followedID).
			Msg("error deleting relationship")
		return err
	}
	return nil
}

func (r *relationshipRepository) RelationshipExists(ctx context.Context, followerID, followedID int64) (bool, error) {
	query, args, err := buildCountRelationshipsQuery(r.db.builder, sq.Eq{"follower_id": followerID, "followed_id": followedID})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*relationshipRepository.RelationshipExists").Msg("failed to create query")
		return false, err
	}

	count, err := queryCount(ctx, r.db, "*relationshipRepository.RelationshipExists", query, args)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *relationshipRepository) FollowedUsers(ctx context.Context, userID int64, page models.Page) ([]models.User, error) {
	query, args, err := buildRelatedUsersQuery(r.db.builder, followedBySubquery, userID, page)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*relationshipRepository.FollowedUsers").Msg("failed to create query")
		return nil, err
	}
	return queryUsers(ctx, r.db, "*relationshipRepository.FollowedUsers", query, args)
}

func (r *relationshipRepository) Followers(ctx context.Context, userID int64, page models.Page) ([]models.User, error) {
	query, args, err := buildRelatedUsersQuery(r.db.builder, followersOfSubquery, userID, page)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*relationshipRepository.Followers").Msg("failed to create query")
		return nil, err
	}
	return queryUsers(ctx, r.db, "*relationshipRepository.Followers", query, args)
}

func (r *relationshipRepository) FollowedUserIDs(ctx context.Context, userID int64) ([]int64, error) {
	query, args, err := buildRelatedIDsQuery(r.db.builder, "followed_id", sq.Eq{"follower_id": userID})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*relationshipRepository.FollowedUserIDs").Msg("failed to create query")
		return nil, err
	}
	return queryInt64s(ctx, r.db, "*relationshipRepository.FollowedUserIDs", query, args)
}

func (r *relationshipRepository) FollowerIDs(ctx context.Context, userID int64) ([]int64, error) {
	query, args, err := buildRelatedIDsQuery(r.db.builder, "follower_id", sq.Eq{"followed_id": userID})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*relationshipRepository.FollowerIDs").Msg("failed to create query")
		return nil, err
	}
	return queryInt64s(ctx, r.db, "*relationshipRepository.FollowerIDs", query, args)
}

func (r *relationshipRepository) CountFollowedUsers(ctx context.Context, userID int64) (int64, error) {
	return r.count(ctx, "*relationshipRepository.CountFollowedUsers", sq.Eq{"follower_id": userID})
}

func (r *relationshipRepository) CountFollowers(ctx context.Context, userID int64) (int64, error) {
	return r.count(ctx, "*relationshipRepository.CountFollowers", sq.Eq{"followed_id": userID})
}

func (r *relationshipRepository) count(ctx context.Context, funcName string, where sq.Eq) (int64, error) {
	query, args, err := buildCountRelationshipsQuery(r.db.builder, where)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("failed to create query")
		return 0, err
	}
	return queryCount(ctx, r.db, funcName, query, args)
}
