// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-micropost/internal/logger"
	"github.com/MKhiriev/go-micropost/internal/store"
	"github.com/MKhiriev/go-micropost/internal/validators"
	"github.com/MKhiriev/go-micropost/models"
)

// relationshipService is the concrete implementation of RelationshipService.
// Uniqueness and the ban on self edges are enforced by the storage layer;
// this service translates those violations into its own errors.
type relationshipService struct {
	relationshipRepository store.RelationshipRepository
	logger                 *logger.Logger
}

func NewRelationshipService(relationshipRepository store.RelationshipRepository, logger *logger.Logger) RelationshipService {
	return &relationshipService{
		relationshipRepository: relationshipRepository,
		logger:                 logger,
	}
}

// Follow creates the edge follower → followed.
//
// Returns:
//   - ErrSelfFollow when both ids are equal.
//   - ErrAlreadyFollowing when the edge exists.
//   - ErrUserNotFound when either user does not exist.
//
// ErrSelfFollow and ErrAlreadyFollowing also match validators.ErrValidation.
func (s *relationshipService) Follow(ctx context.Context, followerID, followedID int64) error {
	log := logger.FromContext(ctx)

	if followerID == followedID {
		return selfFollow()
	}

	_, err := s.relationshipRepository.CreateRelationship(ctx, followerID, followedID)
	if err != nil {
		log.Err(err).
			Str("func", "*relationshipService.Follow").
			Int64("follower_id", followerID).
			Int64("followed_id", followedID).
			Msg("follow ended with error")

		switch {
		case errors.Is(err, store.ErrRelationshipAlreadyExists):
			return fmt.Errorf("%w: %w", ErrAlreadyFollowing, validators.NewFieldError("followed_id", "is already followed"))
		case errors.Is(err, store.ErrSelfRelationship):
			return selfFollow()
		case errors.Is(err, store.ErrUserNotFound):
			return ErrUserNotFound
		}
		return fmt.Errorf("follow ended with error: %w", err)
	}

	log.Debug().Int64("follower_id", followerID).Int64("followed_id", followedID).Msg("followed")
	return nil
}

// Unfollow removes the edge follower → followed, or returns ErrNotFollowing
// if there is none.
func (s *relationshipService) Unfollow(ctx context.Context, followerID, followedID int64) error {
	err := s.relationshipRepository.DeleteRelationship(ctx, followerID, followedID)
	if errors.Is(err, store.ErrRelationshipNotFound) {
		return ErrNotFollowing
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*relationshipService.Unfollow").
			Int64("follower_id", followerID).
			Int64("followed_id", followedID).
			Msg("unfollow ended with error")
		return fmt.Errorf("unfollow ended with error: %w", err)
	}
	return nil
}

func (s *relationshipService) IsFollowing(ctx context.Context, followerID, candidateID int64) (bool, error) {
	ok, err := s.relationshipRepository.RelationshipExists(ctx, followerID, candidateID)
	if err != nil {
		return false, fmt.Errorf("relationship lookup failed: %w", err)
	}
	return ok, nil
}

func (s *relationshipService) FollowedUsers(ctx context.Context, userID int64, page models.Page) ([]models.User, error) {
	users, err := s.relationshipRepository.FollowedUsers(ctx, userID, page)
	if err != nil {
		return nil, fmt.Errorf("listing followed users failed: %w", err)
	}
	return users, nil
}

func (s *relationshipService) FollowedUserIDs(ctx context.Context, userID int64) ([]int64, error) {
	ids, err := s.relationshipRepository.FollowedUserIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing followed user ids failed: %w", err)
	}
	return ids, nil
}

func (s *relationshipService) Followers(ctx context.Context, userID int64, page models.Page) ([]models.User, error) {
	users, err := s.relationshipRepository.Followers(ctx, userID, page)
	if err != nil {
		return nil, fmt.Errorf("listing followers failed: %w", err)
	}
	return users, nil
}

func (s *relationshipService) FollowerIDs(ctx context.Context, userID int64) ([]int64, error) {
	ids, err := s.relationshipRepository.FollowerIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing follower ids failed: %w", err)
	}
	return ids, nil
}

// Counts returns how many users userID follows and is followed by.
func (s *relationshipService) Counts(ctx context.Context, userID int64) (models.FollowCounts, error) {
	following, err := s.relationshipRepository.CountFollowedUsers(ctx, userID)
	if err != nil {
		return models.FollowCounts{}, fmt.Errorf("counting followed users failed: %w", err)
	}
	followers, err := s.relationshipRepository.CountFollowers(ctx, userID)
	if err != nil {
		return models.FollowCounts{}, fmt.Errorf("counting followers failed: %w", err)
	}
	return models.FollowCounts{Following: following, Followers: followers}, nil
}

func selfFollow() error {
	return fmt.Errorf("%w: %w", ErrSelfFollow, validators.NewFieldError("followed_id", "can't be the follower"))
}
