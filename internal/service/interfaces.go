// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-micropost/models"
)

// UserService manages accounts and their credentials.
type UserService interface {
	// CreateUser registers a new account and returns it with a fresh
	// remember token.
	CreateUser(ctx context.Context, registration models.UserRegistration) (models.User, error)
	// Authenticate returns the user owning the credentials.
	Authenticate(ctx context.Context, credentials models.Credentials) (models.User, error)
	// UpdateUser edits the profile of userID and issues a new remember token.
	UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error)
	GetUser(ctx context.Context, userID int64) (models.User, error)
	ListUsers(ctx context.Context, page models.Page) ([]models.User, error)
	// FindByRememberToken returns the user whose current remember token is
	// token.
	FindByRememberToken(ctx context.Context, token string) (models.User, error)
	// DeleteUser removes targetID on behalf of actorID, who must be an admin
	// other than targetID.
	DeleteUser(ctx context.Context, actorID, targetID int64) error
	// GrantAdmin marks userID as admin.
	GrantAdmin(ctx context.Context, userID int64) error
}

// RelationshipService manages directed follow edges.
type RelationshipService interface {
	Follow(ctx context.Context, followerID, followedID int64) error
	Unfollow(ctx context.Context, followerID, followedID int64) error
	IsFollowing(ctx context.Context, followerID, candidateID int64) (bool, error)
	FollowedUsers(ctx context.Context, userID int64, page models.Page) ([]models.User, error)
	FollowedUserIDs(ctx context.Context, userID int64) ([]int64, error)
	Followers(ctx context.Context, userID int64, page models.Page) ([]models.User, error)
	FollowerIDs(ctx context.Context, userID int64) ([]int64, error)
	Counts(ctx context.Context, userID int64) (models.FollowCounts, error)
}

// MicropostService manages microposts.
type MicropostService interface {
	CreateMicropost(ctx context.Context, userID int64, post models.NewMicropost) (models.Micropost, error)
	DeleteMicropost(ctx context.Context, userID, micropostID int64) error
	UserMicroposts(ctx context.Context, userID int64, page models.Page) ([]models.Micropost, error)
	CountMicroposts(ctx context.Context, userID int64) (int64, error)
}

// FeedService composes feeds.
type FeedService interface {
	// Feed returns the posts of userID and of every user userID follows,
	// newest first.
	Feed(ctx context.Context, userID int64, page models.Page) ([]models.Micropost, error)
}

// UserServiceWrapper defines middleware composition for UserService.
// Implementations wrap an existing UserService to add behavior such as
// validating.
type UserServiceWrapper interface {
	Wrap(UserService) UserService
}

// MicropostServiceWrapper defines middleware composition for
// MicropostService.
type MicropostServiceWrapper interface {
	Wrap(MicropostService) MicropostService
}

// TokenGenerator issues random opaque tokens.
type TokenGenerator interface {
	Generate() string
}
