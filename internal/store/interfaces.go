// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-micropost/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts in the "users" table.
type UserRepository interface {
	// CreateUser inserts user and returns it with the assigned UserID.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// UpdateUser overwrites the mutable profile columns of user.
	UpdateUser(ctx context.Context, user models.User) error
	// SetAdmin sets the admin flag of the user.
	SetAdmin(ctx context.Context, userID int64, admin bool) error
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByRememberDigest(ctx context.Context, digest string) (models.User, error)
	// ListUsers returns users ordered by UserID.
	ListUsers(ctx context.Context, page models.Page) ([]models.User, error)
	// DeleteUser removes the user; microposts and relationships of the user
	// are removed by the database in the same statement.
	DeleteUser(ctx context.Context, userID int64) error
}

// RelationshipRepository persists directed follow edges in the
// "relationships" table.
type RelationshipRepository interface {
	CreateRelationship(ctx context.Context, followerID, followedID int64) (models.Relationship, error)
	DeleteRelationship(ctx context.Context, followerID, followedID int64) error
	RelationshipExists(ctx context.Context, followerID, followedID int64) (bool, error)
	// FollowedUsers returns the targets of userID's outgoing edges.
	FollowedUsers(ctx context.Context, userID int64, page models.Page) ([]models.User, error)
	// Followers returns the sources of userID's incoming edges.
	Followers(ctx context.Context, userID int64, page models.Page) ([]models.User, error)
	FollowedUserIDs(ctx context.Context, userID int64) ([]int64, error)
	FollowerIDs(ctx context.Context, userID int64) ([]int64, error)
	CountFollowedUsers(ctx context.Context, userID int64) (int64, error)
	CountFollowers(ctx context.Context, userID int64) (int64, error)
}

// MicropostRepository persists microposts in the "microposts" table and
// answers the feed query.
type MicropostRepository interface {
	CreateMicropost(ctx context.Context, post models.Micropost) (models.Micropost, error)
	// DeleteMicropost removes the micropost only if userID authored it.
	DeleteMicropost(ctx context.Context, userID, micropostID int64) error
	// UserMicroposts returns the posts of userID, newest first.
	UserMicroposts(ctx context.Context, userID int64, page models.Page) ([]models.Micropost, error)
	CountMicroposts(ctx context.Context, userID int64) (int64, error)
	// Feed returns the posts of userID and of every user userID follows,
	// newest first.
	Feed(ctx context.Context, userID int64, page models.Page) ([]models.Micropost, error)
}
