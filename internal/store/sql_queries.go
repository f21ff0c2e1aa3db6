// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-micropost/models"
)

const (
	usersTable         = "users"
	micropostsTable    = "microposts"
	relationshipsTable = "relationships"

	// followedBySubquery selects the ids of the users a follower follows.
	followedBySubquery = "SELECT followed_id FROM relationships WHERE follower_id = ?"
	// followersOfSubquery selects the ids of the users following a user.
	followersOfSubquery = "SELECT follower_id FROM relationships WHERE followed_id = ?"
)

var (
	userColumns = []string{
		"user_id",
		"name",
		"email",
		"password_digest",
		"remember_digest",
		"admin",
		"created_at",
		"updated_at",
	}

	micropostColumns = []string{
		"micropost_id",
		"user_id",
		"content",
		"created_at",
	}

	// newestFirst is the ordering of every micropost listing.
	newestFirst = []string{"created_at DESC", "micropost_id DESC"}
)

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	query, args, err := b.Insert(usersTable).
		Columns("name", "email", "password_digest", "remember_digest", "admin", "created_at", "updated_at").
		Values(user.Name, user.Email, user.PasswordDigest, user.RememberDigest, user.Admin, user.CreatedAt, user.UpdatedAt).
		Suffix("RETURNING user_id").
		ToSql()
	return wrapBuild(query, args, err)
}

func buildUpdateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	query, args, err := b.Update(usersTable).
		Set("name", user.Name).
		Set("email", user.Email).
		Set("password_digest", user.PasswordDigest).
		Set("remember_digest", user.RememberDigest).
		Set("updated_at", user.UpdatedAt).
		Where(sq.Eq{"user_id": user.UserID}).
		ToSql()
	return wrapBuild(query, args, err)
}

func buildSetAdminQuery(b sq.StatementBuilderType, userID int64, admin bool) (string, []any, error) {
	query, args, err := b.Update(usersTable).
		Set("admin", admin).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	return wrapBuild(query, args, err)
}

func buildSelectUserQuery(b sq.StatementBuilderType, where sq.Sqlizer) (string, []any, error) {
	query, args, err := b.Select(userColumns...).
		From(usersTable).
		Where(where).
		Limit(1).
		ToSql()
	return wrapBuild(query, args, err)
}

func buildListUsersQuery(b sq.StatementBuilderType, page models.Page) (string, []any, error) {
	query, args, err := paginate(b.Select(userColumns...).From(usersTable).OrderBy("user_id"), page).ToSql()
	return wrapBuild(query, args, err)
}

func buildDeleteUserQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	query, args, err := b.Delete(usersTable).Where(sq.Eq{"user_id": userID}).ToSql()
	return wrapBuild(query, args, err)
}

func buildInsertRelationshipQuery(b sq.StatementBuilderType, rel models.Relationship) (string, []any, error) {
	query, args, err := b.Insert(relationshipsTable).
		Columns("follower_id", "followed_id", "created_at").
		Values(rel.FollowerID, rel.FollowedID, rel.CreatedAt).
		Suffix("RETURNING relationship_id").
		ToSql()
	return wrapBuild(query, args, err)
}

func buildDeleteRelationshipQuery(b sq.StatementBuilderType, followerID, followedID int64) (string, []any, error) {
	query, args, err := b.Delete(relationshipsTable).
		Where(sq.Eq{"follower_id": followerID, "followed_id": followedID}).
		ToSql()
	return wrapBuild(query, args, err)
}

func buildCountRelationshipsQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	query, args, err := b.Select("COUNT(*)").From(relationshipsTable).Where(where).ToSql()
	return wrapBuild(query, args, err)
}

// buildRelatedUsersQuery selects the users whose id is returned by subquery
// for userID, ordered by id.
func buildRelatedUsersQuery(b sq.StatementBuilderType, subquery string, userID int64, page models.Page) (string, []any, error) {
	query, args, err := paginate(b.Select(userColumns...).
		From(usersTable).
		Where(sq.Expr("user_id IN ("+subquery+")", userID)).
		OrderBy("user_id"), page).
		ToSql()
	return wrapBuild(query, args, err)
}

func buildRelatedIDsQuery(b sq.StatementBuilderType, column string, where sq.Eq) (string, []any, error) {
	query, args, err := b.Select(column).From(relationshipsTable).Where(where).OrderBy(column).ToSql()
	return wrapBuild(query, args, err)
}

func buildInsertMicropostQuery(b sq.StatementBuilderType, post models.Micropost) (string, []any, error) {
	query, args, err := b.Insert(micropostsTable).
		Columns("user_id", "content", "created_at").
		Values(post.UserID, post.Content, post.CreatedAt).
		Suffix("RETURNING micropost_id").
		ToSql()
	return wrapBuild(query, args, err)
}

func buildDeleteMicropostQuery(b sq.StatementBuilderType, userID, micropostID int64) (string, []any, error) {
	query, args, err := b.Delete(micropostsTable).
		Where(sq.Eq{"micropost_id": micropostID, "user_id": userID}).
		ToSql()
	return wrapBuild(query, args, err)
}

func buildUserMicropostsQuery(b sq.StatementBuilderType, userID int64, page models.Page) (string, []any, error) {
	query, args, err := paginate(b.Select(micropostColumns...).
		From(micropostsTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy(newestFirst...), page).
		ToSql()
	return wrapBuild(query, args, err)
}

func buildCountMicropostsQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	query, args, err := b.Select("COUNT(*)").From(micropostsTable).Where(sq.Eq{"user_id": userID}).ToSql()
	return wrapBuild(query, args, err)
}

// buildFeedQuery selects the posts authored by userID or by anyone userID
// follows, in a single statement.
func buildFeedQuery(b sq.StatementBuilderType, userID int64, page models.Page) (string, []any, error) {
	query, args, err := paginate(b.Select(micropostColumns...).
		From(micropostsTable).
		Where(sq.Or{
			sq.Expr("user_id IN ("+followedBySubquery+")", userID),
			sq.Eq{"user_id": userID},
		}).
		OrderBy(newestFirst...), page).
		ToSql()
	return wrapBuild(query, args, err)
}

// paginate applies page to q. A zero Limit means no limit.
func paginate(q sq.SelectBuilder, page models.Page) sq.SelectBuilder {
	if page.Limit == 0 {
		return q
	}
	q = q.Limit(page.Limit)
	if page.Offset > 0 {
		q = q.Offset(page.Offset)
	}
	return q
}

func wrapBuild(query string, args []any, err error) (string, []any, error) {
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
