// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-micropost/models"
)

var (
	postgresBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	sqliteBuilder   = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

func Test_buildFeedQuery(t *testing.T) {
	query, args, err := buildFeedQuery(postgresBuilder, 7, models.Page{})
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT micropost_id, user_id, content, created_at FROM microposts "+
			"WHERE (user_id IN (SELECT followed_id FROM relationships WHERE follower_id = $1) OR user_id = $2) "+
			"ORDER BY created_at DESC, micropost_id DESC",
		query)
	assert.Equal(t, []any{int64(7), int64(7)}, args)
}

func Test_buildFeedQuery_Paginated(t *testing.T) {
	query, _, err := buildFeedQuery(sqliteBuilder, 7, models.Page{Limit: 30, Offset: 60})
	require.NoError(t, err)

	assert.Contains(t, query, "follower_id = ?")
	assert.True(t, strings.HasSuffix(query, "ORDER BY created_at DESC, micropost_id DESC LIMIT 30 OFFSET 60"), query)
}

func Test_paginate(t *testing.T) {
	tests := []struct {
		name string
		page models.Page
		want string
	}{
		{name: "zero page means no limit", page: models.Page{}, want: "SELECT x FROM t"},
		{name: "limit only", page: models.Page{Limit: 5}, want: "SELECT x FROM t LIMIT 5"},
		{name: "limit and offset", page: models.Page{Limit: 5, Offset: 10}, want: "SELECT x FROM t LIMIT 5 OFFSET 10"},
		{name: "offset without limit is ignored", page: models.Page{Offset: 10}, want: "SELECT x FROM t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, _, err := paginate(sqliteBuilder.Select("x").From("t"), tt.page).ToSql()
			require.NoError(t, err)
			assert.Equal(t, tt.want, query)
		})
	}
}

func Test_buildInsertUserQuery(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	user := models.User{Name: "Ann", Email: "ann@example.com", PasswordDigest: "pd", RememberDigest: "rd", CreatedAt: now, UpdatedAt: now}

	query, args, err := buildInsertUserQuery(postgresBuilder, user)
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO users (name,email,password_digest,remember_digest,admin,created_at,updated_at) "+
			"VALUES ($1,$2,$3,$4,$5,$6,$7) RETURNING user_id",
		query)
	assert.Equal(t, []any{"Ann", "ann@example.com", "pd", "rd", false, now, now}, args)
}

func Test_buildUpdateUserQuery_DoesNotTouchAdmin(t *testing.T) {
	query, args, err := buildUpdateUserQuery(postgresBuilder, models.User{UserID: 3, Admin: true})
	require.NoError(t, err)

	assert.NotContains(t, query, "admin")
	assert.Contains(t, query, "WHERE user_id = $6")
	assert.Len(t, args, 6)
}

func Test_buildRelatedUsersQuery(t *testing.T) {
	query, args, err := buildRelatedUsersQuery(postgresBuilder, followersOfSubquery, 4, models.Page{Limit: 2})
	require.NoError(t, err)

	assert.Contains(t, query, "FROM users WHERE user_id IN (SELECT follower_id FROM relationships WHERE followed_id = $1)")
	assert.Contains(t, query, "ORDER BY user_id LIMIT 2")
	assert.Equal(t, []any{int64(4)}, args)
}

func Test_buildDeleteQueries_ScopeByBothKeys(t *testing.T) {
	query, args, err := buildDeleteRelationshipQuery(postgresBuilder, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM relationships WHERE followed_id = $1 AND follower_id = $2", query)
	assert.Equal(t, []any{int64(2), int64(1)}, args)

	query, args, err = buildDeleteMicropostQuery(postgresBuilder, 1, 9)
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM microposts WHERE micropost_id = $1 AND user_id = $2", query)
	assert.Equal(t, []any{int64(9), int64(1)}, args)
}

func Test_sqliteDSN(t *testing.T) {
	assert.Equal(t, "micro.db?_foreign_keys=on", sqliteDSN("micro.db"))
	assert.Equal(t, "file:micro.db?cache=shared&_foreign_keys=on", sqliteDSN("file:micro.db?cache=shared"))
	assert.Equal(t, "micro.db?_fk=1", sqliteDSN("micro.db?_fk=1"))
}
