// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-micropost/internal/logger"
)

func newTestRelationshipRepo(t *testing.T) (*relationshipRepository, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	return &relationshipRepository{db: db, logger: logger.Nop()}, mock
}

func TestCreateRelationship_ViolationMapping(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantErr error
	}{
		{name: "duplicate edge", code: pgerrcode.UniqueViolation, wantErr: ErrRelationshipAlreadyExists},
		{name: "self edge", code: pgerrcode.CheckViolation, wantErr: ErrSelfRelationship},
		{name: "unknown user", code: pgerrcode.ForeignKeyViolation, wantErr: ErrUserNotFound},
		{name: "other failure", code: pgerrcode.SyntaxError, wantErr: ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestRelationshipRepo(t)
			mock.ExpectQuery("INSERT INTO relationships").
				WithArgs(int64(1), int64(2), sqlmock.AnyArg()).
				WillReturnError(pgError(tt.code))

			_, err := repo.CreateRelationship(context.Background(), 1, 2)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateRelationship_ForeignKeyKeepsViolationInChain(t *testing.T) {
	repo, mock := newTestRelationshipRepo(t)
	mock.ExpectQuery("INSERT INTO relationships").
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.CreateRelationship(context.Background(), 1, 99)
	assert.ErrorIs(t, err, ErrForeignKeyViolation)
}

func TestCreateRelationship_Success(t *testing.T) {
	repo, mock := newTestRelationshipRepo(t)
	mock.ExpectQuery("INSERT INTO relationships").
		WithArgs(int64(1), int64(2), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"relationship_id"}).AddRow(11))

	rel, err := repo.CreateRelationship(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(11), rel.RelationshipID)
	assert.Equal(t, int64(1), rel.FollowerID)
	assert.Equal(t, int64(2), rel.FollowedID)
	assert.False(t, rel.CreatedAt.IsZero())
}

func TestDeleteRelationship_Missing(t *testing.T) {
	repo, mock := newTestRelationshipRepo(t)
	mock.ExpectExec("DELETE FROM relationships").
		WithArgs(int64(2), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteRelationship(context.Background(), 1, 2)
	assert.ErrorIs(t, err, ErrRelationshipNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRelationshipExists(t *testing.T) {
	repo, mock := newTestRelationshipRepo(t)
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM relationships").
		WithArgs(int64(2), int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM relationships").
		WithArgs(int64(1), int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	ok, err := repo.RelationshipExists(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.RelationshipExists(context.Background(), 2, 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFollowedUserIDs(t *testing.T) {
	repo, mock := newTestRelationshipRepo(t)
	mock.ExpectQuery("SELECT followed_id FROM relationships WHERE follower_id = \\$1 ORDER BY followed_id").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"followed_id"}).AddRow(2).AddRow(5))

	ids, err := repo.FollowedUserIDs(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 5}, ids)
}
