// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-micropost/internal/config"
	"github.com/MKhiriev/go-micropost/internal/logger"
	"github.com/MKhiriev/go-micropost/internal/store"
	"github.com/MKhiriev/go-micropost/internal/validators"
	"github.com/MKhiriev/go-micropost/models"
)

// newSQLiteServices wires the real services over a migrated SQLite file.
func newSQLiteServices(t *testing.T) *Services {
	t.Helper()
	ctx := context.Background()

	storages, err := store.NewStorages(ctx, config.Storage{DB: config.DB{
		Driver:        config.DriverSQLite,
		DSN:           filepath.Join(t.TempDir(), "services.db"),
		QueryTimeout:  5 * time.Second,
		MaxOpenConns:  4,
		RetryAttempts: 3,
		RetryDelay:    5 * time.Millisecond,
	}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })
	require.NoError(t, storages.DB.Migrate(ctx))

	return NewServices(storages, config.App{RememberTokenKey: "k", BcryptCost: bcrypt.MinCost}, logger.Nop())
}

func register(t *testing.T, s *Services, name, email string) models.User {
	t.Helper()
	user, err := s.UserService.CreateUser(context.Background(), models.UserRegistration{
		Name: name, Email: email, Password: "foobar", PasswordConfirmation: "foobar",
	})
	require.NoError(t, err)
	return user
}

func TestServices_EmailUniquenessIgnoresCase(t *testing.T) {
	s := newSQLiteServices(t)
	ctx := context.Background()

	user := register(t, s, "Foo", "Foo@Bar.COM")
	assert.Equal(t, "foo@bar.com", user.Email)

	_, err := s.UserService.CreateUser(ctx, models.UserRegistration{
		Name: "Other", Email: "FOO@BAR.com", Password: "foobar", PasswordConfirmation: "foobar",
	})
	require.ErrorIs(t, err, validators.ErrValidation)

	var verrs validators.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.True(t, verrs.Has("email"))

	authed, err := s.UserService.Authenticate(ctx, models.Credentials{Email: "FOO@bar.com", Password: "foobar"})
	require.NoError(t, err)
	assert.Equal(t, user.UserID, authed.UserID)

	_, err = s.UserService.Authenticate(ctx, models.Credentials{Email: "foo@bar.com", Password: "wrong!"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	remembered, err := s.UserService.FindByRememberToken(ctx, user.RememberToken)
	require.NoError(t, err)
	assert.Equal(t, user.UserID, remembered.UserID)
}

func TestServices_UpdateRotatesRememberToken(t *testing.T) {
	s := newSQLiteServices(t)
	ctx := context.Background()

	user := register(t, s, "Foo", "foo@bar.com")
	updated, err := s.UserService.UpdateUser(ctx, user.UserID, models.UserUpdate{Name: "Foo Bar", Email: "foo@bar.com"})
	require.NoError(t, err)
	assert.NotEqual(t, user.RememberToken, updated.RememberToken)

	_, err = s.UserService.FindByRememberToken(ctx, user.RememberToken)
	assert.ErrorIs(t, err, ErrInvalidRememberToken)

	// password unchanged
	_, err = s.UserService.Authenticate(ctx, models.Credentials{Email: "foo@bar.com", Password: "foobar"})
	assert.NoError(t, err)
}

func TestServices_FollowUnfollowRoundTrip(t *testing.T) {
	s := newSQLiteServices(t)
	ctx := context.Background()
	rels := s.RelationshipService

	u1 := register(t, s, "One", "one@example.com")
	u2 := register(t, s, "Two", "two@example.com")

	require.NoError(t, rels.Follow(ctx, u1.UserID, u2.UserID))

	ok, err := rels.IsFollowing(ctx, u1.UserID, u2.UserID)
	require.NoError(t, err)
	assert.True(t, ok)

	followers, err := rels.FollowerIDs(ctx, u2.UserID)
	require.NoError(t, err)
	assert.Contains(t, followers, u1.UserID)

	followed, err := rels.FollowedUserIDs(ctx, u1.UserID)
	require.NoError(t, err)
	assert.Contains(t, followed, u2.UserID)

	assert.ErrorIs(t, rels.Follow(ctx, u1.UserID, u2.UserID), ErrAlreadyFollowing)
	assert.ErrorIs(t, rels.Follow(ctx, u1.UserID, u1.UserID), ErrSelfFollow)
	assert.ErrorIs(t, rels.Follow(ctx, u1.UserID, 4242), ErrUserNotFound)

	require.NoError(t, rels.Unfollow(ctx, u1.UserID, u2.UserID))

	ok, err = rels.IsFollowing(ctx, u1.UserID, u2.UserID)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.ErrorIs(t, rels.Unfollow(ctx, u1.UserID, u2.UserID), ErrNotFollowing)
}

func TestServices_FeedHelloWorld(t *testing.T) {
	s := newSQLiteServices(t)
	ctx := context.Background()

	u1 := register(t, s, "One", "one@example.com")
	u2 := register(t, s, "Two", "two@example.com")
	require.NoError(t, s.RelationshipService.Follow(ctx, u1.UserID, u2.UserID))

	_, err := s.MicropostService.CreateMicropost(ctx, u2.UserID, models.NewMicropost{Content: "Hello"})
	require.NoError(t, err)
	// keep the creation instants distinct on coarse clocks
	time.Sleep(2 * time.Millisecond)
	_, err = s.MicropostService.CreateMicropost(ctx, u1.UserID, models.NewMicropost{Content: "World"})
	require.NoError(t, err)

	feed, err := s.FeedService.Feed(ctx, u1.UserID, models.Page{})
	require.NoError(t, err)

	got := make([]string, 0, len(feed))
	for _, p := range feed {
		got = append(got, p.Content)
	}
	assert.Equal(t, []string{"World", "Hello"}, got)
}

func TestServices_AdminDeleteCascades(t *testing.T) {
	s := newSQLiteServices(t)
	ctx := context.Background()

	admin := register(t, s, "Admin", "admin@example.com")
	u := register(t, s, "Doomed", "doomed@example.com")
	other := register(t, s, "Other", "other@example.com")

	for _, content := range []string{"first", "second"} {
		_, err := s.MicropostService.CreateMicropost(ctx, u.UserID, models.NewMicropost{Content: content})
		require.NoError(t, err)
	}
	require.NoError(t, s.RelationshipService.Follow(ctx, u.UserID, other.UserID))
	require.NoError(t, s.RelationshipService.Follow(ctx, other.UserID, u.UserID))

	assert.ErrorIs(t, s.UserService.DeleteUser(ctx, admin.UserID, u.UserID), ErrForbidden)

	require.NoError(t, s.UserService.GrantAdmin(ctx, admin.UserID))
	assert.ErrorIs(t, s.UserService.DeleteUser(ctx, admin.UserID, admin.UserID), ErrCannotDeleteSelf)
	require.NoError(t, s.UserService.DeleteUser(ctx, admin.UserID, u.UserID))

	n, err := s.MicropostService.CountMicroposts(ctx, u.UserID)
	require.NoError(t, err)
	assert.Zero(t, n)

	counts, err := s.RelationshipService.Counts(ctx, other.UserID)
	require.NoError(t, err)
	assert.Equal(t, models.FollowCounts{}, counts)

	_, err = s.UserService.GetUser(ctx, u.UserID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
