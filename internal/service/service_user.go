// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-micropost/internal/config"
	"github.com/MKhiriev/go-micropost/internal/logger"
	"github.com/MKhiriev/go-micropost/internal/store"
	"github.com/MKhiriev/go-micropost/internal/utils"
	"github.com/MKhiriev/go-micropost/internal/validators"
	"github.com/MKhiriev/go-micropost/models"
)

// userService is the concrete implementation of UserService.
// Passwords are stored as bcrypt digests; remember tokens are random UUIDs
// of which only an HMAC-SHA256 digest is persisted.
type userService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// rememberHasher digests remember tokens with the configured key.
	rememberHasher *utils.Hasher

	// tokens generates remember tokens.
	tokens TokenGenerator

	// bcryptCost is the work factor of password digests.
	bcryptCost int

	// now is the clock used for created_at and updated_at.
	now func() time.Time

	logger *logger.Logger
}

// NewUserService constructs a UserService over the given repository with
// the credential parameters from cfg. Input is expected to be validated
// beforehand, see [NewUserValidationService].
func NewUserService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		rememberHasher: utils.NewHasher(cfg.RememberTokenKey),
		tokens:         utils.NewUUIDGenerator(),
		bcryptCost:     cfg.BcryptCost,
		now:            utcNow,
		logger:         logger,
	}
}

func utcNow() time.Time {
	return time.Now().UTC()
}

// CreateUser hashes the password, lowercases the email and persists the
// account together with the digest of a new remember token. The raw token is
// returned on the RememberToken field.
//
// A taken email yields a [validators.ValidationErrors] on "email".
func (s *userService) CreateUser(ctx context.Context, registration models.UserRegistration) (models.User, error) {
	log := logger.FromContext(ctx)

	passwordDigest, err := s.digestPassword(registration.Password)
	if err != nil {
		log.Err(err).Str("func", "*userService.CreateUser").Msg("error hashing password")
		return models.User{}, err
	}

	token := s.tokens.Generate()
	now := s.now()
	user := models.User{
		Name:           strings.TrimSpace(registration.Name),
		Email:          normalizeEmail(registration.Email),
		PasswordDigest: passwordDigest,
		RememberDigest: s.rememberHasher.HashString(token),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "*userService.CreateUser").Str("email", user.Email).Msg("user creation ended with error")
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.User{}, emailTaken()
		}
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	created.RememberToken = token
	return created, nil
}

// Authenticate looks the user up by lowercased email and compares the
// password against the stored bcrypt digest.
func (s *userService) Authenticate(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := s.userRepository.FindUserByEmail(ctx, normalizeEmail(credentials.Email))
	if errors.Is(err, store.ErrUserNotFound) {
		log.Debug().Str("func", "*userService.Authenticate").Msg("unknown email")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*userService.Authenticate").Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordDigest), []byte(credentials.Password))
	if err != nil {
		log.Debug().Str("func", "*userService.Authenticate").Int64("user_id", user.UserID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}

// UpdateUser edits name and email, and the password when update carries a
// new one. Every update issues a new remember token.
func (s *userService) UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return models.User{}, err
	}

	user.Name = strings.TrimSpace(update.Name)
	user.Email = normalizeEmail(update.Email)
	if update.ChangesPassword() {
		if user.PasswordDigest, err = s.digestPassword(update.Password); err != nil {
			log.Err(err).Str("func", "*userService.UpdateUser").Msg("error hashing password")
			return models.User{}, err
		}
	}

	token := s.tokens.Generate()
	user.RememberDigest = s.rememberHasher.HashString(token)
	user.UpdatedAt = s.now()

	if err = s.userRepository.UpdateUser(ctx, user); err != nil {
		log.Err(err).Str("func", "*userService.UpdateUser").Int64("user_id", userID).Msg("user update ended with error")
		switch {
		case errors.Is(err, store.ErrEmailAlreadyExists):
			return models.User{}, emailTaken()
		case errors.Is(err, store.ErrUserNotFound):
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("user update ended with error: %w", err)
	}

	user.RememberToken = token
	return user, nil
}

func (s *userService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, userError(err)
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, page models.Page) ([]models.User, error) {
	users, err := s.userRepository.ListUsers(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("listing users failed: %w", err)
	}
	return users, nil
}

func (s *userService) FindByRememberToken(ctx context.Context, token string) (models.User, error) {
	if token == "" {
		return models.User{}, ErrInvalidRememberToken
	}

	user, err := s.userRepository.FindUserByRememberDigest(ctx, s.rememberHasher.HashString(token))
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, ErrInvalidRememberToken
	}
	if err != nil {
		return models.User{}, fmt.Errorf("user search by remember token failed: %w", err)
	}
	return user, nil
}

// DeleteUser lets an admin remove another user. Posts and follow edges of
// the removed user go with it.
func (s *userService) DeleteUser(ctx context.Context, actorID, targetID int64) error {
	log := logger.FromContext(ctx)

	actor, err := s.GetUser(ctx, actorID)
	if err != nil {
		return err
	}
	if !actor.Admin {
		log.Warn().Str("func", "*userService.DeleteUser").Int64("actor_id", actorID).Int64("target_id", targetID).Msg("non-admin tried to delete a user")
		return ErrForbidden
	}
	if actorID == targetID {
		return ErrCannotDeleteSelf
	}

	if err = s.userRepository.DeleteUser(ctx, targetID); err != nil {
		log.Err(err).Str("func", "*userService.DeleteUser").Int64("target_id", targetID).Msg("user deletion ended with error")
		return userError(err)
	}

	log.Info().Int64("actor_id", actorID).Int64("target_id", targetID).Msg("user deleted")
	return nil
}

func (s *userService) GrantAdmin(ctx context.Context, userID int64) error {
	if err := s.userRepository.SetAdmin(ctx, userID, true); err != nil {
		return userError(err)
	}
	logger.FromContext(ctx).Info().Int64("user_id", userID).Msg("admin granted")
	return nil
}

func (s *userService) digestPassword(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", validators.NewFieldError("password", "is too long (maximum is 72 bytes)")
	}
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(digest), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func emailTaken() error {
	return validators.NewFieldError("email", "has already been taken")
}

// userError maps store.ErrUserNotFound to ErrUserNotFound and wraps
// anything else.
func userError(err error) error {
	if errors.Is(err, store.ErrUserNotFound) {
		return ErrUserNotFound
	}
	return fmt.Errorf("user storage error: %w", err)
}
