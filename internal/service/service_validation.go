// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-micropost/internal/validators"
	"github.com/MKhiriev/go-micropost/models"
)

// UserValidationService validates registration and update input before
// handing it to the wrapped UserService.
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService(validator validators.Validator) UserServiceWrapper {
	return &UserValidationService{
		validator: validator,
	}
}

func (v *UserValidationService) Wrap(inner UserService) UserService {
	v.inner = inner
	return v
}

func (v *UserValidationService) CreateUser(ctx context.Context, registration models.UserRegistration) (models.User, error) {
	if err := v.validator.Validate(ctx, registration); err != nil {
		return models.User{}, err
	}
	return v.inner.CreateUser(ctx, registration)
}

func (v *UserValidationService) Authenticate(ctx context.Context, credentials models.Credentials) (models.User, error) {
	return v.inner.Authenticate(ctx, credentials)
}

func (v *UserValidationService) UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.User{}, err
	}
	return v.inner.UpdateUser(ctx, userID, update)
}

func (v *UserValidationService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	return v.inner.GetUser(ctx, userID)
}

func (v *UserValidationService) ListUsers(ctx context.Context, page models.Page) ([]models.User, error) {
	return v.inner.ListUsers(ctx, page)
}

func (v *UserValidationService) FindByRememberToken(ctx context.Context, token string) (models.User, error) {
	return v.inner.FindByRememberToken(ctx, token)
}

func (v *UserValidationService) DeleteUser(ctx context.Context, actorID, targetID int64) error {
	return v.inner.DeleteUser(ctx, actorID, targetID)
}

func (v *UserValidationService) GrantAdmin(ctx context.Context, userID int64) error {
	return v.inner.GrantAdmin(ctx, userID)
}

// MicropostValidationService validates micropost content before handing it
// to the wrapped MicropostService.
type MicropostValidationService struct {
	inner     MicropostService
	validator validators.Validator
}

func NewMicropostValidationService(validator validators.Validator) MicropostServiceWrapper {
	return &MicropostValidationService{
		validator: validator,
	}
}

func (v *MicropostValidationService) Wrap(inner MicropostService) MicropostService {
	v.inner = inner
	return v
}

func (v *MicropostValidationService) CreateMicropost(ctx context.Context, userID int64, post models.NewMicropost) (models.Micropost, error) {
	if err := v.validator.Validate(ctx, post); err != nil {
		return models.Micropost{}, err
	}
	return v.inner.CreateMicropost(ctx, userID, post)
}

func (v *MicropostValidationService) DeleteMicropost(ctx context.Context, userID, micropostID int64) error {
	return v.inner.DeleteMicropost(ctx, userID, micropostID)
}

func (v *MicropostValidationService) UserMicroposts(ctx context.Context, userID int64, page models.Page) ([]models.Micropost, error) {
	return v.inner.UserMicroposts(ctx, userID, page)
}

func (v *MicropostValidationService) CountMicroposts(ctx context.Context, userID int64) (int64, error) {
	return v.inner.CountMicroposts(ctx, userID)
}
