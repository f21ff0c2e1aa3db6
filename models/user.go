// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account of the microblog.
// Credential-related fields are never serialized.
type User struct {
	// UserID is the unique identifier assigned by the database.
	UserID int64 `json:"id"`

	// Name is the display name of the user (at most 50 characters).
	Name string `json:"name"`

	// Email is the login identifier. It is always stored lowercased.
	Email string `json:"email"`

	// PasswordDigest is the bcrypt digest of the user's password.
	// The plaintext password is never persisted.
	PasswordDigest string `json:"-"`

	// RememberDigest is the keyed digest of the current remember token.
	RememberDigest string `json:"-"`

	// RememberToken is the raw remember token issued by the last save.
	// It is populated only on the value returned from a create or update
	// call and is never read back from storage.
	RememberToken string `json:"-"`

	// Admin marks users allowed to delete other accounts.
	// No registration or update input can set it.
	Admin bool `json:"admin"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserRegistration is the untrusted input accepted when an account is
// created. It deliberately has no admin field.
type UserRegistration struct {
	Name                 string `json:"name" validate:"notblank,max=50"`
	Email                string `json:"email" validate:"notblank,email_format"`
	Password             string `json:"password" validate:"notblank,min=6"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
}

// UserUpdate is the untrusted input accepted when a profile is edited.
// Password fields are validated only when Password is non-empty.
type UserUpdate struct {
	Name                 string `json:"name" validate:"notblank,max=50"`
	Email                string `json:"email" validate:"notblank,email_format"`
	Password             string `json:"password" validate:"notblank,min=6"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
}

// ChangesPassword reports whether the update carries a new password.
func (u UserUpdate) ChangesPassword() bool {
	return u.Password != "" || u.PasswordConfirmation != ""
}

// Credentials is the input of an authentication attempt.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
