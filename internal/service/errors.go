// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrMicropostNotFound = errors.New("micropost not found")

	// ErrInvalidCredentials is returned by authentication for an unknown
	// email and for a wrong password alike.
	ErrInvalidCredentials = errors.New("invalid email/password combination")

	ErrSelfFollow       = errors.New("users cannot follow themselves")
	ErrAlreadyFollowing = errors.New("already following")
	ErrNotFollowing     = errors.New("not following")

	ErrForbidden        = errors.New("action is allowed to admins only")
	ErrCannotDeleteSelf = errors.New("admins cannot delete themselves")

	ErrInvalidRememberToken = errors.New("invalid remember token")
)
