// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app implements the operator command line of go-micropost: it
// parses sub-commands, drives the services and prints results as JSON.
//
// All Msg* constants are human-readable message strings written into the
// JSON error output to describe the outcome of an operation. Keeping them in
// one place ensures consistent wording throughout the CLI.
package app

import (
	"errors"

	"github.com/MKhiriev/go-micropost/internal/service"
	"github.com/MKhiriev/go-micropost/internal/validators"
)

const (
	// MsgInvalidDataProvided is printed when the input fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidEmailPassword is printed when authentication fails for an
	// unknown email or a wrong password.
	MsgInvalidEmailPassword = "invalid email/password combination"

	// MsgUserNotFound is printed when a referenced user does not exist.
	MsgUserNotFound = "user not found"

	// MsgMicropostNotFound is printed when a micropost does not exist or
	// belongs to another user.
	MsgMicropostNotFound = "micropost not found"

	// MsgAlreadyFollowing is printed on a duplicate follow.
	MsgAlreadyFollowing = "already following"

	// MsgNotFollowing is printed when unfollowing a user that is not
	// followed.
	MsgNotFollowing = "not following"

	// MsgSelfFollow is printed when a user tries to follow themselves.
	MsgSelfFollow = "users cannot follow themselves"

	// MsgForbidden is printed when a non-admin attempts an admin action.
	MsgForbidden = "action is allowed to admins only"

	// MsgCannotDeleteSelf is printed when an admin tries to delete their
	// own account.
	MsgCannotDeleteSelf = "admins cannot delete themselves"

	// MsgInternalError is printed when an unexpected failure occurs that the
	// operator cannot resolve.
	MsgInternalError = "internal error"
)

// ErrorMessage maps err to the message printed for it. Checks run from the
// most specific error to the most generic one.
func ErrorMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrSelfFollow):
		return MsgSelfFollow
	case errors.Is(err, service.ErrAlreadyFollowing):
		return MsgAlreadyFollowing
	case errors.Is(err, validators.ErrValidation):
		return MsgInvalidDataProvided
	case errors.Is(err, service.ErrInvalidCredentials):
		return MsgInvalidEmailPassword
	case errors.Is(err, service.ErrUserNotFound):
		return MsgUserNotFound
	case errors.Is(err, service.ErrMicropostNotFound):
		return MsgMicropostNotFound
	case errors.Is(err, service.ErrNotFollowing):
		return MsgNotFollowing
	case errors.Is(err, service.ErrForbidden):
		return MsgForbidden
	case errors.Is(err, service.ErrCannotDeleteSelf):
		return MsgCannotDeleteSelf
	case errors.Is(err, errUsage):
		return err.Error()
	}
	return MsgInternalError
}
