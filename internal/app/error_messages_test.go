// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-micropost/internal/service"
	"github.com/MKhiriev/go-micropost/internal/validators"
)

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{err: validators.NewFieldError("email", "is invalid"), want: MsgInvalidDataProvided},
		{err: fmt.Errorf("%w: %w", service.ErrAlreadyFollowing, validators.NewFieldError("followed_id", "is already followed")), want: MsgAlreadyFollowing},
		{err: fmt.Errorf("%w: %w", service.ErrSelfFollow, validators.NewFieldError("followed_id", "can't be the follower")), want: MsgSelfFollow},
		{err: service.ErrInvalidCredentials, want: MsgInvalidEmailPassword},
		{err: service.ErrUserNotFound, want: MsgUserNotFound},
		{err: service.ErrMicropostNotFound, want: MsgMicropostNotFound},
		{err: service.ErrNotFollowing, want: MsgNotFollowing},
		{err: service.ErrForbidden, want: MsgForbidden},
		{err: service.ErrCannotDeleteSelf, want: MsgCannotDeleteSelf},
		{err: errors.New("disk full"), want: MsgInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorMessage(tt.err))
		})
	}
}
