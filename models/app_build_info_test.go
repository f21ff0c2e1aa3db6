// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppBuildInfo_EmptyValuesAreNotAvailable(t *testing.T) {
	info := NewAppBuildInfo("", "2026-01-02", "")

	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "2026-01-02", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
	assert.Equal(t, "Build version: N/A\nBuild date: 2026-01-02\nBuild commit: N/A\n", info.String())
}

func TestPageNumber(t *testing.T) {
	tests := []struct {
		name string
		n    uint64
		want Page
	}{
		{name: "zero is first page", n: 0, want: Page{Limit: DefaultPageSize}},
		{name: "first page", n: 1, want: Page{Limit: DefaultPageSize}},
		{name: "third page", n: 3, want: Page{Limit: DefaultPageSize, Offset: 2 * DefaultPageSize}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PageNumber(tt.n))
		})
	}
}

func TestUserUpdate_ChangesPassword(t *testing.T) {
	assert.False(t, UserUpdate{Name: "n", Email: "e@x.io"}.ChangesPassword())
	assert.True(t, UserUpdate{Password: "secret"}.ChangesPassword())
	assert.True(t, UserUpdate{PasswordConfirmation: "secret"}.ChangesPassword())
}
