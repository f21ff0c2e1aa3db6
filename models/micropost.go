// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// MaxMicropostLength is the maximum number of characters in a micropost.
const MaxMicropostLength = 140

// Micropost is a short status update authored by a user.
type Micropost struct {
	MicropostID int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Micropost model.
func (m Micropost) TableName() string {
	return "microposts"
}

// NewMicropost is the untrusted input of the posting operation.
// The author is taken from the caller's identity, never from the input.
type NewMicropost struct {
	Content string `json:"content" validate:"notblank,max=140"`
}
