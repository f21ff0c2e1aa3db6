// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Relationship is a directed follow edge: FollowerID receives the
// microposts of FollowedID.
type Relationship struct {
	RelationshipID int64     `json:"id"`
	FollowerID     int64     `json:"follower_id"`
	FollowedID     int64     `json:"followed_id"`
	CreatedAt      time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Relationship model.
func (r Relationship) TableName() string {
	return "relationships"
}

// FollowCounts holds the sizes of both views over a user's follow edges.
type FollowCounts struct {
	Following int64 `json:"following"`
	Followers int64 `json:"followers"`
}
