// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "github.com/google/uuid"

// UUIDGenerator produces opaque URL-safe tokens.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a random (version 4) UUID string. Time-ordered versions
// leak their creation time and must not be used for secrets.
func (g *UUIDGenerator) Generate() string {
	return uuid.NewString()
}
