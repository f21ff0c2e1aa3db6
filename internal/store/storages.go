// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-micropost/internal/config"
	"github.com/MKhiriev/go-micropost/internal/logger"
)

// Storages bundles the repositories sharing one database connection.
type Storages struct {
	DB                     *DB
	UserRepository         UserRepository
	RelationshipRepository RelationshipRepository
	MicropostRepository    MicropostRepository
}

// NewStorages connects to the configured database and builds every
// repository on top of the connection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}
	return NewStoragesFromDB(db, log), nil
}

// NewStoragesFromDB builds the repositories over an already opened DB.
func NewStoragesFromDB(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		DB:                     db,
		UserRepository:         NewUserRepository(db, log),
		RelationshipRepository: NewRelationshipRepository(db, log),
		MicropostRepository:    NewMicropostRepository(db, log),
	}
}

// Close releases the database connection.
func (s *Storages) Close() error {
	return s.DB.Close()
}
