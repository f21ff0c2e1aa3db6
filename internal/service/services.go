// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-micropost/internal/config"
	"github.com/MKhiriev/go-micropost/internal/logger"
	"github.com/MKhiriev/go-micropost/internal/store"
	"github.com/MKhiriev/go-micropost/internal/validators"
)

type Services struct {
	UserService         UserService
	RelationshipService RelationshipService
	MicropostService    MicropostService
	FeedService         FeedService
}

// NewServices wires every service over storages. User and micropost input
// is validated before it reaches the services.
func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	validator := validators.NewModelValidator()

	return &Services{
		UserService: NewUserValidationService(validator).
			Wrap(NewUserService(storages.UserRepository, cfg, logger)),
		RelationshipService: NewRelationshipService(storages.RelationshipRepository, logger),
		MicropostService: NewMicropostValidationService(validator).
			Wrap(NewMicropostService(storages.MicropostRepository, logger)),
		FeedService: NewFeedService(storages.MicropostRepository, logger),
	}
}
