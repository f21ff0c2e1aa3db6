// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-micropost/internal/logger"
	"github.com/MKhiriev/go-micropost/internal/store"
	"github.com/MKhiriev/go-micropost/models"
)

type micropostService struct {
	micropostRepository store.MicropostRepository
	now                 func() time.Time
	logger              *logger.Logger
}

// NewMicropostService constructs a MicropostService. Content is expected to
// be validated beforehand, see [NewMicropostValidationService].
func NewMicropostService(micropostRepository store.MicropostRepository, logger *logger.Logger) MicropostService {
	return &micropostService{
		micropostRepository: micropostRepository,
		now:                 utcNow,
		logger:              logger,
	}
}

func (s *micropostService) CreateMicropost(ctx context.Context, userID int64, post models.NewMicropost) (models.Micropost, error) {
	created, err := s.micropostRepository.CreateMicropost(ctx, models.Micropost{
		UserID:    userID,
		Content:   post.Content,
		CreatedAt: s.now(),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*micropostService.CreateMicropost").Int64("user_id", userID).Msg("micropost creation ended with error")
		return models.Micropost{}, userError(err)
	}
	return created, nil
}

// DeleteMicropost removes a post of userID. Posts of other users are
// reported as ErrMicropostNotFound.
func (s *micropostService) DeleteMicropost(ctx context.Context, userID, micropostID int64) error {
	err := s.micropostRepository.DeleteMicropost(ctx, userID, micropostID)
	if errors.Is(err, store.ErrMicropostNotFound) {
		return ErrMicropostNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*micropostService.DeleteMicropost").
			Int64("user_id", userID).
			Int64("micropost_id", micropostID).
			Msg("micropost deletion ended with error")
		return fmt.Errorf("micropost deletion ended with error: %w", err)
	}
	return nil
}

func (s *micropostService) UserMicroposts(ctx context.Context, userID int64, page models.Page) ([]models.Micropost, error) {
	posts, err := s.micropostRepository.UserMicroposts(ctx, userID, page)
	if err != nil {
		return nil, fmt.Errorf("listing microposts failed: %w", err)
	}
	return posts, nil
}

func (s *micropostService) CountMicroposts(ctx context.Context, userID int64) (int64, error) {
	n, err := s.micropostRepository.CountMicroposts(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("counting microposts failed: %w", err)
	}
	return n, nil
}
