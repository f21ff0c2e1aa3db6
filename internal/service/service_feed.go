// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-micropost/internal/logger"
	"github.com/MKhiriev/go-micropost/internal/store"
	"github.com/MKhiriev/go-micropost/models"
)

type feedService struct {
	micropostRepository store.MicropostRepository
	logger              *logger.Logger
}

func NewFeedService(micropostRepository store.MicropostRepository, logger *logger.Logger) FeedService {
	return &feedService{
		micropostRepository: micropostRepository,
		logger:              logger,
	}
}

// Feed is read-only. The zero page returns the whole feed.
func (s *feedService) Feed(ctx context.Context, userID int64, page models.Page) ([]models.Micropost, error) {
	posts, err := s.micropostRepository.Feed(ctx, userID, page)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*feedService.Feed").Int64("user_id", userID).Msg("feed query failed")
		return nil, fmt.Errorf("feed query failed: %w", err)
	}
	return posts, nil
}
