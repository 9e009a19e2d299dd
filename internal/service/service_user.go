// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/blog-auth/internal/logger"
	"github.com/MKhiriev/blog-auth/internal/store"
	"github.com/MKhiriev/blog-auth/models"
)

type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewUserService constructs a UserService. Authorization is the caller's
// job: the HTTP layer only reaches it through an AdminOnly route.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// UpdateUser changes the role and/or active flag of an identity.
func (s *userService) UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	switch {
	case update.UserID <= 0:
		return models.User{}, fmt.Errorf("%w: user id must be positive", ErrInvalidDataProvided)
	case update.IsEmpty():
		return models.User{}, fmt.Errorf("%w: nothing to update", ErrInvalidDataProvided)
	case update.Role != nil && !update.Role.IsValid():
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, models.ErrUnknownRole)
	}

	updated, err := s.userRepository.UpdateUser(ctx, update)
	if err != nil {
		log.Err(err).Int64("id", update.UserID).Msg("user update failed")
		return models.User{}, fmt.Errorf("user update failed: %w", err)
	}

	log.Info().
		Int64("id", updated.UserID).
		Str("role", updated.Role.String()).
		Bool("isActive", updated.IsActive).
		Msg("user updated")

	return withoutCredentials(updated), nil
}
