// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/blog-auth/internal/config"
	"github.com/MKhiriev/blog-auth/internal/crypto"
	"github.com/MKhiriev/blog-auth/internal/logger"
	"github.com/MKhiriev/blog-auth/internal/policy"
	"github.com/MKhiriev/blog-auth/internal/store"
	"github.com/MKhiriev/blog-auth/internal/token"
)

// Services groups the server services.
type Services struct {
	AuthService AuthService
	UserService UserService
	Policies    *policy.Engine
}

// NewServices derives the signing key from cfg and wires the services to
// the repositories.
func NewServices(storages *store.Storages, cfg config.JWT, logger *logger.Logger) (*Services, error) {
	logger.Info().Msg("creating new services...")

	key, err := token.NewKey(cfg)
	if err != nil {
		return nil, fmt.Errorf("error creating signing key: %w", err)
	}

	return &Services{
		AuthService: NewAuthService(storages.UserRepository, crypto.NewPasswordHasher(), key, logger),
		UserService: NewUserService(storages.UserRepository, logger),
		Policies:    policy.NewEngine(),
	}, nil
}
