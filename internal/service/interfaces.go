// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/blog-auth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService covers the credential and token flows of the server.
type AuthService interface {
	// RegisterUser creates a Reader identity. The returned user carries no
	// password hash or salt.
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	// Login verifies the credentials, stamps the last login time and issues
	// a token.
	Login(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error)
	// ParseToken validates tokenString with the guard leeway.
	ParseToken(ctx context.Context, tokenString string) (models.Principal, error)
	// RefreshToken validates tokenString with the refresh leeway and issues
	// a new token from the current stored identity.
	RefreshToken(ctx context.Context, tokenString string) (models.Token, error)
	// EnsureAdmin creates an active Admin named userName unless that
	// username already exists.
	EnsureAdmin(ctx context.Context, userName, password string) error
}

// UserService covers identity administration.
type UserService interface {
	UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error)
}
