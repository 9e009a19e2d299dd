// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/blog-auth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

// UserRepository is the credential store. Username uniqueness is enforced
// by the database constraint only.
type UserRepository interface {
	// CreateUser inserts user and returns it with UserID and CreatedAt set.
	// A taken username yields [ErrLoginAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByUsername looks up by exact, case-sensitive username.
	FindUserByUsername(ctx context.Context, userName string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	// UpdateLastLogin stamps last_login_at with one UPDATE statement.
	UpdateLastLogin(ctx context.Context, userID int64) error
	// UpdateUser applies the non-nil fields of update and returns the
	// resulting identity.
	UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error)
}
