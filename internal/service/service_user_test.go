// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/blog-auth/internal/logger"
	"github.com/MKhiriev/blog-auth/internal/mock"
	"github.com/MKhiriev/blog-auth/internal/store"
	"github.com/MKhiriev/blog-auth/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserService_UpdateUser(t *testing.T) {
	admin := models.RoleAdmin
	bogus := models.Role(9)
	banned := false

	t.Run("applies update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockUserRepository(ctrl)
		svc := NewUserService(repo, logger.Nop())

		update := models.UserUpdate{UserID: 3, Role: &admin}
		repo.EXPECT().UpdateUser(gomock.Any(), update).Return(models.User{
			UserID: 3, UserName: "bob", Role: admin, IsActive: true, PasswordHash: "h", PasswordSalt: "s",
		}, nil)

		updated, err := svc.UpdateUser(context.Background(), update)
		require.NoError(t, err)
		assert.Equal(t, admin, updated.Role)
		assert.Empty(t, updated.PasswordHash)
	})

	t.Run("rejects bad input without touching storage", func(t *testing.T) {
		tests := []struct {
			name   string
			update models.UserUpdate
		}{
			{name: "no id", update: models.UserUpdate{Role: &admin}},
			{name: "empty", update: models.UserUpdate{UserID: 3}},
			{name: "unknown role", update: models.UserUpdate{UserID: 3, Role: &bogus}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				svc := NewUserService(mock.NewMockUserRepository(ctrl), logger.Nop())

				_, err := svc.UpdateUser(context.Background(), tt.update)
				assert.ErrorIs(t, err, ErrInvalidDataProvided)
			})
		}
	})

	t.Run("missing user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockUserRepository(ctrl)
		svc := NewUserService(repo, logger.Nop())

		repo.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUserNotFound)

		_, err := svc.UpdateUser(context.Background(), models.UserUpdate{UserID: 404, IsActive: &banned})
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})
}
