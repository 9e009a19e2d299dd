// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/blog-auth/internal/config"
	"github.com/MKhiriev/blog-auth/internal/store"
	"github.com/MKhiriev/blog-auth/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func serveUpdateUser(h *Handler, id, body string) *httptest.ResponseRecorder {
	router := chi.NewRouter()
	router.Patch("/users/{id}", h.updateUser)

	r := withPrincipal(httptest.NewRequest(http.MethodPatch, "/users/"+id, strings.NewReader(body)), adminPrincipal)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, r)
	return rec
}

func TestUpdateUser_Success(t *testing.T) {
	h, deps := newTestHandler(t, config.Server{})

	author := models.RoleAuthor
	deps.users.EXPECT().UpdateUser(gomock.Any(), models.UserUpdate{UserID: 3, Role: &author}).
		Return(models.User{UserID: 3, UserName: "bob", Role: models.RoleAuthor, IsActive: true}, nil)

	rec := serveUpdateUser(h, "3", `{"role":"Author"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.UpdateUserResponse{ID: 3, UserName: "bob", Role: models.RoleAuthor, IsActive: true},
		decodeBody[models.UpdateUserResponse](t, rec))
}

func TestUpdateUser_Ban(t *testing.T) {
	h, deps := newTestHandler(t, config.Server{})

	inactive := false
	deps.users.EXPECT().UpdateUser(gomock.Any(), models.UserUpdate{UserID: 3, IsActive: &inactive}).
		Return(models.User{UserID: 3, UserName: "bob", Role: models.RoleReader}, nil)

	rec := serveUpdateUser(h, "3", `{"isActive":false}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decodeBody[models.UpdateUserResponse](t, rec).IsActive)
}

func TestUpdateUser_Errors(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		body       string
		setup      func(d testDeps)
		wantStatus int
	}{
		{"non numeric id", "abc", `{"role":"Admin"}`, func(testDeps) {}, http.StatusBadRequest},
		{"zero id", "0", `{"role":"Admin"}`, func(testDeps) {}, http.StatusBadRequest},
		{"unknown role name", "3", `{"role":"Owner"}`, func(testDeps) {}, http.StatusBadRequest},
		{"bad json", "3", `{`, func(testDeps) {}, http.StatusBadRequest},
		{
			name: "missing user",
			id:   "99",
			body: `{"isActive":true}`,
			setup: func(d testDeps) {
				d.users.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).
					Return(models.User{}, fmt.Errorf("%w: id 99", store.ErrUserNotFound))
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "empty update",
			id:   "3",
			body: `{}`,
			setup: func(d testDeps) {
				d.users.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).
					Return(models.User{}, store.ErrNothingToUpdate)
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, deps := newTestHandler(t, config.Server{})
			tt.setup(deps)

			rec := serveUpdateUser(h, tt.id, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
