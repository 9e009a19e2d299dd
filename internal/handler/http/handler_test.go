// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/blog-auth/internal/config"
	"github.com/MKhiriev/blog-auth/internal/logger"
	"github.com/MKhiriev/blog-auth/internal/mock"
	"github.com/MKhiriev/blog-auth/internal/policy"
	"github.com/MKhiriev/blog-auth/internal/service"
	"github.com/MKhiriev/blog-auth/internal/utils"
	"github.com/MKhiriev/blog-auth/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testDeps struct {
	auth  *mock.MockAuthService
	users *mock.MockUserService
}

func newTestHandler(t *testing.T, cfg config.Server) (*Handler, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	deps := testDeps{
		auth:  mock.NewMockAuthService(ctrl),
		users: mock.NewMockUserService(ctrl),
	}
	services := &service.Services{
		AuthService: deps.auth,
		UserService: deps.users,
		Policies:    policy.NewEngine(),
	}
	return NewHandler(services, cfg, logger.Nop()), deps
}

func jsonBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

// withPrincipal mimics a request that already passed the auth middleware.
func withPrincipal(r *http.Request, p models.Principal) *http.Request {
	return r.WithContext(utils.WithPrincipal(r.Context(), p))
}

var (
	adminPrincipal  = models.Principal{UserID: 1, UserName: "root", Role: models.RoleAdmin, Authenticated: true}
	authorPrincipal = models.Principal{UserID: 2, UserName: "alice", Role: models.RoleAuthor, Authenticated: true}
	readerPrincipal = models.Principal{UserID: 3, UserName: "bob", Role: models.RoleReader, Authenticated: true}
)
