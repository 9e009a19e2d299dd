// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/blog-auth/internal/config"
	"github.com/MKhiriev/blog-auth/internal/logger"
	"github.com/MKhiriev/blog-auth/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	a, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

// ── construction ────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:8080", want: "http://localhost:8080"},
		{raw: "https://blog.example.com/", want: "https://blog.example.com"},
		{raw: "  http://127.0.0.1:9000  ", want: "http://127.0.0.1:9000"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── Register ────────────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/register", r.URL.Path)

		var req models.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice", req.UserName)
		assert.Equal(t, "pw", req.Password)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":7,"userName":"alice","role":"Reader"}`))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Register(context.Background(), models.RegisterRequest{UserName: "alice", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, models.RegisterResponse{ID: 7, UserName: "alice", Role: models.RoleReader}, got)
}

func TestRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte("login already exists"))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Register(context.Background(), models.RegisterRequest{UserName: "alice", Password: "pw"})
	require.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "login already exists")
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestLogin(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    models.LoginResponse
		wantErr error
	}{
		{
			name:   "success",
			status: http.StatusOK,
			body:   `{"token":"a.b.c","userName":"alice","nickName":"Alice","role":"Author"}`,
			want:   models.LoginResponse{Token: "a.b.c", UserName: "alice", NickName: "Alice", Role: models.RoleAuthor},
		},
		{name: "bad credentials", status: http.StatusUnauthorized, body: "unauthorized", wantErr: ErrUnauthorized},
		{name: "validation", status: http.StatusBadRequest, body: "invalid data provided", wantErr: ErrBadRequest},
		{name: "rate limited", status: http.StatusTooManyRequests, wantErr: ErrTooManyRequests},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/auth/login", r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			got, err := newTestAdapter(t, srv.URL).Login(context.Background(), models.LoginRequest{UserName: "alice", Password: "pw"})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── authenticated calls ─────────────────────────────────────────────────────

func TestRefresh_SendsBearer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/refresh", r.URL.Path)
		assert.Equal(t, "Bearer old.token.sig", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"new.token.sig"}`))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Refresh(context.Background(), "old.token.sig")
	require.NoError(t, err)
	assert.Equal(t, "new.token.sig", got.Token)
}

func TestRefresh_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Refresh(context.Background(), "old")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestMe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/me", r.URL.Path)
		assert.Equal(t, "Bearer t", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":1,"userName":"root","role":"Admin","policies":["AdminOnly","CanWrite"]}`))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Me(context.Background(), "t")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, got.Role)
	assert.Equal(t, []string{"AdminOnly", "CanWrite"}, got.Policies)
}

func TestCheckPolicy(t *testing.T) {
	tests := []struct {
		status  int
		allowed bool
		wantErr error
	}{
		{status: http.StatusNoContent, allowed: true},
		{status: http.StatusForbidden, allowed: false},
		{status: http.StatusNotFound, wantErr: ErrNotFound},
		{status: http.StatusUnauthorized, wantErr: ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/auth/policies/CanWrite", r.URL.Path)
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			allowed, err := newTestAdapter(t, srv.URL).CheckPolicy(context.Background(), "t", "CanWrite")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.allowed, allowed)
		})
	}
}

func TestUnknownStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Me(context.Background(), "t")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 503")
}
