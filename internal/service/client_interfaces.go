// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/blog-auth/internal/session"
	"github.com/MKhiriev/blog-auth/models"
)

// ClientAuthService is the client side of authentication: it talks to the
// server through the adapter and keeps the token in local storage, where
// the session provider reads it.
type ClientAuthService interface {
	// Register creates an account. The client stays logged out.
	Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error)

	// Login stores the issued token and returns the derived session.
	Login(ctx context.Context, req models.LoginRequest) (session.State, error)

	// Refresh swaps the stored token for a new one. Returns ErrNotLoggedIn
	// when nothing is stored.
	Refresh(ctx context.Context) (session.State, error)

	// Logout removes the stored token. Logging out twice is not an error.
	Logout(ctx context.Context) error

	// Session derives the current state from the stored token without a
	// server round trip.
	Session(ctx context.Context) session.State

	// Token returns the stored raw token or ErrNotLoggedIn.
	Token(ctx context.Context) (string, error)

	// WhoAmI asks the server who the stored token belongs to.
	WhoAmI(ctx context.Context) (models.MeResponse, error)

	// CheckPolicy asks the server whether the stored token satisfies policy.
	CheckPolicy(ctx context.Context, policy string) (bool, error)
}
