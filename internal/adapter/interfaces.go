// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the blog-auth server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// services from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/blog-auth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the blog-auth
// server. The adapter holds no session: calls that need a bearer token take
// it as an argument.
type ServerAdapter interface {
	// Register creates an identity. It never returns a token.
	Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error)

	// Login exchanges credentials for a token.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)

	// Refresh exchanges tokenString for a new token.
	Refresh(ctx context.Context, tokenString string) (models.RefreshResponse, error)

	// Me returns the server's view of the principal behind tokenString.
	Me(ctx context.Context, tokenString string) (models.MeResponse, error)

	// CheckPolicy asks the server whether tokenString satisfies policy. A
	// deny is reported as (false, nil).
	CheckPolicy(ctx context.Context, tokenString, policy string) (bool, error)
}
