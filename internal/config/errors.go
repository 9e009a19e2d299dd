// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrMissingSigningKey indicates that JWT_KEY is not configured. The
	// server refuses to start without it.
	ErrMissingSigningKey = errors.New("jwt signing key is not configured")
	// ErrInvalidTokenLifetime indicates a negative token lifetime.
	ErrInvalidTokenLifetime = errors.New("invalid token lifetime")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing HTTP address).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates a missing database DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates a bootstrap admin with only one of
	// user name and password set.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
