// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package token

import "errors"

// Validation failures. Errors returned by [Validator.Validate] and
// [Claims.Principal] match exactly one of them with errors.Is.
var (
	ErrMalformed        = errors.New("token is malformed")
	ErrInvalidSignature = errors.New("token signature is invalid")
	ErrInvalidIssuer    = errors.New("token issuer is invalid")
	ErrInvalidAudience  = errors.New("token audience is invalid")
	ErrExpired          = errors.New("token is expired")
	ErrNotYetValid      = errors.New("token is not valid yet")
	ErrInvalidSubject   = errors.New("token subject is invalid")
	ErrInvalidRole      = errors.New("token role is invalid")
)

// ErrEmptySecret is returned by [NewKey] when no signing secret is given.
var ErrEmptySecret = errors.New("token signing secret is empty")

// ErrIncompleteIdentity is returned by [Issuer.Issue] for a user without an
// id or user name.
var ErrIncompleteIdentity = errors.New("cannot issue token for incomplete identity")
