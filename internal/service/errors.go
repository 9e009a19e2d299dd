// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrInvalidDataProvided wraps request validation failures.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrUnauthorized is the single authentication failure seen by callers.
	// The wrapped cause is for logs only.
	ErrUnauthorized = errors.New("unauthorized")

	ErrWrongPassword = errors.New("wrong password")
	ErrInactiveUser  = errors.New("user is inactive")

	ErrTokenCreationFailed = errors.New("token creation failed")
	ErrHashingPassword     = errors.New("password hashing failed")
)

// Client-side errors.
var (
	// ErrNotLoggedIn is returned when a command needs a stored token and
	// there is none.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrRateLimited is returned when the server rejects a request with 429.
	ErrRateLimited = errors.New("too many requests, try again later")

	ErrRegisterOnServer = errors.New("registration on server failed")
	ErrLoginOnServer    = errors.New("login on server failed")
)
