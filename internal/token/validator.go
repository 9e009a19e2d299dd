// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Clock skew tolerated by the two validation contexts.
const (
	GuardLeeway   = time.Minute
	RefreshLeeway = 5 * time.Minute
)

// Validator verifies signature, algorithm, issuer, audience and lifetime of
// a token. Safe for concurrent use.
type Validator struct {
	key    *Key
	parser *jwt.Parser
}

// NewValidator returns a Validator for tokens signed with key, tolerating
// leeway of clock skew on exp and nbf. Issuer and audience are enforced only
// when configured on key.
func NewValidator(key *Key, leeway time.Duration, opts ...Option) *Validator {
	o := applyOptions(opts)

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(leeway),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(o.now),
	}
	if key.issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(key.issuer))
	}
	if key.audience != "" {
		parserOpts = append(parserOpts, jwt.WithAudience(key.audience))
	}

	return &Validator{
		key:    key,
		parser: jwt.NewParser(parserOpts...),
	}
}

// NewGuardValidator returns the validator used to protect routes.
func NewGuardValidator(key *Key, opts ...Option) *Validator {
	return NewValidator(key, GuardLeeway, opts...)
}

// NewRefreshValidator returns the validator used by the refresh flow.
func NewRefreshValidator(key *Key, opts ...Option) *Validator {
	return NewValidator(key, RefreshLeeway, opts...)
}

// Validate parses tokenString and returns its claims. The error, if any,
// matches one of the package's validation sentinels.
func (v *Validator) Validate(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrMalformed
	}

	claims := &Claims{}
	_, err := v.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return v.key.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", classify(err), err)
	}

	if _, err := claims.UserID(); err != nil {
		return nil, err
	}

	return claims, nil
}

// classify maps jwt parse errors onto the package sentinels. Structural and
// signature problems are checked before time and audience problems.
func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ErrMalformed
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return ErrInvalidSignature
	case errors.Is(err, jwt.ErrTokenRequiredClaimMissing):
		return ErrMalformed
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	case errors.Is(err, jwt.ErrTokenNotValidYet), errors.Is(err, jwt.ErrTokenUsedBeforeIssued):
		return ErrNotYetValid
	case errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return ErrInvalidIssuer
	case errors.Is(err, jwt.ErrTokenInvalidAudience):
		return ErrInvalidAudience
	default:
		return ErrMalformed
	}
}
