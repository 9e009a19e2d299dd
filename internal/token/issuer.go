// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package token

import (
	"crypto/rand"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/blog-auth/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/oklog/ulid/v2"
)

// Issuer signs access tokens for identities. Safe for concurrent use.
type Issuer struct {
	key *Key
	now func() time.Time

	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// NewIssuer returns an Issuer signing with key.
func NewIssuer(key *Key, opts ...Option) *Issuer {
	o := applyOptions(opts)

	return &Issuer{
		key:     key,
		now:     o.now,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// Issue signs a token for user: sub/nameid carry the id, unique_name/name
// the user name, role the role name; iat and nbf are now, exp is now plus
// the configured lifetime and jti is a fresh ULID.
func (i *Issuer) Issue(user models.User) (models.Token, error) {
	if user.UserID <= 0 || user.UserName == "" {
		return models.Token{}, ErrIncompleteIdentity
	}
	if !user.Role.IsValid() {
		return models.Token{}, fmt.Errorf("cannot issue token: %w", models.ErrUnknownRole)
	}

	now := i.now().UTC().Truncate(time.Second)
	expiresAt := now.Add(i.key.ttl)

	claims := newClaims(user)
	claims.Issuer = i.key.issuer
	if i.key.audience != "" {
		claims.Audience = jwt.ClaimStrings{i.key.audience}
	}
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.NotBefore = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(expiresAt)
	claims.ID = i.newID(now)

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.key.secret)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing token: %w", err)
	}

	return models.Token{
		SignedString: signed,
		ID:           claims.ID,
		ExpiresAt:    expiresAt,
	}, nil
}

func (i *Issuer) newID(now time.Time) string {
	i.mu.Lock()
	defer i.mu.Unlock()

	return ulid.MustNew(ulid.Timestamp(now), i.entropy).String()
}
