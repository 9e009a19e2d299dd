// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/blog-auth/models"
	"github.com/golang-jwt/jwt/v5"
)

// State is the session view derived from one token.
type State struct {
	Principal models.Principal
	Claims    []Claim
	ExpiresAt *time.Time
}

// Anonymous returns the state with no identity.
func Anonymous() State {
	return State{Principal: models.Anonymous()}
}

// IsAuthenticated reports whether the state carries an identity.
func (s State) IsAuthenticated() bool {
	return s.Principal.Authenticated
}

// FindFirst returns the value of the first claim of the given type.
func (s State) FindFirst(claimType string) (string, bool) {
	for _, c := range s.Claims {
		if c.Type == claimType {
			return c.Value, true
		}
	}
	return "", false
}

// IsInRole reports whether any role claim equals role.
func (s State) IsInRole(role models.Role) bool {
	for _, c := range s.Claims {
		if c.Type == ClaimRole && c.Value == role.String() {
			return true
		}
	}
	return false
}

// Derive computes the state of tokenString at now. Blank, undecodable and
// expired tokens (now >= exp) produce the anonymous state.
func Derive(tokenString string, now time.Time) State {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return Anonymous()
	}

	raw := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, raw); err != nil {
		return Anonymous()
	}

	exp, err := raw.GetExpirationTime()
	if err != nil {
		return Anonymous()
	}
	if exp != nil && !now.Before(exp.Time) {
		return Anonymous()
	}

	state := State{Claims: normalizeClaims(raw)}
	if exp != nil {
		expiresAt := exp.Time
		state.ExpiresAt = &expiresAt
	}
	state.Principal = principalFromClaims(state)

	return state
}

func principalFromClaims(s State) models.Principal {
	p := models.Principal{Authenticated: true}

	if v, ok := s.FindFirst(ClaimNameID); ok {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			p.UserID = id
		}
	}
	if v, ok := s.FindFirst(ClaimName); ok {
		p.UserName = v
	}
	for _, c := range s.Claims {
		if c.Type != ClaimRole {
			continue
		}
		if role, err := models.ParseRole(c.Value); err == nil {
			p.Role = role
			break
		}
	}

	return p
}
