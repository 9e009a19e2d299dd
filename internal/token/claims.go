// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package token

import (
	"fmt"
	"strconv"

	"github.com/MKhiriev/blog-auth/models"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload of an access token. The identity is carried twice,
// as "sub"/"nameid" and "unique_name"/"name", so consumers reading either
// naming scheme resolve the same principal.
type Claims struct {
	jwt.RegisteredClaims

	UniqueName string `json:"unique_name,omitempty"`
	NameID     string `json:"nameid,omitempty"`
	Name       string `json:"name,omitempty"`
	Role       string `json:"role,omitempty"`
}

func newClaims(user models.User) Claims {
	id := strconv.FormatInt(user.UserID, 10)

	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: id,
		},
		UniqueName: user.UserName,
		NameID:     id,
		Name:       user.UserName,
		Role:       user.Role.String(),
	}
}

// UserID returns the identity id from "nameid", falling back to "sub".
func (c *Claims) UserID() (int64, error) {
	raw := c.NameID
	if raw == "" {
		raw = c.Subject
	}
	if raw == "" {
		return 0, ErrInvalidSubject
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSubject, raw)
	}

	return id, nil
}

// UserName returns "unique_name", falling back to "name".
func (c *Claims) UserName() string {
	if c.UniqueName != "" {
		return c.UniqueName
	}
	return c.Name
}

// Principal converts the claims into an authenticated principal.
func (c *Claims) Principal() (models.Principal, error) {
	id, err := c.UserID()
	if err != nil {
		return models.Principal{}, err
	}

	role, err := models.ParseRole(c.Role)
	if err != nil {
		return models.Principal{}, fmt.Errorf("%w: %w", ErrInvalidRole, err)
	}

	return models.Principal{
		UserID:        id,
		UserName:      c.UserName(),
		Role:          role,
		Authenticated: true,
	}, nil
}
