// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
)

// Role is the closed set of identity roles. The numeric values are the
// ones persisted in the users.role column.
type Role int16

const (
	// RoleUnknown is the zero value and never assigned to a stored identity.
	RoleUnknown Role = 0
	// RoleAdmin manages users and everything else.
	RoleAdmin Role = 1
	// RoleAuthor writes and edits posts.
	RoleAuthor Role = 2
	// RoleReader reads, comments and likes. Default for new identities.
	RoleReader Role = 3
)

// ErrUnknownRole is returned when a role name or number is outside the
// closed enumeration.
var ErrUnknownRole = errors.New("unknown role")

var roleNames = map[Role]string{
	RoleAdmin:  "Admin",
	RoleAuthor: "Author",
	RoleReader: "Reader",
}

// ParseRole converts a role name ("Admin", "Author", "Reader") into a Role.
// Matching is exact.
func ParseRole(name string) (Role, error) {
	for role, roleName := range roleNames {
		if roleName == name {
			return role, nil
		}
	}
	return RoleUnknown, fmt.Errorf("%w: %q", ErrUnknownRole, name)
}

// IsValid reports whether r is one of Admin, Author or Reader.
func (r Role) IsValid() bool {
	_, ok := roleNames[r]
	return ok
}

// String returns the role name, or "Unknown".
func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "Unknown"
}

// MarshalText implements encoding.TextMarshaler so roles travel as names
// in JSON.
func (r Role) MarshalText() ([]byte, error) {
	if !r.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownRole, r)
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Role) UnmarshalText(text []byte) error {
	role, err := ParseRole(string(text))
	if err != nil {
		return err
	}
	*r = role
	return nil
}
