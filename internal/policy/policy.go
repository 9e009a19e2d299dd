// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package policy decides whether a principal satisfies a named
// authorization policy. Decisions depend on the role claim only.
package policy

import (
	"errors"
	"slices"

	"github.com/MKhiriev/blog-auth/models"
)

// Name identifies an authorization policy.
type Name string

// Registered policies.
const (
	// AdminOnly is satisfied by Admin.
	AdminOnly Name = "AdminOnly"
	// CanWrite is satisfied by Admin and Author.
	CanWrite Name = "CanWrite"
)

// Decision is the outcome of [Engine.Authorize].
type Decision int

const (
	Deny Decision = iota
	Allow
)

func (d Decision) String() string {
	if d == Allow {
		return "Allow"
	}
	return "Deny"
}

// ErrUnknownPolicy is returned by [Engine.Lookup] for names that are not
// registered.
var ErrUnknownPolicy = errors.New("unknown policy")

// Engine holds the policy table. The zero value is not usable; call
// [NewEngine].
type Engine struct {
	policies map[Name][]models.Role
	order    []Name
}

// NewEngine returns an Engine with the AdminOnly and CanWrite policies.
func NewEngine() *Engine {
	return &Engine{
		policies: map[Name][]models.Role{
			AdminOnly: {models.RoleAdmin},
			CanWrite:  {models.RoleAdmin, models.RoleAuthor},
		},
		order: []Name{AdminOnly, CanWrite},
	}
}

// Lookup resolves a policy name, e.g. from a URL segment.
func (e *Engine) Lookup(name string) (Name, error) {
	if _, ok := e.policies[Name(name)]; !ok {
		return "", ErrUnknownPolicy
	}
	return Name(name), nil
}

// Authorize decides whether p satisfies policy. Anonymous principals and
// unknown policies are denied.
func (e *Engine) Authorize(p models.Principal, policy Name) Decision {
	if p.IsAnonymous() {
		return Deny
	}

	roles, ok := e.policies[policy]
	if !ok {
		return Deny
	}

	if slices.Contains(roles, p.Role) {
		return Allow
	}
	return Deny
}

// Allowed lists the policies p satisfies, in registration order.
func (e *Engine) Allowed(p models.Principal) []string {
	allowed := make([]string, 0, len(e.order))
	for _, name := range e.order {
		if e.Authorize(p, name) == Allow {
			allowed = append(allowed, string(name))
		}
	}
	return allowed
}
