// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Principal is the resolved identity/role view used for authorization
// decisions. The zero value is the anonymous principal.
type Principal struct {
	UserID        int64
	UserName      string
	Role          Role
	Authenticated bool
}

// Anonymous returns the unauthenticated principal.
func Anonymous() Principal {
	return Principal{}
}

// IsAnonymous reports whether p carries no authenticated identity.
func (p Principal) IsAnonymous() bool {
	return !p.Authenticated
}
