// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Token is a signed access token handed to clients.
//
// SignedString holds the compact JWS form (header.payload.signature) ready
// to be sent in an Authorization header or stored on the client side.
type Token struct {
	// SignedString is the compact serialized token.
	SignedString string `json:"token"`

	// ID is the unique token identifier ("jti").
	ID string `json:"-"`

	// ExpiresAt is the "exp" instant of the token.
	ExpiresAt time.Time `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
