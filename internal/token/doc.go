// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package token issues and validates the HS256 access tokens of blog-auth.
//
// A single [Key] is derived from the configured secret at startup and shared
// by the [Issuer] and every [Validator]. Validators differ only in the clock
// leeway they tolerate: the request guard uses [GuardLeeway], the refresh
// flow uses the wider [RefreshLeeway] so a token that expired moments ago
// can still be exchanged.
//
// The HS256 key is not the raw secret: [NewKey] runs JWT_KEY through
// HKDF-SHA256. Tokens signed by a deployment that uses the raw secret bytes
// as the key do not validate here, and tokens issued here do not validate
// there, even when both share the same secret. Rotate every client session
// when moving between the two.
package token
