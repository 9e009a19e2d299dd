// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents a registered blog identity used for authentication and
// authorization. Credential fields must never leave trusted boundaries.
type User struct {
	// UserID is the surrogate key assigned by the database. Immutable.
	UserID int64 `json:"id"`

	// UserName is the unique, case-sensitive login name (max 50 chars).
	UserName string `json:"userName"`

	// NickName is the display name. Defaults to UserName when unset.
	NickName string `json:"nickName"`

	// Email is optional (max 100 chars).
	Email string `json:"email,omitempty"`

	// PasswordHash is the base64 HMAC-SHA256 of the password keyed by
	// PasswordSalt. Never the plaintext password.
	PasswordHash string `json:"-"`

	// PasswordSalt is the base64 random key used for PasswordHash.
	PasswordSalt string `json:"-"`

	// AvatarURL and Bio are optional profile fields. They play no part in
	// authentication.
	AvatarURL *string `json:"avatarUrl,omitempty"`
	Bio       *string `json:"bio,omitempty"`

	// Role determines which policies the identity satisfies.
	Role Role `json:"role"`

	// IsActive is false for banned identities; they fail every
	// authentication step.
	IsActive bool `json:"isActive"`

	CreatedAt   time.Time  `json:"createdAt"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// DisplayName returns NickName, falling back to UserName.
func (u User) DisplayName() string {
	if u.NickName == "" {
		return u.UserName
	}
	return u.NickName
}

// Principal returns the authorization view of the identity.
func (u User) Principal() Principal {
	return Principal{
		UserID:        u.UserID,
		UserName:      u.UserName,
		Role:          u.Role,
		Authenticated: true,
	}
}

// UserUpdate carries an admin change to an identity. Nil fields are left
// untouched.
type UserUpdate struct {
	UserID   int64 `json:"-"`
	Role     *Role `json:"role,omitempty"`
	IsActive *bool `json:"isActive,omitempty"`
}

// IsEmpty reports whether the update changes nothing.
func (u UserUpdate) IsEmpty() bool {
	return u.Role == nil && u.IsActive == nil
}
