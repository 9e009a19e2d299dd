// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// Field limits shared by request validation and the users table.
const (
	MaxUserNameLength = 50
	MaxEmailLength    = 100
)

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	UserName string `json:"userName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks required fields and length limits. Email is optional but
// must be well formed when present.
func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.UserName, validation.By(notBlank), validation.Length(1, MaxUserNameLength)),
		validation.Field(&r.Email, validation.Length(0, MaxEmailLength), is.Email),
		validation.Field(&r.Password, validation.By(notBlank)),
	)
}

// RegisterResponse is returned by a successful registration.
type RegisterResponse struct {
	ID       int64  `json:"id"`
	UserName string `json:"userName"`
	Role     Role   `json:"role"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}

// Validate checks that both credentials are present.
func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.UserName, validation.By(notBlank)),
		validation.Field(&r.Password, validation.By(notBlank)),
	)
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	Token    string `json:"token"`
	UserName string `json:"userName"`
	NickName string `json:"nickName"`
	Role     Role   `json:"role"`
}

// RefreshResponse is returned by a successful refresh.
type RefreshResponse struct {
	Token string `json:"token"`
}

// MeResponse describes the principal behind the presented token.
type MeResponse struct {
	ID       int64    `json:"id"`
	UserName string   `json:"userName"`
	Role     Role     `json:"role"`
	Policies []string `json:"policies"`
}

// UpdateUserResponse is returned by the admin identity update.
type UpdateUserResponse struct {
	ID       int64  `json:"id"`
	UserName string `json:"userName"`
	Role     Role   `json:"role"`
	IsActive bool   `json:"isActive"`
}

// notBlank rejects empty and whitespace-only strings.
func notBlank(value any) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return errors.New("cannot be blank")
	}
	return nil
}
