// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/blog-auth/internal/adapter"
	"github.com/MKhiriev/blog-auth/internal/policy"
	"github.com/MKhiriev/blog-auth/internal/session"
	"github.com/MKhiriev/blog-auth/internal/store"
)

// ClientServices groups what the client commands need.
type ClientServices struct {
	AuthService ClientAuthService
	Sessions    *session.Provider
	Policies    *policy.Engine
}

// NewClientServices builds the client services over the local store and
// the server adapter.
func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, opts ...session.Option) *ClientServices {
	sessions := session.NewProvider(storages.LocalStorage, opts...)

	return &ClientServices{
		AuthService: NewClientAuthService(storages.LocalStorage, serverAdapter, sessions),
		Sessions:    sessions,
		Policies:    policy.NewEngine(),
	}
}
