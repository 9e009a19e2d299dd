// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/session_storage_mock.go -package=mock

// Storage is an opaque string key/value store local to the client.
// GetItem returns "" and a nil error for a missing key.
type Storage interface {
	GetItem(ctx context.Context, key string) (string, error)
	SetItem(ctx context.Context, key, value string) error
}
