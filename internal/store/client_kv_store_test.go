// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/blog-auth/internal/config"
	"github.com/MKhiriev/blog-auth/internal/logger"
)

func TestLocalStorage_RoundTrip(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "nested", "client.db")

	storages, err := NewClientStorages(ctx, config.ClientStorage{DSN: dsn}, logger.Nop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	kv := storages.LocalStorage
	defer kv.Close()

	value, err := kv.GetItem(ctx, "authToken")
	if err != nil || value != "" {
		t.Fatalf("expected empty value for missing key, got %q (%v)", value, err)
	}

	if err := kv.SetItem(ctx, "authToken", "first"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := kv.SetItem(ctx, "authToken", "second"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	value, err = kv.GetItem(ctx, "authToken")
	if err != nil || value != "second" {
		t.Fatalf("expected %q, got %q (%v)", "second", value, err)
	}

	if err := kv.RemoveItem(ctx, "authToken"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := kv.RemoveItem(ctx, "authToken"); err != nil {
		t.Fatalf("second remove: %v", err)
	}

	value, err = kv.GetItem(ctx, "authToken")
	if err != nil || value != "" {
		t.Fatalf("expected removed key to read empty, got %q (%v)", value, err)
	}
}
