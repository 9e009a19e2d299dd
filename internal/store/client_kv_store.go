// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/blog-auth/internal/logger"
)

// localKVStorage is the SQLite-backed implementation of [LocalStorage].
type localKVStorage struct {
	db     *DB
	logger *logger.Logger
}

// NewLocalStorage returns a [LocalStorage] over an already migrated client
// database.
func NewLocalStorage(db *DB, logger *logger.Logger) LocalStorage {
	return &localKVStorage{db: db, logger: logger}
}

// GetItem implements [LocalStorage].
func (s *localKVStorage) GetItem(ctx context.Context, key string) (string, error) {
	query, args, err := buildGetItemQuery(key)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", nil
	case err != nil:
		s.logger.Err(err).Str("func", "*localKVStorage.GetItem").Msg("error reading item")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

// SetItem implements [LocalStorage]. An existing key is overwritten.
func (s *localKVStorage) SetItem(ctx context.Context, key, value string) error {
	query, args, err := buildSetItemQuery(key, value)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "*localKVStorage.SetItem").Msg("error writing item")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// RemoveItem implements [LocalStorage]. Removing a missing key is not an
// error.
func (s *localKVStorage) RemoveItem(ctx context.Context, key string) error {
	query, args, err := buildRemoveItemQuery(key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "*localKVStorage.RemoveItem").Msg("error removing item")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// Close releases the database.
func (s *localKVStorage) Close() error {
	return s.db.Close()
}
