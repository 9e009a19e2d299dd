// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/blog-auth/models"
)

const userColumns = `user_id, username, nickname, COALESCE(email, ''), password_hash, password_salt,
    avatar_url, bio, role, is_active, created_at, last_login_at`

const (
	createUser = `INSERT INTO users (username, nickname, email, password_hash, password_salt, avatar_url, bio, role, is_active)
    VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9)
    RETURNING ` + userColumns + `;`

	findUserByUsername = `SELECT ` + userColumns + `
    FROM users
    WHERE username = $1;`

	findUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE user_id = $1;`

	updateLastLogin = `UPDATE users
    SET last_login_at = NOW()
    WHERE user_id = $1;`
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildUpdateUserQuery builds an UPDATE touching only the fields set in
// update.
func buildUpdateUserQuery(update models.UserUpdate) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, ErrNothingToUpdate
	}

	builder := psql.Update(models.User{}.TableName())
	if update.Role != nil {
		builder = builder.Set("role", int16(*update.Role))
	}
	if update.IsActive != nil {
		builder = builder.Set("is_active", *update.IsActive)
	}

	return builder.
		Where(sq.Eq{"user_id": update.UserID}).
		Suffix("RETURNING " + userColumns).
		ToSql()
}

// Client key/value store. SQLite uses "?" placeholders.
const kvTable = "kv_store"

func buildGetItemQuery(key string) (string, []any, error) {
	return sq.Select("item_value").
		From(kvTable).
		Where(sq.Eq{"item_key": key}).
		ToSql()
}

func buildSetItemQuery(key, value string) (string, []any, error) {
	return sq.Insert(kvTable).
		Columns("item_key", "item_value").
		Values(key, value).
		Suffix("ON CONFLICT(item_key) DO UPDATE SET item_value = excluded.item_value, updated_at = CURRENT_TIMESTAMP").
		ToSql()
}

func buildRemoveItemQuery(key string) (string, []any, error) {
	return sq.Delete(kvTable).
		Where(sq.Eq{"item_key": key}).
		ToSql()
}
