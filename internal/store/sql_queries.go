// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	settingsTable = "settings"

	upsertSettingSuffix = "ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at"
)

func buildGetSettingQuery(key string) (string, []any, error) {
	return sq.Select("value").
		From(settingsTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}

func buildUpsertSettingQuery(key, value string) (string, []any, error) {
	return sq.Insert(settingsTable).
		Columns("key", "value", "updated_at").
		Values(key, value, sq.Expr("CURRENT_TIMESTAMP")).
		Suffix(upsertSettingSuffix).
		ToSql()
}

func buildDeleteSettingsQuery(keys ...string) (string, []any, error) {
	return sq.Delete(settingsTable).
		Where(sq.Eq{"key": keys}).
		ToSql()
}

func buildClearSettingsQuery() (string, []any, error) {
	return sq.Delete(settingsTable).ToSql()
}
