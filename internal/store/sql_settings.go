// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/MKhiriev/device-sync-gate/internal/logger"
)

type sqlBackend struct {
	*DB
	logger *logger.Logger
}

func newSQLBackend(db *DB, logger *logger.Logger) *sqlBackend {
	return &sqlBackend{DB: db, logger: logger}
}

func (b *sqlBackend) get(ctx context.Context, key string) (string, bool, error) {
	query, args, err := buildGetSettingQuery(key)
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = b.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", false, nil
	case err != nil:
		b.logger.Err(err).
			Str("func", "sqlBackend.get").
			Str("key", key).
			Msg("failed to read setting")
		return "", false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return value, true, nil
}

func (b *sqlBackend) setMany(ctx context.Context, pairs map[string]string) error {
	return b.inTx(ctx, "sqlBackend.setMany", func(tx *sql.Tx) error {
		for _, key := range slices.Sorted(maps.Keys(pairs)) {
			query, args, err := buildUpsertSettingQuery(key, pairs[key])
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
			}
			if _, err = tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("%w (key=%s): %w", ErrExecutingStatement, key, err)
			}
		}
		return nil
	})
}

func (b *sqlBackend) deleteKeys(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	query, args, err := buildDeleteSettingsQuery(keys...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = b.DB.ExecContext(ctx, query, args...); err != nil {
		b.logger.Err(err).
			Str("func", "sqlBackend.deleteKeys").
			Strs("keys", keys).
			Msg("failed to delete settings")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (b *sqlBackend) clear(ctx context.Context) error {
	query, args, err := buildClearSettingsQuery()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = b.DB.ExecContext(ctx, query, args...); err != nil {
		b.logger.Err(err).Str("func", "sqlBackend.clear").Msg("failed to clear settings")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (b *sqlBackend) inTx(ctx context.Context, funcName string, fn func(tx *sql.Tx) error) error {
	tx, err := b.DB.BeginTx(ctx, nil)
	if err != nil {
		b.logger.Err(err).Str("func", funcName).Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	if err = fn(tx); err != nil {
		b.logger.Err(err).Str("func", funcName).Msg("rolling back transaction")
		_ = tx.Rollback()
		return err
	}

	if err = tx.Commit(); err != nil {
		b.logger.Err(err).Str("func", funcName).Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
