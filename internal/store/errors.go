// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by the settings store. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrCorruptedValue is returned when a persisted structure cannot be
	// decoded or fails its checksum. The value has already been removed and
	// the accompanying result is the safe default.
	ErrCorruptedValue = errors.New("persisted value is corrupted")

	// ErrIdentityImmutable is returned when a different device identity is
	// saved over an existing one.
	ErrIdentityImmutable = errors.New("device identity is already set")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the driver cannot start a
	// transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing a transaction fails.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when an INSERT/UPDATE/DELETE fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan settings row")
)
