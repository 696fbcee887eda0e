// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/device-sync-gate/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/settings_store_mock.go -package=mock

// SettingsStore is the durable key/value cache backing every other
// component. Reads of absent keys return the documented defaults, never an
// error. Writes are durable before the call returns.
type SettingsStore interface {
	// Get returns the raw value for key; ok is false when it is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Set stores a raw value.
	Set(ctx context.Context, key, value string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	// ClearAll removes every stored value.
	ClearAll(ctx context.Context) error

	// DeviceIdentity returns the persisted identity; ok is false before the
	// first SaveDeviceIdentity.
	DeviceIdentity(ctx context.Context) (identity models.DeviceIdentity, ok bool, err error)
	// SaveDeviceIdentity persists the identity once. Saving a different
	// identity over an existing one fails with ErrIdentityImmutable.
	SaveDeviceIdentity(ctx context.Context, identity models.DeviceIdentity) error

	// SyncPolicy returns the cached policy; ok is false when none is stored.
	// A corrupted blob is removed and reported as ErrCorruptedValue with
	// ok=false.
	SyncPolicy(ctx context.Context) (policy models.SyncPolicy, ok bool, err error)
	// SaveSyncPolicy replaces the cached policy and its checksum atomically.
	SaveSyncPolicy(ctx context.Context, policy models.SyncPolicy) error
	// ClearSyncPolicy removes the cached policy.
	ClearSyncPolicy(ctx context.Context) error

	// Bookkeeping returns a copy of the per-category timing state; empty
	// when none is stored. A corrupted blob is removed and reported as
	// ErrCorruptedValue together with an empty map.
	Bookkeeping(ctx context.Context) (models.SyncBookkeeping, error)
	// UpdateBookkeeping runs a read-modify-write of the timing state under
	// the store lock. Nothing is written when fn returns an error.
	UpdateBookkeeping(ctx context.Context, fn func(models.SyncBookkeeping) error) error

	// Flag returns a named boolean flag, false when absent.
	Flag(ctx context.Context, name string) (bool, error)
	// SetFlag persists a named boolean flag.
	SetFlag(ctx context.Context, name string, value bool) error
}
