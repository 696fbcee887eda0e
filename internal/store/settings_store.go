// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/crypto/blake2b"

	"github.com/MKhiriev/device-sync-gate/internal/logger"
	"github.com/MKhiriev/device-sync-gate/models"
)

// Persisted keys.
const (
	KeyDeviceIdentity     = "device_identity"
	KeySyncPolicy         = "sync_policy"
	KeySyncPolicyChecksum = "sync_policy_checksum"
	KeyBookkeeping        = "sync_bookkeeping"

	flagKeyPrefix = "flag:"
)

const (
	flagTrue  = "1"
	flagFalse = "0"
)

// kvBackend is the persistence primitive under [SettingsStore].
type kvBackend interface {
	get(ctx context.Context, key string) (string, bool, error)
	// setMany writes every pair in a single transaction.
	setMany(ctx context.Context, pairs map[string]string) error
	deleteKeys(ctx context.Context, keys ...string) error
	clear(ctx context.Context) error
}

type settingsStore struct {
	// mu serializes every typed accessor so multi-key writes and
	// read-modify-write cycles are never interleaved.
	mu     sync.Mutex
	kv     kvBackend
	logger *logger.Logger
}

// NewSettingsStore wraps an opened database as a [SettingsStore].
func NewSettingsStore(db *DB, logger *logger.Logger) SettingsStore {
	return &settingsStore{
		kv:     newSQLBackend(db, logger),
		logger: logger,
	}
}

// NewMemorySettingsStore returns a non-durable [SettingsStore] for tests and
// for the one-shot status command.
func NewMemorySettingsStore(logger *logger.Logger) SettingsStore {
	return &settingsStore{
		kv:     newMemoryBackend(),
		logger: logger,
	}
}

func (s *settingsStore) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.kv.get(ctx, key)
}

func (s *settingsStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.kv.setMany(ctx, map[string]string{key: value})
}

func (s *settingsStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.kv.deleteKeys(ctx, key)
}

func (s *settingsStore) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logger.Info().Str("func", "settingsStore.ClearAll").Msg("clearing all settings")
	return s.kv.clear(ctx)
}

func (s *settingsStore) DeviceIdentity(ctx context.Context) (models.DeviceIdentity, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.deviceIdentity(ctx)
}

func (s *settingsStore) deviceIdentity(ctx context.Context) (models.DeviceIdentity, bool, error) {
	raw, ok, err := s.kv.get(ctx, KeyDeviceIdentity)
	if err != nil || !ok {
		return models.DeviceIdentity{}, false, err
	}

	var identity models.DeviceIdentity
	if err = json.Unmarshal([]byte(raw), &identity); err != nil || identity.IsZero() {
		return models.DeviceIdentity{}, false, s.resetCorrupted(ctx, err, KeyDeviceIdentity)
	}

	return identity, true, nil
}

func (s *settingsStore) SaveDeviceIdentity(ctx context.Context, identity models.DeviceIdentity) error {
	if identity.IsZero() {
		return fmt.Errorf("device identity must have a device id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok, err := s.deviceIdentity(ctx)
	if err != nil && !errors.Is(err, ErrCorruptedValue) {
		return err
	}
	if ok {
		if existing.DeviceID == identity.DeviceID {
			return nil
		}
		s.logger.Warn().
			Str("func", "settingsStore.SaveDeviceIdentity").
			Str("device_id", existing.DeviceID).
			Msg("refusing to replace device identity")
		return ErrIdentityImmutable
	}

	raw, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("failed to encode device identity: %w", err)
	}

	return s.kv.setMany(ctx, map[string]string{KeyDeviceIdentity: string(raw)})
}

func (s *settingsStore) SyncPolicy(ctx context.Context) (models.SyncPolicy, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok, err := s.kv.get(ctx, KeySyncPolicy)
	if err != nil || !ok {
		return models.SyncPolicy{}, false, err
	}

	sum, _, err := s.kv.get(ctx, KeySyncPolicyChecksum)
	if err != nil {
		return models.SyncPolicy{}, false, err
	}
	if sum != policyChecksum([]byte(raw)) {
		return models.SyncPolicy{}, false, s.resetCorrupted(ctx, errors.New("checksum mismatch"), KeySyncPolicy, KeySyncPolicyChecksum)
	}

	var policy models.SyncPolicy
	if err = json.Unmarshal([]byte(raw), &policy); err != nil {
		return models.SyncPolicy{}, false, s.resetCorrupted(ctx, err, KeySyncPolicy, KeySyncPolicyChecksum)
	}

	return policy, true, nil
}

func (s *settingsStore) SaveSyncPolicy(ctx context.Context, policy models.SyncPolicy) error {
	raw, err := json.Marshal(policy)
	if err != nil {
		return fmt.Errorf("failed to encode sync policy: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.kv.setMany(ctx, map[string]string{
		KeySyncPolicy:         string(raw),
		KeySyncPolicyChecksum: policyChecksum(raw),
	})
}

func (s *settingsStore) ClearSyncPolicy(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.kv.deleteKeys(ctx, KeySyncPolicy, KeySyncPolicyChecksum)
}

func (s *settingsStore) Bookkeeping(ctx context.Context) (models.SyncBookkeeping, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.bookkeeping(ctx)
}

func (s *settingsStore) bookkeeping(ctx context.Context) (models.SyncBookkeeping, error) {
	raw, ok, err := s.kv.get(ctx, KeyBookkeeping)
	if err != nil {
		return nil, err
	}
	if !ok {
		return models.SyncBookkeeping{}, nil
	}

	var b models.SyncBookkeeping
	if err = json.Unmarshal([]byte(raw), &b); err != nil {
		return models.SyncBookkeeping{}, s.resetCorrupted(ctx, err, KeyBookkeeping)
	}

	return b, nil
}

func (s *settingsStore) UpdateBookkeeping(ctx context.Context, fn func(models.SyncBookkeeping) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := s.bookkeeping(ctx)
	if err != nil && !errors.Is(err, ErrCorruptedValue) {
		return err
	}

	if err = fn(b); err != nil {
		return err
	}

	raw, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("failed to encode sync bookkeeping: %w", err)
	}

	return s.kv.setMany(ctx, map[string]string{KeyBookkeeping: string(raw)})
}

func (s *settingsStore) Flag(ctx context.Context, name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := flagKeyPrefix + name
	raw, ok, err := s.kv.get(ctx, key)
	if err != nil || !ok {
		return false, err
	}

	switch raw {
	case flagTrue:
		return true, nil
	case flagFalse:
		return false, nil
	default:
		return false, s.resetCorrupted(ctx, fmt.Errorf("unexpected flag value %q", raw), key)
	}
}

func (s *settingsStore) SetFlag(ctx context.Context, name string, value bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw := flagFalse
	if value {
		raw = flagTrue
	}

	return s.kv.setMany(ctx, map[string]string{flagKeyPrefix + name: raw})
}

// resetCorrupted removes undecodable keys and reports ErrCorruptedValue. A
// failed removal is returned instead so the caller does not assume a reset.
func (s *settingsStore) resetCorrupted(ctx context.Context, cause error, keys ...string) error {
	s.logger.Warn().
		Err(cause).
		Str("func", "settingsStore.resetCorrupted").
		Strs("keys", keys).
		Msg("persisted value is corrupted, resetting to default")

	if err := s.kv.deleteKeys(ctx, keys...); err != nil {
		return fmt.Errorf("failed to reset corrupted value: %w", err)
	}

	return fmt.Errorf("%w: %s", ErrCorruptedValue, keys[0])
}

func policyChecksum(raw []byte) string {
	sum := blake2b.Sum256(raw)
	return hex.EncodeToString(sum[:])
}
