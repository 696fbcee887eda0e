// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/device-sync-gate/internal/config"
	"github.com/MKhiriev/device-sync-gate/internal/logger"
	"github.com/MKhiriev/device-sync-gate/models"
)

func newSQLiteStore(t *testing.T) SettingsStore {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "nested", "settings.db")
	storages, err := NewClientStorages(context.Background(), config.ClientStorage{DB: config.ClientDB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })
	return storages.Settings
}

// forEachStore runs fn against every backend.
func forEachStore(t *testing.T, fn func(t *testing.T, s SettingsStore)) {
	t.Run("memory", func(t *testing.T) { fn(t, NewMemorySettingsStore(logger.Nop())) })
	t.Run("sqlite", func(t *testing.T) { fn(t, newSQLiteStore(t)) })
}

func TestSettingsStore_RawKeys(t *testing.T) {
	forEachStore(t, func(t *testing.T, s SettingsStore) {
		ctx := context.Background()

		_, ok, err := s.Get(ctx, "missing")
		require.NoError(t, err)
		assert.False(t, ok)

		require.NoError(t, s.Set(ctx, "k", "v1"))
		require.NoError(t, s.Set(ctx, "k", "v2"))
		v, ok, err := s.Get(ctx, "k")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "v2", v)

		require.NoError(t, s.Delete(ctx, "k"))
		require.NoError(t, s.Delete(ctx, "k"))
		_, ok, err = s.Get(ctx, "k")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestSettingsStore_Defaults(t *testing.T) {
	forEachStore(t, func(t *testing.T, s SettingsStore) {
		ctx := context.Background()

		_, ok, err := s.DeviceIdentity(ctx)
		require.NoError(t, err)
		assert.False(t, ok)

		_, ok, err = s.SyncPolicy(ctx)
		require.NoError(t, err)
		assert.False(t, ok)

		b, err := s.Bookkeeping(ctx)
		require.NoError(t, err)
		assert.Empty(t, b)

		f, err := s.Flag(ctx, "registration_confirmed")
		require.NoError(t, err)
		assert.False(t, f)
	})
}

func TestSettingsStore_DeviceIdentityImmutable(t *testing.T) {
	forEachStore(t, func(t *testing.T, s SettingsStore) {
		ctx := context.Background()
		id := models.DeviceIdentity{
			DeviceID:  "device-1",
			Metadata:  models.DeviceMetadata{Manufacturer: "Acme", Model: "X1", OSVersion: "14"},
			CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		}

		require.NoError(t, s.SaveDeviceIdentity(ctx, id))
		require.NoError(t, s.SaveDeviceIdentity(ctx, id), "re-saving the same identity is a no-op")

		err := s.SaveDeviceIdentity(ctx, models.DeviceIdentity{DeviceID: "device-2"})
		assert.ErrorIs(t, err, ErrIdentityImmutable)

		got, ok, err := s.DeviceIdentity(ctx)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "device-1", got.DeviceID)
		assert.Equal(t, "Acme", got.Metadata.Manufacturer)
		assert.True(t, id.CreatedAt.Equal(got.CreatedAt))
	})
}

func TestSettingsStore_SaveDeviceIdentity_EmptyID(t *testing.T) {
	s := NewMemorySettingsStore(logger.Nop())
	require.Error(t, s.SaveDeviceIdentity(context.Background(), models.DeviceIdentity{}))
}

func TestSettingsStore_SyncPolicyRoundTrip(t *testing.T) {
	forEachStore(t, func(t *testing.T, s SettingsStore) {
		ctx := context.Background()
		policy := models.SyncPolicy{
			Allowed:   models.NewCategorySet(models.CategoryContacts, models.CategoryNotifications),
			Active:    true,
			FetchedAt: time.UnixMilli(1_700_000_000_000).UTC(),
		}

		require.NoError(t, s.SaveSyncPolicy(ctx, policy))
		got, ok, err := s.SyncPolicy(ctx)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, policy.Allowed, got.Allowed)
		assert.True(t, got.Active)
		assert.True(t, policy.FetchedAt.Equal(got.FetchedAt))

		require.NoError(t, s.ClearSyncPolicy(ctx))
		_, ok, err = s.SyncPolicy(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestSettingsStore_SyncPolicyCorrupted(t *testing.T) {
	tests := []struct {
		name     string
		policy   string
		checksum string
	}{
		{name: "checksum mismatch", policy: `{"allowed_categories":["CONTACTS"],"active":true}`, checksum: "deadbeef"},
		{name: "missing checksum", policy: `{"allowed_categories":["CONTACTS"],"active":true}`},
		{name: "undecodable blob", policy: `{not json`, checksum: policyChecksum([]byte(`{not json`))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			forEachStore(t, func(t *testing.T, s SettingsStore) {
				ctx := context.Background()
				require.NoError(t, s.Set(ctx, KeySyncPolicy, tt.policy))
				if tt.checksum != "" {
					require.NoError(t, s.Set(ctx, KeySyncPolicyChecksum, tt.checksum))
				}

				policy, ok, err := s.SyncPolicy(ctx)
				assert.ErrorIs(t, err, ErrCorruptedValue)
				assert.False(t, ok)
				assert.False(t, policy.Active)

				// reset to default
				_, ok, err = s.SyncPolicy(ctx)
				require.NoError(t, err)
				assert.False(t, ok)
				_, ok, err = s.Get(ctx, KeySyncPolicyChecksum)
				require.NoError(t, err)
				assert.False(t, ok)
			})
		})
	}
}

func TestSettingsStore_Bookkeeping(t *testing.T) {
	forEachStore(t, func(t *testing.T, s SettingsStore) {
		ctx := context.Background()
		zero := int64(0)

		require.NoError(t, s.UpdateBookkeeping(ctx, func(b models.SyncBookkeeping) error {
			b[models.CategoryContacts] = models.CategoryTiming{LastSyncMillis: 42}
			b[models.CategoryMessages] = models.CategoryTiming{IntervalMillis: &zero}
			return nil
		}))

		b, err := s.Bookkeeping(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(42), b[models.CategoryContacts].LastSyncMillis)
		require.NotNil(t, b[models.CategoryMessages].IntervalMillis)
		assert.Equal(t, int64(0), *b[models.CategoryMessages].IntervalMillis)

		failure := errors.New("abort")
		err = s.UpdateBookkeeping(ctx, func(b models.SyncBookkeeping) error {
			b[models.CategoryContacts] = models.CategoryTiming{LastSyncMillis: 99}
			return failure
		})
		assert.ErrorIs(t, err, failure)

		b, err = s.Bookkeeping(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(42), b[models.CategoryContacts].LastSyncMillis, "failed update must not be written")
	})
}

func TestSettingsStore_BookkeepingCorrupted(t *testing.T) {
	forEachStore(t, func(t *testing.T, s SettingsStore) {
		ctx := context.Background()
		require.NoError(t, s.Set(ctx, KeyBookkeeping, "[1,2"))

		b, err := s.Bookkeeping(ctx)
		assert.ErrorIs(t, err, ErrCorruptedValue)
		assert.NotNil(t, b)
		assert.Empty(t, b)

		require.NoError(t, s.UpdateBookkeeping(ctx, func(b models.SyncBookkeeping) error {
			b[models.CategoryCalendar] = models.CategoryTiming{LastSyncMillis: 7}
			return nil
		}))
		b, err = s.Bookkeeping(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(7), b[models.CategoryCalendar].LastSyncMillis)
	})
}

func TestSettingsStore_ConcurrentBookkeepingUpdates(t *testing.T) {
	forEachStore(t, func(t *testing.T, s SettingsStore) {
		ctx := context.Background()
		const workers = 20

		var wg sync.WaitGroup
		for range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.NoError(t, s.UpdateBookkeeping(ctx, func(b models.SyncBookkeeping) error {
					timing := b[models.CategoryDeviceInfo]
					timing.LastSyncMillis++
					b[models.CategoryDeviceInfo] = timing
					return nil
				}))
			}()
		}
		wg.Wait()

		b, err := s.Bookkeeping(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(workers), b[models.CategoryDeviceInfo].LastSyncMillis)
	})
}

func TestSettingsStore_Flags(t *testing.T) {
	forEachStore(t, func(t *testing.T, s SettingsStore) {
		ctx := context.Background()

		require.NoError(t, s.SetFlag(ctx, "sync_enabled", true))
		v, err := s.Flag(ctx, "sync_enabled")
		require.NoError(t, err)
		assert.True(t, v)

		require.NoError(t, s.SetFlag(ctx, "sync_enabled", false))
		v, err = s.Flag(ctx, "sync_enabled")
		require.NoError(t, err)
		assert.False(t, v)

		require.NoError(t, s.Set(ctx, "flag:broken", "maybe"))
		v, err = s.Flag(ctx, "broken")
		assert.ErrorIs(t, err, ErrCorruptedValue)
		assert.False(t, v)
		_, ok, err := s.Get(ctx, "flag:broken")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestSettingsStore_ClearAll(t *testing.T) {
	forEachStore(t, func(t *testing.T, s SettingsStore) {
		ctx := context.Background()
		require.NoError(t, s.SaveDeviceIdentity(ctx, models.DeviceIdentity{DeviceID: "d"}))
		require.NoError(t, s.SetFlag(ctx, "registration_confirmed", true))

		require.NoError(t, s.ClearAll(ctx))

		_, ok, err := s.DeviceIdentity(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
		f, err := s.Flag(ctx, "registration_confirmed")
		require.NoError(t, err)
		assert.False(t, f)
	})
}

func TestSettingsStore_SQLiteSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	cfg := config.ClientStorage{DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "settings.db")}}

	first, err := NewClientStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, first.Settings.SetFlag(ctx, "registration_confirmed", true))
	require.NoError(t, first.Close())

	second, err := NewClientStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	defer second.Close()

	v, err := second.Settings.Flag(ctx, "registration_confirmed")
	require.NoError(t, err)
	assert.True(t, v)
}
