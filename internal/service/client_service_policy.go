// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/device-sync-gate/internal/adapter"
	"github.com/MKhiriev/device-sync-gate/internal/capability"
	"github.com/MKhiriev/device-sync-gate/internal/logger"
	"github.com/MKhiriev/device-sync-gate/internal/store"
	"github.com/MKhiriev/device-sync-gate/models"
)

type policyCache struct {
	// refreshMu serializes Refresh and Invalidate so the persisted and
	// in-memory copies are always replaced together.
	refreshMu sync.Mutex

	mu     sync.RWMutex
	policy models.SyncPolicy
	cached bool

	settings store.SettingsStore
	adapter  adapter.ServerAdapter
	now      func() time.Time
	logger   *logger.Logger
}

// NewPolicyCache returns a PolicyCache primed with the last policy persisted
// in settings. A missing or corrupted persisted policy leaves the cache empty.
func NewPolicyCache(ctx context.Context, settings store.SettingsStore, serverAdapter adapter.ServerAdapter, now func() time.Time, logger *logger.Logger) PolicyCache {
	if now == nil {
		now = time.Now
	}

	c := &policyCache{
		settings: settings,
		adapter:  serverAdapter,
		now:      now,
		logger:   logger,
	}

	policy, ok, err := settings.SyncPolicy(ctx)
	switch {
	case errors.Is(err, store.ErrCorruptedValue):
		logger.Warn().Err(err).Str("func", "NewPolicyCache").Msg("persisted policy was corrupted and has been reset")
	case err != nil:
		logger.Err(err).Str("func", "NewPolicyCache").Msg("failed to load persisted policy")
	case ok:
		c.policy, c.cached = policy, true
		logger.Debug().
			Str("func", "NewPolicyCache").
			Strs("allowed", policy.Allowed.Names()).
			Bool("active", policy.Active).
			Time("fetched_at", policy.FetchedAt).
			Msg("loaded persisted policy")
	}

	return c
}

func (c *policyCache) Refresh(ctx context.Context, identity models.DeviceIdentity) (models.SyncPolicy, error) {
	log := logger.FromContextOr(ctx, c.logger)

	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	resp, err := c.adapter.FetchPolicy(ctx, models.PolicyRequest{
		DeviceID:    identity.DeviceID,
		UserSubject: c.adapter.UserSubject(),
	})
	if err != nil {
		log.Err(err).
			Str("func", "policyCache.Refresh").
			Str("device_id", identity.DeviceID).
			Msg("policy fetch failed, keeping cached policy")
		return models.SyncPolicy{}, mapAdapterError(ErrPolicyFetchFailed, err)
	}

	policy := c.policyFromResponse(ctx, resp)

	if err = c.settings.SaveSyncPolicy(ctx, policy); err != nil {
		log.Err(err).
			Str("func", "policyCache.Refresh").
			Msg("failed to persist fetched policy, keeping cached policy")
		return models.SyncPolicy{}, fmt.Errorf("%w: persisting policy: %w", ErrPolicyFetchFailed, err)
	}

	c.mu.Lock()
	c.policy, c.cached = policy, true
	c.mu.Unlock()

	log.Info().
		Str("func", "policyCache.Refresh").
		Strs("allowed", policy.Allowed.Names()).
		Bool("active", policy.Active).
		Msg("policy refreshed")

	return policy, nil
}

func (c *policyCache) policyFromResponse(ctx context.Context, resp models.PolicyResponse) models.SyncPolicy {
	var allowed models.CategorySet
	for _, name := range resp.AllowedCategories {
		category, ok := models.ParseCategory(name)
		if !ok {
			logger.FromContextOr(ctx, c.logger).Warn().
				Str("func", "policyCache.policyFromResponse").
				Str("category", name).
				Msg("ignoring unknown category in policy")
			continue
		}
		allowed = allowed.Add(category)
	}

	return models.SyncPolicy{
		Allowed:   allowed,
		Active:    resp.Active,
		FetchedAt: c.now(),
	}
}

func (c *policyCache) IsAllowed(category models.Category) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.cached && c.policy.Permits(category)
}

func (c *policyCache) AllowedCategories() models.CategorySet {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.cached || !c.policy.Active {
		return 0
	}
	return c.policy.Allowed
}

func (c *policyCache) RequiredCapabilities() models.CapabilitySet {
	return capability.RequiredForSet(c.AllowedCategories())
}

func (c *policyCache) Invalidate(ctx context.Context) error {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	c.mu.Lock()
	c.policy, c.cached = models.SyncPolicy{}, false
	c.mu.Unlock()

	if err := c.settings.ClearSyncPolicy(ctx); err != nil {
		logger.FromContextOr(ctx, c.logger).Err(err).
			Str("func", "policyCache.Invalidate").
			Msg("failed to clear persisted policy")
		return err
	}

	return nil
}

func (c *policyCache) Policy() (models.SyncPolicy, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.policy, c.cached
}

func (c *policyCache) Status(staleAfter time.Duration) PolicyStatus {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.cached {
		return PolicyAbsent
	}
	if staleAfter > 0 && c.now().Sub(c.policy.FetchedAt) > staleAfter {
		return PolicyStale
	}
	return PolicyFresh
}
