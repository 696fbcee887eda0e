// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"time"

	"github.com/MKhiriev/device-sync-gate/internal/logger"
	"github.com/MKhiriev/device-sync-gate/internal/store"
	"github.com/MKhiriev/device-sync-gate/models"
)

// FlagSyncDisabled is the settings flag behind the global sync switch.
const FlagSyncDisabled = "sync_disabled"

// DefaultIntervals returns the built-in cooldown of every category.
func DefaultIntervals() map[models.Category]time.Duration {
	return map[models.Category]time.Duration{
		models.CategoryContacts:      30 * time.Hour,
		models.CategoryCallLogs:      6 * time.Hour,
		models.CategoryMessages:      6 * time.Hour,
		models.CategoryNotifications: 0,
		models.CategoryEmailAccounts: 24 * time.Hour,
		models.CategoryCalendar:      12 * time.Hour,
		models.CategoryDeviceInfo:    24 * time.Hour,
	}
}

type timingEngine struct {
	settings store.SettingsStore
	defaults map[models.Category]time.Duration
	now      func() time.Time
	logger   *logger.Logger
}

// NewTimingEngine returns a TimingEngine over settings. configured
// intervals take precedence over the built-in defaults; persisted
// overrides take precedence over both.
func NewTimingEngine(settings store.SettingsStore, configured map[models.Category]time.Duration, now func() time.Time, logger *logger.Logger) TimingEngine {
	if now == nil {
		now = time.Now
	}

	defaults := DefaultIntervals()
	maps.Copy(defaults, configured)

	return &timingEngine{
		settings: settings,
		defaults: defaults,
		now:      now,
		logger:   logger,
	}
}

func (e *timingEngine) CanSyncNow(ctx context.Context, c models.Category, force bool) bool {
	if force {
		return true
	}
	if !c.Valid() || !e.SyncEnabled(ctx) {
		return false
	}

	timing, ok := e.timing(ctx, c)
	if !ok {
		return false
	}
	if timing.LastSyncMillis == 0 {
		return true
	}

	interval := e.intervalOf(c, timing)
	if interval == 0 {
		return true
	}

	elapsed := e.now().UnixMilli() - timing.LastSyncMillis
	if elapsed < 0 {
		e.logger.Warn().
			Str("func", "timingEngine.CanSyncNow").
			Stringer("category", c).
			Int64("elapsed_ms", elapsed).
			Msg("clock is behind last sync, not eligible")
		return false
	}

	return elapsed >= interval.Milliseconds()
}

// timing reads the bookkeeping of c. ok is false when the store could not
// be read; a corrupted blob counts as empty.
func (e *timingEngine) timing(ctx context.Context, c models.Category) (models.CategoryTiming, bool) {
	b, err := e.settings.Bookkeeping(ctx)
	if err != nil && !errors.Is(err, store.ErrCorruptedValue) {
		e.logger.Err(err).
			Str("func", "timingEngine.timing").
			Stringer("category", c).
			Msg("failed to read sync bookkeeping")
		return models.CategoryTiming{}, false
	}
	return b[c], true
}

// intervalOf ignores a negative override: SetIntervalOverride never writes
// one, so it can only come from a damaged blob.
func (e *timingEngine) intervalOf(c models.Category, timing models.CategoryTiming) time.Duration {
	if timing.IntervalMillis != nil && *timing.IntervalMillis >= 0 {
		return time.Duration(*timing.IntervalMillis) * time.Millisecond
	}
	return e.defaults[c]
}

func (e *timingEngine) RecordSuccess(ctx context.Context, c models.Category) error {
	return e.RecordSuccessAt(ctx, c, e.now())
}

func (e *timingEngine) RecordSuccessAt(ctx context.Context, c models.Category, ts time.Time) error {
	if !c.Valid() {
		return fmt.Errorf("%w: %s", ErrUnknownCategory, c)
	}

	millis := ts.UnixMilli()
	err := e.settings.UpdateBookkeeping(ctx, func(b models.SyncBookkeeping) error {
		timing := b[c]
		if millis <= timing.LastSyncMillis {
			return nil
		}
		timing.LastSyncMillis = millis
		b[c] = timing
		return nil
	})
	if err != nil {
		e.logger.Err(err).
			Str("func", "timingEngine.RecordSuccessAt").
			Stringer("category", c).
			Msg("failed to record sync success")
		return err
	}

	e.logger.Debug().
		Str("func", "timingEngine.RecordSuccessAt").
		Stringer("category", c).
		Int64("last_sync_ms", millis).
		Msg("sync success recorded")
	return nil
}

func (e *timingEngine) SetIntervalOverride(ctx context.Context, c models.Category, interval time.Duration) error {
	if !c.Valid() {
		return fmt.Errorf("%w: %s", ErrUnknownCategory, c)
	}
	if interval < 0 {
		return fmt.Errorf("%w: %s for %s", ErrInvalidInterval, interval, c)
	}

	millis := interval.Milliseconds()
	return e.settings.UpdateBookkeeping(ctx, func(b models.SyncBookkeeping) error {
		timing := b[c]
		timing.IntervalMillis = &millis
		b[c] = timing
		return nil
	})
}

func (e *timingEngine) ClearIntervalOverride(ctx context.Context, c models.Category) error {
	if !c.Valid() {
		return fmt.Errorf("%w: %s", ErrUnknownCategory, c)
	}

	return e.settings.UpdateBookkeeping(ctx, func(b models.SyncBookkeeping) error {
		timing, ok := b[c]
		if !ok {
			return nil
		}
		timing.IntervalMillis = nil
		b[c] = timing
		return nil
	})
}

func (e *timingEngine) Interval(ctx context.Context, c models.Category) time.Duration {
	timing, _ := e.timing(ctx, c)
	return e.intervalOf(c, timing)
}

func (e *timingEngine) NextEligibleAt(ctx context.Context, c models.Category) time.Time {
	timing, ok := e.timing(ctx, c)
	if !ok || timing.LastSyncMillis == 0 {
		return time.Time{}
	}

	interval := e.intervalOf(c, timing)
	if interval == 0 {
		return time.Time{}
	}

	next := time.UnixMilli(timing.LastSyncMillis).Add(interval)
	if !next.After(e.now()) {
		return time.Time{}
	}
	return next
}

func (e *timingEngine) SetSyncEnabled(ctx context.Context, enabled bool) error {
	return e.settings.SetFlag(ctx, FlagSyncDisabled, !enabled)
}

func (e *timingEngine) SyncEnabled(ctx context.Context) bool {
	disabled, err := e.settings.Flag(ctx, FlagSyncDisabled)
	if err != nil && !errors.Is(err, store.ErrCorruptedValue) {
		e.logger.Err(err).
			Str("func", "timingEngine.SyncEnabled").
			Msg("failed to read sync switch, treating sync as disabled")
		return false
	}
	return !disabled
}
