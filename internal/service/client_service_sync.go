// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/device-sync-gate/internal/logger"
	"github.com/MKhiriev/device-sync-gate/models"
)

// Collector reads and uploads one category's data. A nil error means the
// sync is confirmed and the category's cooldown restarts.
type Collector interface {
	Collect(ctx context.Context, c models.Category) error
}

// CollectorFunc adapts a function to Collector.
type CollectorFunc func(ctx context.Context, c models.Category) error

// Collect implements Collector.
func (f CollectorFunc) Collect(ctx context.Context, c models.Category) error {
	return f(ctx, c)
}

// PassResult summarizes one sync pass.
type PassResult struct {
	Synced  []models.Category
	Skipped []models.Category
	Failed  map[models.Category]error
}

// SyncRunner performs a single pass over every category.
type SyncRunner interface {
	RunOnce(ctx context.Context, force bool) PassResult
}

type syncRunner struct {
	gate       SyncGate
	collectors map[models.Category]Collector
	logger     *logger.Logger
}

// NewSyncRunner returns a runner that syncs each category with a registered
// collector whenever gate allows it.
func NewSyncRunner(gate SyncGate, collectors map[models.Category]Collector, logger *logger.Logger) SyncRunner {
	return &syncRunner{
		gate:       gate,
		collectors: collectors,
		logger:     logger,
	}
}

// RunOnce visits categories in declaration order. A failing category is
// recorded and never stops the others.
func (r *syncRunner) RunOnce(ctx context.Context, force bool) PassResult {
	result := PassResult{Failed: make(map[models.Category]error)}

	for _, c := range models.AllCategories() {
		if ctx.Err() != nil {
			break
		}

		collector, ok := r.collectors[c]
		if !ok || !r.gate.ShouldSync(ctx, c, force) {
			result.Skipped = append(result.Skipped, c)
			continue
		}

		if err := r.collect(ctx, collector, c); err != nil {
			r.logger.Err(err).
				Str("func", "syncRunner.RunOnce").
				Stringer("category", c).
				Msg("category sync failed")
			result.Failed[c] = err
			continue
		}

		if err := r.gate.RecordSuccess(ctx, c); err != nil {
			result.Failed[c] = err
			continue
		}
		result.Synced = append(result.Synced, c)
	}

	r.logger.Info().
		Str("func", "syncRunner.RunOnce").
		Int("synced", len(result.Synced)).
		Int("skipped", len(result.Skipped)).
		Int("failed", len(result.Failed)).
		Msg("sync pass finished")

	return result
}

// collect isolates a panicking collector so it cannot take down the pass.
func (r *syncRunner) collect(ctx context.Context, collector Collector, c models.Category) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("collector for %s panicked: %v", c, p)
		}
	}()
	return collector.Collect(ctx, c)
}
