// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/device-sync-gate/internal/adapter"
	"github.com/MKhiriev/device-sync-gate/internal/capability"
	"github.com/MKhiriev/device-sync-gate/internal/config"
	"github.com/MKhiriev/device-sync-gate/internal/logger"
	"github.com/MKhiriev/device-sync-gate/internal/store"
	"github.com/MKhiriev/device-sync-gate/internal/utils"
	"github.com/MKhiriev/device-sync-gate/models"
)

// ClientServices groups the device-side services.
type ClientServices struct {
	Identity     IdentityService
	Policy       PolicyCache
	Timing       TimingEngine
	Registration RegistrationGuard
	Gate         SyncGate
	Runner       SyncRunner
	SyncJob      SyncJob
}

// NewClientServices wires every service over one settings store and server
// adapter. now may be nil to use the wall clock.
func NewClientServices(
	ctx context.Context,
	cfg config.ClientSync,
	settings store.SettingsStore,
	serverAdapter adapter.ServerAdapter,
	grants capability.GrantChecker,
	collectors map[models.Category]Collector,
	now func() time.Time,
	logger *logger.Logger,
) *ClientServices {
	policy := NewPolicyCache(ctx, settings, serverAdapter, now, logger)
	timing := NewTimingEngine(settings, cfg.IntervalOverrides, now, logger)
	registration := NewRegistrationGuard(settings, serverAdapter, logger)
	gate := NewSyncGate(policy, capability.NewGate(grants), timing, registration)
	runner := NewSyncRunner(gate, collectors, logger)

	return &ClientServices{
		Identity:     NewIdentityService(settings, utils.NewUUIDGenerator(), now, logger),
		Policy:       policy,
		Timing:       timing,
		Registration: registration,
		Gate:         gate,
		Runner:       runner,
		SyncJob:      NewClientSyncJob(runner),
	}
}
