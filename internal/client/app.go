// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"
	"maps"
	"sync/atomic"
	"time"

	"github.com/sethvargo/go-retry"
	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/device-sync-gate/internal/adapter"
	"github.com/MKhiriev/device-sync-gate/internal/capability"
	"github.com/MKhiriev/device-sync-gate/internal/config"
	"github.com/MKhiriev/device-sync-gate/internal/logger"
	"github.com/MKhiriev/device-sync-gate/internal/service"
	"github.com/MKhiriev/device-sync-gate/internal/store"
	"github.com/MKhiriev/device-sync-gate/internal/workers"
	"github.com/MKhiriev/device-sync-gate/models"
)

// Backoff bounds of the startup policy refresh.
const (
	refreshBaseDelay  = time.Second
	refreshMaxDelay   = 30 * time.Second
	refreshMaxRetries = 5
)

// App is the device sync runtime.
type App struct {
	cfg       *config.ClientConfig
	buildInfo models.AppBuildInfo
	services  *service.ClientServices
	logger    *logger.Logger
	identity  atomic.Pointer[models.DeviceIdentity]

	refreshBackoff func() retry.Backoff
}

// NewApp wires an App over already constructed dependencies. collectors
// maps each category the host can read to its collector; categories
// without one are never synchronized. DEVICE_INFO gets a
// [DeviceInfoCollector] unless collectors already has one.
func NewApp(
	ctx context.Context,
	cfg *config.ClientConfig,
	buildInfo models.AppBuildInfo,
	settings store.SettingsStore,
	serverAdapter adapter.ServerAdapter,
	collectors map[models.Category]service.Collector,
	logger *logger.Logger,
) *App {
	a := &App{
		cfg:            cfg,
		buildInfo:      buildInfo,
		logger:         logger,
		refreshBackoff: defaultRefreshBackoff,
	}

	all := maps.Clone(collectors)
	if all == nil {
		all = make(map[models.Category]service.Collector)
	}
	if _, ok := all[models.CategoryDeviceInfo]; !ok {
		all[models.CategoryDeviceInfo] = NewDeviceInfoCollector(serverAdapter, a.Identity, a.registered)
	}

	grants := capability.NewStaticGrants(cfg.Sync.GrantedCapabilities...)
	a.services = service.NewClientServices(ctx, cfg.Sync, settings, serverAdapter, grants, all, nil, logger)

	return a
}

// Identity returns the device identity, zero before Bootstrap.
func (a *App) Identity() models.DeviceIdentity {
	if id := a.identity.Load(); id != nil {
		return *id
	}
	return models.DeviceIdentity{}
}

func (a *App) registered() bool {
	return a.services != nil && a.services.Registration.IsCompleted()
}

func defaultRefreshBackoff() retry.Backoff {
	b := retry.NewExponential(refreshBaseDelay)
	b = retry.WithJitterPercent(10, b)
	b = retry.WithCappedDuration(refreshMaxDelay, b)
	return retry.WithMaxRetries(refreshMaxRetries, b)
}

// Services exposes the wired services to the host process.
func (a *App) Services() *service.ClientServices {
	return a.services
}

// Bootstrap prepares the device: applies the configured sync switch, ensures
// the identity, then registers and refreshes the policy concurrently.
// Registration and refresh failures are logged and never abort the
// bootstrap; only a missing identity does.
func (a *App) Bootstrap(ctx context.Context) (models.DeviceIdentity, error) {
	return a.bootstrap(ctx, a.refreshBackoff)
}

// BootstrapOnce is Bootstrap with a single policy fetch attempt. The
// one-shot status print uses it so an unreachable backend only costs one
// request timeout.
func (a *App) BootstrapOnce(ctx context.Context) (models.DeviceIdentity, error) {
	return a.bootstrap(ctx, singleAttempt)
}

func singleAttempt() retry.Backoff {
	return retry.WithMaxRetries(0, retry.NewConstant(refreshBaseDelay))
}

func (a *App) bootstrap(ctx context.Context, backoff func() retry.Backoff) (models.DeviceIdentity, error) {
	if err := a.services.Timing.SetSyncEnabled(ctx, a.cfg.Sync.Enabled); err != nil {
		a.logger.Err(err).Str("func", "App.Bootstrap").Msg("failed to apply sync switch")
	}

	metadata := a.cfg.Device
	if metadata.AppVersion == "" {
		metadata.AppVersion = a.buildInfo.Version
	}

	identity, err := a.services.Identity.Ensure(ctx, a.cfg.DeviceID, metadata)
	if err != nil {
		return models.DeviceIdentity{}, fmt.Errorf("ensure device identity: %w", err)
	}
	a.identity.Store(&identity)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.services.Gate.RegisterSafely(gctx, identity)
		return nil
	})
	g.Go(func() error {
		if err := a.refreshPolicy(gctx, identity, backoff); err != nil {
			a.logger.Warn().Err(err).
				Str("func", "App.Bootstrap").
				Msg("policy refresh gave up, serving cached policy")
		}
		return nil
	})
	_ = g.Wait()

	return identity, nil
}

// refreshPolicy retries transient failures as paced by backoff.
func (a *App) refreshPolicy(ctx context.Context, identity models.DeviceIdentity, backoff func() retry.Backoff) error {
	return retry.Do(ctx, backoff(), func(ctx context.Context) error {
		_, err := a.services.Policy.Refresh(ctx, identity)
		if service.IsRetryable(err) {
			return retry.RetryableError(err)
		}
		return err
	})
}

// Run bootstraps the device and runs the sync loop and the periodic policy
// refresh until ctx is done.
func (a *App) Run(ctx context.Context) error {
	identity, err := a.Bootstrap(ctx)
	if err != nil {
		return err
	}

	a.logger.Info().
		Str("func", "App.Run").
		Str("device_id", identity.DeviceID).
		Dur("sync_interval", a.cfg.Workers.SyncInterval).
		Dur("refresh_interval", a.cfg.Workers.PolicyRefreshInterval).
		Msg("device sync started")

	err = workers.NewWorkers(
		workers.WorkerFunc(a.runSyncJob),
		workers.WorkerFunc(func(ctx context.Context) error {
			return a.runPolicyRefresh(ctx, identity)
		}),
	).Run(ctx)

	a.logger.Info().Str("func", "App.Run").Msg("device sync stopped")
	return err
}

func (a *App) runSyncJob(ctx context.Context) error {
	a.services.SyncJob.Start(ctx, a.cfg.Workers.SyncInterval)
	<-ctx.Done()
	a.services.SyncJob.Stop()
	return nil
}

func (a *App) runPolicyRefresh(ctx context.Context, identity models.DeviceIdentity) error {
	ticker := time.NewTicker(a.cfg.Workers.PolicyRefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			a.onRefreshTick(ctx, identity)
		}
	}
}

func (a *App) onRefreshTick(ctx context.Context, identity models.DeviceIdentity) {
	// a failed registration gets another chance on every refresh
	if a.services.Registration.Reset() {
		a.services.Gate.RegisterSafely(ctx, identity)
	}

	before := a.services.Policy.AllowedCategories()
	if err := a.refreshPolicy(ctx, identity, a.refreshBackoff); err != nil {
		a.logger.Warn().Err(err).Str("func", "App.onRefreshTick").Msg("scheduled policy refresh failed")
		return
	}

	if a.services.Policy.AllowedCategories() != before {
		a.services.SyncJob.TriggerNow()
	}
}

// PrintStatus writes the current decision table for every category.
func (a *App) PrintStatus(ctx context.Context, w io.Writer) error {
	status := Status{
		Identity:     a.Identity(),
		BuildInfo:    a.buildInfo,
		Registration: a.services.Registration.State(),
		Policy:       a.services.Policy.Status(a.cfg.Sync.StaleAfter),
		SyncEnabled:  a.services.Timing.SyncEnabled(ctx),
		Missing:      a.services.Gate.MissingCapabilities(),
		Decisions:    a.services.Gate.Decisions(ctx),
		Now:          time.Now(),
	}

	_, err := io.WriteString(w, RenderStatus(status)+"\n")
	return err
}
