// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/device-sync-gate/internal/adapter"
	"github.com/MKhiriev/device-sync-gate/internal/logger"
	"github.com/MKhiriev/device-sync-gate/internal/store"
	"github.com/MKhiriev/device-sync-gate/models"
)

// FlagRegistrationConfirmed is set once the registry confirmed the device.
const FlagRegistrationConfirmed = "registration_confirmed"

type registrationGuard struct {
	state atomic.Int32

	// mu guards done, which is replaced on Reset.
	mu   sync.Mutex
	done chan struct{}

	settings store.SettingsStore
	adapter  adapter.ServerAdapter
	logger   *logger.Logger
}

// NewRegistrationGuard returns a guard in the NotStarted state.
func NewRegistrationGuard(settings store.SettingsStore, serverAdapter adapter.ServerAdapter, logger *logger.Logger) RegistrationGuard {
	return &registrationGuard{
		done:     make(chan struct{}),
		settings: settings,
		adapter:  serverAdapter,
		logger:   logger,
	}
}

func (g *registrationGuard) RegisterSafely(ctx context.Context, identity models.DeviceIdentity) models.RegistrationState {
	log := logger.FromContextOr(ctx, g.logger)

	if !g.state.CompareAndSwap(int32(models.RegistrationNotStarted), int32(models.RegistrationInProgress)) {
		state := g.State()
		log.Debug().
			Str("func", "registrationGuard.RegisterSafely").
			Stringer("state", state).
			Msg("registration already handled, skipping")
		return state
	}

	g.mu.Lock()
	done := g.done
	g.mu.Unlock()
	defer close(done)

	if err := g.register(ctx, identity); err != nil {
		g.state.Store(int32(models.RegistrationFailed))
		log.Err(err).
			Str("func", "registrationGuard.RegisterSafely").
			Str("device_id", identity.DeviceID).
			Msg("device registration failed")
		return models.RegistrationFailed
	}

	g.state.Store(int32(models.RegistrationCompleted))

	if err := g.settings.SetFlag(ctx, FlagRegistrationConfirmed, true); err != nil {
		log.Err(err).
			Str("func", "registrationGuard.RegisterSafely").
			Msg("failed to persist registration confirmation")
	}

	log.Info().
		Str("func", "registrationGuard.RegisterSafely").
		Str("device_id", identity.DeviceID).
		Msg("device registered")
	return models.RegistrationCompleted
}

func (g *registrationGuard) register(ctx context.Context, identity models.DeviceIdentity) error {
	resp, err := g.adapter.CheckOrRegister(ctx, models.RegisterDeviceRequest{
		DeviceID: identity.DeviceID,
		Metadata: identity.Metadata,
	})
	if err != nil {
		return mapAdapterError(ErrRegistrationFailed, err)
	}
	if !resp.Success {
		return fmt.Errorf("%w: %w: %s", ErrRegistrationFailed, ErrRegistrationRejected, resp.Message)
	}
	return nil
}

func (g *registrationGuard) State() models.RegistrationState {
	return models.RegistrationState(g.state.Load())
}

func (g *registrationGuard) IsCompleted() bool {
	return g.State() == models.RegistrationCompleted
}

func (g *registrationGuard) Reset() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.state.CompareAndSwap(int32(models.RegistrationFailed), int32(models.RegistrationNotStarted)) {
		return false
	}
	g.done = make(chan struct{})
	return true
}

func (g *registrationGuard) Done() <-chan struct{} {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.done
}
