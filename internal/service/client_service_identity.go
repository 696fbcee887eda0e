// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/device-sync-gate/internal/logger"
	"github.com/MKhiriev/device-sync-gate/internal/store"
	"github.com/MKhiriev/device-sync-gate/models"
)

// IDGenerator produces new device identifiers.
type IDGenerator interface {
	Generate() string
}

type identityService struct {
	settings store.SettingsStore
	ids      IDGenerator
	now      func() time.Time
	logger   *logger.Logger
}

// NewIdentityService returns an IdentityService persisting to settings.
func NewIdentityService(settings store.SettingsStore, ids IDGenerator, now func() time.Time, logger *logger.Logger) IdentityService {
	if now == nil {
		now = time.Now
	}

	return &identityService{
		settings: settings,
		ids:      ids,
		now:      now,
		logger:   logger,
	}
}

func (s *identityService) Ensure(ctx context.Context, platformID string, metadata models.DeviceMetadata) (models.DeviceIdentity, error) {
	log := logger.FromContextOr(ctx, s.logger)

	identity, ok, err := s.settings.DeviceIdentity(ctx)
	switch {
	case ok:
		return identity, nil
	case errors.Is(err, store.ErrCorruptedValue):
		log.Warn().Err(err).
			Str("func", "identityService.Ensure").
			Msg("persisted identity was corrupted, creating a new one")
	case err != nil:
		return models.DeviceIdentity{}, fmt.Errorf("failed to load device identity: %w", err)
	}

	deviceID := strings.TrimSpace(platformID)
	if deviceID == "" {
		deviceID = s.ids.Generate()
	}

	identity = models.DeviceIdentity{
		DeviceID:  deviceID,
		Metadata:  metadata,
		CreatedAt: s.now().UTC(),
	}

	if err = s.settings.SaveDeviceIdentity(ctx, identity); err != nil {
		return models.DeviceIdentity{}, fmt.Errorf("failed to save device identity: %w", err)
	}

	log.Info().
		Str("func", "identityService.Ensure").
		Str("device_id", identity.DeviceID).
		Msg("device identity created")
	return identity, nil
}
