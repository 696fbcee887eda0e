// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/device-sync-gate/internal/adapter"
	"github.com/MKhiriev/device-sync-gate/models"
)

var (
	// ErrDeviceNotRegistered is returned while registration has not completed.
	ErrDeviceNotRegistered = errors.New("device is not registered")
	// ErrIdentityNotReady is returned before the device identity exists.
	ErrIdentityNotReady = errors.New("device identity is not ready")
)

// DeviceInfoCollector syncs the DEVICE_INFO category by reporting the device
// metadata of a registered device. It never talks to the registry.
type DeviceInfoCollector struct {
	adapter    adapter.ServerAdapter
	identity   func() models.DeviceIdentity
	registered func() bool
}

// NewDeviceInfoCollector returns a collector that reads the identity and
// the registration state lazily, so it can be built before either exists.
func NewDeviceInfoCollector(
	serverAdapter adapter.ServerAdapter,
	identity func() models.DeviceIdentity,
	registered func() bool,
) *DeviceInfoCollector {
	return &DeviceInfoCollector{adapter: serverAdapter, identity: identity, registered: registered}
}

// Collect implements service.Collector.
func (c *DeviceInfoCollector) Collect(ctx context.Context, category models.Category) error {
	if category != models.CategoryDeviceInfo {
		return fmt.Errorf("device info collector cannot collect %s", category)
	}

	if !c.registered() {
		return ErrDeviceNotRegistered
	}

	identity := c.identity()
	if identity.IsZero() {
		return ErrIdentityNotReady
	}

	err := c.adapter.UpdateDeviceInfo(ctx, models.DeviceInfoRequest{
		DeviceID: identity.DeviceID,
		Metadata: identity.Metadata,
	})
	if err != nil {
		return fmt.Errorf("send device info: %w", err)
	}
	return nil
}
