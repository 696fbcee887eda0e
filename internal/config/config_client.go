// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/device-sync-gate/models"
)

// ClientApp holds process-level settings.
type ClientApp struct {
	// HashKey is the HMAC key used for request body signing.
	HashKey string
	// Version overrides the build version reported at registration.
	Version string
	// StatusOnly requests a one-shot status print.
	StatusOnly bool
}

// ClientAdapter holds network settings used by the transport layer.
type ClientAdapter struct {
	HTTPAddress    string
	RequestTimeout time.Duration
	Token          string
}

// ClientDB contains local database settings.
type ClientDB struct {
	// DSN is the SQLite file path.
	DSN string
}

// ClientStorage groups storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientWorkers contains background trigger settings.
type ClientWorkers struct {
	SyncInterval          time.Duration
	PolicyRefreshInterval time.Duration
}

// ClientSync contains scheduling and capability settings in typed form.
type ClientSync struct {
	Enabled             bool
	StaleAfter          time.Duration
	GrantedCapabilities []models.Capability
	IntervalOverrides   map[models.Category]time.Duration
}

// ClientLogs contains log output settings.
type ClientLogs struct {
	FilePath string
}

// ClientConfig is the top-level device configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
	Sync    ClientSync
	Logs    ClientLogs
	Device  models.DeviceMetadata
	// DeviceID is the platform-assigned identifier, empty when none.
	DeviceID string
}

// GetClientConfig builds and validates the device config view from the
// merged structured configuration. args are the command-line arguments
// without the program name.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	grants, err := parseCapabilities(cfg.Sync.GrantedCapabilities)
	if err != nil {
		return nil, err
	}

	overrides, err := parseIntervals(cfg.Sync.Intervals)
	if err != nil {
		return nil, err
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			HashKey:    cfg.App.HashKey,
			Version:    cfg.App.Version,
			StatusOnly: cfg.App.StatusOnly,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			Token:          cfg.Adapter.Token,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Workers: ClientWorkers{
			SyncInterval:          cfg.Workers.SyncInterval,
			PolicyRefreshInterval: cfg.Workers.PolicyRefreshInterval,
		},
		Sync: ClientSync{
			Enabled:             !cfg.Sync.Disabled,
			StaleAfter:          cfg.Sync.StaleAfter,
			GrantedCapabilities: grants,
			IntervalOverrides:   overrides,
		},
		Logs: ClientLogs{FilePath: cfg.Logs.FilePath},
		Device: models.DeviceMetadata{
			Manufacturer: cfg.Device.Manufacturer,
			Model:        cfg.Device.Model,
			OSVersion:    cfg.Device.OSVersion,
			AppVersion:   cfg.App.Version,
		},
		DeviceID: cfg.Device.ID,
	}

	return clientCfg, clientCfg.validate()
}

func parseCapabilities(names []string) ([]models.Capability, error) {
	out := make([]models.Capability, 0, len(names))
	for _, name := range names {
		c, ok := models.ParseCapability(name)
		if !ok {
			return nil, fmt.Errorf("%w: unknown capability %q", ErrInvalidSyncConfigs, name)
		}
		out = append(out, c)
	}
	return out, nil
}

func parseIntervals(pairs []string) (map[models.Category]time.Duration, error) {
	out := make(map[models.Category]time.Duration, len(pairs))
	for _, pair := range pairs {
		name, value, found := strings.Cut(pair, "=")
		if !found {
			return nil, fmt.Errorf("%w: interval %q is not CATEGORY=duration", ErrInvalidSyncConfigs, pair)
		}

		category, ok := models.ParseCategory(name)
		if !ok {
			return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidSyncConfigs, name)
		}

		d, err := time.ParseDuration(strings.TrimSpace(value))
		if err != nil || d < 0 {
			return nil, fmt.Errorf("%w: invalid interval for %s: %q", ErrInvalidSyncConfigs, category, value)
		}
		out[category] = d
	}
	return out, nil
}
