// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container of the device
// sync core. It is populated by merging defaults, environment variables,
// command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings.
	App App `envPrefix:"APP_"`

	// Adapter holds the backend endpoint used for the policy and device
	// registry services.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local settings database location.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds the cadence of background triggers.
	Workers Workers `envPrefix:"WORKERS_"`

	// Sync holds scheduling and capability settings.
	Sync Sync `envPrefix:"SYNC_"`

	// Logs holds log output settings.
	Logs Logs `envPrefix:"LOG_"`

	// Device holds platform-provided identity metadata.
	Device Device `envPrefix:"DEVICE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// HashKey is the HMAC key used to sign outgoing request bodies
	// (HashSHA256 header).
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version overrides the build version reported to the device registry.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// StatusOnly makes the client print the per-category decisions and exit.
	// Env: APP_STATUS_ONLY
	StatusOnly bool `env:"STATUS_ONLY"`
}

// Adapter holds the backend endpoint settings.
type Adapter struct {
	// HTTPAddress is the backend base address, with or without scheme
	// (e.g. "https://api.example.com" or "localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Token is the bearer token of the signed-in user. Its subject scopes
	// the remote policy.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`
}

// Storage groups local persistence settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the local SQLite settings database settings.
type DB struct {
	// DSN is the SQLite file path (e.g. "/data/sync-gate.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Workers holds configuration for background triggers.
type Workers struct {
	// SyncInterval is how often the periodic sync trigger fires.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// PolicyRefreshInterval is how often the remote policy is re-fetched.
	// Env: WORKERS_POLICY_REFRESH_INTERVAL
	PolicyRefreshInterval time.Duration `env:"POLICY_REFRESH_INTERVAL"`
}

// Sync holds scheduling and capability settings.
type Sync struct {
	// Disabled turns the global sync switch off at startup.
	// Env: SYNC_DISABLED
	Disabled bool `env:"DISABLED"`

	// StaleAfter is the age after which a cached policy is reported stale.
	// Env: SYNC_STALE_AFTER
	StaleAfter time.Duration `env:"STALE_AFTER"`

	// GrantedCapabilities lists the OS capabilities currently granted,
	// comma separated (e.g. "READ_CONTACTS,READ_SMS").
	// Env: SYNC_GRANTED_CAPABILITIES
	GrantedCapabilities []string `env:"GRANTED_CAPABILITIES"`

	// Intervals overrides per-category intervals as CATEGORY=duration
	// pairs (e.g. "CONTACTS=48h,NOTIFICATIONS=0s").
	// Env: SYNC_INTERVALS
	Intervals []string `env:"INTERVALS"`
}

// Logs holds log output settings.
type Logs struct {
	// FilePath is the rotated log file. Empty means "logs" next to the
	// executable.
	// Env: LOG_FILE_PATH
	FilePath string `env:"FILE_PATH"`
}

// Device holds platform-provided identity metadata. ID is optional: when it
// is empty an identifier is generated on first run.
type Device struct {
	ID           string `env:"ID"`
	Manufacturer string `env:"MANUFACTURER"`
	Model        string `env:"MODEL"`
	OSVersion    string `env:"OS_VERSION"`
}

// Defaults applied before any other source.
const (
	defaultRequestTimeout        = 15 * time.Second
	defaultSyncInterval          = 15 * time.Minute
	defaultPolicyRefreshInterval = time.Hour
	defaultStaleAfter            = 24 * time.Hour
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{RequestTimeout: defaultRequestTimeout},
		Workers: Workers{
			SyncInterval:          defaultSyncInterval,
			PolicyRefreshInterval: defaultPolicyRefreshInterval,
		},
		Sync: Sync{StaleAfter: defaultStaleAfter},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (later sources
// override non-zero fields of earlier ones):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
