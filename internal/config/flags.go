// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"strings"
	"time"
)

// ParseFlags parses the command-line arguments (without the program name).
//
// Flags:
//
//	-a backend address ([scheme://]host:port)
//	-t request timeout (e.g. "15s")
//	-token bearer token of the signed-in user
//	-d settings database path
//	-hash-key request signing key
//	-sync-interval periodic sync trigger interval
//	-refresh-interval remote policy refresh interval
//	-stale-after policy staleness threshold
//	-grants comma separated granted capabilities
//	-intervals comma separated CATEGORY=duration overrides
//	-sync-disabled start with the global sync switch off
//	-log-file log file path
//	-device-id platform-assigned device identifier
//	-c/-config json file path with configs
//	-status print per-category decisions and exit
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("device-sync-gate", flag.ContinueOnError)

	var (
		address         string
		requestTimeout  time.Duration
		token           string
		dsn             string
		hashKey         string
		syncInterval    time.Duration
		refreshInterval time.Duration
		staleAfter      time.Duration
		grants          string
		intervals       string
		syncDisabled    bool
		logFile         string
		deviceID        string
		jsonConfigPath  string
		statusOnly      bool
	)

	fs.StringVar(&address, "a", "", "Backend address [scheme://]host:port")
	fs.DurationVar(&requestTimeout, "t", 0, "Request timeout (e.g., 15s)")
	fs.StringVar(&token, "token", "", "Bearer token")
	fs.StringVar(&dsn, "d", "", "Settings database path")
	fs.StringVar(&hashKey, "hash-key", "", "Request signing key")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Periodic sync trigger interval")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Policy refresh interval")
	fs.DurationVar(&staleAfter, "stale-after", 0, "Policy staleness threshold")
	fs.StringVar(&grants, "grants", "", "Granted capabilities, comma separated")
	fs.StringVar(&intervals, "intervals", "", "Interval overrides CATEGORY=duration, comma separated")
	fs.BoolVar(&syncDisabled, "sync-disabled", false, "Start with sync disabled")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&deviceID, "device-id", "", "Platform-assigned device identifier")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.BoolVar(&statusOnly, "status", false, "Print per-category decisions and exit")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			HashKey:    hashKey,
			StatusOnly: statusOnly,
		},
		Adapter: Adapter{
			HTTPAddress:    address,
			RequestTimeout: requestTimeout,
			Token:          token,
		},
		Storage: Storage{
			DB: DB{DSN: dsn},
		},
		Workers: Workers{
			SyncInterval:          syncInterval,
			PolicyRefreshInterval: refreshInterval,
		},
		Sync: Sync{
			Disabled:            syncDisabled,
			StaleAfter:          staleAfter,
			GrantedCapabilities: splitList(grants),
			Intervals:           splitList(intervals),
		},
		Logs:         Logs{FilePath: logFile},
		Device:       Device{ID: deviceID},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
