// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the JSON file layout.
type StructuredJSONConfig struct {
	App struct {
		HashKey string `json:"hash_key"`
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		Token          string   `json:"token"`
	} `json:"adapter,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Workers struct {
		SyncInterval          Duration `json:"sync_interval"`
		PolicyRefreshInterval Duration `json:"policy_refresh_interval"`
	} `json:"workers,omitempty"`

	Sync struct {
		Disabled            bool                `json:"disabled"`
		StaleAfter          Duration            `json:"stale_after"`
		GrantedCapabilities []string            `json:"granted_capabilities"`
		Intervals           map[string]Duration `json:"intervals"`
	} `json:"sync,omitempty"`

	Logs struct {
		FilePath string `json:"file_path"`
	} `json:"logs,omitempty"`

	Device struct {
		ID           string `json:"id"`
		Manufacturer string `json:"manufacturer"`
		Model        string `json:"model"`
		OSVersion    string `json:"os_version"`
	} `json:"device,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	var intervals []string
	for name, d := range jsonCfg.Sync.Intervals {
		intervals = append(intervals, name+"="+time.Duration(d).String())
	}

	cfg := &StructuredConfig{
		App: App{
			HashKey: jsonCfg.App.HashKey,
			Version: jsonCfg.App.Version,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			Token:          jsonCfg.Adapter.Token,
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		Workers: Workers{
			SyncInterval:          time.Duration(jsonCfg.Workers.SyncInterval),
			PolicyRefreshInterval: time.Duration(jsonCfg.Workers.PolicyRefreshInterval),
		},
		Sync: Sync{
			Disabled:            jsonCfg.Sync.Disabled,
			StaleAfter:          time.Duration(jsonCfg.Sync.StaleAfter),
			GrantedCapabilities: jsonCfg.Sync.GrantedCapabilities,
			Intervals:           intervals,
		},
		Logs: Logs{FilePath: jsonCfg.Logs.FilePath},
		Device: Device{
			ID:           jsonCfg.Device.ID,
			Manufacturer: jsonCfg.Device.Manufacturer,
			Model:        jsonCfg.Device.Model,
			OSVersion:    jsonCfg.Device.OSVersion,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
