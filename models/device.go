// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DeviceMetadata is human-readable information about the device sent along
// with its identity at registration.
type DeviceMetadata struct {
	Manufacturer string `json:"manufacturer"`
	Model        string `json:"model"`
	OSVersion    string `json:"os_version"`
	AppVersion   string `json:"app_version,omitempty"`
}

// DeviceIdentity is the stable per-device identity. It is created once on
// first run and never modified afterwards.
type DeviceIdentity struct {
	// DeviceID is opaque: either platform-assigned or a locally generated UUID.
	DeviceID  string         `json:"device_id"`
	Metadata  DeviceMetadata `json:"metadata"`
	CreatedAt time.Time      `json:"created_at"`
}

// IsZero reports whether the identity has not been established yet.
func (d DeviceIdentity) IsZero() bool {
	return d.DeviceID == ""
}
