// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PolicyRequest identifies whose policy is requested from the policy service.
type PolicyRequest struct {
	DeviceID    string `json:"device_id"`
	UserSubject string `json:"user_subject,omitempty"`
}

// PolicyResponse is the policy service reply. Category names are kept as
// strings here; unknown names are filtered when the reply is applied.
type PolicyResponse struct {
	AllowedCategories []string `json:"allowed_categories"`
	Active            bool     `json:"active"`
}

// RegisterDeviceRequest is sent to the device registry service.
type RegisterDeviceRequest struct {
	DeviceID string         `json:"device_id"`
	Metadata DeviceMetadata `json:"metadata"`
}

// RegisterDeviceResponse is the device registry reply.
type RegisterDeviceResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// DeviceInfoRequest carries the current device metadata of a registered
// device. It never registers a device.
type DeviceInfoRequest struct {
	DeviceID string         `json:"device_id"`
	Metadata DeviceMetadata `json:"metadata"`
}
