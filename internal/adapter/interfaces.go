// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport to the backend services the device
// sync core consumes: the policy service and the device registry.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from the protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]). Non-2xx statuses are mapped to the sentinel
// errors in errors.go so callers can use [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/device-sync-gate/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the backend.
// Implementations own timeouts and cancellation; they never retry.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored, or "".
	Token() string

	// UserSubject returns the subject of the current bearer token, or "" if
	// there is no token or it carries no subject.
	UserSubject() string

	// FetchPolicy asks the policy service which categories the device/user
	// may synchronize. Any failure, including a 2xx body that does not
	// decode, is returned as an error.
	FetchPolicy(ctx context.Context, req models.PolicyRequest) (models.PolicyResponse, error)

	// CheckOrRegister registers the device or confirms an existing
	// registration. The backend treats it as idempotent.
	CheckOrRegister(ctx context.Context, req models.RegisterDeviceRequest) (models.RegisterDeviceResponse, error)

	// UpdateDeviceInfo reports the metadata of an already registered device.
	// Any 2xx reply is success.
	UpdateDeviceInfo(ctx context.Context, req models.DeviceInfoRequest) error
}
