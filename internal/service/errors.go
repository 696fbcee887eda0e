// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrPolicyFetchFailed wraps every failure of a policy refresh. The
	// cached policy is unchanged when it is returned.
	ErrPolicyFetchFailed = errors.New("policy fetch failed")

	// ErrRegistrationFailed wraps every failure of the registry call.
	ErrRegistrationFailed = errors.New("device registration failed")

	// ErrRegistrationRejected means the registry answered but refused the
	// device.
	ErrRegistrationRejected = errors.New("device registration rejected")

	// ErrInvalidInterval is returned for negative interval overrides.
	ErrInvalidInterval = errors.New("sync interval must not be negative")

	// ErrUnknownCategory is returned when a write names a category this build
	// does not know.
	ErrUnknownCategory = errors.New("unknown category")
)

// Transport failure classes attached by mapAdapterError.
var (
	// ErrNotAuthorized means the backend refused the credentials.
	ErrNotAuthorized = errors.New("not authorized by backend")

	// ErrBackendRejected means the backend understood and refused the request.
	ErrBackendRejected = errors.New("request rejected by backend")

	// ErrBackendUnavailable means the backend or the network failed. Retrying
	// later may succeed.
	ErrBackendUnavailable = errors.New("backend unavailable")
)
