// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/device-sync-gate/internal/adapter"
)

// mapAdapterError wraps a transport error with op and a failure class so
// callers can decide whether a retry makes sense.
func mapAdapterError(op error, err error) error {
	if err == nil {
		return nil
	}

	var class error
	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		class = ErrNotAuthorized
	case errors.Is(err, adapter.ErrBadRequest),
		errors.Is(err, adapter.ErrForbidden),
		errors.Is(err, adapter.ErrNotFound),
		errors.Is(err, adapter.ErrConflict),
		errors.Is(err, adapter.ErrUnexpectedClientStatus):
		class = ErrBackendRejected
	case adapter.IsTransient(err):
		class = ErrBackendUnavailable
	default:
		// timeouts and connection errors
		class = ErrBackendUnavailable
	}

	return fmt.Errorf("%w: %w: %w", op, class, err)
}

// IsRetryable reports whether err is a transient failure worth retrying.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrBackendUnavailable)
}
