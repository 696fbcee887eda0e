// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Transport errors mapped from HTTP status codes by mapHTTPError. Callers
// match them with [errors.Is]; the response body is appended as context.
var (
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("client unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")

	// ErrUnexpectedClientStatus covers 4xx statuses without a dedicated
	// sentinel. The backend refused the request.
	ErrUnexpectedClientStatus = errors.New("unexpected client error status")

	// Statuses after which the same request may succeed later.
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")

	// ErrUnexpectedServerStatus covers any other non-2xx status.
	ErrUnexpectedServerStatus = errors.New("unexpected server status")

	// ErrMalformedResponse is returned when a 2xx body cannot be decoded.
	ErrMalformedResponse = errors.New("malformed response body")
)

// IsTransient reports whether err is a transport failure that may clear up
// without any change on the device, such as throttling or a 5xx.
// Connection and timeout errors are not classified here; callers treat any
// unmatched error as transient.
func IsTransient(err error) bool {
	return errors.Is(err, ErrServiceUnavailable) ||
		errors.Is(err, ErrBadGateway) ||
		errors.Is(err, ErrInternalServerError) ||
		errors.Is(err, ErrUnexpectedServerStatus) ||
		errors.Is(err, ErrMalformedResponse)
}
