// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RegistrationState is the in-process state of device registration.
type RegistrationState int32

const (
	RegistrationNotStarted RegistrationState = iota
	RegistrationInProgress
	RegistrationCompleted
	RegistrationFailed
)

func (s RegistrationState) String() string {
	switch s {
	case RegistrationNotStarted:
		return "not_started"
	case RegistrationInProgress:
		return "in_progress"
	case RegistrationCompleted:
		return "completed"
	case RegistrationFailed:
		return "failed"
	default:
		return "unknown"
	}
}
