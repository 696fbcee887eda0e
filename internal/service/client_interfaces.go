// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/device-sync-gate/models"
)

// PolicyStatus describes the freshness of the cached policy.
type PolicyStatus int

const (
	// PolicyAbsent means no policy has ever been fetched; everything fails
	// closed.
	PolicyAbsent PolicyStatus = iota
	// PolicyFresh means the cached policy is within the staleness window.
	PolicyFresh
	// PolicyStale means a last-known-good policy is served past the
	// staleness window. It is still enforced.
	PolicyStale
)

func (s PolicyStatus) String() string {
	switch s {
	case PolicyFresh:
		return "fresh"
	case PolicyStale:
		return "stale"
	default:
		return "absent"
	}
}

// PolicyCache owns the lifecycle of the remote sync policy.
type PolicyCache interface {
	// Refresh fetches the policy for identity and, on success, replaces the
	// cached and persisted policy together. On any failure the cache is left
	// untouched and the error wraps ErrPolicyFetchFailed.
	Refresh(ctx context.Context, identity models.DeviceIdentity) (models.SyncPolicy, error)

	// IsAllowed reports whether the cached policy is active and contains c.
	// Without a cached policy it returns false.
	IsAllowed(c models.Category) bool

	// AllowedCategories returns the categories the active policy allows;
	// empty when there is no policy or it is inactive.
	AllowedCategories() models.CategorySet

	// RequiredCapabilities returns the capabilities needed by
	// AllowedCategories.
	RequiredCapabilities() models.CapabilitySet

	// Invalidate drops the cached and persisted policy. Every category fails
	// closed until the next successful Refresh.
	Invalidate(ctx context.Context) error

	// Policy returns the cached policy; ok is false when none is cached.
	Policy() (policy models.SyncPolicy, ok bool)

	// Status reports whether the cached policy is absent, fresh or older than
	// staleAfter. A non-positive staleAfter never reports stale.
	Status(staleAfter time.Duration) PolicyStatus
}

// TimingEngine decides whether a category's cooldown has elapsed.
type TimingEngine interface {
	// CanSyncNow reports whether c may be synchronized now. force bypasses
	// every check. A bookkeeping read failure or a clock earlier than the
	// last sync yields false.
	CanSyncNow(ctx context.Context, c models.Category, force bool) bool

	// RecordSuccess stamps c as synchronized at the current time. It must be
	// called only after a confirmed sync.
	RecordSuccess(ctx context.Context, c models.Category) error

	// RecordSuccessAt stamps c as synchronized at ts. An older ts never
	// replaces a newer stamp.
	RecordSuccessAt(ctx context.Context, c models.Category, ts time.Time) error

	// SetIntervalOverride persists a per-category cooldown. Zero means
	// always eligible.
	SetIntervalOverride(ctx context.Context, c models.Category, interval time.Duration) error

	// ClearIntervalOverride returns c to its configured default interval.
	ClearIntervalOverride(ctx context.Context, c models.Category) error

	// Interval returns the effective cooldown of c.
	Interval(ctx context.Context, c models.Category) time.Duration

	// NextEligibleAt returns when c's cooldown ends, for scheduling wakeups.
	// The zero time means no cooldown is pending. CanSyncNow stays the
	// authoritative check.
	NextEligibleAt(ctx context.Context, c models.Category) time.Time

	// SetSyncEnabled toggles the persisted global sync switch.
	SetSyncEnabled(ctx context.Context, enabled bool) error

	// SyncEnabled reports the global sync switch; a read failure yields
	// false.
	SyncEnabled(ctx context.Context) bool
}

// RegistrationGuard performs at most one device registration call per
// process.
type RegistrationGuard interface {
	// RegisterSafely runs the registry call if no attempt is in progress or
	// completed, and returns the resulting state. Callers that lose the race
	// return immediately with the current state.
	RegisterSafely(ctx context.Context, identity models.DeviceIdentity) models.RegistrationState

	// State returns the current state.
	State() models.RegistrationState

	// IsCompleted reports whether registration succeeded in this process.
	IsCompleted() bool

	// Reset moves Failed back to NotStarted and reports whether it did.
	// Any other state is left as is.
	Reset() bool

	// Done returns a channel closed when the current attempt finishes.
	Done() <-chan struct{}
}

// IdentityService creates and loads the device identity.
type IdentityService interface {
	// Ensure returns the persisted identity, creating it on first run.
	// platformID is used as the device id when non-empty, otherwise a new
	// UUID is generated.
	Ensure(ctx context.Context, platformID string, metadata models.DeviceMetadata) (models.DeviceIdentity, error)
}

// Decision is the evaluated sync decision of one category.
type Decision struct {
	Category       models.Category
	PolicyAllowed  bool
	CapabilityOK   bool
	TimingOK       bool
	Interval       time.Duration
	NextEligibleAt time.Time
}

// ShouldSync reports whether every check passed.
func (d Decision) ShouldSync() bool {
	return d.PolicyAllowed && d.CapabilityOK && d.TimingOK
}

// SyncGate is the single entry point callers use to decide whether a
// category may be synchronized.
type SyncGate interface {
	// CanSyncNow applies only the timing check.
	CanSyncNow(ctx context.Context, c models.Category, force bool) bool

	// IsEffectivelyAllowed combines policy and capability checks.
	IsEffectivelyAllowed(c models.Category) bool

	// ShouldSync combines policy, capability and timing checks. force
	// bypasses only the timing check.
	ShouldSync(ctx context.Context, c models.Category, force bool) bool

	// RecordSuccess stamps c after a confirmed sync.
	RecordSuccess(ctx context.Context, c models.Category) error

	// MissingCapabilities returns the ungranted capabilities the current
	// policy needs.
	MissingCapabilities() models.CapabilitySet

	// RegisterSafely forwards to the registration guard.
	RegisterSafely(ctx context.Context, identity models.DeviceIdentity) models.RegistrationState

	// Decisions evaluates every known category.
	Decisions(ctx context.Context) []Decision
}

// SyncJob runs a sync pass periodically in the background.
type SyncJob interface {
	// Start launches the background loop, stopping a previous one first.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the loop and waits for it to exit.
	Stop()

	// TriggerNow requests an immediate pass. It does not block; a request
	// made while one is pending is merged into it.
	TriggerNow()
}
