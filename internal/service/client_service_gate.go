// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/device-sync-gate/internal/capability"
	"github.com/MKhiriev/device-sync-gate/models"
)

type syncGate struct {
	policy       PolicyCache
	capabilities *capability.Gate
	timing       TimingEngine
	registration RegistrationGuard
}

// NewSyncGate composes the policy, capability and timing checks.
func NewSyncGate(policy PolicyCache, capabilities *capability.Gate, timing TimingEngine, registration RegistrationGuard) SyncGate {
	return &syncGate{
		policy:       policy,
		capabilities: capabilities,
		timing:       timing,
		registration: registration,
	}
}

func (g *syncGate) CanSyncNow(ctx context.Context, c models.Category, force bool) bool {
	return g.timing.CanSyncNow(ctx, c, force)
}

func (g *syncGate) IsEffectivelyAllowed(c models.Category) bool {
	return g.policy.IsAllowed(c) && g.capabilities.IsCategoryPermitted(c)
}

func (g *syncGate) ShouldSync(ctx context.Context, c models.Category, force bool) bool {
	return g.IsEffectivelyAllowed(c) && g.timing.CanSyncNow(ctx, c, force)
}

func (g *syncGate) RecordSuccess(ctx context.Context, c models.Category) error {
	return g.timing.RecordSuccess(ctx, c)
}

func (g *syncGate) MissingCapabilities() models.CapabilitySet {
	return g.capabilities.MissingCapabilities(g.policy.AllowedCategories())
}

func (g *syncGate) RegisterSafely(ctx context.Context, identity models.DeviceIdentity) models.RegistrationState {
	return g.registration.RegisterSafely(ctx, identity)
}

func (g *syncGate) Decisions(ctx context.Context) []Decision {
	categories := models.AllCategories()
	out := make([]Decision, 0, len(categories))
	for _, c := range categories {
		out = append(out, Decision{
			Category:       c,
			PolicyAllowed:  g.policy.IsAllowed(c),
			CapabilityOK:   g.capabilities.IsCategoryPermitted(c),
			TimingOK:       g.timing.CanSyncNow(ctx, c, false),
			Interval:       g.timing.Interval(ctx, c),
			NextEligibleAt: g.timing.NextEligibleAt(ctx, c),
		})
	}
	return out
}
