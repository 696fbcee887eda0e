// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package capability

import (
	"sync"

	"github.com/MKhiriev/device-sync-gate/models"
)

// StaticGrants is a GrantChecker over an explicit grant list, used where the
// process learns its grants from configuration rather than querying the OS.
// Grants may change at runtime via Grant and Revoke.
type StaticGrants struct {
	mu      sync.RWMutex
	granted models.CapabilitySet
}

// NewStaticGrants returns a checker reporting caps as granted.
func NewStaticGrants(caps ...models.Capability) *StaticGrants {
	return &StaticGrants{granted: models.NewCapabilitySet(caps...)}
}

// IsGranted implements GrantChecker.
func (s *StaticGrants) IsGranted(c models.Capability) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.granted.Has(c)
}

// Grant marks caps as granted.
func (s *StaticGrants) Grant(caps ...models.Capability) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.granted = s.granted.Union(models.NewCapabilitySet(caps...))
}

// Revoke marks caps as not granted.
func (s *StaticGrants) Revoke(caps ...models.Capability) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.granted &^= models.NewCapabilitySet(caps...)
}

// Granted returns the current grant set.
func (s *StaticGrants) Granted() models.CapabilitySet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.granted
}
