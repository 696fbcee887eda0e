// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package capability maps data categories to the OS capability grants they
// require and answers, against the current grant state, whether a category
// can be read and which grants are still missing.
//
// Every function here is pure with respect to its GrantChecker: no state is
// kept and nothing is persisted.
package capability

import "github.com/MKhiriev/device-sync-gate/models"

//go:generate mockgen -source=capability.go -destination=../mock/grant_checker_mock.go -package=mock

// GrantChecker reports the current OS grant state of a capability.
type GrantChecker interface {
	IsGranted(models.Capability) bool
}

// RequiredCapabilities returns the fixed set of capabilities category c
// needs. Categories needing nothing, including unknown ones, return an empty
// set.
func RequiredCapabilities(c models.Category) models.CapabilitySet {
	switch c {
	case models.CategoryContacts:
		return models.NewCapabilitySet(models.CapabilityReadContacts)
	case models.CategoryCallLogs:
		return models.NewCapabilitySet(models.CapabilityReadCallLog)
	case models.CategoryMessages:
		return models.NewCapabilitySet(models.CapabilityReadSMS, models.CapabilityReceiveSMS)
	case models.CategoryNotifications:
		return models.NewCapabilitySet(models.CapabilityNotificationListener)
	case models.CategoryEmailAccounts:
		return models.NewCapabilitySet(models.CapabilityGetAccounts)
	case models.CategoryCalendar:
		return models.NewCapabilitySet(models.CapabilityReadCalendar)
	case models.CategoryDeviceInfo:
		return 0
	default:
		return 0
	}
}

// RequiredForSet returns the union of capabilities required by categories.
func RequiredForSet(categories models.CategorySet) models.CapabilitySet {
	var out models.CapabilitySet
	for _, c := range categories.Slice() {
		out = out.Union(RequiredCapabilities(c))
	}
	return out
}

// Gate answers capability questions against a GrantChecker.
type Gate struct {
	grants GrantChecker
}

// NewGate returns a Gate backed by grants.
func NewGate(grants GrantChecker) *Gate {
	return &Gate{grants: grants}
}

// IsCategoryPermitted reports whether every capability c requires is
// currently granted. A category requiring nothing is always permitted.
func (g *Gate) IsCategoryPermitted(c models.Category) bool {
	for _, capability := range RequiredCapabilities(c).Slice() {
		if !g.grants.IsGranted(capability) {
			return false
		}
	}
	return true
}

// MissingCapabilities returns the ungranted capabilities needed to permit
// every category in allowed. Capabilities of categories outside allowed are
// never included.
func (g *Gate) MissingCapabilities(allowed models.CategorySet) models.CapabilitySet {
	var missing models.CapabilitySet
	for _, capability := range RequiredForSet(allowed).Slice() {
		if !g.grants.IsGranted(capability) {
			missing = missing.Add(capability)
		}
	}
	return missing
}
