// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// Capability is an OS-level access grant required to read a category's data.
type Capability uint8

const (
	CapabilityReadContacts Capability = iota + 1
	CapabilityReadCallLog
	CapabilityReadSMS
	CapabilityReceiveSMS
	CapabilityNotificationListener
	CapabilityGetAccounts
	CapabilityReadCalendar

	capabilityEnd
)

var capabilityNames = [...]string{
	CapabilityReadContacts:         "android.permission.READ_CONTACTS",
	CapabilityReadCallLog:          "android.permission.READ_CALL_LOG",
	CapabilityReadSMS:              "android.permission.READ_SMS",
	CapabilityReceiveSMS:           "android.permission.RECEIVE_SMS",
	CapabilityNotificationListener: "android.permission.BIND_NOTIFICATION_LISTENER_SERVICE",
	CapabilityGetAccounts:          "android.permission.GET_ACCOUNTS",
	CapabilityReadCalendar:         "android.permission.READ_CALENDAR",
}

// ParseCapability resolves an OS identifier to a Capability. Both the full
// identifier and its short form ("READ_CONTACTS") are accepted.
func ParseCapability(name string) (Capability, bool) {
	name = strings.TrimSpace(name)
	for c := CapabilityReadContacts; c < capabilityEnd; c++ {
		full := capabilityNames[c]
		if strings.EqualFold(full, name) || strings.EqualFold(strings.TrimPrefix(full, "android.permission."), name) {
			return c, true
		}
	}
	return 0, false
}

// Valid reports whether c is a known capability.
func (c Capability) Valid() bool {
	return c >= CapabilityReadContacts && c < capabilityEnd
}

// String returns the OS identifier of the capability.
func (c Capability) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Capability(%d)", uint8(c))
	}
	return capabilityNames[c]
}

// CapabilitySet is a set of capabilities stored as a bitmask.
type CapabilitySet uint32

// NewCapabilitySet builds a set from the given capabilities.
func NewCapabilitySet(caps ...Capability) CapabilitySet {
	var s CapabilitySet
	for _, c := range caps {
		s = s.Add(c)
	}
	return s
}

// Add returns s with c included.
func (s CapabilitySet) Add(c Capability) CapabilitySet {
	if !c.Valid() {
		return s
	}
	return s | 1<<c
}

// Union returns the members of both sets.
func (s CapabilitySet) Union(o CapabilitySet) CapabilitySet {
	return s | o
}

// Has reports whether c is in the set.
func (s CapabilitySet) Has(c Capability) bool {
	return c.Valid() && s&(1<<c) != 0
}

// Len returns the number of capabilities in the set.
func (s CapabilitySet) Len() int {
	return len(s.Slice())
}

// Slice returns the members in declaration order.
func (s CapabilitySet) Slice() []Capability {
	var out []Capability
	for c := CapabilityReadContacts; c < capabilityEnd; c++ {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// Names returns the OS identifiers of the members.
func (s CapabilitySet) Names() []string {
	var out []string
	for _, c := range s.Slice() {
		out = append(out, c.String())
	}
	return out
}
