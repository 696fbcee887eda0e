// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// Category is one enumerated class of device data eligible for
// synchronization. The zero value is not a valid category.
type Category uint8

const (
	// CategoryContacts is the device address book.
	CategoryContacts Category = iota + 1
	// CategoryCallLogs is the incoming/outgoing call history.
	CategoryCallLogs
	// CategoryMessages is the SMS inbox.
	CategoryMessages
	// CategoryNotifications is the stream of posted notifications. It is a
	// real-time category and has no cooldown by default.
	CategoryNotifications
	// CategoryEmailAccounts is the list of accounts registered on the device.
	CategoryEmailAccounts
	// CategoryCalendar is the device calendar.
	CategoryCalendar
	// CategoryDeviceInfo is static hardware/OS metadata. It needs no
	// capability grant.
	CategoryDeviceInfo

	categoryEnd
)

var categoryNames = [...]string{
	CategoryContacts:      "CONTACTS",
	CategoryCallLogs:      "CALL_LOGS",
	CategoryMessages:      "MESSAGES",
	CategoryNotifications: "NOTIFICATIONS",
	CategoryEmailAccounts: "EMAIL_ACCOUNTS",
	CategoryCalendar:      "CALENDAR",
	CategoryDeviceInfo:    "DEVICE_INFO",
}

// AllCategories returns every known category in declaration order.
func AllCategories() []Category {
	out := make([]Category, 0, int(categoryEnd)-1)
	for c := CategoryContacts; c < categoryEnd; c++ {
		out = append(out, c)
	}
	return out
}

// ParseCategory resolves a wire name (case-insensitive) to a Category.
// The boolean is false for names this build does not know about.
func ParseCategory(name string) (Category, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for c := CategoryContacts; c < categoryEnd; c++ {
		if categoryNames[c] == name {
			return c, true
		}
	}
	return 0, false
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	return c >= CategoryContacts && c < categoryEnd
}

// String returns the wire name of the category.
func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Category(%d)", uint8(c))
	}
	return categoryNames[c]
}

// MarshalText implements encoding.TextMarshaler so categories can be used as
// JSON map keys and values.
func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("unknown category %d", uint8(c))
	}
	return []byte(categoryNames[c]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(b []byte) error {
	parsed, ok := ParseCategory(string(b))
	if !ok {
		return fmt.Errorf("unknown category %q", string(b))
	}
	*c = parsed
	return nil
}

// CategorySet is a set of categories stored as a bitmask.
type CategorySet uint32

// NewCategorySet builds a set from the given categories, skipping invalid ones.
func NewCategorySet(categories ...Category) CategorySet {
	var s CategorySet
	for _, c := range categories {
		s = s.Add(c)
	}
	return s
}

// Add returns s with c included.
func (s CategorySet) Add(c Category) CategorySet {
	if !c.Valid() {
		return s
	}
	return s | 1<<c
}

// Has reports whether c is in the set.
func (s CategorySet) Has(c Category) bool {
	return c.Valid() && s&(1<<c) != 0
}

// Len returns the number of categories in the set.
func (s CategorySet) Len() int {
	n := 0
	for c := CategoryContacts; c < categoryEnd; c++ {
		if s.Has(c) {
			n++
		}
	}
	return n
}

// Slice returns the members in declaration order.
func (s CategorySet) Slice() []Category {
	out := make([]Category, 0, s.Len())
	for c := CategoryContacts; c < categoryEnd; c++ {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// Names returns the wire names of the members in declaration order.
func (s CategorySet) Names() []string {
	members := s.Slice()
	out := make([]string, 0, len(members))
	for _, c := range members {
		out = append(out, c.String())
	}
	return out
}
