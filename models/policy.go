// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// SyncPolicy is the backend's decision for one device/user: which categories
// may be synchronized and whether syncing is active at all.
type SyncPolicy struct {
	Allowed   CategorySet `json:"allowed_categories"`
	Active    bool        `json:"active"`
	FetchedAt time.Time   `json:"fetched_at"`
}

// Permits reports whether the policy lets category c be synchronized.
func (p SyncPolicy) Permits(c Category) bool {
	return p.Active && p.Allowed.Has(c)
}

// MarshalJSON encodes the set as a list of wire names.
func (s CategorySet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Names())
}

// UnmarshalJSON decodes a list of wire names. Unknown names are ignored so
// that a newer backend can never widen what an older build syncs.
func (s *CategorySet) UnmarshalJSON(b []byte) error {
	var names []string
	if err := json.Unmarshal(b, &names); err != nil {
		return err
	}
	var set CategorySet
	for _, n := range names {
		if c, ok := ParseCategory(n); ok {
			set = set.Add(c)
		}
	}
	*s = set
	return nil
}
