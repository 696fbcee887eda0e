// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// CategoryTiming is the persisted timing state of one category.
type CategoryTiming struct {
	// LastSyncMillis is the epoch millis of the last confirmed sync.
	// Zero means the category has never been synchronized.
	LastSyncMillis int64 `json:"last_sync_timestamp"`

	// IntervalMillis overrides the category default when non-nil.
	// A zero override means the category is always eligible.
	IntervalMillis *int64 `json:"interval_millis,omitempty"`
}

// SyncBookkeeping holds timing state for every category that has any.
type SyncBookkeeping map[Category]CategoryTiming

// Clone returns a deep copy of b.
func (b SyncBookkeeping) Clone() SyncBookkeeping {
	out := make(SyncBookkeeping, len(b))
	for c, t := range b {
		if t.IntervalMillis != nil {
			v := *t.IntervalMillis
			t.IntervalMillis = &v
		}
		out[c] = t
	}
	return out
}

// MarshalJSON encodes the map keyed by category wire name.
func (b SyncBookkeeping) MarshalJSON() ([]byte, error) {
	raw := make(map[string]CategoryTiming, len(b))
	for c, t := range b {
		if c.Valid() {
			raw[c.String()] = t
		}
	}
	return json.Marshal(raw)
}

// UnmarshalJSON decodes the map, dropping categories this build does not know.
func (b *SyncBookkeeping) UnmarshalJSON(data []byte) error {
	var raw map[string]CategoryTiming
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(SyncBookkeeping, len(raw))
	for name, t := range raw {
		if c, ok := ParseCategory(name); ok {
			out[c] = t
		}
	}
	*b = out
	return nil
}
