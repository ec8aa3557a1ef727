// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/google/uuid"

// LocalState is the pair of parallel lists owned by the entry store.
// Entries and Cache are kept in the same relative order: favorites first,
// then the rest by recency.
type LocalState struct {
	Entries []DataEntry
	Cache   []DataEntryCache
}

// Clone returns a deep copy of the state.
func (s LocalState) Clone() LocalState {
	c := LocalState{
		Entries: make([]DataEntry, len(s.Entries)),
		Cache:   make([]DataEntryCache, len(s.Cache)),
	}
	for i, e := range s.Entries {
		c.Entries[i] = e.Clone()
	}
	copy(c.Cache, s.Cache)
	return c
}

// EntryIndex returns the position of the entry with the given identifier,
// or -1.
func (s LocalState) EntryIndex(id uuid.UUID) int {
	for i := range s.Entries {
		if s.Entries[i].Identifier == id {
			return i
		}
	}
	return -1
}

// CacheIndex returns the position of the cache row with the given
// identifier, or -1.
func (s LocalState) CacheIndex(id uuid.UUID) int {
	for i := range s.Cache {
		if s.Cache[i].Identifier == id {
			return i
		}
	}
	return -1
}

// Entry returns the entry with the given identifier.
func (s LocalState) Entry(id uuid.UUID) (DataEntry, bool) {
	if i := s.EntryIndex(id); i >= 0 {
		return s.Entries[i], true
	}
	return DataEntry{}, false
}

// CacheStatusOf returns the cache status of the given identifier.
func (s LocalState) CacheStatusOf(id uuid.UUID) (CacheStatus, bool) {
	if i := s.CacheIndex(id); i >= 0 {
		return s.Cache[i].Status, true
	}
	return "", false
}
