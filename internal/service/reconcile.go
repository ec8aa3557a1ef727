// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"slices"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-clip-keeper/models"
)

// Diff computes the entry list that should exist on the remote after this
// pass, from the frozen local state and the remote snapshot.
//
// Cache rows are walked in local order:
//   - Added rows are always kept;
//   - DidNotChanged rows are kept only while the remote still lists them,
//     otherwise another device deleted them;
//   - Deleted rows are dropped.
//
// A kept row is materialized only when its entry exists and is
// synchronizable. Remote entries this device has never seen are carried
// through unchanged after the local ones.
func Diff(frozen models.LocalState, remote []models.CloudDataEntry) []models.CloudDataEntry {
	onRemote := make(map[uuid.UUID]struct{}, len(remote))
	for _, r := range remote {
		onRemote[r.Identifier] = struct{}{}
	}

	entries := make(map[uuid.UUID]models.DataEntry, len(frozen.Entries))
	for _, e := range frozen.Entries {
		entries[e.Identifier] = e
	}

	known := make(map[uuid.UUID]struct{}, len(frozen.Cache))
	uploadSet := make([]models.CloudDataEntry, 0, len(frozen.Cache)+len(remote))

	for _, row := range frozen.Cache {
		known[row.Identifier] = struct{}{}

		switch row.Status {
		case models.StatusAdded:
		case models.StatusDidNotChanged:
			if _, ok := onRemote[row.Identifier]; !ok {
				continue
			}
		default:
			continue
		}

		entry, ok := entries[row.Identifier]
		if !ok || !entry.IsSynchronizable() {
			continue
		}
		uploadSet = append(uploadSet, entry.ToCloud())
	}

	for _, r := range remote {
		if _, ok := known[r.Identifier]; ok {
			continue
		}
		if _, ok := entries[r.Identifier]; ok {
			continue
		}
		uploadSet = append(uploadSet, r)
		known[r.Identifier] = struct{}{}
	}

	return uploadSet
}

// Merge replays uploadSet into state.
//
// With pruneOnly set it only drops entries another device deleted, see
// [PruneLocalOnly]. Otherwise rows that were Added when the pass froze the
// state become DidNotChanged, rows that were Deleted are forgotten, and
// remote entries unknown to this device are inserted at their place.
//
// Rows created or changed after the freeze keep their status for the next
// pass.
func Merge(state *models.LocalState, uploadSet []models.CloudDataEntry, pruneOnly bool, frozenCache []models.DataEntryCache) {
	if pruneOnly {
		PruneLocalOnly(state, uploadSet, frozenCache)
		return
	}

	frozen := statusIndex(frozenCache)

	state.Cache = slices.DeleteFunc(state.Cache, func(row models.DataEntryCache) bool {
		return row.Status == models.StatusDeleted && frozen[row.Identifier] == models.StatusDeleted
	})
	for i, row := range state.Cache {
		if row.Status == models.StatusAdded && frozen[row.Identifier] == models.StatusAdded {
			state.Cache[i].Status = models.StatusDidNotChanged
		}
	}

	for _, remote := range uploadSet {
		if state.CacheIndex(remote.Identifier) >= 0 || state.EntryIndex(remote.Identifier) >= 0 {
			continue
		}
		insertRemote(state, remote.ToDataEntry())
	}
}

// PruneLocalOnly removes the local entries that were in sync at freeze time
// and are no longer listed in uploadSet. Entries that never leave the device
// are kept.
func PruneLocalOnly(state *models.LocalState, uploadSet []models.CloudDataEntry, frozenCache []models.DataEntryCache) {
	frozen := statusIndex(frozenCache)

	listed := make(map[uuid.UUID]struct{}, len(uploadSet))
	for _, r := range uploadSet {
		listed[r.Identifier] = struct{}{}
	}

	doomed := make(map[uuid.UUID]struct{})
	for _, row := range state.Cache {
		if row.Status != models.StatusDidNotChanged || frozen[row.Identifier] != models.StatusDidNotChanged {
			continue
		}
		if _, ok := listed[row.Identifier]; ok {
			continue
		}
		if entry, ok := state.Entry(row.Identifier); ok && !entry.IsSynchronizable() {
			continue
		}
		doomed[row.Identifier] = struct{}{}
	}
	if len(doomed) == 0 {
		return
	}

	state.Entries = slices.DeleteFunc(state.Entries, func(e models.DataEntry) bool {
		_, ok := doomed[e.Identifier]
		return ok
	})
	state.Cache = slices.DeleteFunc(state.Cache, func(row models.DataEntryCache) bool {
		_, ok := doomed[row.Identifier]
		return ok
	})
}

func statusIndex(cache []models.DataEntryCache) map[uuid.UUID]models.CacheStatus {
	idx := make(map[uuid.UUID]models.CacheStatus, len(cache))
	for _, row := range cache {
		idx[row.Identifier] = row.Status
	}
	return idx
}

// insertRemote inserts entry with a DidNotChanged row, inside the favorites
// block or the others block, before the first entry it sorts ahead of.
func insertRemote(state *models.LocalState, entry models.DataEntry) {
	k := entryInsertionIndex(state.Entries, entry)
	c := cacheInsertionIndex(*state, k, entry.IsFavorite)

	state.Entries = slices.Insert(state.Entries, k, entry)
	state.Cache = slices.Insert(state.Cache, c, models.DataEntryCache{
		Identifier: entry.Identifier,
		Status:     models.StatusDidNotChanged,
	})
}

func entryInsertionIndex(entries []models.DataEntry, entry models.DataEntry) int {
	favorites := 0
	for favorites < len(entries) && entries[favorites].IsFavorite {
		favorites++
	}

	lo, hi := favorites, len(entries)
	if entry.IsFavorite {
		lo, hi = 0, favorites
	}
	for i := lo; i < hi; i++ {
		if sortsBefore(entry, entries[i]) {
			return i
		}
	}
	return hi
}

// sortsBefore orders entries newest first. Equal dates fall back to the
// identifier, ascending.
func sortsBefore(a, b models.DataEntry) bool {
	if !a.Date.Equal(b.Date) {
		return a.Date.After(b.Date)
	}
	return a.Identifier.String() < b.Identifier.String()
}

// cacheInsertionIndex maps an entry insertion index to the cache list,
// which may also hold rows of removed entries.
func cacheInsertionIndex(state models.LocalState, k int, favorite bool) int {
	if k < len(state.Entries) && (!favorite || state.Entries[k].IsFavorite) {
		if c := state.CacheIndex(state.Entries[k].Identifier); c >= 0 {
			return c
		}
	}

	if favorite {
		favorites := make(map[uuid.UUID]struct{})
		for _, e := range state.Entries {
			if e.IsFavorite {
				favorites[e.Identifier] = struct{}{}
			}
		}
		for c, row := range state.Cache {
			if _, ok := favorites[row.Identifier]; !ok {
				return c
			}
		}
	}
	return len(state.Cache)
}
