// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/google/uuid"

// CacheStatus is the reconciliation state of one entry.
//
//	Added → DidNotChanged → [Deleted]
type CacheStatus string

const (
	// StatusAdded marks an entry captured locally and not yet acknowledged
	// by the remote.
	StatusAdded CacheStatus = "added"

	// StatusDidNotChanged marks an entry known to both sides.
	StatusDidNotChanged CacheStatus = "did_not_changed"

	// StatusDeleted marks an entry removed locally whose remote copy is
	// still pending deletion.
	StatusDeleted CacheStatus = "deleted"
)

// DataEntryCache is the reconciliation bookkeeping row of one DataEntry.
type DataEntryCache struct {
	Identifier uuid.UUID   `json:"identifier"`
	Status     CacheStatus `json:"status"`
}
