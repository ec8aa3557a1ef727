// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/google/uuid"

// EventKind names an observable event raised by the services.
type EventKind string

const (
	EventSynchronizationStarted EventKind = "synchronization_started"
	EventSynchronizationEnded   EventKind = "synchronization_ended"
	EventSynchronizationFailed  EventKind = "synchronization_failed"
	EventCreditCardDetected     EventKind = "credit_card_number_detected"
	EventCreditCardSaved        EventKind = "credit_card_number_saved"
	EventPasswordDetected       EventKind = "password_detected"
	EventPasswordSaved          EventKind = "password_saved"
	EventDataMigrationProgress  EventKind = "data_migration_progress"
)

// MigrationProgress is the payload of EventDataMigrationProgress.
type MigrationProgress struct {
	Percent   int  `json:"percent"`
	Completed bool `json:"completed"`
	Failed    bool `json:"failed"`
}

// Event is delivered to every subscriber of the notifier.
type Event struct {
	Kind EventKind

	// EntryID is set for capture events that produced an entry.
	EntryID uuid.UUID

	// Err is set for EventSynchronizationFailed.
	Err error

	// Migration is set for EventDataMigrationProgress.
	Migration MigrationProgress
}
