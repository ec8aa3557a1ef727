// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-clip-keeper/models"
)

// CloudSyncService reconciles the local entry store with the linked remote
// storage.
type CloudSyncService interface {
	// Synchronize runs one synchronization pass. A call made while a pass is
	// already running returns immediately without queuing. It returns nil
	// without doing anything when no provider is linked or the network is
	// unusable. Failures are also reported through the notifier.
	Synchronize(ctx context.Context) error

	// IsSynchronizing reports whether a pass is in flight.
	IsSynchronizing() bool
}

// SyncJob runs [CloudSyncService.Synchronize] periodically.
type SyncJob interface {
	// Start launches the background loop. The timer restarts after every
	// pass, whether it was periodic or triggered.
	Start(ctx context.Context)

	// Trigger requests a pass as soon as possible. Requests made while one
	// is pending are merged.
	Trigger()

	// Stop cancels the loop and waits for it to exit. Safe to call when the
	// job is not running.
	Stop()
}

// CaptureService turns clipboard changes into stored entries.
type CaptureService interface {
	// Capture stores event as a new entry. It returns [ErrIgnoredApplication]
	// or [ErrSensitiveCapture] when the capture is deliberately skipped.
	Capture(ctx context.Context, event models.CaptureEvent) (models.DataEntry, error)

	// Paste writes the text payload of an entry back to the system clipboard.
	Paste(ctx context.Context, id uuid.UUID) error
}

// MigrationService moves the stored entry list across application versions.
type MigrationService interface {
	// MigrateIfNeeded re-encrypts the entry-list and cache files when the
	// previous run used another version. It must run before the store is
	// loaded.
	MigrateIfNeeded(ctx context.Context) error
}

// NetworkMonitor reports connectivity for the synchronization pass.
type NetworkMonitor interface {
	IsAvailable(ctx context.Context) bool
	IsMetered(ctx context.Context) bool
}

// ClipboardWriter puts text on the system clipboard.
type ClipboardWriter interface {
	WriteText(text string) error
}

// Notifier fans events out to subscribers.
type Notifier interface {
	Notify(event models.Event)

	// Subscribe returns a channel receiving every subsequent event and a
	// function cancelling the subscription. Events are dropped for
	// subscribers whose buffer is full.
	Subscribe(buffer int) (<-chan models.Event, func())
}
