// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-clip-keeper/models"
)

// EntryStore owns the in-memory entry list and its change cache, and is the
// only writer of the encrypted entry-list and cache files.
//
// All mutations are sequenced behind a single lock. Callers running long
// work off the store (the synchronization pass) read through [EntryStore.Snapshot]
// and write back through [EntryStore.Apply].
type EntryStore interface {
	// NewIdentifier returns an identifier unused by any entry or payload.
	NewIdentifier() (uuid.UUID, error)

	AddEntry(ctx context.Context, entry *models.DataEntry) error
	RemoveEntry(ctx context.Context, id uuid.UUID) error
	SetFavorite(ctx context.Context, id uuid.UUID, favorite bool) error
	SetCanSynchronize(ctx context.Context, id uuid.UUID, canSynchronize bool) error

	Purge(ctx context.Context) error
	Reorganize()

	Save(ctx context.Context) error
	Load(ctx context.Context) error
	ClearCache(ctx context.Context) error

	// Snapshot returns a deep copy of the entries and cache rows.
	Snapshot() models.LocalState

	// Apply runs fn on a copy of the state and swaps it in when fn succeeds,
	// then persists. Payload files of entries dropped by fn are deleted.
	Apply(ctx context.Context, fn func(*models.LocalState) error) error

	Entries() []models.DataEntry
	Search(query string) []models.DataEntry

	// CopyData returns the decrypted payload of every format of an entry,
	// keyed by format name.
	CopyData(ctx context.Context, id uuid.UUID) (map[string][]byte, error)

	// Files gives access to the per-format payload files.
	Files() DataFileStorage
}

// DataFileStorage reads and writes the encrypted per-format payload files
// named "<identifier>.dat" inside the clipboard data folder. Each file is
// encrypted with a password derived from its identifier.
type DataFileStorage interface {
	Dir() string
	Path(id uuid.UUID) string
	Write(id uuid.UUID, src io.Reader) error
	Read(id uuid.UUID, dst io.Writer) error
	Exists(id uuid.UUID) bool
	Delete(id uuid.UUID) error

	// Clear removes every file in the data folder.
	Clear() error
}

// TitleResolver looks up the human-readable title of a web page. It is used
// to enrich link thumbnails after a capture.
type TitleResolver interface {
	ResolveTitle(ctx context.Context, uri string) (string, error)
}
