// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// DataIdentifier links one retained clipboard format of an entry to the
// encrypted file holding its raw bytes (<Identifier>.dat).
type DataIdentifier struct {
	// Identifier names the per-format payload file and seeds its password.
	Identifier uuid.UUID `json:"identifier"`

	// FormatName is the clipboard format the payload was captured in
	// (e.g. "text/plain", "text/uri-list").
	FormatName string `json:"format_name"`
}

// AppIdentity describes the foreground application at capture time.
type AppIdentity struct {
	// Name is the human-readable application or window title.
	Name string `json:"name"`

	// Executable is the process executable name (e.g. "firefox.exe").
	Executable string `json:"executable"`

	// IconBase64 is the serialized application icon, if any.
	IconBase64 string `json:"icon,omitempty"`
}

// DataEntry is one clipboard capture.
//
// Identifier is unique among every DataEntry and every DataIdentifier ever
// issued by the store. Favorite and CanSynchronize are mutated in place; the
// rest is fixed at capture time.
type DataEntry struct {
	Identifier      uuid.UUID        `json:"identifier"`
	Date            time.Time        `json:"date"`
	IsCut           bool             `json:"is_cut"`
	IsFavorite      bool             `json:"is_favorite"`
	CanSynchronize  bool             `json:"can_synchronize"`
	DataIdentifiers []DataIdentifier `json:"data_identifiers"`
	Thumbnail       Thumbnail        `json:"thumbnail"`
	Application     AppIdentity      `json:"application"`
}

// Clone returns a deep copy of the entry.
func (e DataEntry) Clone() DataEntry {
	c := e
	if e.DataIdentifiers != nil {
		c.DataIdentifiers = make([]DataIdentifier, len(e.DataIdentifiers))
		copy(c.DataIdentifiers, e.DataIdentifiers)
	}
	return c
}

// IsSynchronizable reports whether the entry may leave this device:
// sensitive captures and file-drop payloads never do.
func (e DataEntry) IsSynchronizable() bool {
	return e.CanSynchronize && e.Thumbnail.Type != ThumbnailFiles
}

// ToCloud converts the entry into its wire representation.
func (e DataEntry) ToCloud() CloudDataEntry {
	ids := make([]DataIdentifier, len(e.DataIdentifiers))
	copy(ids, e.DataIdentifiers)

	return CloudDataEntry{
		Identifier:      e.Identifier,
		DataIdentifiers: ids,
		Date:            e.Date,
		IsFavorite:      e.IsFavorite,
		ThumbnailValue:  e.Thumbnail.Value,
		ThumbnailType:   e.Thumbnail.Type,
		Icon:            e.Application.IconBase64,
	}
}
