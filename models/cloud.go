// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// CloudDataEntry is the remote representation of a DataEntry. The cut flag,
// the can-synchronize flag and file-drop payloads never leave the device.
type CloudDataEntry struct {
	Identifier      uuid.UUID        `json:"identifier"`
	DataIdentifiers []DataIdentifier `json:"data_identifiers"`
	Date            time.Time        `json:"date"`
	IsFavorite      bool             `json:"is_favorite"`
	ThumbnailValue  string           `json:"thumbnail_value"`
	ThumbnailType   ThumbnailType    `json:"thumbnail_type"`
	Icon            string           `json:"icon,omitempty"`
}

// ToDataEntry materializes a local entry from a remote one. Entries that
// came from the remote are synchronizable by definition.
func (c CloudDataEntry) ToDataEntry() DataEntry {
	ids := make([]DataIdentifier, len(c.DataIdentifiers))
	copy(ids, c.DataIdentifiers)

	return DataEntry{
		Identifier:      c.Identifier,
		Date:            c.Date,
		IsFavorite:      c.IsFavorite,
		CanSynchronize:  true,
		DataIdentifiers: ids,
		Thumbnail:       Thumbnail{Type: c.ThumbnailType, Value: c.ThumbnailValue},
		Application:     AppIdentity{IconBase64: c.Icon},
	}
}

// RemoteFile is one element of a remote provider listing.
type RemoteFile struct {
	Name     string    `json:"name"`
	Size     int64     `json:"size"`
	Modified time.Time `json:"modified"`
	IsFolder bool      `json:"is_folder"`
}
