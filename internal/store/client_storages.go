// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"path/filepath"

	"github.com/MKhiriev/go-clip-keeper/internal/config"
	"github.com/MKhiriev/go-clip-keeper/internal/crypto"
	"github.com/MKhiriev/go-clip-keeper/internal/logger"
	"github.com/MKhiriev/go-clip-keeper/internal/settings"
)

// ClientStorages groups the client-side storage: the user settings and the
// entry store.
type ClientStorages struct {
	Settings *settings.Store
	Entries  EntryStore
}

// NewClientStorages opens the settings database and builds the entry store
// under cfg.DataDir. The entry-list and cache files are encrypted with the
// password of the running version. The store is not loaded yet: callers
// run the version migration first and then call Load.
func NewClientStorages(cfg config.ClientApp, resolver TitleResolver, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Str("data_dir", cfg.DataDir).Msg("creating client storages...")

	st, err := settings.LoadAt(filepath.Join(cfg.DataDir, settings.FileName))
	if err != nil {
		return nil, fmt.Errorf("opening settings: %w", err)
	}

	entries, err := NewEntryStore(cfg.DataDir, crypto.ApplicationPassword(cfg.Secret, cfg.Version), st, resolver, log)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("creating entry store: %w", err)
	}

	return &ClientStorages{
		Settings: st,
		Entries:  entries,
	}, nil
}

// Close releases the settings database.
func (s *ClientStorages) Close() error {
	return s.Settings.Close()
}
