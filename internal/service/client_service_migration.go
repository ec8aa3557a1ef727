// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/MKhiriev/go-clip-keeper/internal/config"
	"github.com/MKhiriev/go-clip-keeper/internal/crypto"
	"github.com/MKhiriev/go-clip-keeper/internal/logger"
	"github.com/MKhiriev/go-clip-keeper/internal/settings"
	"github.com/MKhiriev/go-clip-keeper/internal/store"
	"github.com/MKhiriev/go-clip-keeper/models"
)

type migrationService struct {
	dataDir string
	secret  string
	version string

	entries  store.EntryStore
	settings settings.Provider
	notifier Notifier

	logger *logger.Logger
}

// NewMigrationService builds the version migration of the store living
// under cfg.DataDir.
func NewMigrationService(cfg config.ClientApp, entries store.EntryStore, provider settings.Provider, notifier Notifier, log *logger.Logger) MigrationService {
	return &migrationService{
		dataDir:  cfg.DataDir,
		secret:   cfg.Secret,
		version:  cfg.Version,
		entries:  entries,
		settings: provider,
		notifier: notifier,
		logger:   log,
	}
}

// MigrateIfNeeded implements MigrationService. On failure the store is
// cleared and the running version is recorded anyway, so the next start
// does not retry with files that cannot be read.
func (m *migrationService) MigrateIfNeeded(ctx context.Context) error {
	last := m.settings.String(settings.LastRunVersion)
	if last == m.version {
		return nil
	}

	var migrateErr error
	if last != "" {
		m.logger.Info().Str("from", last).Str("to", m.version).Msg("migrating clipboard data")
		migrateErr = m.migrate(ctx, last)
		if migrateErr == nil {
			m.logger.Info().Str("from", last).Str("to", m.version).Msg("clipboard data migrated")
		}
	}

	if err := m.settings.Set(settings.LastRunVersion, m.version); err != nil {
		return errors.Join(migrateErr, fmt.Errorf("saving last run version: %w", err))
	}
	return migrateErr
}

func (m *migrationService) migrate(ctx context.Context, from string) error {
	oldPassword := crypto.ApplicationPassword(m.secret, from)
	newPassword := crypto.ApplicationPassword(m.secret, m.version)

	files := []string{store.EntryListFileName, store.CacheFileName}
	m.progress(models.MigrationProgress{})

	for i, name := range files {
		err := ctx.Err()
		if err == nil {
			err = store.Reencrypt(filepath.Join(m.dataDir, store.DataFolderName, name), oldPassword, newPassword)
		}
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			m.logger.Err(err).Str("file", name).Msg("data migration failed, clearing cache")
			if clearErr := m.entries.ClearCache(ctx); clearErr != nil {
				m.logger.Warn().Err(clearErr).Msg("failed to clear cache after migration failure")
			}
			m.progress(models.MigrationProgress{Percent: 100, Completed: true, Failed: true})
			return fmt.Errorf("%w: %s: %w", ErrMigrationFailed, name, err)
		}

		m.progress(models.MigrationProgress{
			Percent:   (i + 1) * 100 / len(files),
			Completed: i == len(files)-1,
		})
	}
	return nil
}

func (m *migrationService) progress(p models.MigrationProgress) {
	m.notifier.Notify(models.Event{Kind: models.EventDataMigrationProgress, Migration: p})
}
