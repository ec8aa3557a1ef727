// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-clip-keeper/internal/adapter"
	"github.com/MKhiriev/go-clip-keeper/internal/config"
	"github.com/MKhiriev/go-clip-keeper/internal/logger"
	"github.com/MKhiriev/go-clip-keeper/internal/service"
	"github.com/MKhiriev/go-clip-keeper/internal/settings"
	"github.com/MKhiriev/go-clip-keeper/internal/store"
	"github.com/MKhiriev/go-clip-keeper/internal/workers"
	"github.com/MKhiriev/go-clip-keeper/models"
)

const (
	// folderSyncDelay coalesces the burst of file events produced by one
	// remote write.
	folderSyncDelay = 2 * time.Second

	eventBuffer = 32
)

var ErrNoAccountProvider = errors.New("the configured provider has no accounts")

// tokenHolder is implemented by providers that keep a bearer token.
type tokenHolder interface {
	SetToken(raw string)
	Token() string
}

// folderWatcher is implemented by providers whose files can be watched.
type folderWatcher interface {
	Watch(ctx context.Context, name string, onChange func()) error
}

type App struct {
	cfg *config.ClientConfig

	storages  *store.ClientStorages
	remote    adapter.RemoteStorage
	clipboard *workers.SystemClipboard
	services  *service.ClientServices

	// loaded is set once the store was read. Only a loaded store is saved.
	loaded bool

	logger *logger.Logger
}

// NewApp opens the local storage and builds the configured remote provider.
// The entry store is loaded by Run, after the version migration.
func NewApp(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(cfg.App, adapter.NewLinkTitleResolver(), log)
	if err != nil {
		return nil, fmt.Errorf("create client storages: %w", err)
	}

	remote, err := adapter.NewRemoteStorage(ctx, cfg.Remote, log)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("create remote storage: %w", err)
	}

	if err = linkProvider(storages.Settings, cfg.Remote.Provider, remote); err != nil {
		storages.Close()
		return nil, err
	}

	clip := workers.NewSystemClipboard()
	return &App{
		cfg:       cfg,
		storages:  storages,
		remote:    remote,
		clipboard: clip,
		services:  service.NewClientServices(cfg, storages, remote, adapter.NewNetworkMonitor(cfg.Network), clip, log),
		logger:    log,
	}, nil
}

// linkProvider records the provider in the settings and restores the token
// saved by the previous run.
func linkProvider(st *settings.Store, provider string, remote adapter.RemoteStorage) error {
	if provider == config.ProviderNone {
		provider = ""
	}
	if err := st.Set(settings.RemoteProvider, provider); err != nil {
		return fmt.Errorf("saving remote provider: %w", err)
	}

	if holder, ok := remote.(tokenHolder); ok {
		holder.SetToken(st.String(settings.RemoteToken))
	}
	return nil
}

// Run migrates and loads the store, then captures the clipboard and
// synchronizes until ctx is cancelled. The store is saved on exit.
func (a *App) Run(ctx context.Context) error {
	defer a.close()

	events, unsubscribe := a.services.Notifier.Subscribe(eventBuffer)
	defer unsubscribe()

	if err := a.open(ctx); err != nil {
		return err
	}

	a.services.SyncJob.Start(ctx)
	defer a.services.SyncJob.Stop()

	pool := workers.NewWorkers(
		workers.WorkerFunc(func(ctx context.Context) error {
			a.logEvents(ctx, events)
			return ctx.Err()
		}),
		workers.NewClipboardWatcher(a.clipboard, a.services.CaptureService, a.pollInterval(), a.logger),
	)
	if watcher, ok := a.remote.(folderWatcher); ok {
		pool.Add(a.folderTrigger(watcher))
	}

	a.logger.Info().Str("data_dir", a.cfg.App.DataDir).Str("provider", a.cfg.Remote.Provider).Msg("clipboard daemon started")
	return pool.Run(ctx)
}

// Register creates the configured account on the self-hosted server.
func (a *App) Register(ctx context.Context) error {
	defer a.close()

	httpStorage, ok := a.remote.(*adapter.HTTPStorage)
	if !ok {
		return fmt.Errorf("%w: %q", ErrNoAccountProvider, a.cfg.Remote.Provider)
	}
	if err := httpStorage.Register(ctx); err != nil {
		return err
	}

	a.logger.Info().Str("login", a.cfg.Remote.Login).Msg("account registered")
	return nil
}

// Synchronize runs a single pass and exits.
func (a *App) Synchronize(ctx context.Context) error {
	defer a.close()

	if err := a.open(ctx); err != nil {
		return err
	}
	return a.services.SyncService.Synchronize(ctx)
}

// open migrates the data written by another version and loads the store.
func (a *App) open(ctx context.Context) error {
	if err := a.services.MigrationService.MigrateIfNeeded(ctx); err != nil {
		a.logger.Error().Err(err).Msg("data migration failed, continuing with a cleared cache")
	}
	if err := a.storages.Entries.Load(ctx); err != nil {
		return fmt.Errorf("load entry store: %w", err)
	}
	a.loaded = true
	return nil
}

func (a *App) folderTrigger(watcher folderWatcher) workers.Worker {
	return workers.WorkerFunc(func(ctx context.Context) error {
		debouncer := workers.NewDebouncer(folderSyncDelay, func(struct{}) {
			a.services.SyncJob.Trigger()
		})
		defer debouncer.Stop()

		return watcher.Watch(ctx, store.EntryListFileName, func() {
			debouncer.Push(struct{}{})
		})
	})
}

func (a *App) pollInterval() time.Duration {
	if a.cfg.Workers.ClipboardPollInterval > 0 {
		return a.cfg.Workers.ClipboardPollInterval
	}
	return time.Duration(a.storages.Settings.Int(settings.ClipboardPollInterval)) * time.Millisecond
}

func (a *App) logEvents(ctx context.Context, events <-chan models.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			entry := a.logger.Info()
			if event.Kind == models.EventSynchronizationFailed {
				entry = a.logger.Warn().Err(event.Err)
			}
			if event.Kind == models.EventDataMigrationProgress {
				entry = entry.Int("percent", event.Migration.Percent).Bool("failed", event.Migration.Failed)
			}
			entry.Str("event", string(event.Kind)).Msg("client event")
		}
	}
}

// close persists the loaded store and the provider token, then releases
// the settings database.
func (a *App) close() {
	if a.loaded {
		if err := a.storages.Entries.Save(context.Background()); err != nil {
			a.logger.Error().Err(err).Msg("saving entry store failed")
		}
	}

	if holder, ok := a.remote.(tokenHolder); ok {
		if err := a.storages.Settings.Set(settings.RemoteToken, holder.Token()); err != nil {
			a.logger.Warn().Err(err).Msg("saving remote token failed")
		}
	}

	if err := a.storages.Close(); err != nil {
		a.logger.Warn().Err(err).Msg("closing settings failed")
	}
}
