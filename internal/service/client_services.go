package service

import (
	"github.com/MKhiriev/go-clip-keeper/internal/adapter"
	"github.com/MKhiriev/go-clip-keeper/internal/config"
	"github.com/MKhiriev/go-clip-keeper/internal/logger"
	"github.com/MKhiriev/go-clip-keeper/internal/store"
)

// ClientServices groups the services of the clipboard client.
type ClientServices struct {
	Notifier         Notifier
	CaptureService   CaptureService
	SyncService      CloudSyncService
	SyncJob          SyncJob
	MigrationService MigrationService
}

// NewClientServices wires the client services. remote may be nil when no
// provider is linked.
func NewClientServices(cfg *config.ClientConfig, storages *store.ClientStorages, remote adapter.RemoteStorage,
	network NetworkMonitor, clipboard ClipboardWriter, log *logger.Logger) *ClientServices {
	notifier := NewNotifier(log)

	opts := SyncOptions{}
	// a shared folder is reachable without the network
	if remote != nil && remote.Name() == config.ProviderFolder {
		opts.SkipNetworkCheck = true
	}

	syncSvc := NewCloudSyncService(storages.Entries, remote, storages.Settings, network, notifier, opts, log)

	return &ClientServices{
		Notifier:         notifier,
		CaptureService:   NewCaptureService(storages.Entries, storages.Settings, notifier, clipboard, log),
		SyncService:      syncSvc,
		SyncJob:          NewSyncJob(syncSvc, storages.Settings, cfg.Workers.SyncInterval, log),
		MigrationService: NewMigrationService(cfg.App, storages.Entries, storages.Settings, notifier, log),
	}
}
