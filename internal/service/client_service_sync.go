// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"sync/atomic"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-clip-keeper/internal/adapter"
	"github.com/MKhiriev/go-clip-keeper/internal/crypto"
	"github.com/MKhiriev/go-clip-keeper/internal/logger"
	"github.com/MKhiriev/go-clip-keeper/internal/settings"
	"github.com/MKhiriev/go-clip-keeper/internal/store"
	"github.com/MKhiriev/go-clip-keeper/models"
)

const defaultSyncParallelism = 4

// SyncOptions tunes a [CloudSyncService].
type SyncOptions struct {
	// SkipNetworkCheck runs passes regardless of connectivity. Used by
	// folder providers, which do not go through the network monitor.
	SkipNetworkCheck bool

	// Parallelism bounds concurrent payload transfers. Zero means the
	// default.
	Parallelism int
}

type cloudSyncService struct {
	entries  store.EntryStore
	remote   adapter.RemoteStorage
	settings settings.Provider
	network  NetworkMonitor
	notifier Notifier

	opts    SyncOptions
	running atomic.Bool

	logger *logger.Logger
}

// NewCloudSyncService builds the synchronization pass over remote. A nil
// remote makes every pass a no-op.
func NewCloudSyncService(
	entries store.EntryStore,
	remote adapter.RemoteStorage,
	provider settings.Provider,
	network NetworkMonitor,
	notifier Notifier,
	opts SyncOptions,
	log *logger.Logger,
) CloudSyncService {
	if opts.Parallelism <= 0 {
		opts.Parallelism = defaultSyncParallelism
	}
	return &cloudSyncService{
		entries:  entries,
		remote:   remote,
		settings: provider,
		network:  network,
		notifier: notifier,
		opts:     opts,
		logger:   log,
	}
}

func (s *cloudSyncService) IsSynchronizing() bool {
	return s.running.Load()
}

func (s *cloudSyncService) Synchronize(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		s.logger.Debug().Msg("synchronization already running, skipped")
		return nil
	}
	defer s.running.Store(false)

	if s.remote == nil || s.settings.String(settings.RemoteProvider) == "" {
		return nil
	}
	if !s.opts.SkipNetworkCheck && !s.networkUsable(ctx) {
		s.logger.Debug().Str("provider", s.remote.Name()).Msg("network unusable, synchronization skipped")
		return nil
	}

	s.notifier.Notify(models.Event{Kind: models.EventSynchronizationStarted})
	defer s.notifier.Notify(models.Event{Kind: models.EventSynchronizationEnded})

	err := s.synchronize(ctx)
	if err != nil {
		s.logger.Err(err).Str("provider", s.remote.Name()).Msg("synchronization failed")
		s.notifier.Notify(models.Event{Kind: models.EventSynchronizationFailed, Err: err})
		return err
	}

	s.logger.Info().Str("provider", s.remote.Name()).Msg("synchronization done")
	return nil
}

func (s *cloudSyncService) networkUsable(ctx context.Context) bool {
	if s.network == nil {
		return true
	}
	if !s.network.IsAvailable(ctx) {
		return false
	}
	return !(s.settings.Bool(settings.AvoidMeteredConnection) && s.network.IsMetered(ctx))
}

func (s *cloudSyncService) synchronize(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("synchronization panicked: %v", r)
		}
	}()

	if !s.remote.TryAuthenticate(ctx) {
		return ErrNotAuthenticated
	}
	password := crypto.RemotePassword(s.remote.UserID(), s.remote.UserName())

	remote, err := s.downloadEntryList(ctx, password)
	if err != nil {
		return err
	}

	frozen := s.entries.Snapshot()
	uploadSet := Diff(frozen, remote)

	if err = s.downloadNewPayloads(ctx, frozen, remote, password); err != nil {
		return fmt.Errorf("downloading payloads: %w", err)
	}
	if err = s.deleteUnsynchronizable(ctx, frozen, remote); err != nil {
		return fmt.Errorf("deleting local-only payloads: %w", err)
	}
	if err = s.deleteRemoved(ctx, frozen, remote); err != nil {
		return fmt.Errorf("deleting removed payloads: %w", err)
	}

	err = s.entries.Apply(ctx, func(state *models.LocalState) error {
		Merge(state, uploadSet, true, frozen.Cache)
		return nil
	})
	if err != nil {
		return fmt.Errorf("pruning deleted entries: %w", err)
	}

	current := s.entries.Snapshot()
	if err = s.uploadNewPayloads(ctx, current, remote, uploadSet, password); err != nil {
		return fmt.Errorf("uploading payloads: %w", err)
	}

	if !sameEntryList(remote, uploadSet) {
		if err = s.uploadEntryList(ctx, uploadSet, password); err != nil {
			return err
		}
	}

	err = s.entries.Apply(ctx, func(state *models.LocalState) error {
		Merge(state, uploadSet, false, frozen.Cache)
		return nil
	})
	if err != nil {
		return fmt.Errorf("merging remote entries: %w", err)
	}
	return nil
}

// downloadEntryList fetches the remote entry list. A missing list is an
// empty one.
func (s *cloudSyncService) downloadEntryList(ctx context.Context, password string) ([]models.CloudDataEntry, error) {
	var enc bytes.Buffer
	err := s.remote.DownloadFile(ctx, store.EntryListFileName, &enc)
	if errors.Is(err, adapter.ErrRemoteFileNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("downloading entry list: %w", err)
	}

	var plain bytes.Buffer
	if err = crypto.DecryptStream(&plain, &enc, password); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRemoteListUnreadable, err)
	}

	var remote []models.CloudDataEntry
	if err = json.Unmarshal(plain.Bytes(), &remote); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRemoteListUnreadable, err)
	}
	return remote, nil
}

func (s *cloudSyncService) uploadEntryList(ctx context.Context, uploadSet []models.CloudDataEntry, password string) error {
	if uploadSet == nil {
		uploadSet = []models.CloudDataEntry{}
	}
	raw, err := json.Marshal(uploadSet)
	if err != nil {
		return fmt.Errorf("marshalling entry list: %w", err)
	}

	var enc bytes.Buffer
	if err = crypto.EncryptStream(&enc, bytes.NewReader(raw), password); err != nil {
		return fmt.Errorf("encrypting entry list: %w", err)
	}
	if err = s.remote.UploadFile(ctx, &enc, store.EntryListFileName); err != nil {
		return fmt.Errorf("uploading entry list: %w", err)
	}
	return nil
}

// downloadNewPayloads fetches the payloads of remote entries this device
// has never seen.
func (s *cloudSyncService) downloadNewPayloads(ctx context.Context, frozen models.LocalState, remote []models.CloudDataEntry, password string) error {
	var ids []uuid.UUID
	for _, r := range remote {
		if frozen.CacheIndex(r.Identifier) >= 0 || frozen.EntryIndex(r.Identifier) >= 0 {
			continue
		}
		for _, d := range r.DataIdentifiers {
			ids = append(ids, d.Identifier)
		}
	}

	return s.fanOut(ctx, ids, func(ctx context.Context, id uuid.UUID) error {
		var enc bytes.Buffer
		err := s.remote.DownloadFile(ctx, store.DataFileName(id), &enc)
		if errors.Is(err, adapter.ErrRemoteFileNotFound) {
			s.logger.Warn().Str("file", store.DataFileName(id)).Msg("remote payload missing, skipped")
			return nil
		}
		if err != nil {
			return err
		}

		var plain bytes.Buffer
		if err = crypto.DecryptStream(&plain, &enc, password); err != nil {
			return fmt.Errorf("decrypting %s: %w", store.DataFileName(id), err)
		}
		return s.entries.Files().Write(id, &plain)
	})
}

// deleteUnsynchronizable removes from the remote the payloads of entries
// that must no longer leave this device.
func (s *cloudSyncService) deleteUnsynchronizable(ctx context.Context, frozen models.LocalState, remote []models.CloudDataEntry) error {
	var ids []uuid.UUID
	for _, r := range remote {
		entry, ok := frozen.Entry(r.Identifier)
		if !ok || entry.IsSynchronizable() {
			continue
		}
		for _, d := range r.DataIdentifiers {
			ids = append(ids, d.Identifier)
		}
	}
	return s.fanOut(ctx, ids, s.deleteRemotePayload)
}

// deleteRemoved removes from the remote the payloads of entries deleted
// locally since the last pass.
func (s *cloudSyncService) deleteRemoved(ctx context.Context, frozen models.LocalState, remote []models.CloudDataEntry) error {
	deleted := make(map[uuid.UUID]struct{})
	for _, row := range frozen.Cache {
		if row.Status == models.StatusDeleted {
			deleted[row.Identifier] = struct{}{}
		}
	}

	var ids []uuid.UUID
	for _, r := range remote {
		if _, ok := deleted[r.Identifier]; !ok {
			continue
		}
		for _, d := range r.DataIdentifiers {
			ids = append(ids, d.Identifier)
		}
	}
	return s.fanOut(ctx, ids, s.deleteRemotePayload)
}

func (s *cloudSyncService) deleteRemotePayload(ctx context.Context, id uuid.UUID) error {
	err := s.remote.DeleteFile(ctx, store.DataFileName(id))
	if errors.Is(err, adapter.ErrRemoteFileNotFound) {
		return nil
	}
	return err
}

// uploadNewPayloads pushes the payloads of synchronizable local entries the
// remote does not list yet.
func (s *cloudSyncService) uploadNewPayloads(ctx context.Context, current models.LocalState, remote []models.CloudDataEntry, uploadSet []models.CloudDataEntry, password string) error {
	onRemote := make(map[uuid.UUID]struct{}, len(remote))
	for _, r := range remote {
		onRemote[r.Identifier] = struct{}{}
	}

	var ids []uuid.UUID
	for _, u := range uploadSet {
		if _, ok := onRemote[u.Identifier]; ok {
			continue
		}
		entry, ok := current.Entry(u.Identifier)
		if !ok || !entry.IsSynchronizable() {
			continue
		}
		for _, d := range entry.DataIdentifiers {
			ids = append(ids, d.Identifier)
		}
	}

	return s.fanOut(ctx, ids, func(ctx context.Context, id uuid.UUID) error {
		var plain bytes.Buffer
		err := s.entries.Files().Read(id, &plain)
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn().Str("file", store.DataFileName(id)).Msg("local payload missing, skipped")
			return nil
		}
		if err != nil {
			return err
		}

		var enc bytes.Buffer
		if err = crypto.EncryptStream(&enc, &plain, password); err != nil {
			return fmt.Errorf("encrypting %s: %w", store.DataFileName(id), err)
		}
		return s.remote.UploadFile(ctx, &enc, store.DataFileName(id))
	})
}

func (s *cloudSyncService) fanOut(ctx context.Context, ids []uuid.UUID, fn func(context.Context, uuid.UUID) error) error {
	if len(ids) == 0 {
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Parallelism)
	for _, id := range ids {
		g.Go(func() error {
			return fn(gctx, id)
		})
	}
	return g.Wait()
}

// sameEntryList reports whether uploading b would leave the remote list a
// unchanged. Order is not significant: every device sorts on insertion.
func sameEntryList(a, b []models.CloudDataEntry) bool {
	if len(a) != len(b) {
		return false
	}

	encoded := make(map[uuid.UUID][]byte, len(a))
	for _, e := range a {
		raw, err := json.Marshal(e)
		if err != nil {
			return false
		}
		encoded[e.Identifier] = raw
	}
	for _, e := range b {
		raw, err := json.Marshal(e)
		if err != nil || !bytes.Equal(encoded[e.Identifier], raw) {
			return false
		}
	}
	return true
}
