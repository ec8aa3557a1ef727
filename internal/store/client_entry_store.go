// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/MKhiriev/go-clip-keeper/internal/crypto"
	"github.com/MKhiriev/go-clip-keeper/internal/logger"
	"github.com/MKhiriev/go-clip-keeper/internal/settings"
	"github.com/MKhiriev/go-clip-keeper/internal/utils"
	"github.com/MKhiriev/go-clip-keeper/models"
)

const day = 24 * time.Hour

// entryStore is the default [EntryStore]. Entries and cache rows are kept
// in two parallel lists ordered favorites first, then by recency.
type entryStore struct {
	mu    sync.RWMutex
	state models.LocalState

	files    DataFileStorage
	password string
	settings settings.Provider
	resolver TitleResolver
	uuids    *utils.UUIDGenerator

	now    func() time.Time
	logger *logger.Logger
}

// NewEntryStore builds an [EntryStore] persisting into
// <appDataDir>/.data with files encrypted by password. resolver may be nil,
// in which case link thumbnails are not enriched.
func NewEntryStore(appDataDir, password string, provider settings.Provider, resolver TitleResolver, log *logger.Logger) (EntryStore, error) {
	log.Debug().Msg("creating entry store")

	files, err := NewDataFileStorage(filepath.Join(appDataDir, DataFolderName))
	if err != nil {
		return nil, err
	}

	return &entryStore{
		files:    files,
		password: password,
		settings: provider,
		resolver: resolver,
		uuids:    utils.NewUUIDGenerator(),
		now:      time.Now,
		logger:   log,
	}, nil
}

func (s *entryStore) Files() DataFileStorage {
	return s.files
}

func (s *entryStore) entryListPath() string {
	return filepath.Join(s.files.Dir(), EntryListFileName)
}

func (s *entryStore) cachePath() string {
	return filepath.Join(s.files.Dir(), CacheFileName)
}

// linked reports whether a remote provider is configured, in which case
// removals are remembered until the remote copy is deleted.
func (s *entryStore) linked() bool {
	return s.settings.String(settings.RemoteProvider) != ""
}

func (s *entryStore) NewIdentifier() (uuid.UUID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.uuids.GenerateUnique(func(id uuid.UUID) bool {
		return identifierTaken(s.state, id) || s.files.Exists(id)
	})
	if !ok {
		return uuid.Nil, ErrIdentifierExhausted
	}
	return id, nil
}

// identifierTaken reports whether id is used by an entry, a cache row or a
// data identifier.
func identifierTaken(state models.LocalState, id uuid.UUID) bool {
	if state.CacheIndex(id) >= 0 {
		return true
	}
	for _, e := range state.Entries {
		if e.Identifier == id {
			return true
		}
		for _, di := range e.DataIdentifiers {
			if di.Identifier == id {
				return true
			}
		}
	}
	return false
}

// checkNewEntry enforces identifier uniqueness of entry against state and
// within itself.
func checkNewEntry(state models.LocalState, entry *models.DataEntry) error {
	if entry == nil {
		return ErrNilEntry
	}
	if entry.Identifier == uuid.Nil {
		return fmt.Errorf("%w: empty entry identifier", ErrDuplicateIdentifier)
	}

	seen := map[uuid.UUID]struct{}{entry.Identifier: {}}
	if identifierTaken(state, entry.Identifier) {
		return fmt.Errorf("%w: %s", ErrDuplicateIdentifier, entry.Identifier)
	}
	for _, di := range entry.DataIdentifiers {
		if _, dup := seen[di.Identifier]; dup || identifierTaken(state, di.Identifier) {
			return fmt.Errorf("%w: %s", ErrDuplicateIdentifier, di.Identifier)
		}
		seen[di.Identifier] = struct{}{}
	}
	return nil
}

// AddEntry inserts entry at the head of the list with an Added cache row,
// then reorganizes, purges and persists. Link thumbnails are enriched with
// the page title once the entry is stored.
func (s *entryStore) AddEntry(ctx context.Context, entry *models.DataEntry) error {
	s.mu.Lock()
	if err := checkNewEntry(s.state, entry); err != nil {
		s.mu.Unlock()
		return err
	}

	s.state.Entries = slices.Insert(s.state.Entries, 0, entry.Clone())
	s.state.Cache = slices.Insert(s.state.Cache, 0, models.DataEntryCache{
		Identifier: entry.Identifier,
		Status:     models.StatusAdded,
	})

	reorganize(&s.state)
	s.purgeLocked(ctx)
	err := s.saveLocked()
	s.mu.Unlock()
	if err != nil {
		return err
	}

	if entry.Thumbnail.Type == models.ThumbnailLink {
		s.enrichLink(ctx, entry.Identifier)
	}
	return nil
}

// enrichLink resolves the title of a link thumbnail. Failures are ignored.
func (s *entryStore) enrichLink(ctx context.Context, id uuid.UUID) {
	if s.resolver == nil {
		return
	}

	s.mu.RLock()
	entry, ok := s.state.Entry(id)
	s.mu.RUnlock()
	if !ok {
		return
	}

	link, err := entry.Thumbnail.Link()
	if err != nil || link.Title != "" {
		return
	}

	title, err := s.resolver.ResolveTitle(ctx, link.URI)
	if err != nil || title == "" {
		s.logger.Debug().Err(err).Str("uri", link.URI).Msg("link title was not resolved")
		return
	}
	link.Title = title

	err = s.Apply(ctx, func(st *models.LocalState) error {
		if i := st.EntryIndex(id); i >= 0 {
			st.Entries[i].Thumbnail = models.NewLinkThumbnail(link)
		}
		return nil
	})
	if err != nil {
		s.logger.Warn().Err(err).Str("entry", id.String()).Msg("failed to save link title")
	}
}

// RemoveEntry removes an entry and its payload files.
func (s *entryStore) RemoveEntry(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.removeLocked(ctx, id); err != nil {
		return err
	}
	return s.saveLocked()
}

// removeLocked drops the entry. With a linked remote the cache row turns
// Deleted so the next synchronization removes the remote copy; otherwise
// the row is dropped as well. Payload file deletion is best effort.
func (s *entryStore) removeLocked(ctx context.Context, id uuid.UUID) error {
	i := s.state.EntryIndex(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrEntryNotFound, id)
	}
	entry := s.state.Entries[i]
	s.state.Entries = slices.Delete(s.state.Entries, i, i+1)

	if c := s.state.CacheIndex(id); c >= 0 {
		if s.linked() {
			s.state.Cache[c].Status = models.StatusDeleted
		} else {
			s.state.Cache = slices.Delete(s.state.Cache, c, c+1)
		}
	}

	s.deletePayloads(ctx, entry)
	return nil
}

func (s *entryStore) deletePayloads(ctx context.Context, entry models.DataEntry) {
	log := logger.FromContext(ctx)
	for _, di := range entry.DataIdentifiers {
		if err := s.files.Delete(di.Identifier); err != nil {
			log.Warn().Err(err).
				Str("entry", entry.Identifier.String()).
				Str("data_identifier", di.Identifier.String()).
				Msg("failed to delete data file")
		}
	}
}

func (s *entryStore) SetFavorite(ctx context.Context, id uuid.UUID, favorite bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.state.EntryIndex(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrEntryNotFound, id)
	}
	s.state.Entries[i].IsFavorite = favorite

	reorganize(&s.state)
	s.purgeLocked(ctx)
	return s.saveLocked()
}

func (s *entryStore) SetCanSynchronize(_ context.Context, id uuid.UUID, canSynchronize bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.state.EntryIndex(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrEntryNotFound, id)
	}
	s.state.Entries[i].CanSynchronize = canSynchronize

	// the remote never saw this entry, so it has to be uploaded again
	if c := s.state.CacheIndex(id); canSynchronize && c >= 0 && s.state.Cache[c].Status == models.StatusDidNotChanged {
		s.state.Cache[c].Status = models.StatusAdded
	}
	return s.saveLocked()
}

// Purge removes non-favorite entries past the count limit or older than
// the expiry window, then persists once.
func (s *entryStore) Purge(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.purgeLocked(ctx)
	return s.saveLocked()
}

func (s *entryStore) purgeLocked(ctx context.Context) {
	maxCount := s.settings.Int(settings.MaxDataToKeep)
	expireBefore := s.now().Add(-time.Duration(s.settings.Int(settings.DateExpireLimit)) * day)

	var doomed []uuid.UUID
	for i, e := range s.state.Entries {
		if e.IsFavorite {
			continue
		}
		if i >= maxCount || e.Date.Before(expireBefore) {
			doomed = append(doomed, e.Identifier)
		}
	}

	for _, id := range doomed {
		_ = s.removeLocked(ctx, id)
	}
}

// Reorganize moves favorites ahead of the other entries keeping the
// relative order of both groups.
func (s *entryStore) Reorganize() {
	s.mu.Lock()
	defer s.mu.Unlock()

	reorganize(&s.state)
}

// reorganize stable-partitions entries and cache rows with the same
// predicate so the two lists stay in lockstep. Cache rows whose entry is
// gone sort with the non-favorites.
func reorganize(state *models.LocalState) {
	favorite := make(map[uuid.UUID]bool, len(state.Entries))
	for _, e := range state.Entries {
		favorite[e.Identifier] = e.IsFavorite
	}

	slices.SortStableFunc(state.Entries, func(a, b models.DataEntry) int {
		return partitionRank(a.IsFavorite) - partitionRank(b.IsFavorite)
	})
	slices.SortStableFunc(state.Cache, func(a, b models.DataEntryCache) int {
		return partitionRank(favorite[a.Identifier]) - partitionRank(favorite[b.Identifier])
	})
}

func partitionRank(favorite bool) int {
	if favorite {
		return 0
	}
	return 1
}

func (s *entryStore) Save(_ context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.saveLocked()
}

// saveLocked overwrites the entry-list and cache files.
func (s *entryStore) saveLocked() error {
	if err := s.writeEncryptedJSON(s.entryListPath(), s.state.Entries); err != nil {
		return fmt.Errorf("saving entries: %w", err)
	}
	if err := s.writeEncryptedJSON(s.cachePath(), s.state.Cache); err != nil {
		return fmt.Errorf("saving cache: %w", err)
	}
	return nil
}

func (s *entryStore) writeEncryptedJSON(path string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return writeFileAtomic(path, func(w io.Writer) error {
		return crypto.EncryptStream(w, bytes.NewReader(raw), s.password)
	})
}

func (s *entryStore) readEncryptedJSON(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var plain bytes.Buffer
	if err := crypto.DecryptStream(&plain, f, s.password); err != nil {
		return fmt.Errorf("%w: %w", ErrStaleData, err)
	}
	if err := json.Unmarshal(plain.Bytes(), v); err != nil {
		return fmt.Errorf("%w: %w", ErrStaleData, err)
	}
	return nil
}

// Load reads both files. A missing file means an empty list. Unreadable
// files clear the data folder and leave the store empty; this is not
// reported as an error.
func (s *entryStore) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := logger.FromContext(ctx)

	var loaded models.LocalState
	err := s.readEncryptedJSON(s.entryListPath(), &loaded.Entries)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		err = s.readEncryptedJSON(s.cachePath(), &loaded.Cache)
	}
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn().Err(err).Msg("stored clipboard data is unreadable, clearing cache")
		return s.clearLocked()
	}

	s.state = loaded
	reorganize(&s.state)
	if !s.linked() {
		dropPendingDeletes(&s.state)
	}

	if !s.settings.Bool(settings.KeepDataAfterReboot) {
		var doomed []uuid.UUID
		for _, e := range s.state.Entries {
			if !e.IsFavorite {
				doomed = append(doomed, e.Identifier)
			}
		}
		for _, id := range doomed {
			_ = s.removeLocked(ctx, id)
		}
	}

	s.purgeLocked(ctx)
	return s.saveLocked()
}

// dropPendingDeletes removes Deleted rows whose entry is gone. They wait
// for a remote delete that will not happen once the provider is unlinked.
func dropPendingDeletes(state *models.LocalState) {
	kept := state.Cache[:0]
	for _, row := range state.Cache {
		if row.Status == models.StatusDeleted && state.EntryIndex(row.Identifier) < 0 {
			continue
		}
		kept = append(kept, row)
	}
	state.Cache = kept
}

// ClearCache deletes every file of the data folder and empties the store.
func (s *entryStore) ClearCache(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.clearLocked()
}

func (s *entryStore) clearLocked() error {
	s.state = models.LocalState{}
	if err := s.files.Clear(); err != nil {
		return fmt.Errorf("clearing data folder: %w", err)
	}
	return nil
}

func (s *entryStore) Snapshot() models.LocalState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.Clone()
}

func (s *entryStore) Apply(ctx context.Context, fn func(*models.LocalState) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	if err := fn(&next); err != nil {
		return err
	}

	kept := make(map[uuid.UUID]struct{}, len(next.Entries))
	for _, e := range next.Entries {
		kept[e.Identifier] = struct{}{}
	}
	for _, e := range s.state.Entries {
		if _, ok := kept[e.Identifier]; !ok {
			s.deletePayloads(ctx, e)
		}
	}

	s.state = next
	return s.saveLocked()
}

func (s *entryStore) Entries() []models.DataEntry {
	return s.Snapshot().Entries
}

// Search returns the entries whose thumbnail text or source application
// matches query, ignoring case and diacritics.
func (s *entryStore) Search(query string) []models.DataEntry {
	var found []models.DataEntry
	for _, e := range s.Entries() {
		if MatchSearchQuery(e, query) {
			found = append(found, e)
		}
	}
	return found
}

// MatchSearchQuery reports whether entry matches query. An empty query
// matches every entry.
func MatchSearchQuery(entry models.DataEntry, query string) bool {
	q := foldText(strings.TrimSpace(query))
	if q == "" {
		return true
	}

	return strings.Contains(foldText(entry.Thumbnail.SearchableText()), q) ||
		strings.Contains(foldText(entry.Application.Name), q)
}

// foldText case-folds s and strips combining marks, so "Café" and "CAFE"
// compare equal.
func foldText(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}
	return cases.Fold().String(stripped)
}

func (s *entryStore) CopyData(_ context.Context, id uuid.UUID) (map[string][]byte, error) {
	s.mu.RLock()
	entry, ok := s.state.Entry(id)
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrEntryNotFound, id)
	}

	data := make(map[string][]byte, len(entry.DataIdentifiers))
	for _, di := range entry.DataIdentifiers {
		var buf bytes.Buffer
		if err := s.files.Read(di.Identifier, &buf); err != nil {
			return nil, err
		}
		data[di.FormatName] = buf.Bytes()
	}
	return data, nil
}
