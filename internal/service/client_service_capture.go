// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-clip-keeper/internal/logger"
	"github.com/MKhiriev/go-clip-keeper/internal/settings"
	"github.com/MKhiriev/go-clip-keeper/internal/store"
	"github.com/MKhiriev/go-clip-keeper/internal/validators"
	"github.com/MKhiriev/go-clip-keeper/models"
)

type sensitiveKind int

const (
	kindNone sensitiveKind = iota
	kindCreditCard
	kindPassword
)

type captureService struct {
	entries   store.EntryStore
	settings  settings.Provider
	notifier  Notifier
	clipboard ClipboardWriter

	// pending is the digest of the last sensitive text that was held back.
	// Capturing the same text again keeps it.
	mu      sync.Mutex
	pending [sha256.Size]byte
	held    bool

	now    func() time.Time
	logger *logger.Logger
}

// NewCaptureService builds the capture pipeline. clipboard may be nil, in
// which case Paste fails.
func NewCaptureService(entries store.EntryStore, provider settings.Provider, notifier Notifier, clipboard ClipboardWriter, log *logger.Logger) CaptureService {
	return &captureService{
		entries:   entries,
		settings:  provider,
		notifier:  notifier,
		clipboard: clipboard,
		now:       time.Now,
		logger:    log,
	}
}

func (c *captureService) Capture(ctx context.Context, event models.CaptureEvent) (models.DataEntry, error) {
	if len(event.Files) > 0 && !hasFormat(event.Formats, models.FormatFiles) {
		event.Formats = append(event.Formats, models.ClipboardFormat{
			Name: models.FormatFiles,
			Data: []byte(strings.Join(event.Files, "\n")),
		})
	}
	if event.Text != "" && !hasFormat(event.Formats, models.FormatText) {
		event.Formats = append([]models.ClipboardFormat{{Name: models.FormatText, Data: []byte(event.Text)}}, event.Formats...)
	}
	if len(event.Formats) == 0 {
		return models.DataEntry{}, ErrEmptyCapture
	}

	if c.ignored(event.Application) {
		c.logger.Debug().Str("application", event.Application.Executable).Msg("capture from ignored application dropped")
		return models.DataEntry{}, ErrIgnoredApplication
	}

	kind := detectSensitive(event)
	if kind != kindNone && c.avoided(kind) && !c.confirmRepeat(event.Text) {
		c.notifier.Notify(models.Event{Kind: detectedEvent(kind)})
		return models.DataEntry{}, ErrSensitiveCapture
	}

	entry, err := c.save(ctx, event, kind)
	if err != nil {
		return models.DataEntry{}, err
	}

	if kind != kindNone {
		c.notifier.Notify(models.Event{Kind: savedEvent(kind), EntryID: entry.Identifier})
	}
	return entry, nil
}

func (c *captureService) save(ctx context.Context, event models.CaptureEvent, kind sensitiveKind) (models.DataEntry, error) {
	id, err := c.entries.NewIdentifier()
	if err != nil {
		return models.DataEntry{}, err
	}

	entry := models.DataEntry{
		Identifier:     id,
		Date:           c.now(),
		IsCut:          event.IsCut,
		CanSynchronize: kind == kindNone || !c.settings.Bool(settings.DisablePasswordAndCreditCardSync),
		Thumbnail:      inferThumbnail(event),
		Application:    event.Application,
	}

	for _, format := range event.Formats {
		dataID, err := c.entries.NewIdentifier()
		if err == nil && dataID == id {
			err = fmt.Errorf("%w: %s", store.ErrDuplicateIdentifier, dataID)
		}
		if err == nil {
			err = c.entries.Files().Write(dataID, bytes.NewReader(format.Data))
		}
		if err != nil {
			c.discard(entry)
			return models.DataEntry{}, fmt.Errorf("writing %s payload: %w", format.Name, err)
		}
		entry.DataIdentifiers = append(entry.DataIdentifiers, models.DataIdentifier{Identifier: dataID, FormatName: format.Name})
	}

	if err = c.entries.AddEntry(ctx, &entry); err != nil {
		c.discard(entry)
		return models.DataEntry{}, fmt.Errorf("adding entry: %w", err)
	}

	c.logger.Debug().Str("entry", id.String()).Int("formats", len(entry.DataIdentifiers)).Msg("clipboard captured")
	return entry, nil
}

func (c *captureService) discard(entry models.DataEntry) {
	for _, di := range entry.DataIdentifiers {
		if err := c.entries.Files().Delete(di.Identifier); err != nil {
			c.logger.Warn().Err(err).Str("data_identifier", di.Identifier.String()).Msg("failed to delete data file")
		}
	}
}

func (c *captureService) Paste(ctx context.Context, id uuid.UUID) error {
	if c.clipboard == nil {
		return errors.New("no clipboard writer")
	}

	data, err := c.entries.CopyData(ctx, id)
	if err != nil {
		return err
	}
	for _, name := range []string{models.FormatText, models.FormatURIList, models.FormatFiles} {
		if raw, ok := data[name]; ok {
			return c.clipboard.WriteText(string(raw))
		}
	}
	return fmt.Errorf("entry %s has no text payload", id)
}

func (c *captureService) ignored(app models.AppIdentity) bool {
	exe := strings.ToLower(filepath.Base(strings.ReplaceAll(app.Executable, `\`, "/")))
	for _, name := range c.settings.Strings(settings.IgnoredApplications) {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		if name == exe || name == strings.TrimSuffix(exe, ".exe") || strings.EqualFold(name, app.Name) {
			return true
		}
	}
	return false
}

func (c *captureService) avoided(kind sensitiveKind) bool {
	switch kind {
	case kindCreditCard:
		return c.settings.Bool(settings.AvoidCreditCard)
	case kindPassword:
		return c.settings.Bool(settings.AvoidPasswords)
	default:
		return false
	}
}

// confirmRepeat reports whether text was the last sensitive text held back.
// Otherwise text becomes the held one.
func (c *captureService) confirmRepeat(text string) bool {
	digest := sha256.Sum256([]byte(text))

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.held && c.pending == digest {
		c.held = false
		return true
	}
	c.pending, c.held = digest, true
	return false
}

func detectSensitive(event models.CaptureEvent) sensitiveKind {
	switch {
	case event.Text == "":
		return kindNone
	case validators.IsCreditCard(event.Text):
		return kindCreditCard
	case validators.IsPassword(event.Text, event.Application):
		return kindPassword
	default:
		return kindNone
	}
}

func detectedEvent(kind sensitiveKind) models.EventKind {
	if kind == kindCreditCard {
		return models.EventCreditCardDetected
	}
	return models.EventPasswordDetected
}

func savedEvent(kind sensitiveKind) models.EventKind {
	if kind == kindCreditCard {
		return models.EventCreditCardSaved
	}
	return models.EventPasswordSaved
}

func hasFormat(formats []models.ClipboardFormat, name string) bool {
	for _, f := range formats {
		if f.Name == name {
			return true
		}
	}
	return false
}

// inferThumbnail picks the preview: dropped files, then a lone web link,
// then plain text.
func inferThumbnail(event models.CaptureEvent) models.Thumbnail {
	if len(event.Files) > 0 {
		return models.NewFilesThumbnail(event.Files)
	}

	text := strings.TrimSpace(event.Text)
	if isWebLink(text) {
		return models.NewLinkThumbnail(models.LinkPreview{URI: text})
	}
	if text != "" {
		return models.NewStringThumbnail(event.Text)
	}
	return models.Thumbnail{Type: models.ThumbnailUnknown}
}

func isWebLink(text string) bool {
	if text == "" || strings.ContainsAny(text, " \t\r\n") {
		return false
	}
	u, err := url.Parse(text)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
