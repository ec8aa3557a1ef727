// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-clip-keeper/internal/logger"
	"github.com/MKhiriev/go-clip-keeper/internal/settings"
	"github.com/MKhiriev/go-clip-keeper/internal/store"
	"github.com/MKhiriev/go-clip-keeper/models"
)

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) WriteText(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

type captureFixture struct {
	settings  *settings.Store
	entries   store.EntryStore
	events    *recorder
	clipboard *fakeClipboard
	svc       *captureService
	now       time.Time
}

func newCaptureFixture(t *testing.T) *captureFixture {
	t.Helper()
	dir := t.TempDir()

	st, err := settings.LoadAt(filepath.Join(dir, settings.FileName))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	entries, err := store.NewEntryStore(dir, "app-password", st, nil, logger.Nop())
	require.NoError(t, err)

	f := &captureFixture{
		settings:  st,
		entries:   entries,
		events:    &recorder{},
		clipboard: &fakeClipboard{},
		now:       time.Now().Truncate(time.Second),
	}
	f.svc = NewCaptureService(entries, st, f.events, f.clipboard, logger.Nop()).(*captureService)
	f.svc.now = func() time.Time { return f.now }
	return f
}

var browser = models.AppIdentity{Name: "Firefox", Executable: `C:\Program Files\Mozilla Firefox\firefox.exe`}

func TestCapture_StoresTextEntry(t *testing.T) {
	f := newCaptureFixture(t)
	ctx := context.Background()

	entry, err := f.svc.Capture(ctx, models.CaptureEvent{
		Text:        "hello world",
		IsCut:       true,
		Application: models.AppIdentity{Name: "Editor", Executable: "editor"},
	})
	require.NoError(t, err)

	assert.Equal(t, f.now, entry.Date)
	assert.True(t, entry.IsCut)
	assert.True(t, entry.CanSynchronize)
	assert.Equal(t, models.ThumbnailString, entry.Thumbnail.Type)
	require.Len(t, entry.DataIdentifiers, 1)
	assert.Equal(t, models.FormatText, entry.DataIdentifiers[0].FormatName)
	assert.NotEqual(t, entry.Identifier, entry.DataIdentifiers[0].Identifier)

	data, err := f.entries.CopyData(ctx, entry.Identifier)
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(data[models.FormatText]))

	status, ok := f.entries.Snapshot().CacheStatusOf(entry.Identifier)
	require.True(t, ok)
	assert.Equal(t, models.StatusAdded, status)
	assert.Empty(t, f.events.kinds())
}

func TestCapture_KeepsEveryFormat(t *testing.T) {
	f := newCaptureFixture(t)

	entry, err := f.svc.Capture(context.Background(), models.CaptureEvent{
		Text: "rich",
		Formats: []models.ClipboardFormat{
			{Name: "text/html", Data: []byte("<b>rich</b>")},
		},
	})
	require.NoError(t, err)

	require.Len(t, entry.DataIdentifiers, 2)
	assert.Equal(t, models.FormatText, entry.DataIdentifiers[0].FormatName)
	assert.Equal(t, "text/html", entry.DataIdentifiers[1].FormatName)

	data, err := f.entries.CopyData(context.Background(), entry.Identifier)
	require.NoError(t, err)
	assert.Equal(t, "<b>rich</b>", string(data["text/html"]))
}

func TestCapture_Thumbnails(t *testing.T) {
	tests := []struct {
		name  string
		event models.CaptureEvent
		want  models.ThumbnailType
	}{
		{"link", models.CaptureEvent{Text: "  https://example.com/page  "}, models.ThumbnailLink},
		{"text with link", models.CaptureEvent{Text: "see https://example.com"}, models.ThumbnailString},
		{"ftp is text", models.CaptureEvent{Text: "ftp://example.com"}, models.ThumbnailString},
		{"files", models.CaptureEvent{Files: []string{"/home/u/a.txt", "/home/u/b.txt"}}, models.ThumbnailFiles},
		{"binary", models.CaptureEvent{Formats: []models.ClipboardFormat{{Name: "image/png", Data: []byte{0x89}}}}, models.ThumbnailUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCaptureFixture(t)
			entry, err := f.svc.Capture(context.Background(), tt.event)
			require.NoError(t, err)
			assert.Equal(t, tt.want, entry.Thumbnail.Type)
		})
	}
}

func TestCapture_LinkThumbnailKeepsURI(t *testing.T) {
	f := newCaptureFixture(t)
	entry, err := f.svc.Capture(context.Background(), models.CaptureEvent{Text: "https://example.com/a?b=c"})
	require.NoError(t, err)

	link, err := entry.Thumbnail.Link()
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/a?b=c", link.URI)
}

func TestCapture_FilesNeverSynchronize(t *testing.T) {
	f := newCaptureFixture(t)
	entry, err := f.svc.Capture(context.Background(), models.CaptureEvent{Files: []string{"/tmp/a"}})
	require.NoError(t, err)

	assert.False(t, entry.IsSynchronizable())
	paths, err := entry.Thumbnail.Files()
	require.NoError(t, err)
	assert.Equal(t, []string{"/tmp/a"}, paths)
}

func TestCapture_EmptyCapture(t *testing.T) {
	f := newCaptureFixture(t)
	_, err := f.svc.Capture(context.Background(), models.CaptureEvent{})
	assert.ErrorIs(t, err, ErrEmptyCapture)
}

func TestCapture_IgnoredApplications(t *testing.T) {
	f := newCaptureFixture(t)
	require.NoError(t, f.settings.Set(settings.IgnoredApplications, []string{"KeePass", " 1password.exe "}))

	tests := []struct {
		name    string
		app     models.AppIdentity
		ignored bool
	}{
		{"executable without extension", models.AppIdentity{Executable: `C:\Apps\keepass.exe`}, true},
		{"executable with extension", models.AppIdentity{Executable: "/opt/1Password.exe"}, true},
		{"application name", models.AppIdentity{Name: "keepass", Executable: "kp"}, true},
		{"other", models.AppIdentity{Name: "Editor", Executable: "editor"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Capture(context.Background(), models.CaptureEvent{Text: "x", Application: tt.app})
			if tt.ignored {
				assert.ErrorIs(t, err, ErrIgnoredApplication)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCapture_SensitiveTextNeedsRepeat(t *testing.T) {
	tests := []struct {
		name     string
		event    models.CaptureEvent
		detected models.EventKind
		saved    models.EventKind
	}{
		{
			name:     "credit card",
			event:    models.CaptureEvent{Text: "4974 0411 3456 7895"},
			detected: models.EventCreditCardDetected,
			saved:    models.EventCreditCardSaved,
		},
		{
			name:     "password",
			event:    models.CaptureEvent{Text: "Tr0ub4dor&3", Application: browser},
			detected: models.EventPasswordDetected,
			saved:    models.EventPasswordSaved,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCaptureFixture(t)
			ctx := context.Background()

			_, err := f.svc.Capture(ctx, tt.event)
			require.ErrorIs(t, err, ErrSensitiveCapture)
			assert.Empty(t, f.entries.Entries())

			entry, err := f.svc.Capture(ctx, tt.event)
			require.NoError(t, err)
			assert.False(t, entry.CanSynchronize)

			assert.Equal(t, []models.EventKind{tt.detected, tt.saved}, f.events.kinds())
			assert.Equal(t, entry.Identifier, f.events.events[1].EntryID)

			// the repeat is consumed
			_, err = f.svc.Capture(ctx, tt.event)
			assert.ErrorIs(t, err, ErrSensitiveCapture)
		})
	}
}

func TestCapture_DifferentSensitiveTextRestartsDebounce(t *testing.T) {
	f := newCaptureFixture(t)
	ctx := context.Background()

	_, err := f.svc.Capture(ctx, models.CaptureEvent{Text: "4974 0411 3456 7895"})
	require.ErrorIs(t, err, ErrSensitiveCapture)
	_, err = f.svc.Capture(ctx, models.CaptureEvent{Text: "4111 1111 1111 1111"})
	require.ErrorIs(t, err, ErrSensitiveCapture)
	_, err = f.svc.Capture(ctx, models.CaptureEvent{Text: "4111 1111 1111 1111"})
	require.NoError(t, err)
}

func TestCapture_SensitiveAllowedWhenNotAvoided(t *testing.T) {
	f := newCaptureFixture(t)
	require.NoError(t, f.settings.Set(settings.AvoidCreditCard, false))
	require.NoError(t, f.settings.Set(settings.DisablePasswordAndCreditCardSync, false))

	entry, err := f.svc.Capture(context.Background(), models.CaptureEvent{Text: "4974 0411 3456 7895"})
	require.NoError(t, err)
	assert.True(t, entry.CanSynchronize)
	assert.Equal(t, []models.EventKind{models.EventCreditCardSaved}, f.events.kinds())
}

func TestCapture_PasswordOutsideBrowserIsText(t *testing.T) {
	f := newCaptureFixture(t)
	entry, err := f.svc.Capture(context.Background(), models.CaptureEvent{
		Text:        "Tr0ub4dor&3",
		Application: models.AppIdentity{Executable: "editor"},
	})
	require.NoError(t, err)
	assert.True(t, entry.CanSynchronize)
	assert.Empty(t, f.events.kinds())
}

func TestCapture_Paste(t *testing.T) {
	f := newCaptureFixture(t)
	ctx := context.Background()

	entry, err := f.svc.Capture(ctx, models.CaptureEvent{Text: "paste me"})
	require.NoError(t, err)

	require.NoError(t, f.svc.Paste(ctx, entry.Identifier))
	assert.Equal(t, "paste me", f.clipboard.text)

	image, err := f.svc.Capture(ctx, models.CaptureEvent{Formats: []models.ClipboardFormat{{Name: "image/png", Data: []byte{1}}}})
	require.NoError(t, err)
	assert.Error(t, f.svc.Paste(ctx, image.Identifier))

	f.clipboard.err = errors.New("clipboard busy")
	assert.Error(t, f.svc.Paste(ctx, entry.Identifier))

	assert.ErrorIs(t, f.svc.Paste(ctx, fixedID(1)), store.ErrEntryNotFound)
}
