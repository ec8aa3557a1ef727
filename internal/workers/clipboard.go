// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/go-clip-keeper/internal/logger"
	"github.com/MKhiriev/go-clip-keeper/internal/service"
	"github.com/MKhiriev/go-clip-keeper/models"
)

const defaultPollInterval = 500 * time.Millisecond

// SystemClipboard reads and writes the text of the system clipboard. It
// remembers the last text it wrote so the watcher does not capture it again.
type SystemClipboard struct {
	read  func() (string, error)
	write func(string) error

	mu      sync.Mutex
	written string
	pending bool
}

func NewSystemClipboard() *SystemClipboard {
	return &SystemClipboard{
		read:  clipboard.ReadAll,
		write: clipboard.WriteAll,
	}
}

func (c *SystemClipboard) ReadText() (string, error) {
	return c.read()
}

func (c *SystemClipboard) WriteText(text string) error {
	if err := c.write(text); err != nil {
		return err
	}

	c.mu.Lock()
	c.written, c.pending = text, true
	c.mu.Unlock()
	return nil
}

// ownWrite reports whether text is the last text written by WriteText and
// forgets it.
func (c *SystemClipboard) ownWrite(text string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pending && c.written == text {
		c.pending = false
		return true
	}
	return false
}

// ClipboardWatcher polls the system clipboard and hands every new text to
// the capture pipeline.
type ClipboardWatcher struct {
	clipboard *SystemClipboard
	capture   service.CaptureService
	interval  time.Duration

	last   string
	logger *logger.Logger
}

func NewClipboardWatcher(clip *SystemClipboard, capture service.CaptureService, interval time.Duration, log *logger.Logger) *ClipboardWatcher {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	return &ClipboardWatcher{
		clipboard: clip,
		capture:   capture,
		interval:  interval,
		logger:    log,
	}
}

// Run polls until ctx is cancelled. The content present at start is not
// captured.
func (w *ClipboardWatcher) Run(ctx context.Context) error {
	if text, err := w.clipboard.ReadText(); err == nil {
		w.last = text
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.poll(ctx)
		}
	}
}

func (w *ClipboardWatcher) poll(ctx context.Context) {
	text, err := w.clipboard.ReadText()
	if err != nil {
		w.logger.Debug().Err(err).Msg("reading clipboard failed")
		return
	}
	if text == w.last {
		return
	}
	w.last = text

	if text == "" || w.clipboard.ownWrite(text) {
		return
	}

	_, err = w.capture.Capture(ctx, models.CaptureEvent{Text: text})
	switch {
	case err == nil:
	case errors.Is(err, service.ErrIgnoredApplication),
		errors.Is(err, service.ErrSensitiveCapture),
		errors.Is(err, service.ErrEmptyCapture):
		w.logger.Debug().Err(err).Msg("capture skipped")
	default:
		w.logger.Warn().Err(err).Msg("capture failed")
	}
}
