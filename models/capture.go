// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Well-known clipboard format names produced by the capture collaborators.
const (
	FormatText    = "text/plain"
	FormatURIList = "text/uri-list"
	FormatFiles   = "application/x-file-drop"
)

// ClipboardFormat is one retained representation of a capture.
type ClipboardFormat struct {
	Name string
	Data []byte
}

// CaptureEvent is raised by a clipboard capture collaborator whenever the
// system clipboard changes.
type CaptureEvent struct {
	// Formats holds every representation that should be retained, in
	// preference order.
	Formats []ClipboardFormat

	// Text is the plain-text rendition of the capture, if any. It feeds the
	// sensitive-data detectors and the thumbnail.
	Text string

	// Files lists dropped file paths for file-drop captures.
	Files []string

	// IsCut is true when the capture originates from a cut operation.
	IsCut bool

	// Application is the foreground application at capture time.
	Application AppIdentity
}
