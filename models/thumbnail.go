// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
)

// ThumbnailType discriminates the preview payload of an entry.
type ThumbnailType string

const (
	ThumbnailUnknown ThumbnailType = "unknown"
	ThumbnailString  ThumbnailType = "string"
	ThumbnailLink    ThumbnailType = "link"
	ThumbnailFiles   ThumbnailType = "files"
	ThumbnailBitmap  ThumbnailType = "bitmap"
	ThumbnailColor   ThumbnailType = "color"
)

// Thumbnail is a small preview of an entry used for display and search.
// Value is an opaque base64 payload whose layout depends on Type.
type Thumbnail struct {
	Type  ThumbnailType `json:"type"`
	Value string        `json:"value"`
}

// LinkPreview is the decoded payload of a ThumbnailLink.
type LinkPreview struct {
	URI   string `json:"uri"`
	Title string `json:"title,omitempty"`
}

// NewStringThumbnail builds a ThumbnailString preview for text.
func NewStringThumbnail(text string) Thumbnail {
	return Thumbnail{Type: ThumbnailString, Value: base64.StdEncoding.EncodeToString([]byte(text))}
}

// NewLinkThumbnail builds a ThumbnailLink preview.
func NewLinkThumbnail(link LinkPreview) Thumbnail {
	raw, _ := json.Marshal(link)
	return Thumbnail{Type: ThumbnailLink, Value: base64.StdEncoding.EncodeToString(raw)}
}

// NewFilesThumbnail builds a ThumbnailFiles preview listing dropped paths.
func NewFilesThumbnail(paths []string) Thumbnail {
	raw, _ := json.Marshal(paths)
	return Thumbnail{Type: ThumbnailFiles, Value: base64.StdEncoding.EncodeToString(raw)}
}

// Text decodes a ThumbnailString payload.
func (t Thumbnail) Text() (string, error) {
	if t.Type != ThumbnailString {
		return "", fmt.Errorf("thumbnail is %s, not %s", t.Type, ThumbnailString)
	}
	raw, err := base64.StdEncoding.DecodeString(t.Value)
	if err != nil {
		return "", fmt.Errorf("decode string thumbnail: %w", err)
	}
	return string(raw), nil
}

// Link decodes a ThumbnailLink payload.
func (t Thumbnail) Link() (LinkPreview, error) {
	var link LinkPreview
	if t.Type != ThumbnailLink {
		return link, fmt.Errorf("thumbnail is %s, not %s", t.Type, ThumbnailLink)
	}
	raw, err := base64.StdEncoding.DecodeString(t.Value)
	if err != nil {
		return link, fmt.Errorf("decode link thumbnail: %w", err)
	}
	if err = json.Unmarshal(raw, &link); err != nil {
		return link, fmt.Errorf("unmarshal link thumbnail: %w", err)
	}
	return link, nil
}

// Files decodes a ThumbnailFiles payload.
func (t Thumbnail) Files() ([]string, error) {
	if t.Type != ThumbnailFiles {
		return nil, fmt.Errorf("thumbnail is %s, not %s", t.Type, ThumbnailFiles)
	}
	raw, err := base64.StdEncoding.DecodeString(t.Value)
	if err != nil {
		return nil, fmt.Errorf("decode files thumbnail: %w", err)
	}
	var paths []string
	if err = json.Unmarshal(raw, &paths); err != nil {
		return nil, fmt.Errorf("unmarshal files thumbnail: %w", err)
	}
	return paths, nil
}

// SearchableText returns the human-readable content of the preview, or an
// empty string for previews that carry no text (bitmaps, colors).
func (t Thumbnail) SearchableText() string {
	switch t.Type {
	case ThumbnailString:
		s, _ := t.Text()
		return s
	case ThumbnailLink:
		l, _ := t.Link()
		return strings.TrimSpace(l.URI + " " + l.Title)
	case ThumbnailFiles:
		f, _ := t.Files()
		return strings.Join(f, "\n")
	default:
		return ""
	}
}
