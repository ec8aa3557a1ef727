// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the remote storage providers the clipboard history
// is synchronized with, plus the outbound collaborators of the client: the
// link-title resolver and the network monitor.
//
// The primary abstraction is [RemoteStorage], which decouples the sync
// service from the underlying provider. Three implementations ship with the
// package:
//
//   - [HTTPStorage] talks to the self-hosted server in cmd/server;
//   - [S3Storage] stores files in an S3-compatible bucket (AWS, MinIO);
//   - [FolderStorage] mirrors files into a mounted shared folder.
//
// Errors are mapped to the sentinel values in errors.go so callers can use
// [errors.Is] without knowing which provider is in use (e.g.
// [ErrRemoteFileNotFound] for a vanished file, [ErrUnauthorized] for expired
// credentials).
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/go-clip-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_storage_mock.go -package=mock

// RemoteStorage is an app-scoped remote folder holding the entry-list file
// and the per-format payload files. Paths are flat file names such as
// ".clipboard" or "<uuid>.dat".
type RemoteStorage interface {
	// Name returns the provider name ("http", "s3", "folder").
	Name() string

	// TryAuthenticate makes sure the provider holds valid credentials,
	// signing in again when needed. It reports false when the provider is
	// unreachable or rejects the credentials.
	TryAuthenticate(ctx context.Context) bool

	// UserID returns the identifier of the authenticated account. It is
	// only meaningful after a successful TryAuthenticate.
	UserID() string

	// UserName returns the name of the authenticated account.
	UserName() string

	// DownloadFile copies the content of the remote file into dst.
	// Returns [ErrRemoteFileNotFound] (wrapped) if the file does not exist.
	DownloadFile(ctx context.Context, path string, dst io.Writer) error

	// UploadFile stores the content of src under path, overwriting any
	// existing file.
	UploadFile(ctx context.Context, src io.Reader, path string) error

	// DeleteFile removes the remote file. Returns [ErrRemoteFileNotFound]
	// (wrapped) if the file does not exist.
	DeleteFile(ctx context.Context, path string) error

	// ListFiles returns the content of the remote folder.
	ListFiles(ctx context.Context) ([]models.RemoteFile, error)
}
