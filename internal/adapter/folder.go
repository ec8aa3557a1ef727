// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-clip-keeper/internal/config"
	"github.com/MKhiriev/go-clip-keeper/internal/logger"
	"github.com/MKhiriev/go-clip-keeper/models"
	"github.com/fsnotify/fsnotify"
)

const (
	folderDirPerm  = 0o700
	folderFilePerm = 0o600
	folderTempExt  = ".tmp"

	defaultFolderUser = "local"
)

// FolderStorage is the [RemoteStorage] backed by a directory, typically a
// network share or a folder mirrored by a desktop sync client. Every device
// sharing the folder must use the same login so they derive the same file
// password.
type FolderStorage struct {
	dir      string
	userName string

	logger *logger.Logger
}

// NewFolderStorage creates the folder if needed.
func NewFolderStorage(cfg config.ClientRemote, log *logger.Logger) (*FolderStorage, error) {
	dir := strings.TrimSpace(cfg.Folder.Path)
	if dir == "" {
		return nil, fmt.Errorf("%w: empty folder path", ErrInvalidPath)
	}
	if err := os.MkdirAll(dir, folderDirPerm); err != nil {
		return nil, fmt.Errorf("create remote folder: %w", err)
	}

	userName := cfg.Login
	if userName == "" {
		userName = defaultFolderUser
	}

	return &FolderStorage{dir: dir, userName: userName, logger: log}, nil
}

// Name implements [RemoteStorage].
func (f *FolderStorage) Name() string {
	return config.ProviderFolder
}

// UserID implements [RemoteStorage]. Folder accounts have no server-side
// identity, so the id is fixed.
func (f *FolderStorage) UserID() string {
	return config.ProviderFolder
}

// UserName implements [RemoteStorage].
func (f *FolderStorage) UserName() string {
	return f.userName
}

// TryAuthenticate implements [RemoteStorage] by checking the folder is
// mounted and is a directory.
func (f *FolderStorage) TryAuthenticate(_ context.Context) bool {
	info, err := os.Stat(f.dir)
	if err != nil || !info.IsDir() {
		f.logger.Warn().Err(err).Str("provider", f.Name()).Str("dir", f.dir).Msg("remote folder unavailable")
		return false
	}
	return true
}

// DownloadFile implements [RemoteStorage].
func (f *FolderStorage) DownloadFile(ctx context.Context, name string, dst io.Writer) error {
	p, err := f.path(name)
	if err != nil {
		return err
	}
	if err = ctx.Err(); err != nil {
		return err
	}

	file, err := os.Open(p)
	if err != nil {
		return fmt.Errorf("download %s: %w", name, mapFolderError(err))
	}
	defer file.Close()

	if _, err = io.Copy(dst, file); err != nil {
		return fmt.Errorf("download %s: %w", name, mapFolderError(err))
	}
	return nil
}

// UploadFile implements [RemoteStorage]. The content lands in a temporary
// file first so readers on other devices never see a torn write.
func (f *FolderStorage) UploadFile(ctx context.Context, src io.Reader, name string) error {
	p, err := f.path(name)
	if err != nil {
		return err
	}
	if err = ctx.Err(); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(f.dir, "."+name+"-*"+folderTempExt)
	if err != nil {
		return fmt.Errorf("upload %s: %w", name, mapFolderError(err))
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err = io.Copy(tmp, src); err != nil {
		tmp.Close()
		return fmt.Errorf("upload %s: %w", name, err)
	}
	if err = tmp.Chmod(folderFilePerm); err != nil {
		tmp.Close()
		return fmt.Errorf("upload %s: %w", name, mapFolderError(err))
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("upload %s: %w", name, mapFolderError(err))
	}
	if err = os.Rename(tmpName, p); err != nil {
		return fmt.Errorf("upload %s: %w", name, mapFolderError(err))
	}
	return nil
}

// DeleteFile implements [RemoteStorage].
func (f *FolderStorage) DeleteFile(ctx context.Context, name string) error {
	p, err := f.path(name)
	if err != nil {
		return err
	}
	if err = ctx.Err(); err != nil {
		return err
	}

	if err = os.Remove(p); err != nil {
		return fmt.Errorf("delete %s: %w", name, mapFolderError(err))
	}
	return nil
}

// ListFiles implements [RemoteStorage]. Temporary upload files are skipped.
func (f *FolderStorage) ListFiles(_ context.Context) ([]models.RemoteFile, error) {
	entries, err := os.ReadDir(f.dir)
	if err != nil {
		return nil, fmt.Errorf("list files: %w", mapFolderError(err))
	}

	files := make([]models.RemoteFile, 0, len(entries))
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), folderTempExt) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		files = append(files, models.RemoteFile{
			Name:     e.Name(),
			Size:     info.Size(),
			Modified: info.ModTime(),
			IsFolder: e.IsDir(),
		})
	}
	return files, nil
}

// Watch calls onChange whenever another device replaces the named file in
// the folder. It blocks until ctx is cancelled.
func (f *FolderStorage) Watch(ctx context.Context, name string, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating fsnotify watcher: %w", err)
	}
	defer watcher.Close()

	if err = watcher.Add(f.dir); err != nil {
		return fmt.Errorf("adding remote folder to watcher: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("fsnotify events channel closed")
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if event.Has(fsnotify.Create) || event.Has(fsnotify.Write) || event.Has(fsnotify.Rename) {
				onChange()
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("fsnotify errors channel closed")
			}
			f.logger.Warn().Err(err).Str("dir", f.dir).Msg("remote folder watch error")
		}
	}
}

func (f *FolderStorage) path(name string) (string, error) {
	if err := checkFileName(name); err != nil {
		return "", err
	}
	return filepath.Join(f.dir, name), nil
}

func mapFolderError(err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %w", ErrRemoteFileNotFound, err)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %w", ErrUnauthorized, err)
	default:
		return fmt.Errorf("%w: %w", ErrRemoteUnavailable, err)
	}
}
