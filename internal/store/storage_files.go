// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-clip-keeper/internal/logger"
	"github.com/MKhiriev/go-clip-keeper/models"
)

// diskFileStorage is the filesystem [FileStorage]: every user owns the
// folder <root>/<user id>.
type diskFileStorage struct {
	root   string
	logger *logger.Logger
}

// NewFileStorage returns a [FileStorage] rooted at root, creating it when
// missing.
func NewFileStorage(root string, log *logger.Logger) (FileStorage, error) {
	log.Debug().Str("root", root).Msg("creating file storage")

	if err := os.MkdirAll(root, dataDirPerm); err != nil {
		return nil, fmt.Errorf("creating file storage root: %w", err)
	}
	return &diskFileStorage{root: root, logger: log}, nil
}

func (d *diskFileStorage) userDir(userID int64) string {
	return filepath.Join(d.root, strconv.FormatInt(userID, 10))
}

// path joins name under the user folder, refusing names that would escape it.
func (d *diskFileStorage) path(userID int64, name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrFileNotFound, name)
	}
	return filepath.Join(d.userDir(userID), name), nil
}

// List returns the user's files sorted by name. A user without uploads has
// an empty listing.
func (d *diskFileStorage) List(_ context.Context, userID int64) ([]models.RemoteFile, error) {
	items, err := os.ReadDir(d.userDir(userID))
	if errors.Is(err, fs.ErrNotExist) {
		return []models.RemoteFile{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("listing files: %w", err)
	}

	files := make([]models.RemoteFile, 0, len(items))
	for _, item := range items {
		if strings.HasSuffix(item.Name(), ".tmp") {
			continue
		}
		info, err := item.Info()
		if err != nil {
			continue
		}
		files = append(files, models.RemoteFile{
			Name:     item.Name(),
			Size:     info.Size(),
			Modified: info.ModTime().UTC(),
			IsFolder: item.IsDir(),
		})
	}

	slices.SortFunc(files, func(a, b models.RemoteFile) int {
		return strings.Compare(a.Name, b.Name)
	})
	return files, nil
}

func (d *diskFileStorage) Open(_ context.Context, userID int64, name string) (io.ReadCloser, error) {
	p, err := d.path(userID, name)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, name)
	}
	return f, err
}

// Save replaces the file with the content of src and returns the number of
// bytes written.
func (d *diskFileStorage) Save(ctx context.Context, userID int64, name string, src io.Reader) (int64, error) {
	p, err := d.path(userID, name)
	if err != nil {
		return 0, err
	}
	if err := os.MkdirAll(d.userDir(userID), dataDirPerm); err != nil {
		return 0, fmt.Errorf("creating user folder: %w", err)
	}

	var written int64
	err = writeFileAtomic(p, func(w io.Writer) error {
		n, err := io.Copy(w, src)
		written = n
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("file", name).Msg("error saving file")
		return 0, err
	}
	return written, nil
}

func (d *diskFileStorage) Delete(_ context.Context, userID int64, name string) error {
	p, err := d.path(userID, name)
	if err != nil {
		return err
	}

	err = os.Remove(p)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrFileNotFound, name)
	}
	return err
}
