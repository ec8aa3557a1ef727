// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-clip-keeper/internal/crypto"
)

const (
	// DataFolderName is the clipboard data folder inside the application
	// data directory.
	DataFolderName = ".data"

	// EntryListFileName holds the encrypted entry list.
	EntryListFileName = ".clipboard"

	// CacheFileName holds the encrypted cache list.
	CacheFileName = ".clipboardCache"

	// DataFileExt is the extension of per-format payload files.
	DataFileExt = ".dat"

	dataDirPerm  = fs.FileMode(0o700)
	dataFilePerm = fs.FileMode(0o600)
)

// DataFileName returns the payload file name of a data identifier.
func DataFileName(id uuid.UUID) string {
	return id.String() + DataFileExt
}

// dataFileStorage is the filesystem implementation of [DataFileStorage].
type dataFileStorage struct {
	dir string
}

// NewDataFileStorage returns a [DataFileStorage] rooted at dir, creating
// the directory when missing.
func NewDataFileStorage(dir string) (DataFileStorage, error) {
	if err := os.MkdirAll(dir, dataDirPerm); err != nil {
		return nil, fmt.Errorf("creating data folder: %w", err)
	}
	return &dataFileStorage{dir: dir}, nil
}

func (d *dataFileStorage) Dir() string {
	return d.dir
}

func (d *dataFileStorage) Path(id uuid.UUID) string {
	return filepath.Join(d.dir, DataFileName(id))
}

// Write encrypts src into the payload file of id. The file is written to a
// temporary name first and renamed into place.
func (d *dataFileStorage) Write(id uuid.UUID, src io.Reader) error {
	return writeFileAtomic(d.Path(id), func(w io.Writer) error {
		return crypto.EncryptStream(w, src, crypto.DataIdentifierPassword(id))
	})
}

func (d *dataFileStorage) Read(id uuid.UUID, dst io.Writer) error {
	f, err := os.Open(d.Path(id))
	if err != nil {
		return fmt.Errorf("opening data file %s: %w", id, err)
	}
	defer f.Close()

	if err := crypto.DecryptStream(dst, f, crypto.DataIdentifierPassword(id)); err != nil {
		return fmt.Errorf("decrypting data file %s: %w", id, err)
	}
	return nil
}

func (d *dataFileStorage) Exists(id uuid.UUID) bool {
	_, err := os.Stat(d.Path(id))
	return err == nil
}

// Delete removes the payload file of id. A missing file is not an error.
func (d *dataFileStorage) Delete(id uuid.UUID) error {
	if err := os.Remove(d.Path(id)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (d *dataFileStorage) Clear() error {
	items, err := os.ReadDir(d.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return os.MkdirAll(d.dir, dataDirPerm)
		}
		return err
	}

	var errs []error
	for _, item := range items {
		if err := os.RemoveAll(filepath.Join(d.dir, item.Name())); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Reencrypt rewrites the encrypted file at path from oldPassword to
// newPassword in place. The original is left untouched when decryption fails.
func Reencrypt(path, oldPassword, newPassword string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	var plain bytes.Buffer
	err = crypto.DecryptStream(&plain, f, oldPassword)
	f.Close()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStaleData, err)
	}

	return writeFileAtomic(path, func(w io.Writer) error {
		return crypto.EncryptStream(w, &plain, newPassword)
	})
}

// writeFileAtomic streams write into a temporary file next to path and
// renames it over path on success.
func writeFileAtomic(path string, write func(io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if err := write(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, dataFilePerm); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
