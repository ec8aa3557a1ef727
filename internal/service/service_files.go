// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-clip-keeper/internal/logger"
	"github.com/MKhiriev/go-clip-keeper/internal/store"
	"github.com/MKhiriev/go-clip-keeper/internal/validators"
	"github.com/MKhiriev/go-clip-keeper/models"
)

type fileService struct {
	files  store.FileStorage
	logger *logger.Logger
}

// NewFileService returns the FileService of the storage server. Every
// file name is validated before it reaches the storage.
func NewFileService(files store.FileStorage, log *logger.Logger) FileService {
	return &fileService{files: files, logger: log}
}

func (f *fileService) List(ctx context.Context, userID int64) ([]models.RemoteFile, error) {
	files, err := f.files.List(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("listing files failed")
		return nil, err
	}
	return files, nil
}

func (f *fileService) Open(ctx context.Context, userID int64, name string) (io.ReadCloser, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	return f.files.Open(ctx, userID, name)
}

func (f *fileService) Save(ctx context.Context, userID int64, name string, src io.Reader) (int64, error) {
	if err := checkName(name); err != nil {
		return 0, err
	}

	n, err := f.files.Save(ctx, userID, name, src)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Str("file", name).Msg("saving file failed")
		return 0, err
	}
	return n, nil
}

func (f *fileService) Delete(ctx context.Context, userID int64, name string) error {
	if err := checkName(name); err != nil {
		return err
	}
	return f.files.Delete(ctx, userID, name)
}

func checkName(name string) error {
	if err := validators.ValidateFileName(name); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}
