// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"io"

	"github.com/MKhiriev/go-clip-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists the accounts of the remote storage server.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// FileStorage keeps the files uploaded by each user of the remote storage
// server in a private folder. Names are flat; callers validate them.
type FileStorage interface {
	List(ctx context.Context, userID int64) ([]models.RemoteFile, error)
	Open(ctx context.Context, userID int64, name string) (io.ReadCloser, error)
	Save(ctx context.Context, userID int64, name string, src io.Reader) (int64, error)
	Delete(ctx context.Context, userID int64, name string) error
}
