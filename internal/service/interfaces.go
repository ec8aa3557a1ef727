// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of both binaries: the
// reconciliation engine, the synchronization pass and its job, the capture
// pipeline and the data migration for the client; user authentication and
// per-user file storage for the server.
package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-clip-keeper/models"
)

// AuthService registers and authenticates server accounts.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	GetUser(ctx context.Context, userID int64) (models.UserInfo, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// FileService stores the remote files of each account.
type FileService interface {
	List(ctx context.Context, userID int64) ([]models.RemoteFile, error)
	Open(ctx context.Context, userID int64, name string) (io.ReadCloser, error)
	Save(ctx context.Context, userID int64, name string, src io.Reader) (int64, error)
	Delete(ctx context.Context, userID int64, name string) error
}

// AppInfoService exposes build information of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
