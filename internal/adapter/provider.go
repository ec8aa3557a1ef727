// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-clip-keeper/internal/config"
	"github.com/MKhiriev/go-clip-keeper/internal/logger"
)

// NewRemoteStorage builds the provider selected by cfg.Provider. It returns
// a nil storage and no error for [config.ProviderNone].
func NewRemoteStorage(ctx context.Context, cfg config.ClientRemote, log *logger.Logger) (RemoteStorage, error) {
	switch cfg.Provider {
	case config.ProviderNone, "":
		return nil, nil
	case config.ProviderHTTP:
		s, err := NewHTTPStorage(cfg, log)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.ProviderS3:
		s, err := NewS3Storage(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.ProviderFolder:
		s, err := NewFolderStorage(cfg, log)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}
