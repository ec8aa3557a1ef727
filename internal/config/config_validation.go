// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

func (cfg *ClientConfig) validate() error {
	if cfg.App.DataDir == "" || cfg.App.Secret == "" || cfg.App.Version == "" {
		return ErrInvalidAppConfigs
	}

	switch cfg.Remote.Provider {
	case "", ProviderNone:
	case ProviderHTTP:
		if cfg.Remote.HTTP.Address == "" || cfg.Remote.Login == "" || cfg.Remote.Password == "" {
			return fmt.Errorf("%w: http provider needs address, login and password", ErrInvalidRemoteConfigs)
		}
	case ProviderS3:
		if cfg.Remote.S3.Bucket == "" {
			return fmt.Errorf("%w: s3 provider needs a bucket", ErrInvalidRemoteConfigs)
		}
	case ProviderFolder:
		if cfg.Remote.Folder.Path == "" {
			return fmt.Errorf("%w: folder provider needs a path", ErrInvalidRemoteConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown provider %q", ErrInvalidRemoteConfigs, cfg.Remote.Provider)
	}

	if cfg.Workers.ClipboardPollInterval <= 0 || cfg.Workers.SyncInterval < time.Minute {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.PasswordHashKey == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DB.DSN == "" || cfg.Storage.Files.BinaryDataDir == "" {
		return ErrInvalidStorageConfigs
	}
	if cfg.Storage.DB.Driver != DriverPostgres && cfg.Storage.DB.Driver != DriverSQLite {
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
