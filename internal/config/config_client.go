// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// Remote provider names.
const (
	ProviderNone   = "none"
	ProviderHTTP   = "http"
	ProviderS3     = "s3"
	ProviderFolder = "folder"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	DataDir string
	Version string
	Secret  string
}

// ClientRemote holds the remote storage provider settings.
type ClientRemote struct {
	Provider       string
	Login          string
	Password       string
	RequestTimeout time.Duration
	HTTP           RemoteHTTP
	S3             RemoteS3
	Folder         RemoteFolder
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	ClipboardPollInterval time.Duration
	SyncInterval          time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Remote  ClientRemote
	Workers ClientWorkers
	Network Network
}

// GetClientConfig builds and validates the client view of the merged
// configuration.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			DataDir: cfg.App.DataDir,
			Version: cfg.App.Version,
			Secret:  cfg.App.Secret,
		},
		Remote: ClientRemote{
			Provider:       cfg.Remote.Provider,
			Login:          cfg.Remote.Login,
			Password:       cfg.Remote.Password,
			RequestTimeout: cfg.Remote.RequestTimeout,
			HTTP:           cfg.Remote.HTTP,
			S3:             cfg.Remote.S3,
			Folder:         cfg.Remote.Folder,
		},
		Workers: ClientWorkers{
			ClipboardPollInterval: cfg.Workers.ClipboardPollInterval,
			SyncInterval:          cfg.Workers.SyncInterval,
		},
		Network: cfg.Network,
	}
}
