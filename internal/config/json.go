// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON field names.
type StructuredJSONConfig struct {
	App struct {
		PasswordHashKey string   `json:"password_hash_key"`
		TokenSignKey    string   `json:"token_sign_key"`
		TokenIssuer     string   `json:"token_issuer"`
		TokenDuration   Duration `json:"token_duration"`
		Version         string   `json:"version"`
		DataDir         string   `json:"data_dir"`
		Secret          string   `json:"secret"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`

		Files struct {
			BinaryDataDir string `json:"binary_data_dir"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Remote struct {
		Provider       string   `json:"provider"`
		Login          string   `json:"login"`
		Password       string   `json:"password"`
		RequestTimeout Duration `json:"request_timeout"`
		HTTP           struct {
			Address string `json:"address"`
		} `json:"http,omitempty"`
		S3 struct {
			Region    string `json:"region"`
			Endpoint  string `json:"endpoint"`
			Bucket    string `json:"bucket"`
			AccessKey string `json:"access_key"`
			SecretKey string `json:"secret_key"`
			Prefix    string `json:"prefix"`
		} `json:"s3,omitempty"`
		Folder struct {
			Path string `json:"path"`
		} `json:"folder,omitempty"`
	} `json:"remote,omitempty"`

	Workers struct {
		ClipboardPollInterval Duration `json:"clipboard_poll_interval"`
		SyncInterval          Duration `json:"sync_interval"`
	} `json:"workers,omitempty"`

	Network struct {
		ProbeAddress string   `json:"probe_address"`
		ProbeTimeout Duration `json:"probe_timeout"`
	} `json:"network,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			PasswordHashKey: jsonCfg.App.PasswordHashKey,
			TokenSignKey:    jsonCfg.App.TokenSignKey,
			TokenIssuer:     jsonCfg.App.TokenIssuer,
			TokenDuration:   time.Duration(jsonCfg.App.TokenDuration),
			Version:         jsonCfg.App.Version,
			DataDir:         jsonCfg.App.DataDir,
			Secret:          jsonCfg.App.Secret,
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
			Files: Files{
				BinaryDataDir: jsonCfg.Storage.Files.BinaryDataDir,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Remote: Remote{
			Provider:       jsonCfg.Remote.Provider,
			Login:          jsonCfg.Remote.Login,
			Password:       jsonCfg.Remote.Password,
			RequestTimeout: time.Duration(jsonCfg.Remote.RequestTimeout),
			HTTP:           RemoteHTTP{Address: jsonCfg.Remote.HTTP.Address},
			S3: RemoteS3{
				Region:    jsonCfg.Remote.S3.Region,
				Endpoint:  jsonCfg.Remote.S3.Endpoint,
				Bucket:    jsonCfg.Remote.S3.Bucket,
				AccessKey: jsonCfg.Remote.S3.AccessKey,
				SecretKey: jsonCfg.Remote.S3.SecretKey,
				Prefix:    jsonCfg.Remote.S3.Prefix,
			},
			Folder: RemoteFolder{Path: jsonCfg.Remote.Folder.Path},
		},
		Workers: Workers{
			ClipboardPollInterval: time.Duration(jsonCfg.Workers.ClipboardPollInterval),
			SyncInterval:          time.Duration(jsonCfg.Workers.SyncInterval),
		},
		Network: Network{
			ProbeAddress: jsonCfg.Network.ProbeAddress,
			ProbeTimeout: time.Duration(jsonCfg.Network.ProbeTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
