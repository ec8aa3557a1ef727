// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the command-line flags shared by the client and the
// server. Unknown flags are reported as errors.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-driver database driver (pgx or sqlite3)
//	-f server file storage directory
//	-c/-config json file path with configs
//	-password-hash-key password hash key
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout server request timeout (e.g., "30s", "1m")
//	-data-dir client data directory
//	-secret client application secret
//	-provider remote provider (none, http, s3, folder)
//	-remote-address http provider address
//	-login / -password http provider credentials
//	-s3-bucket / -s3-endpoint / -s3-region / -s3-prefix s3 provider settings
//	-folder shared folder provider path
//	-sync-interval default synchronization interval
//	-poll-interval clipboard polling interval
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var cfg StructuredConfig
	var tokenDuration, requestTimeout, syncInterval, pollInterval time.Duration

	fs := flag.NewFlagSet("go-clip-keeper", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.Storage.DB.Driver, "driver", "", "Database driver (pgx, sqlite3)")
	fs.StringVar(&cfg.Storage.Files.BinaryDataDir, "f", "", "File storage path")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.App.PasswordHashKey, "password-hash-key", "", "Password hash key")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	fs.StringVar(&cfg.App.DataDir, "data-dir", "", "Client data directory")
	fs.StringVar(&cfg.App.Secret, "secret", "", "Client application secret")
	fs.StringVar(&cfg.Remote.Provider, "provider", "", "Remote provider (none, http, s3, folder)")
	fs.StringVar(&cfg.Remote.HTTP.Address, "remote-address", "", "HTTP provider address")
	fs.StringVar(&cfg.Remote.Login, "login", "", "HTTP provider login")
	fs.StringVar(&cfg.Remote.Password, "password", "", "HTTP provider password")
	fs.StringVar(&cfg.Remote.S3.Bucket, "s3-bucket", "", "S3 bucket")
	fs.StringVar(&cfg.Remote.S3.Endpoint, "s3-endpoint", "", "S3 endpoint")
	fs.StringVar(&cfg.Remote.S3.Region, "s3-region", "", "S3 region")
	fs.StringVar(&cfg.Remote.S3.Prefix, "s3-prefix", "", "S3 key prefix")
	fs.StringVar(&cfg.Remote.Folder.Path, "folder", "", "Shared folder path")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Default synchronization interval")
	fs.DurationVar(&pollInterval, "poll-interval", 0, "Clipboard polling interval")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	cfg.Server.RequestTimeout = requestTimeout
	cfg.App.TokenDuration = tokenDuration
	cfg.Workers.SyncInterval = syncInterval
	cfg.Workers.ClipboardPollInterval = pollInterval

	return &cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
