// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterLayersOverride verifies that non-zero fields of later
// layers win while zero fields keep earlier values.
func TestBuild_LaterLayersOverride(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0", TokenIssuer: "issuer"}},
		&StructuredConfig{App: App{Version: "2.0.0"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_SitsBelowEnvAndFlags verifies that the JSON layer overrides
// defaults but not flags.
func TestWithJSON_SitsBelowEnvAndFlags(t *testing.T) {
	p := writeTempFile(t, "config.json", `{
		"app": {"version": "json-version", "secret": "json-secret"},
		"workers": {"sync_interval": "5m"}
	}`)

	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs, &StructuredConfig{App: App{Version: "flag-version"}, JSONFilePath: p})

	cfg, err := b.withJSON().build()
	require.NoError(t, err)
	assert.Equal(t, "flag-version", cfg.App.Version)
	assert.Equal(t, "json-secret", cfg.App.Secret)
	assert.Equal(t, 5*time.Minute, cfg.Workers.SyncInterval)
	assert.Equal(t, 500*time.Millisecond, cfg.Workers.ClipboardPollInterval)
}

func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: filepath.Join(t.TempDir(), "nope.json")})

	_, err := b.withJSON().build()
	assert.Error(t, err)
}

// ── withDotEnv ────────────────────────────────────────────────────────────────

func TestWithDotEnv_LoadsFileWithoutOverriding(t *testing.T) {
	p := writeTempFile(t, ".env", "APP_SECRET=from-dotenv\nREMOTE_PROVIDER=folder\n")
	prev := dotEnvFile
	dotEnvFile = p
	t.Cleanup(func() { dotEnvFile = prev })

	t.Setenv("REMOTE_PROVIDER", "s3")
	t.Setenv("APP_SECRET", "")
	require.NoError(t, os.Unsetenv("APP_SECRET"))

	cfg, err := newConfigBuilder().withDotEnv().withEnv().build()
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.App.Secret)
	assert.Equal(t, "s3", cfg.Remote.Provider)
}

func TestWithDotEnv_MissingFileIgnored(t *testing.T) {
	prev := dotEnvFile
	dotEnvFile = filepath.Join(t.TempDir(), ".env")
	t.Cleanup(func() { dotEnvFile = prev })

	b := newConfigBuilder().withDotEnv()
	assert.NoError(t, b.err)
}

// ── views ─────────────────────────────────────────────────────────────────────

func TestGetClientConfig(t *testing.T) {
	t.Setenv("APP_SECRET", "s3cret")
	t.Setenv("REMOTE_PROVIDER", "folder")

	cfg, err := GetClientConfig([]string{"-folder", "/mnt/share", "-data-dir", "/tmp/clip"})
	require.NoError(t, err)
	assert.Equal(t, "s3cret", cfg.App.Secret)
	assert.Equal(t, "/tmp/clip", cfg.App.DataDir)
	assert.Equal(t, ProviderFolder, cfg.Remote.Provider)
	assert.Equal(t, "/mnt/share", cfg.Remote.Folder.Path)
	assert.Equal(t, 10*time.Minute, cfg.Workers.SyncInterval)
}

func TestGetClientConfig_MissingSecret(t *testing.T) {
	t.Setenv("APP_SECRET", "")

	_, err := GetClientConfig(nil)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestGetServerConfig(t *testing.T) {
	t.Setenv("APP_TOKEN_SIGN_KEY", "sign")
	t.Setenv("APP_PASSWORD_HASH_KEY", "hash")

	cfg, err := GetServerConfig([]string{"-d", "clip.db", "-f", "/var/clip", "-a", "127.0.0.1:9000"})
	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
	assert.Equal(t, "clip.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, 24*time.Hour, cfg.App.TokenDuration)
}

func TestGetServerConfig_UnknownFlag(t *testing.T) {
	_, err := GetServerConfig([]string{"-unknown"})
	assert.Error(t, err)
}
