// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns only
// the defaults.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{JWT: JWT{ExpiresMinutes: DefaultExpiresMinutes}}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JWT: JWT{Key: "secret"}},
		&StructuredConfig{JWT: JWT{Issuer: "blog"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.JWT.Key)
	assert.Equal(t, "blog", cfg.JWT.Issuer)
}

// TestBuild_LaterSourceWins verifies that a non-zero field of a later source
// overrides the same field of an earlier one.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JWT: JWT{Key: "from-env", ExpiresMinutes: 5}},
		&StructuredConfig{JWT: JWT{Key: "from-json"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "from-json", cfg.JWT.Key)
	assert.Equal(t, 5, cfg.JWT.ExpiresMinutes)
}

func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Server: Server{AuthRateLimit: 20},
	})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, DefaultExpiresMinutes, cfg.JWT.ExpiresMinutes)
	assert.Equal(t, 20, cfg.Server.AuthRateBurst)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("JWT_KEY", "env-key")
	t.Setenv("JWT_ISSUER", "env-issuer")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-key", b.configs[0].JWT.Key)
	assert.Equal(t, "env-issuer", b.configs[0].JWT.Issuer)
}

func TestWithEnv_SetsError_OnBadValue(t *testing.T) {
	t.Setenv("JWT_EXPIRES_MINUTES", "forever")

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags(nil))
}

func TestWithFlags_AppendsParsedConfig(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-jwt-key", "flag-key", "whoami"})

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "flag-key", b.configs[0].JWT.Key)
	assert.Equal(t, []string{"whoami"}, b.configs[0].Args)
}

func TestWithFlags_SetsError_OnUnknownFlag(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-no-such-flag"})

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.JWT.Key = "json-key"
	payload.JWT.Audience = "json-audience"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-key", b.configs[1].JWT.Key)
	assert.Equal(t, "json-audience", b.configs[1].JWT.Audience)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesLastPath verifies that when multiple configs have a
// JSONFilePath, the last non-empty one wins.
func TestWithJSON_UsesLastPath(t *testing.T) {
	first := StructuredJSONConfig{}
	first.JWT.Issuer = "first"
	last := StructuredJSONConfig{}
	last.JWT.Issuer = "last-wins"

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, first)},
		&StructuredConfig{JSONFilePath: ""},
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, last)},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 4)
	assert.Equal(t, "last-wins", b.configs[3].JWT.Issuer)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	valid := func() *StructuredConfig {
		return &StructuredConfig{
			JWT:     JWT{Key: "secret", ExpiresMinutes: DefaultExpiresMinutes},
			Storage: Storage{DB: DB{DSN: "postgres://localhost/blog"}},
		}
	}

	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "missing key", mutate: func(cfg *StructuredConfig) { cfg.JWT.Key = "" }, wantErr: ErrMissingSigningKey},
		{name: "blank key", mutate: func(cfg *StructuredConfig) { cfg.JWT.Key = "   " }, wantErr: ErrMissingSigningKey},
		{name: "negative lifetime", mutate: func(cfg *StructuredConfig) { cfg.JWT.ExpiresMinutes = -1 }, wantErr: ErrInvalidTokenLifetime},
		{name: "missing dsn", mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{
			name:    "admin without password",
			mutate:  func(cfg *StructuredConfig) { cfg.App.BootstrapAdminUserName = "root" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name: "full bootstrap admin",
			mutate: func(cfg *StructuredConfig) {
				cfg.App.BootstrapAdminUserName = "root"
				cfg.App.BootstrapAdminPassword = "pw"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── client config ─────────────────────────────────────────────────────────────

func TestGetClientConfig_DoesNotRequireSigningKey(t *testing.T) {
	t.Setenv("ADAPTER_ADDRESS", "localhost:8080")
	t.Setenv("CLIENT_DB_DSN", "client.db")

	cfg, err := getClientConfig([]string{"login", "alice"})
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultClientRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "client.db", cfg.Storage.DSN)
	assert.Equal(t, []string{"login", "alice"}, cfg.Args)
}

func TestGetClientConfig_MissingAddress(t *testing.T) {
	t.Setenv("CLIENT_DB_DSN", "client.db")

	_, err := getClientConfig(nil)
	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
}

func TestGetClientConfig_MissingStorage(t *testing.T) {
	_, err := getClientConfig([]string{"-server", "localhost:8080"})
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}
