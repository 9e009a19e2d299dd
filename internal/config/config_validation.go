// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// applyDefaults fills zero values that have a documented default.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.JWT.ExpiresMinutes == 0 {
		cfg.JWT.ExpiresMinutes = DefaultExpiresMinutes
	}

	if cfg.Server.AuthRateBurst == 0 {
		cfg.Server.AuthRateBurst = cfg.Server.AuthRateLimit
	}
}

// validate checks that the merged [StructuredConfig] can start the server.
// The signing key is mandatory: there is no fallback secret.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.JWT.Key) == "" {
		return ErrMissingSigningKey
	}

	if cfg.JWT.ExpiresMinutes < 0 {
		return ErrInvalidTokenLifetime
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if (cfg.App.BootstrapAdminUserName == "") != (cfg.App.BootstrapAdminPassword == "") {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
