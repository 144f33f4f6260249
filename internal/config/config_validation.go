// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// applyDefaults fills every field left empty by all sources.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
	if cfg.App.PasswordHashCost == 0 {
		cfg.App.PasswordHashCost = DefaultPasswordHashCost
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if len(cfg.Server.AllowedOrigins) == 0 {
		cfg.Server.AllowedOrigins = []string{"*"}
	}
	cfg.Storage.DB.Driver = strings.ToLower(cfg.Storage.DB.Driver)
	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = DriverFile
	}
	if cfg.Storage.DB.Driver == DriverFile && cfg.Storage.Files.SnapshotPath == "" {
		cfg.Storage.Files.SnapshotPath = DefaultSnapshotPath
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrMissingTokenSignKey
	}
	if cfg.App.TokenDuration < 0 {
		return fmt.Errorf("%w: negative token duration", ErrInvalidAppConfigs)
	}
	if cfg.App.PasswordHashCost < 4 || cfg.App.PasswordHashCost > 31 {
		return fmt.Errorf("%w: password hash cost must be within [4, 31]", ErrInvalidAppConfigs)
	}
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	switch cfg.Storage.DB.Driver {
	case DriverFile:
		if cfg.Storage.Files.SnapshotPath == "" {
			return fmt.Errorf("%w: snapshot path is empty", ErrInvalidStorageConfigs)
		}
	case DriverPostgres, DriverSQLite:
		if cfg.Storage.DB.DSN == "" {
			return fmt.Errorf("%w: database DSN is empty", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStorageDriver, cfg.Storage.DB.Driver)
	}

	return nil
}
