// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] can start the
// server: both stores are addressable, the listen address is set and reset
// links can be built.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty database DSN", ErrInvalidStorageConfigs)
	}
	if !IsPostgresDSN(cfg.Storage.DB.DSN) && !IsSQLiteDSN(cfg.Storage.DB.DSN) {
		return fmt.Errorf("%w: unsupported database DSN scheme", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.Documents.URI == "" {
		return fmt.Errorf("%w: empty documents URI", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty HTTP address", ErrInvalidServerConfigs)
	}
	if cfg.Server.RequestTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: negative timeout", ErrInvalidServerConfigs)
	}

	if _, err := url.ParseRequestURI(cfg.App.FrontendURL); err != nil {
		return fmt.Errorf("%w: frontend URL: %w", ErrInvalidAppConfigs, err)
	}
	if cfg.App.PasswordHashCost < bcrypt.MinCost || cfg.App.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: password hash cost %d", ErrInvalidAppConfigs, cfg.App.PasswordHashCost)
	}
	if cfg.App.ResetTokenTTL <= 0 {
		return fmt.Errorf("%w: non-positive reset token TTL", ErrInvalidAppConfigs)
	}

	return nil
}

// IsPostgresDSN reports whether dsn addresses a PostgreSQL database.
func IsPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// IsSQLiteDSN reports whether dsn addresses a SQLite database.
func IsSQLiteDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "sqlite://") || strings.HasPrefix(dsn, "file:")
}
