// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "golang.org/x/crypto/bcrypt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	db := cfg.Storage.DB
	if db.DSN == "" {
		return ErrInvalidStorageConfigs
	}
	if db.Driver != DriverPostgres && db.Driver != DriverSQLite {
		return ErrUnsupportedDriver
	}
	if db.QueryTimeout <= 0 || db.MaxOpenConns <= 0 {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.RememberTokenKey == "" {
		return ErrInvalidAppConfigs
	}
	if cfg.App.BcryptCost < bcrypt.MinCost || cfg.App.BcryptCost > bcrypt.MaxCost {
		return ErrInvalidAppConfigs
	}

	return nil
}
