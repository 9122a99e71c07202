// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// Supported database drivers.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// minRSAKeySize is the smallest modulus crypto/rsa still generates.
const minRSAKeySize = 1024

// validate checks that the final merged [StructuredConfig] satisfies all
// startup invariants. It also resolves the database driver from the DSN when
// none was configured.
func (cfg *StructuredConfig) validate() error {
	sec := cfg.Security
	if sec.PBKDF2Iterations <= 0 || sec.RSAKeySize < minRSAKeySize || sec.ChallengeTTL < 0 ||
		sec.AuthSaltSize <= 0 || sec.NoteSaltSize <= 0 || sec.ZKSaltSize <= 0 || sec.CAIssuer == "" {
		return fmt.Errorf("%w: %+v", ErrInvalidSecurityConfigs, sec)
	}

	if cfg.Storage.DB.DSN != "" {
		driver, err := resolveDriver(cfg.Storage.DB)
		if err != nil {
			return err
		}
		cfg.Storage.DB.Driver = driver
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Admin.Enabled() && (cfg.Admin.Password == "" || cfg.Admin.TokenSignKey == "" ||
		cfg.Admin.TokenIssuer == "" || cfg.Admin.TokenDuration <= 0) {
		return ErrInvalidAdminConfigs
	}

	if cfg.Workers.ChallengeSweepInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}

// resolveDriver returns the normalized driver name for db.
func resolveDriver(db DB) (string, error) {
	switch strings.ToLower(db.Driver) {
	case DriverPostgres, "postgres", "postgresql":
		return DriverPostgres, nil
	case DriverSQLite, "sqlite":
		return DriverSQLite, nil
	case "":
		dsn := strings.ToLower(db.DSN)
		if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") ||
			strings.Contains(dsn, "host=") {
			return DriverPostgres, nil
		}
		return DriverSQLite, nil
	default:
		return "", fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, db.Driver)
	}
}
