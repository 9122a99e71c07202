// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-securnote/internal/config"
	"github.com/MKhiriev/go-securnote/internal/logger"
)

// Storages bundles every store the services depend on.
type Storages struct {
	Identities  IdentityRepository
	Revocations RevocationLedger
	Challenges  ChallengeStore
	Notes       NoteRepository
	Activity    ActivityRepository

	db *DB
}

// NewStorages connects the backend selected by cfg and applies migrations.
// An empty DSN selects the in-memory stores.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	if cfg.DB.DSN == "" {
		log.Warn().Str("func", "store.NewStorages").Msg("no database configured, using in-memory storage")
		return NewMemoryStorages(), nil
	}

	var (
		db  *DB
		err error
	)
	switch cfg.DB.Driver {
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DB.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "store.NewStorages").Msg("error applying migrations")
		db.Close()
		return nil, err
	}

	return NewSQLStorages(db, log), nil
}

// NewMemoryStorages returns process-local stores.
func NewMemoryStorages() *Storages {
	return &Storages{
		Identities:  NewMemoryIdentityRepository(),
		Revocations: NewMemoryRevocationLedger(),
		Challenges:  NewMemoryChallengeStore(),
		Notes:       NewMemoryNoteRepository(),
		Activity:    NewMemoryActivityRepository(),
	}
}

// NewSQLStorages returns stores backed by db.
func NewSQLStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		Identities:  NewIdentityRepository(db, log),
		Revocations: NewRevocationLedger(db, log),
		Challenges:  NewChallengeStore(db, log),
		Notes:       NewNoteRepository(db, log),
		Activity:    NewActivityRepository(db, log),
		db:          db,
	}
}

// Close releases the database pool, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
