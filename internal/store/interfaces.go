// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists identities, the certificate revocation list,
// challenges, encrypted notes and the activity log. Every contract has an
// in-memory implementation guarded by a sync.RWMutex and a SQL
// implementation for PostgreSQL (pgx) and SQLite.
//
// I/O failures are wrapped in [ErrStorageUnavailable]; stored data that
// fails validation on the way out is reported as [ErrRecordCorrupted].
package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-securnote/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// IdentityRepository stores identities keyed by username.
type IdentityRepository interface {
	// Save inserts a new identity. It returns [ErrIdentityExists] when the
	// username is taken; the check and the insert are atomic.
	Save(ctx context.Context, identity models.Identity) error
	// Get returns [ErrIdentityNotFound] for an unknown username.
	Get(ctx context.Context, username string) (models.Identity, error)
	Exists(ctx context.Context, username string) (bool, error)
	// Update replaces a stored identity. It returns [ErrIdentityNotFound]
	// when there is nothing to replace.
	Update(ctx context.Context, identity models.Identity) error
}

// RevocationLedger is the append-only certificate revocation list.
type RevocationLedger interface {
	// Add appends entry and reports false when the cert id is already on the
	// list. Entries are never removed.
	Add(ctx context.Context, entry models.RevocationEntry) (bool, error)
	Contains(ctx context.Context, certID string) (bool, error)
	// List returns all entries in the order they were added.
	List(ctx context.Context) ([]models.RevocationEntry, error)
}

// ChallengeStore keeps issued challenges until they are swept.
type ChallengeStore interface {
	Save(ctx context.Context, challenge models.Challenge) error
	// FindByNonce returns [ErrChallengeNotFound] when no challenge with the
	// given data was issued to username.
	FindByNonce(ctx context.Context, username, challengeData string) (models.Challenge, error)
	// MarkUsed flips used from false to true and reports whether this call
	// did it. A second call for the same id returns false.
	MarkUsed(ctx context.Context, challengeID string) (bool, error)
	// DeleteOlderThan removes challenges created before cutoff and returns
	// how many were removed.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error)
}

// NoteRepository stores encrypted notes. It never sees plaintext.
type NoteRepository interface {
	Save(ctx context.Context, note models.Note) error
	// ListByUser returns the user's notes, newest first.
	ListByUser(ctx context.Context, username string) ([]models.Note, error)
	// Get returns [ErrNoteNotFound] when the note does not exist or belongs
	// to another user.
	Get(ctx context.Context, username, noteID string) (models.Note, error)
	Delete(ctx context.Context, username, noteID string) (bool, error)
}

// ActivityRepository is the audit trail of identity operations.
type ActivityRepository interface {
	Log(ctx context.Context, record models.ActivityRecord) error
	// Recent returns up to limit records, newest first.
	Recent(ctx context.Context, limit int) ([]models.ActivityRecord, error)
	ByUser(ctx context.Context, username string, limit int) ([]models.ActivityRecord, error)
}
