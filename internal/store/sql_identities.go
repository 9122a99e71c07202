// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-securnote/internal/logger"
	"github.com/MKhiriev/go-securnote/models"
)

const identitiesTable = "identities"

var identityColumns = []string{
	"username",
	"auth_salt",
	"auth_hash",
	"note_salt",
	"zk_salt",
	"zk_hash",
	"certificate",
	"created_at",
	"is_active",
}

// identityRepository is the SQL implementation of [IdentityRepository].
// The certificate is stored as its JSON boundary record and validated again
// on every read.
type identityRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewIdentityRepository returns a SQL-backed [IdentityRepository].
func NewIdentityRepository(db *DB, log *logger.Logger) IdentityRepository {
	log.Debug().Msg("creating identity repository")
	return &identityRepository{db: db, logger: log}
}

func (r *identityRepository) Save(ctx context.Context, identity models.Identity) error {
	cert, err := encodeCertificate(identity.Certificate)
	if err != nil {
		return err
	}

	insert := r.db.builder.Insert(identitiesTable).
		Columns(identityColumns...).
		Values(
			identity.Username,
			identity.AuthVerifier.Salt,
			identity.AuthVerifier.Hash,
			identity.NoteSalt,
			identity.ZKVerifier.Salt,
			identity.ZKVerifier.Hash,
			cert,
			identity.CreatedAt.UTC(),
			identity.IsActive,
		)

	if _, err = r.db.exec(ctx, "*identityRepository.Save", insert); err != nil {
		if errors.Is(err, ErrStorageUnavailable) {
			return err
		}
		if r.db.errorClassificator.IsUniqueViolation(err) {
			return ErrIdentityExists
		}
		return r.db.storageError(ctx, "*identityRepository.Save", ErrExecutingQuery, err)
	}
	return nil
}

func (r *identityRepository) Get(ctx context.Context, username string) (models.Identity, error) {
	query, args, err := r.db.builder.Select(identityColumns...).
		From(identitiesTable).
		Where(sq.Eq{"username": username}).
		ToSql()
	if err != nil {
		return models.Identity{}, r.db.storageError(ctx, "*identityRepository.Get", ErrBuildingSQLQuery, err)
	}

	var (
		identity models.Identity
		cert     sql.NullString
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&identity.Username,
		&identity.AuthVerifier.Salt,
		&identity.AuthVerifier.Hash,
		&identity.NoteSalt,
		&identity.ZKVerifier.Salt,
		&identity.ZKVerifier.Hash,
		&cert,
		&identity.CreatedAt,
		&identity.IsActive,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Identity{}, ErrIdentityNotFound
	}
	if err != nil {
		return models.Identity{}, r.db.storageError(ctx, "*identityRepository.Get", ErrScanningRows, err)
	}

	if identity.Certificate, err = decodeCertificate(cert); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*identityRepository.Get").Str("username", username).Msg("stored certificate rejected")
		return models.Identity{}, err
	}
	if err = validateIdentity(identity); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*identityRepository.Get").Str("username", username).Msg("stored identity rejected")
		return models.Identity{}, err
	}
	return identity, nil
}

func (r *identityRepository) Exists(ctx context.Context, username string) (bool, error) {
	query, args, err := r.db.builder.Select("COUNT(*)").
		From(identitiesTable).
		Where(sq.Eq{"username": username}).
		ToSql()
	if err != nil {
		return false, r.db.storageError(ctx, "*identityRepository.Exists", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, r.db.storageError(ctx, "*identityRepository.Exists", ErrExecutingQuery, err)
	}
	return count > 0, nil
}

func (r *identityRepository) Update(ctx context.Context, identity models.Identity) error {
	cert, err := encodeCertificate(identity.Certificate)
	if err != nil {
		return err
	}

	update := r.db.builder.Update(identitiesTable).
		Set("auth_salt", identity.AuthVerifier.Salt).
		Set("auth_hash", identity.AuthVerifier.Hash).
		Set("note_salt", identity.NoteSalt).
		Set("zk_salt", identity.ZKVerifier.Salt).
		Set("zk_hash", identity.ZKVerifier.Hash).
		Set("certificate", cert).
		Set("is_active", identity.IsActive).
		Where(sq.Eq{"username": identity.Username})

	affected, err := r.db.exec(ctx, "*identityRepository.Update", update)
	if err != nil {
		if errors.Is(err, ErrStorageUnavailable) {
			return err
		}
		return r.db.storageError(ctx, "*identityRepository.Update", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrIdentityNotFound
	}
	return nil
}

func encodeCertificate(cert *models.Certificate) (sql.NullString, error) {
	if cert == nil {
		return sql.NullString{}, nil
	}

	data, err := json.Marshal(cert.Record())
	if err != nil {
		return sql.NullString{}, fmt.Errorf("error encoding certificate: %w", err)
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}

func decodeCertificate(value sql.NullString) (*models.Certificate, error) {
	if !value.Valid {
		return nil, nil
	}

	var record models.CertificateRecord
	if err := json.Unmarshal([]byte(value.String), &record); err != nil {
		return nil, fmt.Errorf("%w: certificate: %w", ErrRecordCorrupted, err)
	}

	cert, err := models.ParseCertificateRecord(record)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRecordCorrupted, err)
	}
	return &cert, nil
}

// validateIdentity rejects rows whose verifiers are not SHA-256 hex digests
// or whose salts are missing.
func validateIdentity(identity models.Identity) error {
	switch {
	case identity.Username == "":
		return fmt.Errorf("%w: empty username", ErrRecordCorrupted)
	case len(identity.AuthVerifier.Salt) == 0 || len(identity.ZKVerifier.Salt) == 0 || len(identity.NoteSalt) == 0:
		return fmt.Errorf("%w: missing salt", ErrRecordCorrupted)
	case !isSHA256Hex(identity.AuthVerifier.Hash) || !isSHA256Hex(identity.ZKVerifier.Hash):
		return fmt.Errorf("%w: verifier is not a sha-256 hex digest", ErrRecordCorrupted)
	case identity.Certificate != nil && identity.Certificate.Username != identity.Username:
		return fmt.Errorf("%w: certificate issued to another user", ErrRecordCorrupted)
	}
	return nil
}

func isSHA256Hex(s string) bool {
	if len(s) != 64 {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}
