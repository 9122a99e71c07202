// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-securnote/internal/logger"
	"github.com/MKhiriev/go-securnote/migrations"
)

// ErrorClassificator inspects driver errors of one SQL dialect.
type ErrorClassificator interface {
	// Classify reports whether the failed operation may succeed on retry.
	Classify(err error) ErrorClassification
	// IsUniqueViolation reports whether err is a primary key or unique
	// constraint violation.
	IsUniqueViolation(err error) bool
}

// DB is a database/sql pool bound to one dialect. The statement builder
// renders the placeholders the driver expects.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func newDB(conn *sql.DB, dialect string, placeholders sq.PlaceholderFormat, classifier ErrorClassificator, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		dialect:            dialect,
		builder:            sq.StatementBuilder.PlaceholderFormat(placeholders),
		errorClassificator: classifier,
		logger:             log,
	}
}

// Migrate applies the embedded schema for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// storageError logs err and wraps it as [ErrStorageUnavailable].
func (db *DB) storageError(ctx context.Context, fn string, kind, err error) error {
	logger.FromContext(ctx).Err(err).
		Str("func", fn).
		Bool("retryable", db.errorClassificator.Classify(err) == Retryable).
		Msg(kind.Error())
	return fmt.Errorf("%w: %w: %w", ErrStorageUnavailable, kind, err)
}

// exec renders and runs a write statement and returns the affected row count.
func (db *DB) exec(ctx context.Context, fn string, builder sq.Sqlizer) (int64, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return 0, db.storageError(ctx, fn, ErrBuildingSQLQuery, err)
	}

	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, db.storageError(ctx, fn, ErrExecutingQuery, err)
	}
	return affected, nil
}
