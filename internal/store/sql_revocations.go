package store

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-securnote/internal/logger"
	"github.com/MKhiriev/go-securnote/models"
)

const revocationsTable = "revocations"

// revocationLedger is the SQL implementation of [RevocationLedger]. The
// unique cert_id column makes Add a single atomic statement; seq keeps the
// insertion order.
type revocationLedger struct {
	db     *DB
	logger *logger.Logger
}

// NewRevocationLedger returns a SQL-backed [RevocationLedger].
func NewRevocationLedger(db *DB, log *logger.Logger) RevocationLedger {
	log.Debug().Msg("creating revocation ledger")
	return &revocationLedger{db: db, logger: log}
}

func (l *revocationLedger) Add(ctx context.Context, entry models.RevocationEntry) (bool, error) {
	insert := l.db.builder.Insert(revocationsTable).
		Columns("cert_id", "revoked_at", "reason").
		Values(entry.CertID, entry.RevokedAt.UTC(), entry.Reason).
		Suffix("ON CONFLICT (cert_id) DO NOTHING")

	affected, err := l.db.exec(ctx, "*revocationLedger.Add", insert)
	if err != nil {
		if errors.Is(err, ErrStorageUnavailable) {
			return false, err
		}
		return false, l.db.storageError(ctx, "*revocationLedger.Add", ErrExecutingQuery, err)
	}
	return affected == 1, nil
}

func (l *revocationLedger) Contains(ctx context.Context, certID string) (bool, error) {
	query, args, err := l.db.builder.Select("COUNT(*)").
		From(revocationsTable).
		Where(sq.Eq{"cert_id": certID}).
		ToSql()
	if err != nil {
		return false, l.db.storageError(ctx, "*revocationLedger.Contains", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = l.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, l.db.storageError(ctx, "*revocationLedger.Contains", ErrExecutingQuery, err)
	}
	return count > 0, nil
}

func (l *revocationLedger) List(ctx context.Context) ([]models.RevocationEntry, error) {
	query, args, err := l.db.builder.Select("cert_id", "revoked_at", "reason").
		From(revocationsTable).
		OrderBy("seq").
		ToSql()
	if err != nil {
		return nil, l.db.storageError(ctx, "*revocationLedger.List", ErrBuildingSQLQuery, err)
	}

	rows, err := l.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, l.db.storageError(ctx, "*revocationLedger.List", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.RevocationEntry, 0)
	for rows.Next() {
		var e models.RevocationEntry
		if err = rows.Scan(&e.CertID, &e.RevokedAt, &e.Reason); err != nil {
			return nil, l.db.storageError(ctx, "*revocationLedger.List", ErrScanningRows, err)
		}
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		return nil, l.db.storageError(ctx, "*revocationLedger.List", ErrScanningRows, err)
	}
	return entries, nil
}
