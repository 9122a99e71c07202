package store

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-securnote/internal/logger"
	"github.com/MKhiriev/go-securnote/models"
)

const activityTable = "activity"

var activityColumns = []string{"id", "ts", "username", "action", "details", "remote_addr", "success"}

type activityRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewActivityRepository returns a SQL-backed [ActivityRepository].
func NewActivityRepository(db *DB, log *logger.Logger) ActivityRepository {
	log.Debug().Msg("creating activity repository")
	return &activityRepository{db: db, logger: log}
}

func (r *activityRepository) Log(ctx context.Context, rec models.ActivityRecord) error {
	insert := r.db.builder.Insert(activityTable).
		Columns(activityColumns[1:]...).
		Values(rec.Timestamp.UTC(), rec.Username, string(rec.Action), rec.Details, rec.RemoteAddr, rec.Success)

	if _, err := r.db.exec(ctx, "*activityRepository.Log", insert); err != nil {
		if errors.Is(err, ErrStorageUnavailable) {
			return err
		}
		return r.db.storageError(ctx, "*activityRepository.Log", ErrExecutingQuery, err)
	}
	return nil
}

func (r *activityRepository) Recent(ctx context.Context, limit int) ([]models.ActivityRecord, error) {
	return r.query(ctx, "*activityRepository.Recent", r.db.builder.Select(activityColumns...).From(activityTable), limit)
}

func (r *activityRepository) ByUser(ctx context.Context, username string, limit int) ([]models.ActivityRecord, error) {
	sel := r.db.builder.Select(activityColumns...).From(activityTable).Where(sq.Eq{"username": username})
	return r.query(ctx, "*activityRepository.ByUser", sel, limit)
}

func (r *activityRepository) query(ctx context.Context, fn string, sel sq.SelectBuilder, limit int) ([]models.ActivityRecord, error) {
	sel = sel.OrderBy("id DESC")
	if limit > 0 {
		sel = sel.Limit(uint64(limit))
	}

	query, args, err := sel.ToSql()
	if err != nil {
		return nil, r.db.storageError(ctx, fn, ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, r.db.storageError(ctx, fn, ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.ActivityRecord, 0)
	for rows.Next() {
		var (
			rec    models.ActivityRecord
			action string
		)
		if err = rows.Scan(&rec.ID, &rec.Timestamp, &rec.Username, &action, &rec.Details, &rec.RemoteAddr, &rec.Success); err != nil {
			return nil, r.db.storageError(ctx, fn, ErrScanningRows, err)
		}
		rec.Action = models.ActivityAction(action)
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, r.db.storageError(ctx, fn, ErrScanningRows, err)
	}
	return records, nil
}
