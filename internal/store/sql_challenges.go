package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-securnote/internal/logger"
	"github.com/MKhiriev/go-securnote/models"
)

const challengesTable = "challenges"

var challengeColumns = []string{"challenge_id", "username", "challenge_data", "created_at", "expires_at", "used"}

// challengeStore is the SQL implementation of [ChallengeStore].
type challengeStore struct {
	db     *DB
	logger *logger.Logger
}

// NewChallengeStore returns a SQL-backed [ChallengeStore].
func NewChallengeStore(db *DB, log *logger.Logger) ChallengeStore {
	log.Debug().Msg("creating challenge store")
	return &challengeStore{db: db, logger: log}
}

func (s *challengeStore) Save(ctx context.Context, c models.Challenge) error {
	insert := s.db.builder.Insert(challengesTable).
		Columns(challengeColumns...).
		Values(c.ChallengeID, c.Username, c.ChallengeData, c.CreatedAt.UTC(), c.ExpiresAt.UTC(), c.Used)

	if _, err := s.db.exec(ctx, "*challengeStore.Save", insert); err != nil {
		if errors.Is(err, ErrStorageUnavailable) {
			return err
		}
		return s.db.storageError(ctx, "*challengeStore.Save", ErrExecutingQuery, err)
	}
	return nil
}

func (s *challengeStore) FindByNonce(ctx context.Context, username, challengeData string) (models.Challenge, error) {
	query, args, err := s.db.builder.Select(challengeColumns...).
		From(challengesTable).
		Where(sq.Eq{"username": username, "challenge_data": challengeData}).
		Limit(1).
		ToSql()
	if err != nil {
		return models.Challenge{}, s.db.storageError(ctx, "*challengeStore.FindByNonce", ErrBuildingSQLQuery, err)
	}

	var c models.Challenge
	err = s.db.QueryRowContext(ctx, query, args...).
		Scan(&c.ChallengeID, &c.Username, &c.ChallengeData, &c.CreatedAt, &c.ExpiresAt, &c.Used)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Challenge{}, ErrChallengeNotFound
	}
	if err != nil {
		return models.Challenge{}, s.db.storageError(ctx, "*challengeStore.FindByNonce", ErrScanningRows, err)
	}
	return c, nil
}

// MarkUsed relies on the "used = false" predicate: of two concurrent
// updates only one sees an affected row.
func (s *challengeStore) MarkUsed(ctx context.Context, challengeID string) (bool, error) {
	update := s.db.builder.Update(challengesTable).
		Set("used", true).
		Where(sq.Eq{"challenge_id": challengeID, "used": false})

	affected, err := s.db.exec(ctx, "*challengeStore.MarkUsed", update)
	if err != nil {
		if errors.Is(err, ErrStorageUnavailable) {
			return false, err
		}
		return false, s.db.storageError(ctx, "*challengeStore.MarkUsed", ErrExecutingQuery, err)
	}
	return affected == 1, nil
}

func (s *challengeStore) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	del := s.db.builder.Delete(challengesTable).Where(sq.Lt{"created_at": cutoff.UTC()})

	affected, err := s.db.exec(ctx, "*challengeStore.DeleteOlderThan", del)
	if err != nil {
		if errors.Is(err, ErrStorageUnavailable) {
			return 0, err
		}
		return 0, s.db.storageError(ctx, "*challengeStore.DeleteOlderThan", ErrExecutingQuery, err)
	}
	return int(affected), nil
}
