package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-securnote/internal/logger"
	"github.com/MKhiriev/go-securnote/models"
)

const notesTable = "notes"

var noteColumns = []string{
	"note_id",
	"username",
	"title_ciphertext",
	"title_nonce",
	"content_ciphertext",
	"content_nonce",
	"created_at",
}

type noteRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewNoteRepository returns a SQL-backed [NoteRepository].
func NewNoteRepository(db *DB, log *logger.Logger) NoteRepository {
	log.Debug().Msg("creating note repository")
	return &noteRepository{db: db, logger: log}
}

func (r *noteRepository) Save(ctx context.Context, n models.Note) error {
	insert := r.db.builder.Insert(notesTable).
		Columns(noteColumns...).
		Values(n.NoteID, n.Username, n.TitleCiphertext, n.TitleNonce, n.ContentCiphertext, n.ContentNonce, n.CreatedAt.UTC())

	if _, err := r.db.exec(ctx, "*noteRepository.Save", insert); err != nil {
		if errors.Is(err, ErrStorageUnavailable) {
			return err
		}
		return r.db.storageError(ctx, "*noteRepository.Save", ErrExecutingQuery, err)
	}
	return nil
}

func (r *noteRepository) ListByUser(ctx context.Context, username string) ([]models.Note, error) {
	query, args, err := r.db.builder.Select(noteColumns...).
		From(notesTable).
		Where(sq.Eq{"username": username}).
		OrderBy("created_at DESC", "note_id DESC").
		ToSql()
	if err != nil {
		return nil, r.db.storageError(ctx, "*noteRepository.ListByUser", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, r.db.storageError(ctx, "*noteRepository.ListByUser", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0)
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, r.db.storageError(ctx, "*noteRepository.ListByUser", ErrScanningRows, err)
		}
		if err = validateNote(n); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	if err = rows.Err(); err != nil {
		return nil, r.db.storageError(ctx, "*noteRepository.ListByUser", ErrScanningRows, err)
	}
	return notes, nil
}

func (r *noteRepository) Get(ctx context.Context, username, noteID string) (models.Note, error) {
	query, args, err := r.db.builder.Select(noteColumns...).
		From(notesTable).
		Where(sq.Eq{"note_id": noteID, "username": username}).
		ToSql()
	if err != nil {
		return models.Note{}, r.db.storageError(ctx, "*noteRepository.Get", ErrBuildingSQLQuery, err)
	}

	n, err := scanNote(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Note{}, ErrNoteNotFound
	}
	if err != nil {
		return models.Note{}, r.db.storageError(ctx, "*noteRepository.Get", ErrScanningRows, err)
	}
	if err = validateNote(n); err != nil {
		return models.Note{}, err
	}
	return n, nil
}

func (r *noteRepository) Delete(ctx context.Context, username, noteID string) (bool, error) {
	del := r.db.builder.Delete(notesTable).Where(sq.Eq{"note_id": noteID, "username": username})

	affected, err := r.db.exec(ctx, "*noteRepository.Delete", del)
	if err != nil {
		if errors.Is(err, ErrStorageUnavailable) {
			return false, err
		}
		return false, r.db.storageError(ctx, "*noteRepository.Delete", ErrExecutingQuery, err)
	}
	return affected > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (models.Note, error) {
	var n models.Note
	err := row.Scan(&n.NoteID, &n.Username, &n.TitleCiphertext, &n.TitleNonce, &n.ContentCiphertext, &n.ContentNonce, &n.CreatedAt)
	return n, err
}

func validateNote(n models.Note) error {
	if len(n.TitleNonce) == 0 || len(n.ContentNonce) == 0 {
		return fmt.Errorf("%w: note %s has no nonce", ErrRecordCorrupted, n.NoteID)
	}
	return nil
}
