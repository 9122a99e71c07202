package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-securnote/internal/config"
	"github.com/MKhiriev/go-securnote/internal/logger"
	"github.com/MKhiriev/go-securnote/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAuthHash = "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"
	testZKHash   = "486ea46224d1bb4fb680f34f7c9ad96a8f24ec88be73ea8e5a6c65260e9cb8a7"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return newDB(conn, config.DriverPostgres, sq.Dollar, NewPostgresErrorClassifier(), logger.Nop()), mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func certificateJSON(t *testing.T, username string) string {
	t.Helper()
	record := models.Certificate{
		CertID:    "0123456789abcdef0123456789abcdef",
		Username:  username,
		PublicKey: []byte("-----BEGIN PUBLIC KEY-----\n...\n-----END PUBLIC KEY-----\n"),
		Signature: []byte{0xde, 0xad},
		Issuer:    "SecurNote CA",
		IssuedAt:  time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}.Record()
	data, err := json.Marshal(record)
	require.NoError(t, err)
	return string(data)
}

func identityRows(t *testing.T, authHash string, cert any) *sqlmock.Rows {
	return sqlmock.NewRows(identityColumns).AddRow(
		"alice", []byte("auth-salt"), authHash, []byte("note-salt"), []byte("zk-salt"), testZKHash,
		cert, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), true,
	)
}

// ─────────────────────────────────────────────────────────────────────────────
// identities
// ─────────────────────────────────────────────────────────────────────────────

func TestIdentityRepository_Save(t *testing.T) {
	tests := []struct {
		name    string
		execErr error
		wantErr error
	}{
		{name: "success"},
		{name: "duplicate username", execErr: pgError(pgerrcode.UniqueViolation), wantErr: ErrIdentityExists},
		{name: "connection lost", execErr: pgError(pgerrcode.ConnectionFailure), wantErr: ErrStorageUnavailable},
		{name: "unknown error", execErr: errors.New("boom"), wantErr: ErrStorageUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := NewIdentityRepository(db, logger.Nop())

			exp := mock.ExpectExec("INSERT INTO identities").
				WithArgs("alice", []byte("auth-salt"), testAuthHash, []byte("note-salt"), []byte("zk-salt"), testZKHash,
					sqlmock.AnyArg(), sqlmock.AnyArg(), true)
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, 1))
			}

			identity := testIdentity("alice")
			identity.AuthVerifier.Hash = testAuthHash
			identity.ZKVerifier.Hash = testZKHash

			err := repo.Save(context.Background(), identity)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestIdentityRepository_Get(t *testing.T) {
	t.Run("with certificate", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewIdentityRepository(db, logger.Nop())

		mock.ExpectQuery("SELECT .+ FROM identities WHERE username = \\$1").
			WithArgs("alice").
			WillReturnRows(identityRows(t, testAuthHash, certificateJSON(t, "alice")))

		got, err := repo.Get(context.Background(), "alice")
		require.NoError(t, err)
		assert.Equal(t, "alice", got.Username)
		assert.Equal(t, testAuthHash, got.AuthVerifier.Hash)
		assert.Equal(t, []byte("zk-salt"), got.ZKVerifier.Salt)
		require.NotNil(t, got.Certificate)
		assert.Equal(t, []byte{0xde, 0xad}, got.Certificate.Signature)
		assert.True(t, got.IsActive)
	})

	t.Run("without certificate", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewIdentityRepository(db, logger.Nop())

		mock.ExpectQuery("FROM identities").WillReturnRows(identityRows(t, testAuthHash, nil))

		got, err := repo.Get(context.Background(), "alice")
		require.NoError(t, err)
		assert.Nil(t, got.Certificate)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewIdentityRepository(db, logger.Nop())

		mock.ExpectQuery("FROM identities").WillReturnRows(sqlmock.NewRows(identityColumns))

		_, err := repo.Get(context.Background(), "alice")
		assert.ErrorIs(t, err, ErrIdentityNotFound)
	})

	t.Run("corrupted certificate", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewIdentityRepository(db, logger.Nop())

		mock.ExpectQuery("FROM identities").WillReturnRows(identityRows(t, testAuthHash, `{"cert_id":"x"}`))

		_, err := repo.Get(context.Background(), "alice")
		assert.ErrorIs(t, err, ErrRecordCorrupted)
	})

	t.Run("certificate of another user", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewIdentityRepository(db, logger.Nop())

		mock.ExpectQuery("FROM identities").WillReturnRows(identityRows(t, testAuthHash, certificateJSON(t, "mallory")))

		_, err := repo.Get(context.Background(), "alice")
		assert.ErrorIs(t, err, ErrRecordCorrupted)
	})

	t.Run("verifier is not hex", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewIdentityRepository(db, logger.Nop())

		mock.ExpectQuery("FROM identities").WillReturnRows(identityRows(t, "not-a-digest", nil))

		_, err := repo.Get(context.Background(), "alice")
		assert.ErrorIs(t, err, ErrRecordCorrupted)
	})

	t.Run("driver error", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewIdentityRepository(db, logger.Nop())

		mock.ExpectQuery("FROM identities").WillReturnError(sql.ErrConnDone)

		_, err := repo.Get(context.Background(), "alice")
		assert.ErrorIs(t, err, ErrStorageUnavailable)
		assert.ErrorIs(t, err, sql.ErrConnDone)
	})
}

func TestIdentityRepository_Exists(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewIdentityRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM identities WHERE username = $1")).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM identities")).
		WithArgs("bob").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	ok, err := repo.Exists(context.Background(), "alice")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Exists(context.Background(), "bob")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIdentityRepository_Update(t *testing.T) {
	identity := testIdentity("alice")
	identity.Certificate = &models.Certificate{
		CertID: "c1", Username: "alice", PublicKey: []byte("pem"), Signature: []byte{1}, Issuer: "SecurNote CA",
	}

	t.Run("updated", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewIdentityRepository(db, logger.Nop())

		mock.ExpectExec("UPDATE identities SET").WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Update(context.Background(), identity))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewIdentityRepository(db, logger.Nop())

		mock.ExpectExec("UPDATE identities SET").WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Update(context.Background(), identity), ErrIdentityNotFound)
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// revocations
// ─────────────────────────────────────────────────────────────────────────────

func TestRevocationLedger_Add(t *testing.T) {
	db, mock := newTestDB(t)
	ledger := NewRevocationLedger(db, logger.Nop())
	entry := models.RevocationEntry{CertID: "c1", RevokedAt: time.Now(), Reason: "lost"}

	mock.ExpectExec("INSERT INTO revocations .+ ON CONFLICT").
		WithArgs("c1", sqlmock.AnyArg(), "lost").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO revocations").
		WithArgs("c1", sqlmock.AnyArg(), "lost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := ledger.Add(context.Background(), entry)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = ledger.Add(context.Background(), entry)
	require.NoError(t, err)
	assert.False(t, ok, "duplicate cert id is not added twice")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRevocationLedger_ContainsAndList(t *testing.T) {
	db, mock := newTestDB(t)
	ledger := NewRevocationLedger(db, logger.Nop())
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM revocations WHERE cert_id = $1")).
		WithArgs("c1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT cert_id, revoked_at, reason FROM revocations ORDER BY seq").
		WillReturnRows(sqlmock.NewRows([]string{"cert_id", "revoked_at", "reason"}).
			AddRow("c1", now, "lost").
			AddRow("c0", now.Add(time.Minute), ""))

	ok, err := ledger.Contains(context.Background(), "c1")
	require.NoError(t, err)
	assert.True(t, ok)

	list, err := ledger.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "c1", list[0].CertID)
	assert.Equal(t, "c0", list[1].CertID)
}

func TestRevocationLedger_ContainsFailure(t *testing.T) {
	db, mock := newTestDB(t)
	ledger := NewRevocationLedger(db, logger.Nop())

	mock.ExpectQuery("FROM revocations").WillReturnError(pgError(pgerrcode.CannotConnectNow))

	_, err := ledger.Contains(context.Background(), "c1")
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}

// ─────────────────────────────────────────────────────────────────────────────
// challenges
// ─────────────────────────────────────────────────────────────────────────────

func TestChallengeStore_FindByNonce(t *testing.T) {
	db, mock := newTestDB(t)
	s := NewChallengeStore(db, logger.Nop())
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT .+ FROM challenges WHERE .+ LIMIT 1").
		WithArgs("n1", "alice").
		WillReturnRows(sqlmock.NewRows(challengeColumns).AddRow("c1", "alice", "n1", now, now.Add(5*time.Minute), false))
	mock.ExpectQuery("FROM challenges").
		WithArgs("n2", "alice").
		WillReturnRows(sqlmock.NewRows(challengeColumns))

	got, err := s.FindByNonce(context.Background(), "alice", "n1")
	require.NoError(t, err)
	assert.Equal(t, "c1", got.ChallengeID)
	assert.Equal(t, now.Add(5*time.Minute), got.ExpiresAt)
	assert.False(t, got.Used)

	_, err = s.FindByNonce(context.Background(), "alice", "n2")
	assert.ErrorIs(t, err, ErrChallengeNotFound)
}

func TestChallengeStore_MarkUsed(t *testing.T) {
	db, mock := newTestDB(t)
	s := NewChallengeStore(db, logger.Nop())

	mock.ExpectExec(`UPDATE challenges SET used = \$1 WHERE \(?challenge_id = \$2 AND used = \$3`).
		WithArgs(true, "c1", false).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE challenges").
		WithArgs(true, "c1", false).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := s.MarkUsed(context.Background(), "c1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.MarkUsed(context.Background(), "c1")
	require.NoError(t, err)
	assert.False(t, ok, "second consumer loses")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChallengeStore_SaveAndSweep(t *testing.T) {
	db, mock := newTestDB(t)
	s := NewChallengeStore(db, logger.Nop())
	now := time.Now()

	mock.ExpectExec("INSERT INTO challenges").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM challenges WHERE created_at < \\$1").
		WithArgs(now.Add(-5 * time.Minute).UTC()).
		WillReturnResult(sqlmock.NewResult(0, 3))

	require.NoError(t, s.Save(context.Background(), models.Challenge{ChallengeID: "c1", Username: "alice", ChallengeData: "n1", CreatedAt: now, ExpiresAt: now}))

	deleted, err := s.DeleteOlderThan(context.Background(), now.Add(-5*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 3, deleted)
}

// ─────────────────────────────────────────────────────────────────────────────
// notes
// ─────────────────────────────────────────────────────────────────────────────

func TestNoteRepository(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewNoteRepository(db, logger.Nop())
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	nonce := make([]byte, 12)

	mock.ExpectExec("INSERT INTO notes").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT .+ FROM notes WHERE username = \\$1 ORDER BY created_at DESC, note_id DESC").
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows(noteColumns).
			AddRow("n2", "alice", []byte("t2"), nonce, []byte("c2"), nonce, now.Add(time.Hour)).
			AddRow("n1", "alice", []byte("t1"), nonce, []byte("c1"), nonce, now))
	mock.ExpectQuery("FROM notes").
		WithArgs("n9", "alice").
		WillReturnRows(sqlmock.NewRows(noteColumns))
	mock.ExpectExec("DELETE FROM notes").
		WithArgs("n1", "alice").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Save(context.Background(), models.Note{NoteID: "n1", Username: "alice", TitleNonce: nonce, ContentNonce: nonce, CreatedAt: now}))

	list, err := repo.ListByUser(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "n2", list[0].NoteID)
	assert.Equal(t, []byte("t1"), list[1].TitleCiphertext)

	_, err = repo.Get(context.Background(), "alice", "n9")
	assert.ErrorIs(t, err, ErrNoteNotFound)

	ok, err := repo.Delete(context.Background(), "alice", "n1")
	require.NoError(t, err)
	assert.True(t, ok)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteRepository_CorruptedRow(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewNoteRepository(db, logger.Nop())

	mock.ExpectQuery("FROM notes").
		WillReturnRows(sqlmock.NewRows(noteColumns).AddRow("n1", "alice", []byte("t"), []byte{}, []byte("c"), []byte{}, time.Now()))

	_, err := repo.Get(context.Background(), "alice", "n1")
	assert.ErrorIs(t, err, ErrRecordCorrupted)
}

// ─────────────────────────────────────────────────────────────────────────────
// activity
// ─────────────────────────────────────────────────────────────────────────────

func TestActivityRepository(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewActivityRepository(db, logger.Nop())
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	cols := activityColumns

	mock.ExpectExec("INSERT INTO activity").
		WithArgs(now, "alice", "login", "", "127.0.0.1", true).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery("SELECT .+ FROM activity ORDER BY id DESC LIMIT 2").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(2, now, "bob", "register", "", "", true).
			AddRow(1, now, "alice", "login", "", "127.0.0.1", true))
	mock.ExpectQuery("SELECT .+ FROM activity WHERE username = \\$1 ORDER BY id DESC").
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows(cols).AddRow(1, now, "alice", "login", "", "127.0.0.1", true))

	require.NoError(t, repo.Log(context.Background(), models.ActivityRecord{
		Timestamp: now, Username: "alice", Action: models.ActionLogin, RemoteAddr: "127.0.0.1", Success: true,
	}))

	recent, err := repo.Recent(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, models.ActionRegister, recent[0].Action)

	byUser, err := repo.ByUser(context.Background(), "alice", 0)
	require.NoError(t, err)
	require.Len(t, byUser, 1)
	assert.Equal(t, "127.0.0.1", byUser[0].RemoteAddr)

	assert.NoError(t, mock.ExpectationsWereMet())
}

// ─────────────────────────────────────────────────────────────────────────────
// dialects
// ─────────────────────────────────────────────────────────────────────────────

func TestStatementBuilder_Placeholders(t *testing.T) {
	pg := newDB(nil, config.DriverPostgres, sq.Dollar, NewPostgresErrorClassifier(), logger.Nop())
	lite := newDB(nil, config.DriverSQLite, sq.Question, NewSQLiteErrorClassifier(), logger.Nop())

	pgQuery, _, err := pg.builder.Select("1").From(challengesTable).Where(sq.Eq{"challenge_id": "c"}).ToSql()
	require.NoError(t, err)
	assert.Contains(t, pgQuery, "$1")

	liteQuery, _, err := lite.builder.Select("1").From(challengesTable).Where(sq.Eq{"challenge_id": "c"}).ToSql()
	require.NoError(t, err)
	assert.Contains(t, liteQuery, "?")
	assert.False(t, strings.Contains(liteQuery, "$"))
}

func TestSQLiteFilePath(t *testing.T) {
	assert.Equal(t, "data/securnote.db", sqliteFilePath("file:data/securnote.db?_busy_timeout=5000"))
	assert.Equal(t, "securnote.db", sqliteFilePath("securnote.db"))
	assert.Empty(t, sqliteFilePath(":memory:"))
	assert.Empty(t, sqliteFilePath("file::memory:?cache=shared"))
}

func TestNewStorages_MemoryWhenNoDSN(t *testing.T) {
	s, err := NewStorages(context.Background(), config.Storage{}, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, s.Identities)
	assert.NotNil(t, s.Revocations)
	assert.NotNil(t, s.Challenges)
	assert.NotNil(t, s.Notes)
	assert.NotNil(t, s.Activity)
	assert.NoError(t, s.Close())
}
