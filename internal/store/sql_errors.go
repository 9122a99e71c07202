package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// ErrorClassification tells whether a failed database operation may be
// retried.
type ErrorClassification int

const (
	// NonRetryable is the default for unknown errors, constraint
	// violations, syntax errors and data exceptions.
	NonRetryable ErrorClassification = iota

	// Retryable marks transient failures such as lost connections,
	// serialization failures and locked databases.
	Retryable
)

// PostgresErrorClassifier implements [ErrorClassificator] for the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier returns a ready [PostgresErrorClassifier].
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if code := postgresErrorCode(err); code != "" {
		return ClassifyPgErrorCode(code)
	}
	return NonRetryable
}

// IsUniqueViolation implements [ErrorClassificator].
func (c *PostgresErrorClassifier) IsUniqueViolation(err error) bool {
	return postgresErrorCode(err) == pgerrcode.UniqueViolation
}

// ClassifyPgErrorCode maps a PostgreSQL SQLSTATE to an [ErrorClassification].
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
//
// Retryable classes: 08 (connection exceptions), 40 (transaction rollback,
// serialization failure, deadlock) and 57P03 (cannot connect now). Anything
// else is [NonRetryable].
func ClassifyPgErrorCode(code string) ErrorClassification {
	switch code {
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.TransactionRollback,
		pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected,
		pgerrcode.CannotConnectNow:
		return Retryable
	}
	return NonRetryable
}

func postgresErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// SQLiteErrorClassifier implements [ErrorClassificator] for go-sqlite3.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier returns a ready [SQLiteErrorClassifier].
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator]. Busy and locked databases are
// retryable.
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) && (liteErr.Code == sqlite3.ErrBusy || liteErr.Code == sqlite3.ErrLocked) {
		return Retryable
	}
	return NonRetryable
}

// IsUniqueViolation implements [ErrorClassificator].
func (c *SQLiteErrorClassifier) IsUniqueViolation(err error) bool {
	var liteErr sqlite3.Error
	if !errors.As(err, &liteErr) {
		return false
	}
	return liteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
		liteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
}
