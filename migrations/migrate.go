// Package migrations embeds the schema of the SecurNote database for every
// supported dialect and applies it with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Dialects understood by [Migrate]. The names match the database/sql driver
// names and the goose dialects.
const (
	DialectPostgres = "pgx"
	DialectSQLite   = "sqlite3"
)

var dialectDirs = map[string]string{
	DialectPostgres: "postgres",
	DialectSQLite:   "sqlite",
}

// Migrate brings db up to the latest schema version for dialect.
func Migrate(db *sql.DB, dialect string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	dir, ok := dialectDirs[dialect]
	if !ok {
		return fmt.Errorf("migration error: unsupported dialect %q", dialect)
	}

	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
