// Package migrations embeds the SQL schema of the snapshot table and applies
// it with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
)

//go:embed *.sql
var embedMigrations embed.FS

// Migrate applies all pending migrations to db. dialect is a goose dialect
// name ("pgx", "postgres" or "sqlite3").
func Migrate(db *sql.DB, dialect string, log *logger.Logger) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(&gooseLogger{log: log})

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// gooseLogger routes goose output through the application logger.
type gooseLogger struct {
	log *logger.Logger
}

func (l *gooseLogger) Fatalf(format string, v ...any) {
	l.log.Error().Str("component", "goose").Msgf(format, v...)
}

func (l *gooseLogger) Printf(format string, v ...any) {
	l.log.Info().Str("component", "goose").Msgf(format, v...)
}
