package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log"
	"log/slog"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// runMigrations brings the schema up to the latest embedded migration
func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetLogger(slogPrintf{})
	goose.SetBaseFS(migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}

// slogPrintf routes goose output to slog at debug level
type slogPrintf struct{}

func (slogPrintf) Printf(format string, v ...interface{}) {
	slog.Debug(fmt.Sprintf(format, v...), "component", "goose")
}

func (slogPrintf) Fatalf(format string, v ...interface{}) {
	log.Fatalf(format, v...)
}
