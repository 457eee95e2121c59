package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
)

//go:embed schema/postgres/*.sql schema/sqlite/*.sql
var schemaFS embed.FS

// schemaDialects maps a configured driver to its goose dialect and the
// directory holding its schema files.
var schemaDialects = map[string]struct {
	dialect goose.Dialect
	dir     string
}{
	DriverPostgres: {dialect: goose.DialectPostgres, dir: "schema/postgres"},
	DriverSQLite:   {dialect: goose.DialectSQLite3, dir: "schema/sqlite"},
}

// ApplySchema creates the registry tables if they do not exist yet.
// Schema files already recorded in the goose version table are skipped, so
// calling ApplySchema on every startup is safe.
func ApplySchema(ctx context.Context, db *sqlx.DB, driver string, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	log := logger.With(slog.String("component", "schema"))

	provider, err := newSchemaProvider(db, driver)
	if err != nil {
		return err
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	for _, r := range results {
		log.Info("applied schema file",
			slog.String("file", r.Source.Path),
			slog.Int64("version", r.Source.Version),
			slog.Duration("duration", r.Duration))
	}
	if len(results) == 0 {
		log.Debug("schema already up to date")
	}

	return nil
}

// SchemaStatus reports, for every embedded schema file, whether it has been
// applied to db.
func SchemaStatus(ctx context.Context, db *sqlx.DB, driver string) ([]*goose.MigrationStatus, error) {
	provider, err := newSchemaProvider(db, driver)
	if err != nil {
		return nil, err
	}

	statuses, err := provider.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema status: %w", err)
	}
	return statuses, nil
}

func newSchemaProvider(db *sqlx.DB, driver string) (*goose.Provider, error) {
	d, ok := schemaDialects[driver]
	if !ok {
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	fsys, err := fs.Sub(schemaFS, d.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded schema: %w", err)
	}

	provider, err := goose.NewProvider(d.dialect, db.DB, fsys)
	if err != nil {
		return nil, fmt.Errorf("failed to create schema provider: %w", err)
	}
	return provider, nil
}
