package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/workout-api/internal/config"
	"github.com/phrazzld/workout-api/internal/platform/database"
)

// setupAppDatabase opens the connection pool described by cfg.Database.
func setupAppDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*sqlx.DB, error) {
	db, err := database.Open(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	logger.Info("Database connection established",
		"driver", cfg.Database.Driver,
		"max_open_conns", db.Stats().MaxOpenConnections)
	return db, nil
}

// printSchemaStatus writes one line per embedded schema file: its state,
// when it was applied and its name.
func printSchemaStatus(ctx context.Context, db *sqlx.DB, driver string, out io.Writer) error {
	statuses, err := database.SchemaStatus(ctx, db, driver)
	if err != nil {
		return err
	}

	for _, s := range statuses {
		applied := "-"
		if !s.AppliedAt.IsZero() {
			applied = s.AppliedAt.UTC().Format("2006-01-02 15:04:05")
		}
		if _, err := fmt.Fprintf(out, "%-8s %-20s %s\n", s.State, applied, s.Source.Path); err != nil {
			return fmt.Errorf("failed to write schema status: %w", err)
		}
	}
	return nil
}
