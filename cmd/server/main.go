// Package main implements the entry point for the workout API server, the
// registry of athletes, categories and training centers of a crossfit
// competition.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/phrazzld/workout-api/internal/platform/database"
)

func main() {
	schemaOnly := flag.Bool("schema-only", false, "Apply the database schema, print its status and exit")
	flag.Parse()

	if err := run(context.Background(), *schemaOnly, os.Stdout); err != nil {
		log.Fatalf("workout-api: %v", err)
	}
}

// run loads configuration, connects to the database, brings the schema up to
// date and serves HTTP until a shutdown signal arrives. With schemaOnly it
// writes the schema status to out and returns instead of serving.
func run(ctx context.Context, schemaOnly bool, out io.Writer) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	db, err := setupAppDatabase(ctx, cfg, logger)
	if err != nil {
		return err
	}

	if err := database.ApplySchema(ctx, db, cfg.Database.Driver, logger); err != nil {
		_ = db.Close()
		return err
	}

	if schemaOnly {
		defer func() { _ = db.Close() }()
		return printSchemaStatus(ctx, db, cfg.Database.Driver, out)
	}

	app, err := newApplication(cfg, logger, db)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}
