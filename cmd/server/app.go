package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/workout-api/internal/api/middleware"
	"github.com/phrazzld/workout-api/internal/config"
	"github.com/phrazzld/workout-api/internal/platform/sqlstore"
	"github.com/phrazzld/workout-api/internal/service"
	"github.com/phrazzld/workout-api/internal/store"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sqlx.DB

	registry *prometheus.Registry
	metrics  *middleware.Metrics

	athleteStore        store.AthleteStore
	categoryStore       store.CategoryStore
	trainingCenterStore store.TrainingCenterStore

	athleteService        service.AthleteService
	categoryService       service.CategoryService
	trainingCenterService service.TrainingCenterService
}

// newApplication wires stores, services and metrics around an established
// database connection. The application owns db from here on and closes it
// in cleanup.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sqlx.DB) (*application, error) {
	app := &application{
		config:   cfg,
		logger:   logger,
		db:       db,
		registry: prometheus.NewRegistry(),
	}

	if err := app.registry.Register(collectors.NewGoCollector()); err != nil {
		return nil, fmt.Errorf("failed to register go collector: %w", err)
	}
	if err := app.registry.Register(collectors.NewDBStatsCollector(db.DB, cfg.Database.Driver)); err != nil {
		return nil, fmt.Errorf("failed to register database collector: %w", err)
	}

	var err error
	app.metrics, err = middleware.NewMetrics(app.registry)
	if err != nil {
		return nil, fmt.Errorf("failed to register HTTP metrics: %w", err)
	}

	app.athleteStore = sqlstore.NewAthleteStore(db, logger)
	app.categoryStore = sqlstore.NewCategoryStore(db, logger)
	app.trainingCenterStore = sqlstore.NewTrainingCenterStore(db, logger)

	app.athleteService, err = service.NewAthleteService(db, app.athleteStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create athlete service: %w", err)
	}

	app.categoryService, err = service.NewCategoryService(db, app.categoryStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create category service: %w", err)
	}

	app.trainingCenterService, err = service.NewTrainingCenterService(db, app.trainingCenterStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create training center service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run serves HTTP until ctx is canceled or a shutdown signal arrives.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
