package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/workout-api/internal/api"
	"github.com/phrazzld/workout-api/internal/api/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const healthPingTimeout = 2 * time.Second

// setupRouter creates the application router with all routes and middleware.
// Every route answers with and without a trailing slash.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.StripSlashes)
	r.Use(middleware.NewTraceMiddleware(app.logger))
	r.Use(app.metrics.Middleware)

	athleteHandler := api.NewAthleteHandler(app.athleteService, app.logger)
	categoryHandler := api.NewCategoryHandler(app.categoryService, app.logger)
	trainingCenterHandler := api.NewTrainingCenterHandler(app.trainingCenterService, app.logger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/atletas", func(r chi.Router) {
			r.Post("/", athleteHandler.CreateAthlete)
			r.Get("/", athleteHandler.ListAthletes)
			r.Get("/{id}", athleteHandler.GetAthlete)
			r.Patch("/{id}", athleteHandler.UpdateAthlete)
			r.Delete("/{id}", athleteHandler.DeleteAthlete)
		})

		r.Route("/categorias", func(r chi.Router) {
			r.Post("/", categoryHandler.CreateCategory)
			r.Get("/", categoryHandler.ListCategories)
			r.Get("/{id}", categoryHandler.GetCategory)
		})

		r.Route("/centros_de_treinamento", func(r chi.Router) {
			r.Post("/", trainingCenterHandler.CreateTrainingCenter)
			r.Get("/", trainingCenterHandler.ListTrainingCenters)
			r.Get("/{id}", trainingCenterHandler.GetTrainingCenter)
		})
	})

	r.Get("/health", app.handleHealth)
	r.Handle("/metrics", promhttp.HandlerFor(app.registry, promhttp.HandlerOpts{}))

	return r
}

// handleHealth reports whether the database answers a ping.
func (app *application) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
	defer cancel()

	status, body := http.StatusOK, "OK"
	if err := app.db.PingContext(ctx); err != nil {
		app.logger.Error("Health check failed", "error", err)
		status, body = http.StatusServiceUnavailable, "Service Unavailable"
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(body)); err != nil {
		app.logger.Error("Failed to write health check response", "error", err)
	}
}
