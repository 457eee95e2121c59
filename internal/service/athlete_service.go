package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/workout-api/internal/domain"
	"github.com/phrazzld/workout-api/internal/platform/logger"
	"github.com/phrazzld/workout-api/internal/store"
)

// CreateAthleteParams holds the fields of a new athlete.
type CreateAthleteParams struct {
	Name             string
	CPF              string
	Age              int
	Weight           float64
	Height           float64
	Sex              string
	TrainingCenterID int64
	CategoryID       int64
}

// AthleteService provides athlete operations. Every athlete returned carries
// its Category and TrainingCenter.
type AthleteService interface {
	// CreateAthlete registers an athlete.
	// Returns store.ErrCPFExists when the cpf is already registered and
	// store.ErrInvalidEntity when a referenced row is missing.
	CreateAthlete(ctx context.Context, params CreateAthleteParams) (*domain.Athlete, error)

	// ListAthletes returns the athletes matching filter. An empty result is
	// not an error.
	ListAthletes(ctx context.Context, filter domain.AthleteFilter) ([]*domain.Athlete, error)

	// GetAthlete returns a single athlete.
	// Returns store.ErrAthleteNotFound when it does not exist.
	GetAthlete(ctx context.Context, pkID int64) (*domain.Athlete, error)

	// UpdateAthlete applies the present fields of update.
	// Returns store.ErrAthleteNotFound when the athlete does not exist.
	UpdateAthlete(ctx context.Context, pkID int64, update domain.AthleteUpdate) (*domain.Athlete, error)

	// DeleteAthlete removes an athlete.
	// Returns store.ErrAthleteNotFound when the athlete does not exist.
	DeleteAthlete(ctx context.Context, pkID int64) error
}

type athleteServiceImpl struct {
	db       *sqlx.DB
	athletes store.AthleteStore
	logger   *slog.Logger
}

// NewAthleteService creates an AthleteService.
func NewAthleteService(
	db *sqlx.DB,
	athletes store.AthleteStore,
	logger *slog.Logger,
) (AthleteService, error) {
	if db == nil || athletes == nil {
		return nil, fmt.Errorf("athlete service: %w", ErrNilDependency)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &athleteServiceImpl{
		db:       db,
		athletes: athletes,
		logger:   logger.With(slog.String("component", "athlete_service")),
	}, nil
}

// CreateAthlete implements AthleteService. The athlete is read back inside
// the same transaction so the returned value carries its relations.
func (s *athleteServiceImpl) CreateAthlete(
	ctx context.Context,
	params CreateAthleteParams,
) (*domain.Athlete, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	athlete, err := domain.NewAthlete(
		params.Name,
		params.CPF,
		params.Age,
		params.Weight,
		params.Height,
		params.Sex,
		params.TrainingCenterID,
		params.CategoryID,
	)
	if err != nil {
		log.Debug("invalid athlete", slog.String("error", err.Error()))
		return nil, err
	}

	var created *domain.Athlete
	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		txAthletes := s.athletes.WithTx(tx)

		if err := txAthletes.Create(ctx, athlete); err != nil {
			return err
		}

		stored, err := txAthletes.GetByID(ctx, athlete.PkID)
		if err != nil {
			return err
		}
		created = stored
		return nil
	})
	if err != nil {
		log.Warn("failed to register athlete",
			slog.String("error", err.Error()),
			slog.String("athlete_id", athlete.ID.String()))
		return nil, NewServiceError("athlete", "create", "failed to save athlete", err)
	}

	log.Info("athlete registered",
		slog.Int64("pk_id", created.PkID),
		slog.String("athlete_id", created.ID.String()))
	return created, nil
}

// ListAthletes implements AthleteService.
func (s *athleteServiceImpl) ListAthletes(
	ctx context.Context,
	filter domain.AthleteFilter,
) ([]*domain.Athlete, error) {
	athletes, err := s.athletes.List(ctx, filter)
	if err != nil {
		return nil, NewServiceError("athlete", "list", "failed to list athletes", err)
	}
	return athletes, nil
}

// GetAthlete implements AthleteService.
func (s *athleteServiceImpl) GetAthlete(ctx context.Context, pkID int64) (*domain.Athlete, error) {
	athlete, err := s.athletes.GetByID(ctx, pkID)
	if err != nil {
		return nil, NewServiceError("athlete", "get", "failed to get athlete", err)
	}
	return athlete, nil
}

// UpdateAthlete implements AthleteService.
func (s *athleteServiceImpl) UpdateAthlete(
	ctx context.Context,
	pkID int64,
	update domain.AthleteUpdate,
) (*domain.Athlete, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := update.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Athlete
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		txAthletes := s.athletes.WithTx(tx)

		athlete, err := txAthletes.GetByID(ctx, pkID)
		if err != nil {
			return err
		}

		if update.IsEmpty() {
			updated = athlete
			return nil
		}

		update.Apply(athlete)
		if err := txAthletes.Update(ctx, athlete); err != nil {
			return err
		}

		updated, err = txAthletes.GetByID(ctx, pkID)
		return err
	})
	if err != nil {
		return nil, NewServiceError("athlete", "update", "failed to update athlete", err)
	}

	log.Info("athlete updated",
		slog.Int64("pk_id", pkID),
		slog.Bool("nome", update.Name.IsPresent()),
		slog.Bool("idade", update.Age.IsPresent()))
	return updated, nil
}

// DeleteAthlete implements AthleteService.
func (s *athleteServiceImpl) DeleteAthlete(ctx context.Context, pkID int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		return s.athletes.WithTx(tx).Delete(ctx, pkID)
	})
	if err != nil {
		return NewServiceError("athlete", "delete", "failed to delete athlete", err)
	}

	log.Info("athlete deleted", slog.Int64("pk_id", pkID))
	return nil
}
