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

// CreateTrainingCenterParams holds the fields of a new training center.
type CreateTrainingCenterParams struct {
	Name    string
	Address *string
	Owner   *string
}

// TrainingCenterService provides training center operations.
type TrainingCenterService interface {
	// CreateTrainingCenter registers a training center.
	// Returns store.ErrTrainingCenterNameExists when the name is taken.
	CreateTrainingCenter(ctx context.Context, params CreateTrainingCenterParams) (*domain.TrainingCenter, error)

	// ListTrainingCenters returns every training center.
	ListTrainingCenters(ctx context.Context) ([]*domain.TrainingCenter, error)

	// GetTrainingCenter returns a single training center.
	// Returns store.ErrTrainingCenterNotFound when it does not exist.
	GetTrainingCenter(ctx context.Context, pkID int64) (*domain.TrainingCenter, error)
}

type trainingCenterServiceImpl struct {
	db      *sqlx.DB
	centers store.TrainingCenterStore
	logger  *slog.Logger
}

// NewTrainingCenterService creates a TrainingCenterService.
func NewTrainingCenterService(
	db *sqlx.DB,
	centers store.TrainingCenterStore,
	logger *slog.Logger,
) (TrainingCenterService, error) {
	if db == nil || centers == nil {
		return nil, fmt.Errorf("training center service: %w", ErrNilDependency)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &trainingCenterServiceImpl{
		db:      db,
		centers: centers,
		logger:  logger.With(slog.String("component", "training_center_service")),
	}, nil
}

// CreateTrainingCenter implements TrainingCenterService.
func (s *trainingCenterServiceImpl) CreateTrainingCenter(
	ctx context.Context,
	params CreateTrainingCenterParams,
) (*domain.TrainingCenter, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	tc, err := domain.NewTrainingCenter(params.Name, params.Address, params.Owner)
	if err != nil {
		log.Debug("invalid training center", slog.String("error", err.Error()))
		return nil, err
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		return s.centers.WithTx(tx).Create(ctx, tc)
	})
	if err != nil {
		return nil, NewServiceError("training center", "create", "failed to save training center", err)
	}

	log.Info("training center registered", slog.Int64("pk_id", tc.PkID))
	return tc, nil
}

// ListTrainingCenters implements TrainingCenterService.
func (s *trainingCenterServiceImpl) ListTrainingCenters(ctx context.Context) ([]*domain.TrainingCenter, error) {
	centers, err := s.centers.List(ctx)
	if err != nil {
		return nil, NewServiceError("training center", "list", "failed to list training centers", err)
	}
	return centers, nil
}

// GetTrainingCenter implements TrainingCenterService.
func (s *trainingCenterServiceImpl) GetTrainingCenter(ctx context.Context, pkID int64) (*domain.TrainingCenter, error) {
	tc, err := s.centers.GetByID(ctx, pkID)
	if err != nil {
		return nil, NewServiceError("training center", "get", "failed to get training center", err)
	}
	return tc, nil
}
