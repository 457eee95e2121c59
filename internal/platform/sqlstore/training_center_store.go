package sqlstore

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/workout-api/internal/domain"
	"github.com/phrazzld/workout-api/internal/platform/logger"
	"github.com/phrazzld/workout-api/internal/store"
)

const trainingCenterColumns = `pk_id, id, nome, endereco, proprietario`

// TrainingCenterStore implements store.TrainingCenterStore on an sqlx
// connection or transaction.
type TrainingCenterStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewTrainingCenterStore creates a TrainingCenterStore. If logger is nil,
// slog.Default is used.
func NewTrainingCenterStore(db store.DBTX, logger *slog.Logger) *TrainingCenterStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &TrainingCenterStore{
		db:     db,
		logger: logger.With(slog.String("component", "training_center_store")),
	}
}

var _ store.TrainingCenterStore = (*TrainingCenterStore)(nil)

// Create implements store.TrainingCenterStore.Create.
func (s *TrainingCenterStore) Create(ctx context.Context, tc *domain.TrainingCenter) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := tc.Validate(); err != nil {
		log.Warn("training center validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	query := s.db.Rebind(`
		INSERT INTO centros_de_treinamento (id, nome, endereco, proprietario)
		VALUES (?, ?, ?, ?)
		RETURNING pk_id
	`)

	var pkID int64
	err := s.db.QueryRowxContext(ctx, query, tc.ID, tc.Name, tc.Address, tc.Owner).Scan(&pkID)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("duplicate training center name",
				slog.String("nome", tc.Name))
			return MapUniqueViolation(err, store.ErrTrainingCenterNameExists)
		}
		log.Error("failed to create training center",
			slog.String("error", err.Error()),
			slog.String("training_center_id", tc.ID.String()))
		return store.NewStoreError("training center", "create",
			"failed to insert training center", MapError(err))
	}

	tc.PkID = pkID
	log.Info("training center created",
		slog.Int64("pk_id", pkID),
		slog.String("training_center_id", tc.ID.String()))
	return nil
}

// GetByID implements store.TrainingCenterStore.GetByID.
func (s *TrainingCenterStore) GetByID(ctx context.Context, pkID int64) (*domain.TrainingCenter, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := s.db.Rebind(`SELECT ` + trainingCenterColumns + ` FROM centros_de_treinamento WHERE pk_id = ?`)

	var row trainingCenterRow
	if err := s.db.GetContext(ctx, &row, query, pkID); err != nil {
		mapped := MapError(err)
		if errors.Is(mapped, store.ErrNotFound) {
			log.Debug("training center not found", slog.Int64("pk_id", pkID))
			return nil, store.ErrTrainingCenterNotFound
		}
		log.Error("failed to get training center",
			slog.String("error", err.Error()),
			slog.Int64("pk_id", pkID))
		return nil, store.NewStoreError("training center", "get",
			"failed to query training center", mapped)
	}

	return row.toDomain(), nil
}

// List implements store.TrainingCenterStore.List.
func (s *TrainingCenterStore) List(ctx context.Context) ([]*domain.TrainingCenter, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + trainingCenterColumns + ` FROM centros_de_treinamento ORDER BY pk_id`

	var rows []trainingCenterRow
	if err := s.db.SelectContext(ctx, &rows, query); err != nil {
		log.Error("failed to list training centers", slog.String("error", err.Error()))
		return nil, store.NewStoreError("training center", "list",
			"failed to query training centers", MapError(err))
	}

	centers := make([]*domain.TrainingCenter, 0, len(rows))
	for _, r := range rows {
		centers = append(centers, r.toDomain())
	}

	log.Debug("listed training centers", slog.Int("count", len(centers)))
	return centers, nil
}

// WithTx implements store.TrainingCenterStore.WithTx.
func (s *TrainingCenterStore) WithTx(tx *sqlx.Tx) store.TrainingCenterStore {
	return &TrainingCenterStore{
		db:     tx,
		logger: s.logger,
	}
}
