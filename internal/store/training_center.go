package store

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/workout-api/internal/domain"
)

// TrainingCenterStore defines the interface for training center data persistence.
type TrainingCenterStore interface {
	// Create inserts a new training center and sets its PkID.
	// Returns ErrTrainingCenterNameExists if the name is taken.
	Create(ctx context.Context, center *domain.TrainingCenter) error

	// GetByID retrieves a training center by internal id.
	// Returns ErrTrainingCenterNotFound if the center does not exist.
	GetByID(ctx context.Context, pkID int64) (*domain.TrainingCenter, error)

	// List returns every training center ordered by internal id.
	List(ctx context.Context) ([]*domain.TrainingCenter, error)

	// WithTx returns a new TrainingCenterStore instance that uses the provided transaction.
	WithTx(tx *sqlx.Tx) TrainingCenterStore
}
