package store

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/workout-api/internal/domain"
)

// AthleteStore defines the interface for athlete data persistence.
// Every read returns athletes with Category and TrainingCenter populated.
type AthleteStore interface {
	// Create inserts a new athlete and sets its PkID.
	// Returns ErrCPFExists if the cpf is already registered.
	// Returns ErrInvalidEntity if the referenced category or center is missing.
	Create(ctx context.Context, athlete *domain.Athlete) error

	// GetByID retrieves an athlete by internal id.
	// Returns ErrAthleteNotFound if the athlete does not exist.
	GetByID(ctx context.Context, pkID int64) (*domain.Athlete, error)

	// List returns athletes matching filter ordered by internal id.
	// An empty result is not an error.
	List(ctx context.Context, filter domain.AthleteFilter) ([]*domain.Athlete, error)

	// Update persists the mutable fields (name, age) of an existing athlete.
	// Returns ErrAthleteNotFound if the athlete does not exist.
	Update(ctx context.Context, athlete *domain.Athlete) error

	// Delete removes an athlete by internal id.
	// Returns ErrAthleteNotFound if the athlete does not exist.
	Delete(ctx context.Context, pkID int64) error

	// WithTx returns a new AthleteStore instance that uses the provided transaction.
	WithTx(tx *sqlx.Tx) AthleteStore
}
