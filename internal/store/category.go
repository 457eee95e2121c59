package store

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/workout-api/internal/domain"
)

// CategoryStore defines the interface for category data persistence.
type CategoryStore interface {
	// Create inserts a new category and sets its PkID.
	// Returns ErrCategoryNameExists if the name is taken.
	Create(ctx context.Context, category *domain.Category) error

	// GetByID retrieves a category by internal id.
	// Returns ErrCategoryNotFound if the category does not exist.
	GetByID(ctx context.Context, pkID int64) (*domain.Category, error)

	// List returns every category ordered by internal id.
	List(ctx context.Context) ([]*domain.Category, error)

	// WithTx returns a new CategoryStore instance that uses the provided transaction.
	WithTx(tx *sqlx.Tx) CategoryStore
}
