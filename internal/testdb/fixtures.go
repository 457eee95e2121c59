package testdb

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/phrazzld/workout-api/internal/domain"
	"github.com/phrazzld/workout-api/internal/platform/sqlstore"
	"github.com/phrazzld/workout-api/internal/store"
	"github.com/stretchr/testify/require"
)

var cpfSeq atomic.Int64

// UniqueCPF returns an 11 digit cpf not yet handed out in this process.
func UniqueCPF() string {
	return fmt.Sprintf("%011d", 10000000000+cpfSeq.Add(1))
}

// CreateCategory inserts a category and returns it with PkID set.
func CreateCategory(t *testing.T, db store.DBTX, name string) *domain.Category {
	t.Helper()

	category, err := domain.NewCategory(name)
	require.NoError(t, err)
	require.NoError(t, sqlstore.NewCategoryStore(db, DiscardLogger()).Create(context.Background(), category))
	return category
}

// CreateTrainingCenter inserts a training center and returns it with PkID set.
func CreateTrainingCenter(t *testing.T, db store.DBTX, name string) *domain.TrainingCenter {
	t.Helper()

	address := "Rua das Flores, 100"
	owner := "Marcos"
	tc, err := domain.NewTrainingCenter(name, &address, &owner)
	require.NoError(t, err)
	require.NoError(t, sqlstore.NewTrainingCenterStore(db, DiscardLogger()).Create(context.Background(), tc))
	return tc
}

// CreateAthlete inserts an athlete referencing category and tc and returns
// it as read back from the store.
func CreateAthlete(
	t *testing.T,
	db store.DBTX,
	name string,
	category *domain.Category,
	tc *domain.TrainingCenter,
) *domain.Athlete {
	t.Helper()

	athlete, err := domain.NewAthlete(name, UniqueCPF(), 25, 75.5, 1.70, "M", tc.PkID, category.PkID)
	require.NoError(t, err)

	athletes := sqlstore.NewAthleteStore(db, DiscardLogger())
	require.NoError(t, athletes.Create(context.Background(), athlete))

	stored, err := athletes.GetByID(context.Background(), athlete.PkID)
	require.NoError(t, err)
	return stored
}
