package service

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/workout-api/internal/domain"
	"github.com/phrazzld/workout-api/internal/store"
	"github.com/stretchr/testify/require"
)

// newMockDB returns an sqlx handle backed by sqlmock so tests can count
// commits and rollbacks.
func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return sqlx.NewDb(db, "sqlmock"), mock
}

// mockAthleteStore implements store.AthleteStore with function fields.
type mockAthleteStore struct {
	CreateFn  func(ctx context.Context, athlete *domain.Athlete) error
	GetByIDFn func(ctx context.Context, pkID int64) (*domain.Athlete, error)
	ListFn    func(ctx context.Context, filter domain.AthleteFilter) ([]*domain.Athlete, error)
	UpdateFn  func(ctx context.Context, athlete *domain.Athlete) error
	DeleteFn  func(ctx context.Context, pkID int64) error

	updated []*domain.Athlete
	txs     int
}

func (m *mockAthleteStore) Create(ctx context.Context, athlete *domain.Athlete) error {
	return m.CreateFn(ctx, athlete)
}

func (m *mockAthleteStore) GetByID(ctx context.Context, pkID int64) (*domain.Athlete, error) {
	return m.GetByIDFn(ctx, pkID)
}

func (m *mockAthleteStore) List(ctx context.Context, filter domain.AthleteFilter) ([]*domain.Athlete, error) {
	return m.ListFn(ctx, filter)
}

func (m *mockAthleteStore) Update(ctx context.Context, athlete *domain.Athlete) error {
	m.updated = append(m.updated, athlete)
	if m.UpdateFn == nil {
		return nil
	}
	return m.UpdateFn(ctx, athlete)
}

func (m *mockAthleteStore) Delete(ctx context.Context, pkID int64) error {
	return m.DeleteFn(ctx, pkID)
}

func (m *mockAthleteStore) WithTx(*sqlx.Tx) store.AthleteStore {
	m.txs++
	return m
}

// mockCategoryStore implements store.CategoryStore with function fields.
type mockCategoryStore struct {
	CreateFn  func(ctx context.Context, category *domain.Category) error
	GetByIDFn func(ctx context.Context, pkID int64) (*domain.Category, error)
	ListFn    func(ctx context.Context) ([]*domain.Category, error)
}

func (m *mockCategoryStore) Create(ctx context.Context, category *domain.Category) error {
	return m.CreateFn(ctx, category)
}

func (m *mockCategoryStore) GetByID(ctx context.Context, pkID int64) (*domain.Category, error) {
	return m.GetByIDFn(ctx, pkID)
}

func (m *mockCategoryStore) List(ctx context.Context) ([]*domain.Category, error) {
	return m.ListFn(ctx)
}

func (m *mockCategoryStore) WithTx(*sqlx.Tx) store.CategoryStore { return m }

// mockTrainingCenterStore implements store.TrainingCenterStore with function fields.
type mockTrainingCenterStore struct {
	CreateFn  func(ctx context.Context, tc *domain.TrainingCenter) error
	GetByIDFn func(ctx context.Context, pkID int64) (*domain.TrainingCenter, error)
	ListFn    func(ctx context.Context) ([]*domain.TrainingCenter, error)
}

func (m *mockTrainingCenterStore) Create(ctx context.Context, tc *domain.TrainingCenter) error {
	return m.CreateFn(ctx, tc)
}

func (m *mockTrainingCenterStore) GetByID(ctx context.Context, pkID int64) (*domain.TrainingCenter, error) {
	return m.GetByIDFn(ctx, pkID)
}

func (m *mockTrainingCenterStore) List(ctx context.Context) ([]*domain.TrainingCenter, error) {
	return m.ListFn(ctx)
}

func (m *mockTrainingCenterStore) WithTx(*sqlx.Tx) store.TrainingCenterStore { return m }
