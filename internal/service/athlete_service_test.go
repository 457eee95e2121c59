package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/workout-api/internal/domain"
	"github.com/phrazzld/workout-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAthleteParams() CreateAthleteParams {
	return CreateAthleteParams{
		Name:             "Maria",
		CPF:              "12345678900",
		Age:              30,
		Weight:           62.5,
		Height:           1.65,
		Sex:              "F",
		TrainingCenterID: 1,
		CategoryID:       2,
	}
}

func storedAthlete(pkID int64) *domain.Athlete {
	return &domain.Athlete{
		ID:               uuid.New(),
		PkID:             pkID,
		Name:             "Maria",
		CPF:              "12345678900",
		Age:              30,
		Weight:           62.5,
		Height:           1.65,
		Sex:              "F",
		TrainingCenterID: 1,
		CategoryID:       2,
		Category:         domain.Category{PkID: 2, Name: "Scale"},
		TrainingCenter:   domain.TrainingCenter{PkID: 1, Name: "CT King"},
	}
}

func TestNewAthleteService_NilDependencies(t *testing.T) {
	db, _ := newMockDB(t)

	_, err := NewAthleteService(nil, &mockAthleteStore{}, nil)
	assert.ErrorIs(t, err, ErrNilDependency)

	_, err = NewAthleteService(db, nil, nil)
	assert.ErrorIs(t, err, ErrNilDependency)
}

func TestCreateAthlete_Success(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	athletes := &mockAthleteStore{
		CreateFn: func(ctx context.Context, a *domain.Athlete) error {
			a.PkID = 7
			return nil
		},
		GetByIDFn: func(ctx context.Context, pkID int64) (*domain.Athlete, error) {
			require.Equal(t, int64(7), pkID)
			return storedAthlete(pkID), nil
		},
	}

	svc, err := NewAthleteService(db, athletes, nil)
	require.NoError(t, err)

	got, err := svc.CreateAthlete(context.Background(), validAthleteParams())
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.PkID)
	assert.Equal(t, "Scale", got.Category.Name)
	assert.Equal(t, "CT King", got.TrainingCenter.Name)
	assert.Equal(t, 1, athletes.txs)
}

func TestCreateAthlete_DuplicateRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	athletes := &mockAthleteStore{
		CreateFn: func(ctx context.Context, a *domain.Athlete) error {
			return store.ErrCPFExists
		},
	}

	svc, err := NewAthleteService(db, athletes, nil)
	require.NoError(t, err)

	_, err = svc.CreateAthlete(context.Background(), validAthleteParams())
	assert.ErrorIs(t, err, store.ErrCPFExists)

	var svcErr *ServiceError
	assert.False(t, errors.As(err, &svcErr), "duplicate errors are not wrapped")
}

func TestCreateAthlete_StoreErrorWrapped(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	athletes := &mockAthleteStore{
		CreateFn: func(ctx context.Context, a *domain.Athlete) error {
			return store.ErrInvalidEntity
		},
	}

	svc, err := NewAthleteService(db, athletes, nil)
	require.NoError(t, err)

	_, err = svc.CreateAthlete(context.Background(), validAthleteParams())
	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "create", svcErr.Operation)
	assert.ErrorIs(t, err, store.ErrInvalidEntity)
}

func TestCreateAthlete_InvalidSkipsStore(t *testing.T) {
	db, _ := newMockDB(t)

	svc, err := NewAthleteService(db, &mockAthleteStore{}, nil)
	require.NoError(t, err)

	params := validAthleteParams()
	params.CPF = "123"
	params.Weight = 0

	_, err = svc.CreateAthlete(context.Background(), params)
	assert.ErrorIs(t, err, domain.ErrValidation)

	var verrs domain.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, []string{"cpf", "peso"}, verrs.Fields())
}

func TestListAthletes_PassesFilter(t *testing.T) {
	db, _ := newMockDB(t)

	filter := domain.AthleteFilter{Name: "mar", CPF: "12345678900"}
	athletes := &mockAthleteStore{
		ListFn: func(ctx context.Context, f domain.AthleteFilter) ([]*domain.Athlete, error) {
			assert.Equal(t, filter, f)
			return []*domain.Athlete{storedAthlete(1)}, nil
		},
	}

	svc, err := NewAthleteService(db, athletes, nil)
	require.NoError(t, err)

	got, err := svc.ListAthletes(context.Background(), filter)
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Zero(t, athletes.txs, "reads do not open a transaction")
}

func TestGetAthlete_NotFound(t *testing.T) {
	db, _ := newMockDB(t)

	athletes := &mockAthleteStore{
		GetByIDFn: func(ctx context.Context, pkID int64) (*domain.Athlete, error) {
			return nil, store.ErrAthleteNotFound
		},
	}

	svc, err := NewAthleteService(db, athletes, nil)
	require.NoError(t, err)

	_, err = svc.GetAthlete(context.Background(), 9)
	assert.ErrorIs(t, err, store.ErrAthleteNotFound)
}

func TestUpdateAthlete_AppliesPresentFieldsOnly(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	current := storedAthlete(3)
	athletes := &mockAthleteStore{
		GetByIDFn: func(ctx context.Context, pkID int64) (*domain.Athlete, error) {
			copied := *current
			return &copied, nil
		},
		UpdateFn: func(ctx context.Context, a *domain.Athlete) error {
			current = a
			return nil
		},
	}

	svc, err := NewAthleteService(db, athletes, nil)
	require.NoError(t, err)

	got, err := svc.UpdateAthlete(context.Background(), 3, domain.AthleteUpdate{Name: domain.Some("Joana")})
	require.NoError(t, err)

	assert.Equal(t, "Joana", got.Name)
	assert.Equal(t, 30, got.Age)
	assert.InDelta(t, 62.5, got.Weight, 0.0001)
	require.Len(t, athletes.updated, 1)
}

func TestUpdateAthlete_EmptyUpdateDoesNotWrite(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	athletes := &mockAthleteStore{
		GetByIDFn: func(ctx context.Context, pkID int64) (*domain.Athlete, error) {
			return storedAthlete(pkID), nil
		},
	}

	svc, err := NewAthleteService(db, athletes, nil)
	require.NoError(t, err)

	got, err := svc.UpdateAthlete(context.Background(), 3, domain.AthleteUpdate{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.PkID)
	assert.Empty(t, athletes.updated)
}

func TestUpdateAthlete_NotFoundRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	athletes := &mockAthleteStore{
		GetByIDFn: func(ctx context.Context, pkID int64) (*domain.Athlete, error) {
			return nil, store.ErrAthleteNotFound
		},
	}

	svc, err := NewAthleteService(db, athletes, nil)
	require.NoError(t, err)

	_, err = svc.UpdateAthlete(context.Background(), 404, domain.AthleteUpdate{Age: domain.Some(40)})
	assert.ErrorIs(t, err, store.ErrAthleteNotFound)
	assert.Empty(t, athletes.updated)
}

func TestUpdateAthlete_InvalidSkipsTransaction(t *testing.T) {
	db, _ := newMockDB(t)

	svc, err := NewAthleteService(db, &mockAthleteStore{}, nil)
	require.NoError(t, err)

	_, err = svc.UpdateAthlete(context.Background(), 1, domain.AthleteUpdate{Name: domain.Some("")})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDeleteAthlete(t *testing.T) {
	tests := []struct {
		name      string
		deleteErr error
		wantErr   error
	}{
		{name: "deleted"},
		{name: "not found", deleteErr: store.ErrAthleteNotFound, wantErr: store.ErrAthleteNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			mock.ExpectBegin()
			if tt.deleteErr == nil {
				mock.ExpectCommit()
			} else {
				mock.ExpectRollback()
			}

			athletes := &mockAthleteStore{
				DeleteFn: func(ctx context.Context, pkID int64) error {
					return tt.deleteErr
				},
			}

			svc, err := NewAthleteService(db, athletes, nil)
			require.NoError(t, err)

			err = svc.DeleteAthlete(context.Background(), 5)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
