package api

import (
	"context"

	"github.com/phrazzld/workout-api/internal/domain"
	"github.com/phrazzld/workout-api/internal/service"
)

// MockAthleteService is a mock implementation of service.AthleteService.
type MockAthleteService struct {
	CreateAthleteFn func(ctx context.Context, params service.CreateAthleteParams) (*domain.Athlete, error)
	ListAthletesFn  func(ctx context.Context, filter domain.AthleteFilter) ([]*domain.Athlete, error)
	GetAthleteFn    func(ctx context.Context, pkID int64) (*domain.Athlete, error)
	UpdateAthleteFn func(ctx context.Context, pkID int64, update domain.AthleteUpdate) (*domain.Athlete, error)
	DeleteAthleteFn func(ctx context.Context, pkID int64) error
}

func (m *MockAthleteService) CreateAthlete(
	ctx context.Context,
	params service.CreateAthleteParams,
) (*domain.Athlete, error) {
	if m.CreateAthleteFn != nil {
		return m.CreateAthleteFn(ctx, params)
	}
	return nil, nil
}

func (m *MockAthleteService) ListAthletes(
	ctx context.Context,
	filter domain.AthleteFilter,
) ([]*domain.Athlete, error) {
	if m.ListAthletesFn != nil {
		return m.ListAthletesFn(ctx, filter)
	}
	return nil, nil
}

func (m *MockAthleteService) GetAthlete(ctx context.Context, pkID int64) (*domain.Athlete, error) {
	if m.GetAthleteFn != nil {
		return m.GetAthleteFn(ctx, pkID)
	}
	return nil, nil
}

func (m *MockAthleteService) UpdateAthlete(
	ctx context.Context,
	pkID int64,
	update domain.AthleteUpdate,
) (*domain.Athlete, error) {
	if m.UpdateAthleteFn != nil {
		return m.UpdateAthleteFn(ctx, pkID, update)
	}
	return nil, nil
}

func (m *MockAthleteService) DeleteAthlete(ctx context.Context, pkID int64) error {
	if m.DeleteAthleteFn != nil {
		return m.DeleteAthleteFn(ctx, pkID)
	}
	return nil
}

// MockCategoryService is a mock implementation of service.CategoryService.
type MockCategoryService struct {
	CreateCategoryFn func(ctx context.Context, name string) (*domain.Category, error)
	ListCategoriesFn func(ctx context.Context) ([]*domain.Category, error)
	GetCategoryFn    func(ctx context.Context, pkID int64) (*domain.Category, error)
}

func (m *MockCategoryService) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	if m.CreateCategoryFn != nil {
		return m.CreateCategoryFn(ctx, name)
	}
	return nil, nil
}

func (m *MockCategoryService) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	if m.ListCategoriesFn != nil {
		return m.ListCategoriesFn(ctx)
	}
	return nil, nil
}

func (m *MockCategoryService) GetCategory(ctx context.Context, pkID int64) (*domain.Category, error) {
	if m.GetCategoryFn != nil {
		return m.GetCategoryFn(ctx, pkID)
	}
	return nil, nil
}

// MockTrainingCenterService is a mock implementation of service.TrainingCenterService.
type MockTrainingCenterService struct {
	CreateTrainingCenterFn func(
		ctx context.Context,
		params service.CreateTrainingCenterParams,
	) (*domain.TrainingCenter, error)
	ListTrainingCentersFn func(ctx context.Context) ([]*domain.TrainingCenter, error)
	GetTrainingCenterFn   func(ctx context.Context, pkID int64) (*domain.TrainingCenter, error)
}

func (m *MockTrainingCenterService) CreateTrainingCenter(
	ctx context.Context,
	params service.CreateTrainingCenterParams,
) (*domain.TrainingCenter, error) {
	if m.CreateTrainingCenterFn != nil {
		return m.CreateTrainingCenterFn(ctx, params)
	}
	return nil, nil
}

func (m *MockTrainingCenterService) ListTrainingCenters(ctx context.Context) ([]*domain.TrainingCenter, error) {
	if m.ListTrainingCentersFn != nil {
		return m.ListTrainingCentersFn(ctx)
	}
	return nil, nil
}

func (m *MockTrainingCenterService) GetTrainingCenter(
	ctx context.Context,
	pkID int64,
) (*domain.TrainingCenter, error) {
	if m.GetTrainingCenterFn != nil {
		return m.GetTrainingCenterFn(ctx, pkID)
	}
	return nil, nil
}

var (
	_ service.AthleteService        = (*MockAthleteService)(nil)
	_ service.CategoryService       = (*MockCategoryService)(nil)
	_ service.TrainingCenterService = (*MockTrainingCenterService)(nil)
)
