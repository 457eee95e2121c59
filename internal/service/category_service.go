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

// CategoryService provides category operations.
type CategoryService interface {
	// CreateCategory registers a category.
	// Returns store.ErrCategoryNameExists when the name is taken.
	CreateCategory(ctx context.Context, name string) (*domain.Category, error)

	// ListCategories returns every category.
	ListCategories(ctx context.Context) ([]*domain.Category, error)

	// GetCategory returns a single category.
	// Returns store.ErrCategoryNotFound when it does not exist.
	GetCategory(ctx context.Context, pkID int64) (*domain.Category, error)
}

type categoryServiceImpl struct {
	db         *sqlx.DB
	categories store.CategoryStore
	logger     *slog.Logger
}

// NewCategoryService creates a CategoryService.
func NewCategoryService(
	db *sqlx.DB,
	categories store.CategoryStore,
	logger *slog.Logger,
) (CategoryService, error) {
	if db == nil || categories == nil {
		return nil, fmt.Errorf("category service: %w", ErrNilDependency)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &categoryServiceImpl{
		db:         db,
		categories: categories,
		logger:     logger.With(slog.String("component", "category_service")),
	}, nil
}

// CreateCategory implements CategoryService.
func (s *categoryServiceImpl) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	category, err := domain.NewCategory(name)
	if err != nil {
		log.Debug("invalid category", slog.String("error", err.Error()))
		return nil, err
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		return s.categories.WithTx(tx).Create(ctx, category)
	})
	if err != nil {
		return nil, NewServiceError("category", "create", "failed to save category", err)
	}

	log.Info("category registered", slog.Int64("pk_id", category.PkID))
	return category, nil
}

// ListCategories implements CategoryService.
func (s *categoryServiceImpl) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, NewServiceError("category", "list", "failed to list categories", err)
	}
	return categories, nil
}

// GetCategory implements CategoryService.
func (s *categoryServiceImpl) GetCategory(ctx context.Context, pkID int64) (*domain.Category, error) {
	category, err := s.categories.GetByID(ctx, pkID)
	if err != nil {
		return nil, NewServiceError("category", "get", "failed to get category", err)
	}
	return category, nil
}
