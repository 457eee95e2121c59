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

// CategoryStore implements store.CategoryStore on an sqlx connection or
// transaction.
type CategoryStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewCategoryStore creates a CategoryStore. If logger is nil, slog.Default is used.
func NewCategoryStore(db store.DBTX, logger *slog.Logger) *CategoryStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CategoryStore{
		db:     db,
		logger: logger.With(slog.String("component", "category_store")),
	}
}

var _ store.CategoryStore = (*CategoryStore)(nil)

// Create implements store.CategoryStore.Create.
func (s *CategoryStore) Create(ctx context.Context, category *domain.Category) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := category.Validate(); err != nil {
		log.Warn("category validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	query := s.db.Rebind(`INSERT INTO categorias (id, nome) VALUES (?, ?) RETURNING pk_id`)

	var pkID int64
	if err := s.db.QueryRowxContext(ctx, query, category.ID, category.Name).Scan(&pkID); err != nil {
		if IsUniqueViolation(err) {
			log.Warn("duplicate category name",
				slog.String("nome", category.Name))
			return MapUniqueViolation(err, store.ErrCategoryNameExists)
		}
		log.Error("failed to create category",
			slog.String("error", err.Error()),
			slog.String("category_id", category.ID.String()))
		return store.NewStoreError("category", "create", "failed to insert category", MapError(err))
	}

	category.PkID = pkID
	log.Info("category created",
		slog.Int64("pk_id", pkID),
		slog.String("category_id", category.ID.String()))
	return nil
}

// GetByID implements store.CategoryStore.GetByID.
func (s *CategoryStore) GetByID(ctx context.Context, pkID int64) (*domain.Category, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := s.db.Rebind(`SELECT pk_id, id, nome FROM categorias WHERE pk_id = ?`)

	var row categoryRow
	if err := s.db.GetContext(ctx, &row, query, pkID); err != nil {
		mapped := MapError(err)
		if errors.Is(mapped, store.ErrNotFound) {
			log.Debug("category not found", slog.Int64("pk_id", pkID))
			return nil, store.ErrCategoryNotFound
		}
		log.Error("failed to get category",
			slog.String("error", err.Error()),
			slog.Int64("pk_id", pkID))
		return nil, store.NewStoreError("category", "get", "failed to query category", mapped)
	}

	return row.toDomain(), nil
}

// List implements store.CategoryStore.List.
func (s *CategoryStore) List(ctx context.Context) ([]*domain.Category, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var rows []categoryRow
	if err := s.db.SelectContext(ctx, &rows, `SELECT pk_id, id, nome FROM categorias ORDER BY pk_id`); err != nil {
		log.Error("failed to list categories", slog.String("error", err.Error()))
		return nil, store.NewStoreError("category", "list", "failed to query categories", MapError(err))
	}

	categories := make([]*domain.Category, 0, len(rows))
	for _, r := range rows {
		categories = append(categories, r.toDomain())
	}

	log.Debug("listed categories", slog.Int("count", len(categories)))
	return categories, nil
}

// WithTx implements store.CategoryStore.WithTx.
func (s *CategoryStore) WithTx(tx *sqlx.Tx) store.CategoryStore {
	return &CategoryStore{
		db:     tx,
		logger: s.logger,
	}
}

