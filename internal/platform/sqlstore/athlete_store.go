package sqlstore

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/workout-api/internal/domain"
	"github.com/phrazzld/workout-api/internal/platform/database"
	"github.com/phrazzld/workout-api/internal/platform/logger"
	"github.com/phrazzld/workout-api/internal/store"
)

// athleteSelect reads athletes together with the rows they reference.
const athleteSelect = `
	SELECT
		a.pk_id, a.id, a.nome, a.cpf, a.idade, a.peso, a.altura, a.sexo,
		a.centro_de_treinamento_id, a.categoria_id,
		c.pk_id AS "categoria.pk_id",
		c.id AS "categoria.id",
		c.nome AS "categoria.nome",
		ct.pk_id AS "centro_de_treinamento.pk_id",
		ct.id AS "centro_de_treinamento.id",
		ct.nome AS "centro_de_treinamento.nome",
		ct.endereco AS "centro_de_treinamento.endereco",
		ct.proprietario AS "centro_de_treinamento.proprietario"
	FROM atletas a
	JOIN categorias c ON c.pk_id = a.categoria_id
	JOIN centros_de_treinamento ct ON ct.pk_id = a.centro_de_treinamento_id
`

// likeEscaper escapes LIKE wildcards so a name filter matches literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// AthleteStore implements store.AthleteStore on an sqlx connection or
// transaction.
type AthleteStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewAthleteStore creates an AthleteStore. If logger is nil, slog.Default is used.
func NewAthleteStore(db store.DBTX, logger *slog.Logger) *AthleteStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &AthleteStore{
		db:     db,
		logger: logger.With(slog.String("component", "athlete_store")),
	}
}

var _ store.AthleteStore = (*AthleteStore)(nil)

// Create implements store.AthleteStore.Create.
// A missing category or training center surfaces as store.ErrInvalidEntity.
func (s *AthleteStore) Create(ctx context.Context, athlete *domain.Athlete) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := athlete.Validate(); err != nil {
		log.Warn("athlete validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	query := s.db.Rebind(`
		INSERT INTO atletas (
			id, nome, cpf, idade, peso, altura, sexo,
			centro_de_treinamento_id, categoria_id
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING pk_id
	`)

	var pkID int64
	err := s.db.QueryRowxContext(
		ctx,
		query,
		athlete.ID,
		athlete.Name,
		athlete.CPF,
		athlete.Age,
		athlete.Weight,
		athlete.Height,
		athlete.Sex,
		athlete.TrainingCenterID,
		athlete.CategoryID,
	).Scan(&pkID)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("duplicate athlete cpf",
				slog.String("athlete_id", athlete.ID.String()))
			return MapUniqueViolation(err, store.ErrCPFExists)
		}
		if IsForeignKeyViolation(err) {
			log.Warn("athlete references a missing row",
				slog.Int64("categoria_id", athlete.CategoryID),
				slog.Int64("centro_de_treinamento_id", athlete.TrainingCenterID))
			return MapError(err)
		}
		log.Error("failed to create athlete",
			slog.String("error", err.Error()),
			slog.String("athlete_id", athlete.ID.String()))
		return store.NewStoreError("athlete", "create", "failed to insert athlete", MapError(err))
	}

	athlete.PkID = pkID
	log.Info("athlete created",
		slog.Int64("pk_id", pkID),
		slog.String("athlete_id", athlete.ID.String()))
	return nil
}

// GetByID implements store.AthleteStore.GetByID.
func (s *AthleteStore) GetByID(ctx context.Context, pkID int64) (*domain.Athlete, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := s.db.Rebind(athleteSelect + ` WHERE a.pk_id = ?`)

	var row athleteRow
	if err := s.db.GetContext(ctx, &row, query, pkID); err != nil {
		mapped := MapError(err)
		if errors.Is(mapped, store.ErrNotFound) {
			log.Debug("athlete not found", slog.Int64("pk_id", pkID))
			return nil, store.ErrAthleteNotFound
		}
		log.Error("failed to get athlete",
			slog.String("error", err.Error()),
			slog.Int64("pk_id", pkID))
		return nil, store.NewStoreError("athlete", "get", "failed to query athlete", mapped)
	}

	return row.toDomain(), nil
}

// lowerFunc names the SQL function used for case-insensitive name matching.
// Postgres LOWER is locale-aware; SQLite's builtin only folds ASCII.
func (s *AthleteStore) lowerFunc() string {
	if s.db.DriverName() == "sqlite" {
		return database.SQLiteLowerFunc
	}
	return "LOWER"
}

// List implements store.AthleteStore.List.
func (s *AthleteStore) List(ctx context.Context, filter domain.AthleteFilter) ([]*domain.Athlete, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var (
		conditions []string
		args       []any
	)
	if filter.Name != "" {
		lower := s.lowerFunc()
		conditions = append(conditions, lower+`(a.nome) LIKE `+lower+`(?) ESCAPE '\'`)
		args = append(args, "%"+likeEscaper.Replace(filter.Name)+"%")
	}
	if filter.CPF != "" {
		conditions = append(conditions, `a.cpf = ?`)
		args = append(args, filter.CPF)
	}

	query := athleteSelect
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, ` AND `)
	}
	query += ` ORDER BY a.pk_id`

	var rows []athleteRow
	if err := s.db.SelectContext(ctx, &rows, s.db.Rebind(query), args...); err != nil {
		log.Error("failed to list athletes", slog.String("error", err.Error()))
		return nil, store.NewStoreError("athlete", "list", "failed to query athletes", MapError(err))
	}

	athletes := make([]*domain.Athlete, 0, len(rows))
	for _, r := range rows {
		athletes = append(athletes, r.toDomain())
	}

	log.Debug("listed athletes",
		slog.Int("count", len(athletes)),
		slog.Bool("name_filter", filter.Name != ""),
		slog.Bool("cpf_filter", filter.CPF != ""))
	return athletes, nil
}

// Update implements store.AthleteStore.Update.
func (s *AthleteStore) Update(ctx context.Context, athlete *domain.Athlete) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := athlete.Validate(); err != nil {
		log.Warn("athlete validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("pk_id", athlete.PkID))
		return err
	}

	query := s.db.Rebind(`UPDATE atletas SET nome = ?, idade = ? WHERE pk_id = ?`)

	result, err := s.db.ExecContext(ctx, query, athlete.Name, athlete.Age, athlete.PkID)
	if err != nil {
		log.Error("failed to update athlete",
			slog.String("error", err.Error()),
			slog.Int64("pk_id", athlete.PkID))
		return store.NewStoreError("athlete", "update", "failed to update athlete", MapError(err))
	}

	if err := CheckRowsAffected(result, store.ErrAthleteNotFound); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Debug("athlete not found for update", slog.Int64("pk_id", athlete.PkID))
		}
		return err
	}

	log.Info("athlete updated", slog.Int64("pk_id", athlete.PkID))
	return nil
}

// Delete implements store.AthleteStore.Delete.
func (s *AthleteStore) Delete(ctx context.Context, pkID int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := s.db.Rebind(`DELETE FROM atletas WHERE pk_id = ?`)

	result, err := s.db.ExecContext(ctx, query, pkID)
	if err != nil {
		log.Error("failed to delete athlete",
			slog.String("error", err.Error()),
			slog.Int64("pk_id", pkID))
		return store.NewStoreError("athlete", "delete", "failed to delete athlete", MapError(err))
	}

	if err := CheckRowsAffected(result, store.ErrAthleteNotFound); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Debug("athlete not found for delete", slog.Int64("pk_id", pkID))
		}
		return err
	}

	log.Info("athlete deleted", slog.Int64("pk_id", pkID))
	return nil
}

// WithTx implements store.AthleteStore.WithTx.
func (s *AthleteStore) WithTx(tx *sqlx.Tx) store.AthleteStore {
	return &AthleteStore{
		db:     tx,
		logger: s.logger,
	}
}
