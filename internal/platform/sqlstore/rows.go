package sqlstore

import (
	"github.com/google/uuid"
	"github.com/phrazzld/workout-api/internal/domain"
)

// categoryRow is the column layout of the categorias table.
type categoryRow struct {
	PkID int64     `db:"pk_id"`
	ID   uuid.UUID `db:"id"`
	Name string    `db:"nome"`
}

func (r categoryRow) toDomain() *domain.Category {
	return &domain.Category{ID: r.ID, PkID: r.PkID, Name: r.Name}
}

// trainingCenterRow is the column layout of the centros_de_treinamento table.
type trainingCenterRow struct {
	PkID    int64     `db:"pk_id"`
	ID      uuid.UUID `db:"id"`
	Name    string    `db:"nome"`
	Address *string   `db:"endereco"`
	Owner   *string   `db:"proprietario"`
}

func (r trainingCenterRow) toDomain() *domain.TrainingCenter {
	return &domain.TrainingCenter{
		ID:      r.ID,
		PkID:    r.PkID,
		Name:    r.Name,
		Address: r.Address,
		Owner:   r.Owner,
	}
}

// athleteRow is an atletas row joined with its category and training center.
// The nested structs are filled from columns aliased "categoria.*" and
// "centro_de_treinamento.*".
type athleteRow struct {
	PkID             int64     `db:"pk_id"`
	ID               uuid.UUID `db:"id"`
	Name             string    `db:"nome"`
	CPF              string    `db:"cpf"`
	Age              int       `db:"idade"`
	Weight           float64   `db:"peso"`
	Height           float64   `db:"altura"`
	Sex              string    `db:"sexo"`
	TrainingCenterID int64     `db:"centro_de_treinamento_id"`
	CategoryID       int64     `db:"categoria_id"`

	Category       categoryRow       `db:"categoria"`
	TrainingCenter trainingCenterRow `db:"centro_de_treinamento"`
}

func (r athleteRow) toDomain() *domain.Athlete {
	return &domain.Athlete{
		ID:               r.ID,
		PkID:             r.PkID,
		Name:             r.Name,
		CPF:              r.CPF,
		Age:              r.Age,
		Weight:           r.Weight,
		Height:           r.Height,
		Sex:              r.Sex,
		TrainingCenterID: r.TrainingCenterID,
		CategoryID:       r.CategoryID,
		Category:         *r.Category.toDomain(),
		TrainingCenter:   *r.TrainingCenter.toDomain(),
	}
}
