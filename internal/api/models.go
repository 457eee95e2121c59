package api

import (
	"github.com/google/uuid"
	"github.com/phrazzld/workout-api/internal/domain"
	"github.com/phrazzld/workout-api/internal/service"
)

// CreateCategoryRequest is the payload of POST /categorias.
type CreateCategoryRequest struct {
	Name string `json:"nome" validate:"required,max=10"`
}

// CategoryResponse is the representation of a category.
type CategoryResponse struct {
	ID   uuid.UUID `json:"id"`
	PkID int64     `json:"pk_id"`
	Name string    `json:"nome"`
}

// CreateTrainingCenterRequest is the payload of POST /centros_de_treinamento.
type CreateTrainingCenterRequest struct {
	Name    string  `json:"nome"         validate:"required,max=20"`
	Address *string `json:"endereco"     validate:"omitempty,max=60"`
	Owner   *string `json:"proprietario" validate:"omitempty,max=30"`
}

func (r CreateTrainingCenterRequest) toParams() service.CreateTrainingCenterParams {
	return service.CreateTrainingCenterParams{Name: r.Name, Address: r.Address, Owner: r.Owner}
}

// TrainingCenterResponse is the representation of a training center.
type TrainingCenterResponse struct {
	ID      uuid.UUID `json:"id"`
	PkID    int64     `json:"pk_id"`
	Name    string    `json:"nome"`
	Address *string   `json:"endereco"`
	Owner   *string   `json:"proprietario"`
}

// CreateAthleteRequest is the payload of POST /atletas. Numeric fields are
// pointers so a missing field is told apart from a zero value.
type CreateAthleteRequest struct {
	Name             string   `json:"nome"                     validate:"required,max=50"`
	CPF              string   `json:"cpf"                      validate:"required,len=11"`
	Age              *int     `json:"idade"                    validate:"required"`
	Weight           *float64 `json:"peso"                     validate:"required,gt=0"`
	Height           *float64 `json:"altura"                   validate:"required,gt=0"`
	Sex              string   `json:"sexo"                     validate:"required,len=1"`
	TrainingCenterID *int64   `json:"centro_de_treinamento_id" validate:"required,gt=0"`
	CategoryID       *int64   `json:"categoria_id"             validate:"required,gt=0"`
}

// toParams assumes the request passed validation.
func (r CreateAthleteRequest) toParams() service.CreateAthleteParams {
	return service.CreateAthleteParams{
		Name:             r.Name,
		CPF:              r.CPF,
		Age:              *r.Age,
		Weight:           *r.Weight,
		Height:           *r.Height,
		Sex:              r.Sex,
		TrainingCenterID: *r.TrainingCenterID,
		CategoryID:       *r.CategoryID,
	}
}

// UpdateAthleteRequest is the payload of PATCH /atletas/{id}. Absent fields
// are left untouched; a field sent as null is rejected.
type UpdateAthleteRequest struct {
	Name domain.Optional[string] `json:"nome"`
	Age  domain.Optional[int]    `json:"idade"`
}

// Validate checks the present fields.
func (r UpdateAthleteRequest) Validate() error {
	return r.toUpdate().Validate()
}

func (r UpdateAthleteRequest) toUpdate() domain.AthleteUpdate {
	return domain.AthleteUpdate{Name: r.Name, Age: r.Age}
}

// AthleteCategory is the category embedded in an athlete.
type AthleteCategory struct {
	Name string `json:"nome"`
}

// AthleteTrainingCenter is the training center embedded in an athlete.
type AthleteTrainingCenter struct {
	Name    string  `json:"nome"`
	Address *string `json:"endereco"`
	Owner   *string `json:"proprietario"`
}

// AthleteResponse is the representation of an athlete with its category and
// training center nested.
type AthleteResponse struct {
	ID             uuid.UUID             `json:"id"`
	PkID           int64                 `json:"pk_id"`
	Name           string                `json:"nome"`
	CPF            string                `json:"cpf"`
	Age            int                   `json:"idade"`
	Weight         float64               `json:"peso"`
	Height         float64               `json:"altura"`
	Sex            string                `json:"sexo"`
	TrainingCenter AthleteTrainingCenter `json:"centro_de_treinamento"`
	Category       AthleteCategory       `json:"categoria"`
}

func categoryToResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, PkID: c.PkID, Name: c.Name}
}

func trainingCenterToResponse(tc *domain.TrainingCenter) TrainingCenterResponse {
	return TrainingCenterResponse{
		ID:      tc.ID,
		PkID:    tc.PkID,
		Name:    tc.Name,
		Address: tc.Address,
		Owner:   tc.Owner,
	}
}

func athleteToResponse(a *domain.Athlete) AthleteResponse {
	return AthleteResponse{
		ID:     a.ID,
		PkID:   a.PkID,
		Name:   a.Name,
		CPF:    a.CPF,
		Age:    a.Age,
		Weight: a.Weight,
		Height: a.Height,
		Sex:    a.Sex,
		TrainingCenter: AthleteTrainingCenter{
			Name:    a.TrainingCenter.Name,
			Address: a.TrainingCenter.Address,
			Owner:   a.TrainingCenter.Owner,
		},
		Category: AthleteCategory{Name: a.Category.Name},
	}
}

func athletesToResponse(athletes []*domain.Athlete) []AthleteResponse {
	out := make([]AthleteResponse, 0, len(athletes))
	for _, a := range athletes {
		out = append(out, athleteToResponse(a))
	}
	return out
}
