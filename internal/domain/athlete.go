package domain

import (
	"unicode/utf8"

	"github.com/google/uuid"
)

// Field limits for Athlete.
const (
	AthleteNameMaxLength = 50
	AthleteCPFLength     = 11
	AthleteSexLength     = 1
)

// Athlete is a competitor. CPF (the Brazilian tax id) is unique across athletes.
// Category and TrainingCenter are resolved by the store on every read so an
// athlete is always returned together with the rows it references.
type Athlete struct {
	ID               uuid.UUID
	PkID             int64
	Name             string
	CPF              string
	Age              int
	Weight           float64
	Height           float64
	Sex              string
	TrainingCenterID int64
	CategoryID       int64

	Category       Category
	TrainingCenter TrainingCenter
}

// NewAthlete creates an Athlete with a fresh surface identifier.
func NewAthlete(
	name, cpf string,
	age int,
	weight, height float64,
	sex string,
	trainingCenterID, categoryID int64,
) (*Athlete, error) {
	a := &Athlete{
		ID:               uuid.New(),
		Name:             name,
		CPF:              cpf,
		Age:              age,
		Weight:           weight,
		Height:           height,
		Sex:              sex,
		TrainingCenterID: trainingCenterID,
		CategoryID:       categoryID,
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// Validate checks the field rules of an Athlete. References are only checked
// for presence; their existence is enforced by the store.
func (a *Athlete) Validate() error {
	var errs ValidationErrors
	if a.ID == uuid.Nil {
		errs = append(errs, NewValidationError("id", "cannot be empty", nil))
	}
	errs = append(errs, validateAthleteName(a.Name)...)
	if utf8.RuneCountInString(a.CPF) != AthleteCPFLength {
		errs = append(errs, NewValidationError("cpf", "must be exactly 11 characters", nil))
	}
	if a.Weight <= 0 {
		errs = append(errs, NewValidationError("peso", "must be greater than 0", nil))
	}
	if a.Height <= 0 {
		errs = append(errs, NewValidationError("altura", "must be greater than 0", nil))
	}
	if utf8.RuneCountInString(a.Sex) != AthleteSexLength {
		errs = append(errs, NewValidationError("sexo", "must be exactly 1 character", nil))
	}
	if a.TrainingCenterID <= 0 {
		errs = append(errs, NewValidationError("centro_de_treinamento_id", "is required", ErrInvalidID))
	}
	if a.CategoryID <= 0 {
		errs = append(errs, NewValidationError("categoria_id", "is required", ErrInvalidID))
	}
	return errs.OrNil()
}

func validateAthleteName(name string) ValidationErrors {
	if name == "" {
		return ValidationErrors{NewValidationError("nome", "is required", nil)}
	}
	if utf8.RuneCountInString(name) > AthleteNameMaxLength {
		return ValidationErrors{NewValidationError("nome", "must be at most 50 characters", nil)}
	}
	return nil
}

// AthleteFilter narrows an athlete listing. Empty fields do not filter.
// Name matches as a case-insensitive substring, CPF matches exactly; both
// combine with AND.
type AthleteFilter struct {
	Name string
	CPF  string
}

// AthleteUpdate is a partial update. Only present fields are applied.
type AthleteUpdate struct {
	Name Optional[string]
	Age  Optional[int]
}

// IsEmpty reports whether no field is present.
func (u AthleteUpdate) IsEmpty() bool {
	return !u.Name.IsPresent() && !u.Age.IsPresent()
}

// Validate checks the present fields. A present field may not be null.
func (u AthleteUpdate) Validate() error {
	var errs ValidationErrors
	if u.Name.IsNull() {
		errs = append(errs, NewValidationError("nome", "cannot be null", nil))
	} else if name, ok := u.Name.Get(); ok {
		errs = append(errs, validateAthleteName(name)...)
	}
	if u.Age.IsNull() {
		errs = append(errs, NewValidationError("idade", "cannot be null", nil))
	}
	return errs.OrNil()
}

// Apply copies the present fields onto a.
func (u AthleteUpdate) Apply(a *Athlete) {
	if name, ok := u.Name.Get(); ok && !u.Name.IsNull() {
		a.Name = name
	}
	if age, ok := u.Age.Get(); ok && !u.Age.IsNull() {
		a.Age = age
	}
}
