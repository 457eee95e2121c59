package domain

import (
	"unicode/utf8"

	"github.com/google/uuid"
)

// Field length limits for TrainingCenter.
const (
	TrainingCenterNameMaxLength    = 20
	TrainingCenterAddressMaxLength = 60
	TrainingCenterOwnerMaxLength   = 30
)

// TrainingCenter is a gym athletes train at. Name is unique across centers;
// Address and Owner are optional.
type TrainingCenter struct {
	ID      uuid.UUID `json:"id"`
	PkID    int64     `json:"pk_id"`
	Name    string    `json:"nome"`
	Address *string   `json:"endereco"`
	Owner   *string   `json:"proprietario"`
}

// NewTrainingCenter creates a TrainingCenter with a fresh surface identifier.
func NewTrainingCenter(name string, address, owner *string) (*TrainingCenter, error) {
	tc := &TrainingCenter{
		ID:      uuid.New(),
		Name:    name,
		Address: address,
		Owner:   owner,
	}
	if err := tc.Validate(); err != nil {
		return nil, err
	}
	return tc, nil
}

// Validate checks the field rules of a TrainingCenter.
func (tc *TrainingCenter) Validate() error {
	var errs ValidationErrors
	if tc.ID == uuid.Nil {
		errs = append(errs, NewValidationError("id", "cannot be empty", nil))
	}
	if tc.Name == "" {
		errs = append(errs, NewValidationError("nome", "is required", nil))
	} else if utf8.RuneCountInString(tc.Name) > TrainingCenterNameMaxLength {
		errs = append(errs, NewValidationError("nome", "must be at most 20 characters", nil))
	}
	if tc.Address != nil && utf8.RuneCountInString(*tc.Address) > TrainingCenterAddressMaxLength {
		errs = append(errs, NewValidationError("endereco", "must be at most 60 characters", nil))
	}
	if tc.Owner != nil && utf8.RuneCountInString(*tc.Owner) > TrainingCenterOwnerMaxLength {
		errs = append(errs, NewValidationError("proprietario", "must be at most 30 characters", nil))
	}
	return errs.OrNil()
}
