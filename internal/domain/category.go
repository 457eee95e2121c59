package domain

import (
	"unicode/utf8"

	"github.com/google/uuid"
)

// CategoryNameMaxLength bounds Category.Name.
const CategoryNameMaxLength = 10

// Category is a competition division athletes are registered under.
// Name is unique across categories.
type Category struct {
	ID   uuid.UUID `json:"id"`
	PkID int64     `json:"pk_id"`
	Name string    `json:"nome"`
}

// NewCategory creates a Category with a fresh surface identifier.
// PkID stays zero until the store assigns it.
func NewCategory(name string) (*Category, error) {
	c := &Category{
		ID:   uuid.New(),
		Name: name,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the field rules of a Category.
func (c *Category) Validate() error {
	var errs ValidationErrors
	if c.ID == uuid.Nil {
		errs = append(errs, NewValidationError("id", "cannot be empty", nil))
	}
	if c.Name == "" {
		errs = append(errs, NewValidationError("nome", "is required", nil))
	} else if utf8.RuneCountInString(c.Name) > CategoryNameMaxLength {
		errs = append(errs, NewValidationError("nome", "must be at most 10 characters", nil))
	}
	return errs.OrNil()
}
