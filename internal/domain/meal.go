package domain

import (
	"time"

	"github.com/google/uuid"
)

// Meal is a single tracked meal entry owned by an anonymous session.
// ID, Owner and Date are assigned at creation and never change.
type Meal struct {
	ID          uuid.UUID
	Name        string
	Description *string
	InsideDiet  bool
	Date        time.Time
	Owner       SessionID
}

// MealFields is the mutable subset of a Meal. Updates always replace
// all of them at once.
type MealFields struct {
	Name        string
	Description *string
	InsideDiet  bool
}

// Fields returns the mutable part of the meal.
func (m Meal) Fields() MealFields {
	return MealFields{
		Name:        m.Name,
		Description: m.Description,
		InsideDiet:  m.InsideDiet,
	}
}
