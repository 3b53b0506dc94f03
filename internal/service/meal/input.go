package meal

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/mealtrack-backend/internal/domain"
)

// MealInput holds the user-supplied fields of a meal, used for both create
// and full-replacement update.
type MealInput struct {
	Name        string
	Description *string
	InsideDiet  bool
}

// Validate checks all fields against limits and collects all errors.
func (i MealInput) Validate(limits Limits) error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if utf8.RuneCountInString(name) > limits.MaxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: maxCharsMessage(limits.MaxNameLength)})
	}
	// Postgres text cannot hold U+0000.
	if strings.ContainsRune(i.Name, 0) {
		errs = append(errs, domain.FieldError{Field: "name", Message: nulMessage})
	}

	if i.Description != nil {
		if utf8.RuneCountInString(*i.Description) > limits.MaxDescriptionLength {
			errs = append(errs, domain.FieldError{Field: "description", Message: maxCharsMessage(limits.MaxDescriptionLength)})
		}
		if strings.ContainsRune(*i.Description, 0) {
			errs = append(errs, domain.FieldError{Field: "description", Message: nulMessage})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// fields returns the normalized mutable subset stored for the meal.
func (i MealInput) fields() domain.MealFields {
	return domain.MealFields{
		Name:        strings.TrimSpace(i.Name),
		Description: i.Description,
		InsideDiet:  i.InsideDiet,
	}
}

const nulMessage = "must not contain NUL"

func maxCharsMessage(n int) string {
	return fmt.Sprintf("max %d characters", n)
}
