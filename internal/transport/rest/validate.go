package rest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/mealtrack-backend/internal/domain"
	"github.com/heartmarshall/mealtrack-backend/internal/service/meal"
)

// maxBodyBytes bounds a meal request body.
const maxBodyBytes = 1 << 20

// canonicalUUIDLength is the length of the 8-4-4-4-12 textual form.
const canonicalUUIDLength = 36

var jsonNull = []byte("null")

// mealBody keeps raw values so a missing key, an explicit null and a
// wrongly typed value can be told apart.
type mealBody struct {
	Name        json.RawMessage `json:"name"`
	Description json.RawMessage `json:"description"`
	InsideDiet  json.RawMessage `json:"inside_diet"`
}

// decodeMealBody reads a create or update payload. All three keys are
// checked and every problem is reported at once. When requireDescription is
// set the description key must be present (null clears it); otherwise a
// missing description means none. Unknown keys are ignored.
func decodeMealBody(r *http.Request, requireDescription bool) (meal.MealInput, error) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil {
		return meal.MealInput{}, domain.NewValidationError("body", "unreadable")
	}
	if len(data) > maxBodyBytes {
		return meal.MealInput{}, domain.NewValidationError("body", "too large")
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return meal.MealInput{}, domain.NewValidationError("body", "must be a JSON object")
	}

	var body mealBody
	if err := json.Unmarshal(data, &body); err != nil {
		return meal.MealInput{}, domain.NewValidationError("body", "malformed JSON")
	}

	var (
		input meal.MealInput
		errs  []domain.FieldError
	)

	switch {
	case body.Name == nil:
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	case bytes.Equal(body.Name, jsonNull) || json.Unmarshal(body.Name, &input.Name) != nil:
		errs = append(errs, domain.FieldError{Field: "name", Message: "must be a string"})
	}

	switch {
	case body.Description == nil:
		if requireDescription {
			errs = append(errs, domain.FieldError{Field: "description", Message: "required (use null to clear)"})
		}
	case bytes.Equal(body.Description, jsonNull):
		input.Description = nil
	default:
		var desc string
		if err := json.Unmarshal(body.Description, &desc); err != nil {
			errs = append(errs, domain.FieldError{Field: "description", Message: "must be a string or null"})
		} else {
			input.Description = &desc
		}
	}

	switch {
	case body.InsideDiet == nil:
		errs = append(errs, domain.FieldError{Field: "inside_diet", Message: "required"})
	case bytes.Equal(body.InsideDiet, jsonNull) || json.Unmarshal(body.InsideDiet, &input.InsideDiet) != nil:
		errs = append(errs, domain.FieldError{Field: "inside_diet", Message: "must be a boolean"})
	}

	if len(errs) > 0 {
		return meal.MealInput{}, domain.NewValidationErrors(errs)
	}
	return input, nil
}

// parseMealID reads the {id} path value. Only the canonical 36-character
// form is accepted; braces, URN prefixes and bare hex are rejected.
func parseMealID(r *http.Request) (uuid.UUID, error) {
	raw := r.PathValue("id")
	if len(raw) != canonicalUUIDLength {
		return uuid.Nil, domain.NewValidationError("id", "must be a UUID")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.NewValidationError("id", "must be a UUID")
	}
	return id, nil
}
