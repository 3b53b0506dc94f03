package rest

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/heartmarshall/mealtrack-backend/internal/domain"
)

// errorResponse is the body of every non-2xx answer.
type errorResponse struct {
	Error  string              `json:"error"`
	Fields []domain.FieldError `json:"fields,omitempty"`
}

// mealResponse is the public shape of a meal. The owning session is never
// part of it.
type mealResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	InsideDiet  bool      `json:"inside_diet"`
	Date        time.Time `json:"date"`
}

type mealListResponse struct {
	Meals []mealResponse `json:"meals"`
}

type messageResponse struct {
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}

type deleteResponse struct {
	Message string `json:"message"`
	Deleted int64  `json:"deleted"`
}

func toMealResponse(m domain.Meal) mealResponse {
	return mealResponse{
		ID:          m.ID.String(),
		Name:        m.Name,
		Description: m.Description,
		InsideDiet:  m.InsideDiet,
		Date:        m.Date.UTC(),
	}
}

func toMealListResponse(meals []domain.Meal) mealListResponse {
	out := make([]mealResponse, len(meals))
	for i, m := range meals {
		out[i] = toMealResponse(m)
	}
	return mealListResponse{Meals: out}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
