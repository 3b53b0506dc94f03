package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/mealtrack-backend/internal/domain"
)

// NewSession mints a fresh session id so parallel tests never share rows.
func NewSession(t *testing.T) domain.SessionID {
	t.Helper()
	return domain.NewSessionID()
}

// SeedMeal inserts a meal for owner with the given date and returns it.
func SeedMeal(t *testing.T, pool *pgxpool.Pool, owner domain.SessionID, name string, date time.Time) domain.Meal {
	t.Helper()

	m := domain.Meal{
		ID:         uuid.New(),
		Name:       name,
		InsideDiet: true,
		Date:       date.UTC().Truncate(time.Microsecond),
		Owner:      owner,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO meals (id, name, description, inside_diet, date, session_id)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		m.ID, m.Name, m.Description, m.InsideDiet, m.Date, owner.String(),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMeal insert: %v", err)
	}
	return m
}
