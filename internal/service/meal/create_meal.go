package meal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/mealtrack-backend/internal/domain"
	"github.com/heartmarshall/mealtrack-backend/pkg/ctxutil"
)

// Create records a new meal for the current session. The id and date are
// assigned here; clients cannot choose them.
func (s *Service) Create(ctx context.Context, input MealInput) (*domain.Meal, error) {
	owner, ok := ctxutil.SessionIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.limits); err != nil {
		return nil, err
	}

	f := input.fields()
	m := &domain.Meal{
		ID:          uuid.New(),
		Name:        f.Name,
		Description: f.Description,
		InsideDiet:  f.InsideDiet,
		Date:        s.clock().UTC(),
		Owner:       owner,
	}

	if err := s.meals.Insert(ctx, owner, m); err != nil {
		return nil, fmt.Errorf("create meal: %w", err)
	}

	s.log.InfoContext(ctx, "meal created",
		slog.String("meal_id", m.ID.String()),
	)

	return m, nil
}
