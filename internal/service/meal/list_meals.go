package meal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/mealtrack-backend/internal/domain"
	"github.com/heartmarshall/mealtrack-backend/pkg/ctxutil"
)

// List returns every meal of the current session, newest first.
func (s *Service) List(ctx context.Context) ([]domain.Meal, error) {
	owner, ok := ctxutil.SessionIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	meals, err := s.meals.ListByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}
	if meals == nil {
		meals = []domain.Meal{}
	}
	return meals, nil
}

// Get returns one meal of the current session. A meal owned by another
// session is reported as domain.ErrNotFound.
func (s *Service) Get(ctx context.Context, mealID uuid.UUID) (*domain.Meal, error) {
	owner, ok := ctxutil.SessionIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	m, err := s.meals.GetByOwnerAndID(ctx, owner, mealID)
	if err != nil {
		return nil, fmt.Errorf("get meal: %w", err)
	}
	return m, nil
}
