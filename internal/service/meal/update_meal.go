package meal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/mealtrack-backend/internal/domain"
	"github.com/heartmarshall/mealtrack-backend/pkg/ctxutil"
)

// Update replaces name, description and inside_diet of a meal owned by the
// current session. The id, date and owner never change.
func (s *Service) Update(ctx context.Context, mealID uuid.UUID, input MealInput) error {
	owner, ok := ctxutil.SessionIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(s.limits); err != nil {
		return err
	}

	affected, err := s.meals.UpdateByOwnerAndID(ctx, owner, mealID, input.fields())
	if err != nil {
		return fmt.Errorf("update meal: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update meal %s: %w", mealID, domain.ErrNotFound)
	}

	s.log.InfoContext(ctx, "meal updated",
		slog.String("meal_id", mealID.String()),
	)

	return nil
}
