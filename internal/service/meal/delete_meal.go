package meal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/mealtrack-backend/internal/domain"
	"github.com/heartmarshall/mealtrack-backend/pkg/ctxutil"
)

// Delete removes a meal of the current session and returns how many rows
// went away. Deleting a missing or foreign meal is not an error.
func (s *Service) Delete(ctx context.Context, mealID uuid.UUID) (int64, error) {
	owner, ok := ctxutil.SessionIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	deleted, err := s.meals.DeleteByOwnerAndID(ctx, owner, mealID)
	if err != nil {
		return 0, fmt.Errorf("delete meal: %w", err)
	}

	if deleted > 0 {
		s.log.InfoContext(ctx, "meal deleted",
			slog.String("meal_id", mealID.String()),
		)
	}

	return deleted, nil
}
