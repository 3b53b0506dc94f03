package meal

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/mealtrack-backend/internal/domain"
)

// Default field limits, matching the meals table.
const (
	DefaultMaxNameLength        = 255
	DefaultMaxDescriptionLength = 2000
)

type mealRepo interface {
	Insert(ctx context.Context, owner domain.SessionID, m *domain.Meal) error
	ListByOwner(ctx context.Context, owner domain.SessionID) ([]domain.Meal, error)
	GetByOwnerAndID(ctx context.Context, owner domain.SessionID, mealID uuid.UUID) (*domain.Meal, error)
	UpdateByOwnerAndID(ctx context.Context, owner domain.SessionID, mealID uuid.UUID, f domain.MealFields) (int64, error)
	DeleteByOwnerAndID(ctx context.Context, owner domain.SessionID, mealID uuid.UUID) (int64, error)
}

// Limits bounds the size of user-supplied meal fields.
type Limits struct {
	MaxNameLength        int
	MaxDescriptionLength int
}

// Service provides session-scoped meal operations.
type Service struct {
	meals  mealRepo
	limits Limits
	clock  func() time.Time
	log    *slog.Logger
}

// NewService creates a new Meal service. Non-positive limits fall back to defaults.
func NewService(
	log *slog.Logger,
	meals mealRepo,
	limits Limits,
) *Service {
	if limits.MaxNameLength <= 0 {
		limits.MaxNameLength = DefaultMaxNameLength
	}
	if limits.MaxDescriptionLength <= 0 {
		limits.MaxDescriptionLength = DefaultMaxDescriptionLength
	}
	return &Service{
		meals:  meals,
		limits: limits,
		clock:  time.Now,
		log:    log.With("service", "meal"),
	}
}

// Validate checks input against the service limits without touching the
// store. Handlers call it to reject a bad body before minting a session.
func (s *Service) Validate(input MealInput) error {
	return input.Validate(s.limits)
}
