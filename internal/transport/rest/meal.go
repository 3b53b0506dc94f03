package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/mealtrack-backend/internal/domain"
	"github.com/heartmarshall/mealtrack-backend/internal/service/meal"
	"github.com/heartmarshall/mealtrack-backend/internal/transport/middleware"
	"github.com/heartmarshall/mealtrack-backend/pkg/ctxutil"
)

// mealService defines the interface needed by MealHandler.
type mealService interface {
	List(ctx context.Context) ([]domain.Meal, error)
	Get(ctx context.Context, mealID uuid.UUID) (*domain.Meal, error)
	Create(ctx context.Context, input meal.MealInput) (*domain.Meal, error)
	Update(ctx context.Context, mealID uuid.UUID, input meal.MealInput) error
	Delete(ctx context.Context, mealID uuid.UUID) (int64, error)
	Validate(input meal.MealInput) error
}

// sessionIssuer mints a session and sets it on the response.
type sessionIssuer interface {
	Issue(w http.ResponseWriter) domain.SessionID
}

// MealHandler serves the meal REST resource.
type MealHandler struct {
	svc     mealService
	session sessionIssuer
	log     *slog.Logger
}

// NewMealHandler creates a MealHandler.
func NewMealHandler(svc mealService, session sessionIssuer, logger *slog.Logger) *MealHandler {
	return &MealHandler{svc: svc, session: session, log: logger.With("handler", "meal")}
}

// Register mounts the meal routes under prefix (e.g. "/meals"). Create is
// the only route reachable without a session; all others are wrapped in
// middleware.RequireSession so they fail with 401 before the id is parsed
// or the store is touched.
func (h *MealHandler) Register(mux *http.ServeMux, prefix string) {
	item := prefix + "/{id}"

	mux.HandleFunc("POST "+prefix, h.Create)
	mux.Handle("GET "+prefix, middleware.RequireSession(http.HandlerFunc(h.List)))
	mux.Handle("GET "+item, middleware.RequireSession(http.HandlerFunc(h.Get)))
	mux.Handle("PUT "+item, middleware.RequireSession(http.HandlerFunc(h.Update)))
	mux.Handle("DELETE "+item, middleware.RequireSession(http.HandlerFunc(h.Delete)))
}

// List handles GET {prefix}.
func (h *MealHandler) List(w http.ResponseWriter, r *http.Request) {
	meals, err := h.svc.List(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toMealListResponse(meals))
}

// Get handles GET {prefix}/{id}. The body is the meal object itself.
func (h *MealHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseMealID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	m, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toMealResponse(*m))
}

// Create handles POST {prefix}. The body is validated first so a bad
// request never mints a session; a caller without one gets a fresh cookie.
func (h *MealHandler) Create(w http.ResponseWriter, r *http.Request) {
	input, err := decodeMealBody(r, false)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if err := h.svc.Validate(input); err != nil {
		h.handleError(w, r, err)
		return
	}

	ctx := r.Context()
	if _, ok := ctxutil.SessionIDFromCtx(ctx); !ok {
		ctx = ctxutil.WithSessionID(ctx, h.session.Issue(w))
	}

	m, err := h.svc.Create(ctx, input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "meal created", ID: m.ID.String()})
}

// Update handles PUT {prefix}/{id}. The body replaces name, description
// and inside_diet; all three keys are required.
func (h *MealHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseMealID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	input, err := decodeMealBody(r, true)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.svc.Update(r.Context(), id, input); err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "meal updated"})
}

// Delete handles DELETE {prefix}/{id}.
func (h *MealHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseMealID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	deleted, err := h.svc.Delete(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, deleteResponse{Message: "meal deleted", Deleted: deleted})
}

// handleError maps domain errors to HTTP responses. Anything unrecognised is
// logged and reported as a bare 500.
func (h *MealHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "validation failed", Fields: ve.Errors})
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, "validation failed")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "meal not found")
	default:
		h.log.ErrorContext(r.Context(), "internal error",
			slog.String("method", r.Method),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
