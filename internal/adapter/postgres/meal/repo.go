// Package meal implements the meal repository using PostgreSQL.
// Every request-path operation takes the owning session as an explicit
// argument and filters on it, so a row is invisible to any other session.
package meal

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/mealtrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/mealtrack-backend/internal/domain"
)

const (
	tableName = "meals"

	colID          = "id"
	colName        = "name"
	colDescription = "description"
	colInsideDiet  = "inside_diet"
	colDate        = "date"
	colSessionID   = "session_id"
)

var (
	builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	selectColumns = []string{colID, colName, colDescription, colInsideDiet, colDate, colSessionID}
)

// mealRow mirrors the meals table for scanning.
type mealRow struct {
	ID          uuid.UUID `db:"id"`
	Name        string    `db:"name"`
	Description *string   `db:"description"`
	InsideDiet  bool      `db:"inside_diet"`
	Date        time.Time `db:"date"`
	SessionID   string    `db:"session_id"`
}

// Repo provides meal persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new meal repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByOwner returns every meal of the session, newest first.
// Returns an empty slice (not nil) when the session has no meals.
func (r *Repo) ListByOwner(ctx context.Context, owner domain.SessionID) ([]domain.Meal, error) {
	query, args, err := builder.
		Select(selectColumns...).
		From(tableName).
		Where(sq.Eq{colSessionID: owner.String()}).
		OrderBy(colDate+" DESC", colID).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list meals: %w", err)
	}

	var rows []mealRow
	if err := pgxscan.Select(ctx, r.db, &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "list meals")
	}

	meals := make([]domain.Meal, len(rows))
	for i, row := range rows {
		meals[i] = toDomainMeal(row)
	}
	return meals, nil
}

// GetByOwnerAndID returns one meal. Returns domain.ErrNotFound if the meal
// does not exist or belongs to another session; the two cases are
// indistinguishable on purpose.
func (r *Repo) GetByOwnerAndID(ctx context.Context, owner domain.SessionID, mealID uuid.UUID) (*domain.Meal, error) {
	query, args, err := builder.
		Select(selectColumns...).
		From(tableName).
		Where(sq.Eq{colID: mealID}).
		Where(sq.Eq{colSessionID: owner.String()}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get meal: %w", err)
	}

	var row mealRow
	if err := pgxscan.Get(ctx, r.db, &row, query, args...); err != nil {
		return nil, postgres.MapError(err, fmt.Sprintf("get meal %s", mealID))
	}

	m := toDomainMeal(row)
	return &m, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Insert persists a new meal owned by owner. The meal's own Owner field is
// ignored. A zero Date lets the column default (now()) apply.
func (r *Repo) Insert(ctx context.Context, owner domain.SessionID, m *domain.Meal) error {
	cols := []string{colID, colName, colDescription, colInsideDiet, colSessionID}
	vals := []any{m.ID, m.Name, m.Description, m.InsideDiet, owner.String()}
	if !m.Date.IsZero() {
		cols = append(cols, colDate)
		vals = append(vals, m.Date)
	}

	query, args, err := builder.
		Insert(tableName).
		Columns(cols...).
		Values(vals...).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert meal: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, fmt.Sprintf("insert meal %s", m.ID))
	}
	return nil
}

// UpdateByOwnerAndID replaces the mutable fields of a meal and returns the
// number of affected rows (0 or 1). Zero means no such meal for this owner.
func (r *Repo) UpdateByOwnerAndID(ctx context.Context, owner domain.SessionID, mealID uuid.UUID, f domain.MealFields) (int64, error) {
	query, args, err := builder.
		Update(tableName).
		Set(colName, f.Name).
		Set(colDescription, f.Description).
		Set(colInsideDiet, f.InsideDiet).
		Where(sq.Eq{colID: mealID}).
		Where(sq.Eq{colSessionID: owner.String()}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build update meal: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, fmt.Sprintf("update meal %s", mealID))
	}
	return tag.RowsAffected(), nil
}

// DeleteByOwnerAndID removes a meal and returns the number of deleted rows.
// Idempotent: a missing or foreign meal yields 0 and no error.
func (r *Repo) DeleteByOwnerAndID(ctx context.Context, owner domain.SessionID, mealID uuid.UUID) (int64, error) {
	query, args, err := builder.
		Delete(tableName).
		Where(sq.Eq{colID: mealID}).
		Where(sq.Eq{colSessionID: owner.String()}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete meal: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, fmt.Sprintf("delete meal %s", mealID))
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func toDomainMeal(row mealRow) domain.Meal {
	// Stored tokens were validated on the way in; a parse failure here can
	// only come from rows written outside the application.
	owner, _ := domain.ParseSessionID(row.SessionID)
	return domain.Meal{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		InsideDiet:  row.InsideDiet,
		Date:        row.Date,
		Owner:       owner,
	}
}
