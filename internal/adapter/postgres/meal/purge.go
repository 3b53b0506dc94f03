package meal

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/mealtrack-backend/internal/adapter/postgres"
)

// Purger runs maintenance deletes across all sessions. It is deliberately a
// separate type from Repo: nothing on the request path can reach it.
type Purger struct {
	db postgres.Querier
}

// NewPurger creates a Purger.
func NewPurger(db postgres.Querier) *Purger {
	return &Purger{db: db}
}

// expiredSessionsSubquery selects sessions whose first meal predates the
// threshold. The cookie for such a session was minted with that first meal
// and has since expired, so its rows can no longer be reached.
const expiredSessionsSubquery = colSessionID + ` IN (
    SELECT ` + colSessionID + ` FROM ` + tableName + `
    GROUP BY ` + colSessionID + `
    HAVING min(` + colDate + `) < ?)`

// PurgeExpiredSessions deletes every meal belonging to a session whose
// earliest meal is older than before. Returns the number of deleted rows.
func (p *Purger) PurgeExpiredSessions(ctx context.Context, before time.Time) (int64, error) {
	query, args, err := builder.
		Delete(tableName).
		Where(sq.Expr(expiredSessionsSubquery, before)).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build purge meals: %w", err)
	}

	tag, err := p.db.Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "purge expired sessions")
	}
	return tag.RowsAffected(), nil
}
