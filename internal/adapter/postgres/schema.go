package postgres

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/mealtrack-backend/migrations"
)

const appliedVersionSQL = `SELECT COALESCE(MAX(version_id), 0) FROM goose_db_version WHERE is_applied`

// LatestMigration returns the highest version among the embedded migrations.
func LatestMigration() (int64, error) {
	names, err := fs.Glob(migrations.FS, "*.sql")
	if err != nil {
		return 0, fmt.Errorf("list migrations: %w", err)
	}

	var latest int64
	for _, name := range names {
		v, err := goose.NumericComponent(name)
		if err != nil {
			return 0, fmt.Errorf("migration %s: %w", name, err)
		}
		latest = max(latest, v)
	}
	return latest, nil
}

// SchemaChecker compares the schema version recorded by goose with the
// migrations compiled into the binary.
type SchemaChecker struct {
	db Querier
}

// NewSchemaChecker creates a SchemaChecker.
func NewSchemaChecker(db Querier) *SchemaChecker {
	return &SchemaChecker{db: db}
}

// SchemaVersion returns the applied version and the version the binary
// expects. A database that was never migrated reports version 0.
func (p *SchemaChecker) SchemaVersion(ctx context.Context) (applied, want int64, err error) {
	want, err = LatestMigration()
	if err != nil {
		return 0, 0, err
	}

	err = p.db.QueryRow(ctx, appliedVersionSQL).Scan(&applied)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "42P01" { // undefined_table
			return 0, want, nil
		}
		return 0, want, MapError(err, "schema version")
	}
	return applied, want, nil
}
