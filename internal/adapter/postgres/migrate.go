package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/mealtrack-backend/migrations"
)

// OpenSQL opens a database/sql handle over the pgx driver. goose requires *sql.DB.
func OpenSQL(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("sql open: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

// NewMigrationProvider returns a goose provider over the embedded migrations.
// The provider handles $$-delimited statements correctly, unlike the legacy goose.Up.
func NewMigrationProvider(db *sql.DB) (*goose.Provider, error) {
	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return nil, fmt.Errorf("goose new provider: %w", err)
	}
	return provider, nil
}

// MigrateUp applies all pending migrations and returns how many were applied.
func MigrateUp(ctx context.Context, dsn string) (int, error) {
	db, err := OpenSQL(ctx, dsn)
	if err != nil {
		return 0, err
	}
	defer db.Close()

	provider, err := NewMigrationProvider(db)
	if err != nil {
		return 0, err
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("goose up: %w", err)
	}
	return len(results), nil
}
