package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	postgres "github.com/heartmarshall/mealtrack-backend/internal/adapter/postgres"
)

func newMigrateCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
		Long:  `Apply, roll back or inspect the embedded SQL migrations.`,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withProvider(cmd.Context(), opts, func(ctx context.Context, p *goose.Provider, logger *slog.Logger) error {
					results, err := p.Up(ctx)
					if err != nil {
						return fmt.Errorf("migrate up: %w", err)
					}
					for _, r := range results {
						printf(cmd.OutOrStdout(), "applied %s (%s)\n", r.Source.Path, r.Duration)
					}
					logger.Info("migrations applied", slog.Int("count", len(results)))
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withProvider(cmd.Context(), opts, func(ctx context.Context, p *goose.Provider, logger *slog.Logger) error {
					r, err := p.Down(ctx)
					if err != nil {
						return fmt.Errorf("migrate down: %w", err)
					}
					printf(cmd.OutOrStdout(), "rolled back %s\n", r.Source.Path)
					logger.Info("migration rolled back", slog.Int64("version", r.Source.Version))
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show applied and pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withProvider(cmd.Context(), opts, func(ctx context.Context, p *goose.Provider, _ *slog.Logger) error {
					statuses, err := p.Status(ctx)
					if err != nil {
						return fmt.Errorf("migrate status: %w", err)
					}
					for _, s := range statuses {
						applied := "pending"
						if s.State == goose.StateApplied {
							applied = "applied " + s.AppliedAt.UTC().Format("2006-01-02 15:04:05")
						}
						printf(cmd.OutOrStdout(), "%-30s %s\n", s.Source.Path, applied)
					}
					return nil
				})
			},
		},
	)

	return cmd
}

func withProvider(ctx context.Context, opts *options, fn func(context.Context, *goose.Provider, *slog.Logger) error) error {
	cfg, logger, err := opts.load()
	if err != nil {
		return err
	}

	db, err := postgres.OpenSQL(ctx, cfg.Database.DSN)
	if err != nil {
		return err
	}
	defer db.Close()

	provider, err := postgres.NewMigrationProvider(db)
	if err != nil {
		return err
	}
	return fn(ctx, provider, logger)
}
