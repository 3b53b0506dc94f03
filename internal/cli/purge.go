package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	postgres "github.com/heartmarshall/mealtrack-backend/internal/adapter/postgres"
	mealrepo "github.com/heartmarshall/mealtrack-backend/internal/adapter/postgres/meal"
)

// purgeTimeout bounds one purge run.
const purgeTimeout = 5 * time.Minute

func newPurgeCmd(opts *options) *cobra.Command {
	var grace time.Duration

	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Delete meals of sessions whose cookie has expired",
		Long: `Delete every meal belonging to a session whose first meal is older than
the session cookie lifetime plus --grace. Such rows can no longer be reached
by any client. Intended to be run from cron.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if grace < 0 {
				return fmt.Errorf("--grace must not be negative")
			}

			cfg, logger, err := opts.load()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), purgeTimeout)
			defer cancel()

			pool, err := postgres.NewPool(ctx, cfg.Database)
			if err != nil {
				return fmt.Errorf("connect to database: %w", err)
			}
			defer pool.Close()

			threshold := purgeThreshold(time.Now(), cfg.Session.TTL, grace)

			deleted, err := mealrepo.NewPurger(pool).PurgeExpiredSessions(ctx, threshold)
			if err != nil {
				logger.Error("purge failed",
					slog.String("error", err.Error()),
					slog.Time("threshold", threshold),
				)
				return err
			}

			logger.Info("purge completed",
				slog.Int64("deleted", deleted),
				slog.Time("threshold", threshold),
			)
			printf(cmd.OutOrStdout(), "deleted %d meals\n", deleted)
			return nil
		},
	}

	cmd.Flags().DurationVar(&grace, "grace", 24*time.Hour, "extra time to keep rows after the session cookie expires")

	return cmd
}

// purgeThreshold returns the instant before which a session's first meal
// marks the whole session as expired.
func purgeThreshold(now time.Time, ttl, grace time.Duration) time.Time {
	return now.Add(-ttl - grace).UTC()
}
