// Package cli defines the mealtrack command tree.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/mealtrack-backend/internal/app"
	"github.com/heartmarshall/mealtrack-backend/internal/config"
)

// options holds flags shared by every subcommand.
type options struct {
	configPath string
}

// NewRootCmd builds the mealtrack command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "mealtrack",
		Short: "Session-scoped meal tracking API",
		Long: `mealtrack serves a small REST API for recording meals.

Meals belong to an anonymous browser session identified by a cookie; no
account is needed. Use "serve" to run the API and "migrate" to manage the
database schema.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "",
		"path to YAML config (default $CONFIG_PATH, then "+config.DefaultPath+")")

	root.AddCommand(
		newServeCmd(opts),
		newMigrateCmd(opts),
		newPurgeCmd(opts),
		newVersionCmd(),
	)

	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute(ctx context.Context) {
	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// load resolves configuration. The --config flag wins over CONFIG_PATH.
func (o *options) load() (*config.Config, *slog.Logger, error) {
	var (
		cfg *config.Config
		err error
	)
	if o.configPath != "" {
		cfg, err = config.LoadFrom(o.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, nil, err
	}
	return cfg, app.NewLogger(cfg.Log), nil
}

func printf(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format, args...) //nolint:errcheck
}
