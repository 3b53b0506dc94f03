package cli

import (
	"github.com/spf13/cobra"

	"github.com/heartmarshall/mealtrack-backend/internal/app"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			info := app.Info()
			out := cmd.OutOrStdout()

			commit := info.Commit
			if info.Modified {
				commit += " (modified)"
			}

			printf(out, "mealtrack version %s\n", info.Version)
			printf(out, "  Git commit: %s\n", commit)
			printf(out, "  Built:      %s\n", info.BuildTime)
			printf(out, "  Go version: %s\n", info.GoVersion)
			printf(out, "  OS/Arch:    %s\n", info.Platform)
		},
	}
}
