package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/xylex-group/code-time/internal/config"
	"github.com/xylex-group/code-time/internal/proxy"
)

func newMinutesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "minutes",
		Short: "Show accumulated tracked minutes",
		Long:  "Query the CodeTime proxy for the total minutes tracked for the current user.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			minutes, err := proxy.NewClient(cfg, slog.Default()).Minutes(cmd.Context())
			if err != nil {
				return err
			}

			printSection(cmd.OutOrStdout(), "Minutes", fmt.Sprintf("Tracked minutes: %s", minutes))
			return nil
		},
	}
}
