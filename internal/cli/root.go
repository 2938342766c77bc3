// Package cli is the command-line adapter: it translates subcommand
// invocations into calls against the configuration, classification, and
// proxy layers, and renders their results as labeled text blocks.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var Version = "dev"

func NewRootCmd() *cobra.Command {
	var debug bool

	root := &cobra.Command{
		Use:   "codetime",
		Short: "CodeTime telemetry proxy client",
		Long:  "Codetime reports coding-activity events to a local CodeTime telemetry proxy and queries the minutes it has tracked.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if debug {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	root.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	root.AddCommand(
		newMinutesCmd(),
		newReportCmd(),
		newStatusCmd(),
		newWatchCmd(),
	)

	root.Version = Version
	root.SetVersionTemplate(fmt.Sprintf("codetime %s\n", Version))

	return root
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
