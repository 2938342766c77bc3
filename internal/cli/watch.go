package cli

import (
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/xylex-group/code-time/internal/config"
	"github.com/xylex-group/code-time/internal/proxy"
	"github.com/xylex-group/code-time/internal/watch"
	"github.com/xylex-group/code-time/pkg/model"
)

func newWatchCmd() *cobra.Command {
	var root string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch a workspace and report file activity",
		Long:  "Watch a directory tree and report file saves and creations to the CodeTime proxy until interrupted.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if root == "" {
				return fmt.Errorf("no workspace root: pass --root or run from a directory")
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			w := &watch.Watcher{
				Root:     root,
				Reporter: proxy.NewClient(cfg, slog.Default()),
				Logger:   slog.Default(),
				Reported: func(ev model.Event) {
					fmt.Fprintf(out, "Reported %s for %s\n", ev.EventType, ev.RelativeFile)
				},
			}
			return w.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&root, "root", defaultWorkspaceRoot(), "Directory tree to watch")

	return cmd
}
