package cli

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/xylex-group/code-time/internal/config"
	"github.com/xylex-group/code-time/internal/proxy"
	"github.com/xylex-group/code-time/internal/report"
	"github.com/xylex-group/code-time/pkg/model"
)

func newReportCmd() *cobra.Command {
	var workspaceRoot string

	cmd := &cobra.Command{
		Use:   "report [eventType] [relativePath]",
		Short: "Report a coding-activity event",
		Long:  "Send a single coding-activity event to the CodeTime proxy event log.",
		Args:  cobra.MaximumNArgs(2),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveDefault
			}
			return model.EventTypes, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			eventType := model.EventFileEdited
			if len(args) > 0 {
				eventType = args[0]
			}
			if !model.IsValidEventType(eventType) {
				return fmt.Errorf("unknown event type: %s. Use one of: %s",
					eventType, strings.Join(model.EventTypes, ", "))
			}

			relativeFile := "unknown"
			if len(args) > 1 {
				relativeFile = args[1]
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ev := report.BuildEvent(workspaceRoot, eventType, relativeFile, time.Now())
			if err := proxy.NewClient(cfg, slog.Default()).ReportEvent(cmd.Context(), ev); err != nil {
				return err
			}

			printSection(cmd.OutOrStdout(), "CodeTime",
				fmt.Sprintf("Reported %s for %s", ev.EventType, ev.RelativeFile))
			return nil
		},
	}

	cmd.Flags().StringVar(&workspaceRoot, "root", defaultWorkspaceRoot(), "Workspace root used to derive the project name")

	return cmd
}
