package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xylex-group/code-time/internal/config"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show proxy configuration",
		Long:  "Display the configured proxy address and whether an API key is set. Makes no network calls.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			auth := "not set"
			if cfg.HasAPIKey() {
				auth = "set (Bearer)"
			}

			lines := []string{
				fmt.Sprintf("Proxy: %s", cfg.DisplayURL()),
				fmt.Sprintf("CODETIME_API_KEY: %s", auth),
				"",
				fmt.Sprintf("Env: %s, %s", config.EnvProxyURL, config.EnvAPIKey),
			}
			printSection(cmd.OutOrStdout(), "CodeTime", strings.Join(lines, "\n"))
			return nil
		},
	}
}
