package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smallrender/sr-submit/internal/config"
)

// newStatusCmd creates the 'status' command.
func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show farm connectivity and readiness",
		Long: `Check whether the farm is reachable and ready to accept submissions.

Walks the connectivity preconditions in order (config present, sync root
set, farm folder mounted, submissions inbox initialized) and reports the
first one that fails.

Example:
  sr-submit status`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configPath()
			fmt.Printf("Config:      %s\n", path)

			if err := config.Diagnose(path); err != nil {
				fmt.Printf("Status:      not ready\n")
				return err
			}

			cfg := config.Load(path)
			farm := cfg.FarmRoot()
			fmt.Printf("Sync root:   %s\n", cfg.SyncRoot)
			fmt.Printf("Farm root:   %s\n", farm)
			fmt.Printf("Inbox:       %s\n", config.SubmissionsDir(farm))

			templates := newCatalog().List()
			fmt.Printf("Templates:   %d\n", len(templates))
			fmt.Printf("Status:      ready\n")
			return nil
		},
	}
	return cmd
}
