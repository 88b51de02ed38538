// Package cli provides template catalog commands.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smallrender/sr-submit/internal/catalog"
	"github.com/smallrender/sr-submit/internal/config"
)

// newTemplatesCmd creates the 'templates' command.
func newTemplatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List job templates available on the farm",
		Long: `List the job templates published on the farm.

Templates live as JSON files under <farm>/templates/ (and its examples/
subdirectory) and are referenced by ID when submitting.

Example:
  sr-submit templates`,
		RunE: func(cmd *cobra.Command, args []string) error {
			templates := newCatalog().List()

			if len(templates) == 0 {
				// Distinguish "no templates" from "farm unreachable" by
				// re-checking the connectivity preconditions.
				if err := config.Diagnose(configPath()); err != nil && err != config.ErrNotReady {
					return err
				}
				fmt.Println("No templates found")
				return nil
			}

			fmt.Printf("%-24s %s\n", "ID", "NAME")
			for _, tpl := range templates {
				fmt.Printf("%-24s %s\n", tpl.ID, tpl.DisplayName())
			}
			return nil
		},
	}
	return cmd
}

// newCatalog builds a template catalog resolving the farm root from the
// active config path on every stale scan.
func newCatalog() *catalog.Catalog {
	return catalog.New(func() string {
		return config.ResolveFarmRoot(configPath())
	}, GetLogger())
}
