package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smallrender/sr-submit/internal/config"
	"github.com/smallrender/sr-submit/internal/constants"
)

// newConfigCmd creates the 'config' command group.
func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect farm config and edit submission preferences",
		Long: `Inspect the SmallRender configuration and edit sr-submit's own
submission preferences.

The monitor's config.json (sync root) is owned by the SmallRender monitor
and is read-only here. Preferences (default template, chunk size, priority)
are this tool's own and live next to it in prefs.toml.`,
	}

	configCmd.AddCommand(newConfigShowCmd())
	configCmd.AddCommand(newConfigSetCmd())

	return configCmd
}

// newConfigShowCmd creates the 'config show' command.
func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the active configuration and preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configPath()
			fmt.Printf("Config file: %s\n", path)

			cfg := config.Load(path)
			if cfg == nil {
				fmt.Println("Sync root:   (not configured)")
			} else if cfg.SyncRoot == "" {
				fmt.Println("Sync root:   (not set)")
			} else {
				fmt.Printf("Sync root:   %s\n", cfg.SyncRoot)
				if farm := cfg.FarmRoot(); farm != "" {
					fmt.Printf("Farm root:   %s\n", farm)
				} else {
					fmt.Printf("Farm root:   (not found under sync root)\n")
				}
			}

			prefs, err := config.LoadPrefs("")
			if err != nil {
				return err
			}
			fmt.Printf("Prefs file:  %s\n", config.DefaultPrefsPath())
			if prefs.Template != "" {
				fmt.Printf("Template:    %s\n", prefs.Template)
			} else {
				fmt.Printf("Template:    (none)\n")
			}
			fmt.Printf("Chunk size:  %d\n", prefs.ChunkSize)
			fmt.Printf("Priority:    %d\n", prefs.Priority)
			return nil
		},
	}
}

// newConfigSetCmd creates the 'config set' command for prefs.
func newConfigSetCmd() *cobra.Command {
	var (
		template  string
		chunkSize int
		priority  int
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set submission preference defaults",
		Long: `Set default values used by 'submit' when the matching flag is absent.

Example:
  sr-submit config set --template film --chunk-size 20 --priority 75`,
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs, err := config.LoadPrefs("")
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("template") {
				prefs.Template = template
			}
			if cmd.Flags().Changed("chunk-size") {
				if chunkSize < constants.MinChunkSize || chunkSize > constants.MaxChunkSize {
					return fmt.Errorf("chunk-size must be between %d and %d", constants.MinChunkSize, constants.MaxChunkSize)
				}
				prefs.ChunkSize = chunkSize
			}
			if cmd.Flags().Changed("priority") {
				if priority < constants.MinPriority || priority > constants.MaxPriority {
					return fmt.Errorf("priority must be between %d and %d", constants.MinPriority, constants.MaxPriority)
				}
				prefs.Priority = priority
			}

			if err := config.SavePrefs(prefs, ""); err != nil {
				return err
			}
			fmt.Printf("Preferences saved to %s\n", config.DefaultPrefsPath())
			return nil
		},
	}

	cmd.Flags().StringVar(&template, "template", "", "Default job template ID")
	cmd.Flags().IntVar(&chunkSize, "chunk-size", 0, "Default frames per render chunk")
	cmd.Flags().IntVar(&priority, "priority", 0, "Default job priority (1-100)")

	return cmd
}
