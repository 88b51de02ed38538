// Package cli provides the command-line interface for sr-submit.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/smallrender/sr-submit/internal/config"
	"github.com/smallrender/sr-submit/internal/logging"
)

var (
	// Global flags
	cfgFile string
	verbose bool

	// Global logger
	logger *logging.Logger
)

// Version information - set by main package at startup from internal/version.
var (
	Version   = "v0.1.2-dev"
	BuildTime = "unknown"
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sr-submit",
		Short: "SmallRender Submit - send render jobs to the SmallRender farm",
		Long: `SmallRender Submit ` + Version + ` - Built: ` + BuildTime + `
Client-side submission tool for the SmallRender render farm.

Jobs are published as descriptor files into the farm's shared-filesystem
inbox; the SmallRender monitor on the farm side picks them up. This tool
needs the monitor's config (sync root) to already be in place.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = logging.NewDefaultCLILogger()
			if verbose {
				logging.SetGlobalLevel(-1) // zerolog.DebugLevel
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "SmallRender config file path (default: per-OS monitor location)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output (shows debug messages)")

	rootCmd.Version = Version + " (" + BuildTime + ")"

	return rootCmd
}

// Execute runs the CLI.
func Execute() error {
	rootCmd := NewRootCmd()
	AddCommands(rootCmd)
	return rootCmd.Execute()
}

// AddCommands adds all subcommands to the root command.
func AddCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(newTemplatesCmd())
	rootCmd.AddCommand(newSubmitCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newConfigCmd())
}

// GetLogger returns the global CLI logger.
func GetLogger() *logging.Logger {
	if logger == nil {
		logger = logging.NewDefaultCLILogger()
	}
	return logger
}

// configPath returns the --config override or the default per-OS location.
func configPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return config.DefaultConfigPath()
}
