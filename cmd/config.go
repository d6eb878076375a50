package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// ConfigCmd is the top-level config command.
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage Cloud Safe configuration",
	Long: `Provides commands for managing the user configuration file.

Use these commands to:
  - Write a config file with your preferred pacing and theme (config init)
  - Show the configuration in effect (config show)

Examples:
  # Create a config file with shorter pauses
  cloudsafe config init --upload-delay 500 --encrypt-delay 500 --decrypt-delay 500

  # Show the configuration as JSON
  cloudsafe config show --json`,
}

// GetConfigCmd returns the ConfigCmd for testing.
func GetConfigCmd() *cobra.Command {
	return ConfigCmd
}

// resetConfigFlags marks every config subcommand flag as unset for testing.
func resetConfigFlags() {
	for _, sub := range ConfigCmd.Commands() {
		sub.Flags().VisitAll(func(flag *pflag.Flag) {
			flag.Changed = false
		})
	}
}
