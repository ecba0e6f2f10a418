package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/penguin-ski/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default settings file",
	Long: `Print the built-in settings as YAML. Save it to ~/.penguinski/config.yaml
and edit it to change the defaults.

Examples:
  penguinski config > ~/.penguinski/config.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	},
}

func init() {
	// Printing the defaults must work even when the current settings are broken
	configCmd.PersistentPreRunE = func(*cobra.Command, []string) error { return nil }
}
