// Package cmd - config command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"payroll/internal/config"
)

// configCmd manages configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// configInitCmd writes the active configuration to a file
var configInitCmd = &cobra.Command{
	Use:   "init <path>",
	Short: "Write the current configuration to a .json, .yaml or .yml file",
	Long: `Write the configuration in effect (defaults, or the file given with
--config) so it can be edited and passed back with --config.

Examples:
  payroll config init ~/.payroll.yaml
  payroll --config team.json config init copy.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Get().Save(args[0]); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote configuration to %s\n", args[0])
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
}
