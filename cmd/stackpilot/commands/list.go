package commands

import (
	"github.com/spf13/cobra"

	"stackpilot/cmd/stackpilot/handlers"
)

// List returns the command that prints all known stacks with their
// parameters and outputs, keyed by stack name.
func List() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List known stacks with parameters and outputs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.List(cmd.Context(), cmd.OutOrStdout(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to configuration YAML file")

	return cmd
}
