package commands

import (
	"github.com/spf13/cobra"

	"stackpilot/cmd/stackpilot/handlers"
)

// Create returns the command for creating a stack and waiting for the result.
//
// The command blocks until the stack reaches a terminal state and exits
// non-zero unless creation succeeded.
//
// Flags:
//
//	--template, -t: Template locator (path or s3:// URL) (required)
//	--param, -p:    Stack parameter as key=value (repeatable)
//	--config, -c:   Path to stackpilot configuration YAML file
func Create() *cobra.Command {
	var opts handlers.CreateOptions

	cmd := &cobra.Command{
		Use:   "create <stack-name>",
		Short: "Create a stack and wait for completion",
		Long: `Create a CloudFormation stack from a template and block until the
creation reaches a terminal state.

The command polls the stack's event stream and reports progress as resources
come up. It exits 0 only when the stack itself reports CREATE_COMPLETE;
provider rejections, rollbacks and timeouts all exit non-zero.

Examples:
  # Create a stack from a local template
  stackpilot create web --template templates/web.json --param Env=prod

  # Use a config file for region and template directory
  stackpilot create web -c stackpilot.yaml -t web.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.StackName = args[0]
			return handlers.Create(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.TemplateLocator, "template", "t", "", "template locator (path or s3:// URL)")
	cmd.Flags().StringArrayVarP(&opts.Parameters, "param", "p", nil, "stack parameter as key=value (repeatable)")
	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to configuration YAML file")
	_ = cmd.MarkFlagRequired("template")

	return cmd
}
