// internal/cli/show_config.go
package algobench

import (
	"github.com/spf13/cobra"
)

// showConfigCmd implements 'show config', which prints the merged settings
// after the config file, flags and defaults have been applied.
var showConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show config settings",
	Long:  `Show config settings ensuring that the JSON configs are loaded properly and overridden by flags accordingly. With --debug the full structure is dumped as well.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShowConfig(cmd.OutOrStdout(), GetConfig())
	},
}

func init() {
	showCmd.AddCommand(showConfigCmd)
}
