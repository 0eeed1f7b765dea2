// internal/cli/list.go
package algobench

import "github.com/spf13/cobra"

// listCmd represents the 'list' command group.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Group commands for listing resources",
	Long:  `The 'list' command groups subcommands that list commands or the available benchmark tests.`,
}

func init() {
	rootCmd.AddCommand(listCmd)
}
