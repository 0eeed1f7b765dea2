// internal/cli/generate.go
package algobench

import "github.com/spf13/cobra"

// generateCmd represents the 'generate' command group.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Group commands for generating benchmark input",
	Long:  "The 'generate' command groups subcommands that produce benchmark input. It performs no action on its own.",
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
