// internal/cli/run.go
package algobench

import "github.com/spf13/cobra"

// runCmd represents the 'run' command group for running benchmarks.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Group commands for running benchmarks",
	Long:  `The 'run' command groups subcommands that execute benchmark suites.`,
}

func init() {
	rootCmd.AddCommand(runCmd)
}
