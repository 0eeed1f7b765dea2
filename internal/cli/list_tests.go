package algobench

import (
	"fmt"
	"io"

	"github.com/mwiater/algobench/internal/scenarios"
	"github.com/spf13/cobra"
)

// testsCmd implements 'list tests', which prints the keys accepted by
// 'run suite --tests' in execution order.
var testsCmd = &cobra.Command{
	Use:   "tests",
	Short: "List the available benchmark tests",
	Run: func(cmd *cobra.Command, args []string) {
		runListTests(cmd.OutOrStdout())
	},
}

func init() {
	listCmd.AddCommand(testsCmd)
}

func runListTests(out io.Writer) {
	fmt.Fprintln(out, "Available tests (in execution order):")
	for _, s := range scenarios.All() {
		fmt.Fprintf(out, "  %-12s %s\n", s.Key, s.Description)
	}
}
