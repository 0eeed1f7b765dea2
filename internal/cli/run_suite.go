package algobench

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// runSuiteCmd implements 'run suite', which times every selected scenario and
// prints average, fastest and slowest repetitions per algorithm version.
var runSuiteCmd = &cobra.Command{
	Use:   "suite",
	Short: "Run the benchmark suite",
	Long:  `Run every selected test in order. Each algorithm version is repeated --runs times, one repetition at a time, and its timing statistics are reported as soon as it finishes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSuite(cmd.Context(), cmd.OutOrStdout(), GetConfig())
	},
}

func init() {
	runCmd.AddCommand(runSuiteCmd)

	runSuiteCmd.Flags().StringSliceP("tests", "t", nil, "tests to run, by key (see 'list tests'); default all")
	_ = viper.BindPFlag("tests", runSuiteCmd.Flags().Lookup("tests"))
}
