package algobench

import (
	"context"
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mwiater/algobench/internal/appconfig"
	"github.com/mwiater/algobench/internal/benchmark"
	"github.com/mwiater/algobench/internal/datagen"
	"github.com/mwiater/algobench/internal/logging"
	"github.com/mwiater/algobench/internal/scenarios"
	"github.com/mwiater/algobench/internal/tui"
)

var runProgressView = tui.Run

// runSuite builds the configured scenarios and runs them with the reporter
// selected by cfg.Output.
func runSuite(ctx context.Context, out io.Writer, cfg *appconfig.Config) error {
	if cfg == nil {
		return errors.New("configuration is not loaded")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	seed := cfg.ResolveSeed()
	logging.LogEvent("generating test data with seed %d", seed)
	tests, err := scenarios.Build(*cfg, datagen.NewSeeded(seed))
	if err != nil {
		return err
	}

	suite := benchmark.NewTestSuite(nil)
	for _, test := range tests {
		suite.AddTest(test)
	}

	switch cfg.Output {
	case appconfig.OutputJSON:
		reporter := benchmark.NewJSONReporter(out)
		logging.LogEvent("run id %s", reporter.RunID)
		suite.Reporter = reporter
		if err := suite.Run(ctx); err != nil {
			return err
		}
		return reporter.Err()
	case appconfig.OutputTUI:
		return runProgressView(ctx, suite, tea.WithOutput(out))
	default:
		suite.Reporter = benchmark.NewTextReporter(out)
		return suite.Run(ctx)
	}
}
