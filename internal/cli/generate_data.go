package algobench

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/k0kubun/pp"
	"github.com/mwiater/algobench/internal/algorithms"
	"github.com/mwiater/algobench/internal/appconfig"
	"github.com/mwiater/algobench/internal/datagen"
	"github.com/mwiater/algobench/internal/scenarios"
	"github.com/spf13/cobra"
)

// generateDataCmd implements 'generate data', which prints the stages and
// artists the search and assignment scenarios would run against.
var generateDataCmd = &cobra.Command{
	Use:   "data",
	Short: "Print a generated festival line-up",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		if cfg == nil {
			return errors.New("configuration is not loaded")
		}
		generated := *cfg
		if cmd.Flags().Changed("artists") {
			generated.ArtistCount, _ = cmd.Flags().GetInt("artists")
		}
		if cmd.Flags().Changed("stages") {
			generated.StageCount, _ = cmd.Flags().GetInt("stages")
		}
		return runGenerateData(cmd.OutOrStdout(), generated)
	},
}

func init() {
	generateCmd.AddCommand(generateDataCmd)

	defaults := appconfig.Defaults()
	generateDataCmd.Flags().Int("artists", defaults.ArtistCount, "number of artists to generate")
	generateDataCmd.Flags().Int("stages", defaults.StageCount, "number of stages to generate")
}

type lineup struct {
	Seed    uint64              `json:"seed"`
	Stages  []algorithms.Stage  `json:"stages"`
	Artists []algorithms.Artist `json:"artists"`
}

func runGenerateData(out io.Writer, cfg appconfig.Config) error {
	if cfg.ArtistCount < 0 || cfg.StageCount < 0 {
		return fmt.Errorf("artist and stage counts must not be negative")
	}
	seed := cfg.ResolveSeed()
	data := scenarios.Generate(cfg, datagen.NewSeeded(seed))

	if cfg.Output == appconfig.OutputJSON {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(lineup{Seed: seed, Stages: data.Stages, Artists: data.Artists})
	}

	fmt.Fprintf(out, "Seed: %d\n", seed)
	fmt.Fprintln(out, "Stages:")
	if _, err := pp.Fprintln(out, data.Stages); err != nil {
		return err
	}
	fmt.Fprintln(out, "Artists:")
	_, err := pp.Fprintln(out, data.Artists)
	return err
}
