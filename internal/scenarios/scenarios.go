// Package scenarios assembles the bundled benchmark tests from configuration.
package scenarios

import (
	"fmt"
	"slices"
	"strings"

	"github.com/mwiater/algobench/internal/algorithms"
	"github.com/mwiater/algobench/internal/appconfig"
	"github.com/mwiater/algobench/internal/benchmark"
	"github.com/mwiater/algobench/internal/datagen"
)

// Scenario is one selectable benchmark test.
type Scenario struct {
	Key         string
	Description string
	build       func(cfg appconfig.Config, data Data) (*benchmark.Test, error)
}

// Data is the generated line-up shared by the festival scenarios.
type Data struct {
	Stages  []algorithms.Stage
	Artists []algorithms.Artist
}

var catalogue = []Scenario{
	{Key: "performance", Description: "naive duplicate check, common elements and fibonacci", build: buildPerformance},
	{Key: "search", Description: "linear vs binary artist search", build: buildSearch},
	{Key: "assign", Description: "nested loop vs genre map stage assignment", build: buildAssign},
	{Key: "lookup", Description: "asynchronous remote lookup vs in-memory index", build: buildLookup},
}

// All returns every scenario in execution order.
func All() []Scenario {
	return slices.Clone(catalogue)
}

// Keys returns the scenario keys in execution order.
func Keys() []string {
	keys := make([]string, 0, len(catalogue))
	for _, s := range catalogue {
		keys = append(keys, s.Key)
	}
	return keys
}

// Generate builds the festival line-up for cfg.
func Generate(cfg appconfig.Config, gen *datagen.Generator) Data {
	stages := gen.Stages(cfg.StageCount)
	return Data{Stages: stages, Artists: gen.Artists(cfg.ArtistCount, stages)}
}

// Build returns the tests selected by cfg.Tests, or all of them when empty,
// always in catalogue order.
func Build(cfg appconfig.Config, gen *datagen.Generator) ([]*benchmark.Test, error) {
	selected, err := selectScenarios(cfg.Tests)
	if err != nil {
		return nil, err
	}

	data := Generate(cfg, gen)
	tests := make([]*benchmark.Test, 0, len(selected))
	for _, s := range selected {
		test, err := s.build(cfg, data)
		if err != nil {
			return nil, fmt.Errorf("build %s scenario: %w", s.Key, err)
		}
		tests = append(tests, test)
	}
	return tests, nil
}

func selectScenarios(keys []string) ([]Scenario, error) {
	if len(keys) == 0 {
		return All(), nil
	}
	wanted := make(map[string]bool, len(keys))
	for _, k := range keys {
		k = strings.ToLower(strings.TrimSpace(k))
		if !slices.Contains(Keys(), k) {
			return nil, fmt.Errorf("unknown test %q (available: %s)", k, strings.Join(Keys(), ", "))
		}
		wanted[k] = true
	}
	var out []Scenario
	for _, s := range catalogue {
		if wanted[s.Key] {
			out = append(out, s)
		}
	}
	return out, nil
}

func buildPerformance(cfg appconfig.Config, _ Data) (*benchmark.Test, error) {
	if len(cfg.CommonInputs) != 2 {
		return nil, fmt.Errorf("commonInputs must hold exactly two arrays, got %d", len(cfg.CommonInputs))
	}
	duplicate, err := benchmark.CreateVersion("Naive Contains Duplicate", algorithms.ContainsDuplicate, cfg.Runs, cfg.DuplicateInput)
	if err != nil {
		return nil, err
	}
	common, err := benchmark.CreateVersion("Naive Find Common Elements", algorithms.FindCommonElements, cfg.Runs, cfg.CommonInputs[0], cfg.CommonInputs[1])
	if err != nil {
		return nil, err
	}
	fib, err := benchmark.CreateVersion("Naive Fibonacci", algorithms.Fibonacci, cfg.Runs, cfg.FibonacciN)
	if err != nil {
		return nil, err
	}
	return benchmark.NewTest("Algorithm Performance Test", duplicate, common, fib), nil
}

func buildSearch(cfg appconfig.Config, data Data) (*benchmark.Test, error) {
	// Binary search needs name order; both versions get the same input.
	sorted := slices.Clone(data.Artists)
	slices.SortFunc(sorted, func(a, b algorithms.Artist) int { return strings.Compare(a.Name, b.Name) })

	linear, err := benchmark.CreateVersion("Linear Search", algorithms.FindArtistIndex, cfg.Runs, sorted, cfg.SearchName)
	if err != nil {
		return nil, err
	}
	binary, err := benchmark.CreateVersion("Binary Search", algorithms.FindArtistIndexOpti, cfg.Runs, sorted, cfg.SearchName)
	if err != nil {
		return nil, err
	}
	return benchmark.NewTest("Artist Search", linear, binary), nil
}

func buildAssign(cfg appconfig.Config, data Data) (*benchmark.Test, error) {
	nested, err := benchmark.CreateVersion("Nested Loop Assignment", algorithms.AssignStages, cfg.Runs, slices.Clone(data.Artists), data.Stages)
	if err != nil {
		return nil, err
	}
	mapped, err := benchmark.CreateVersion("Genre Map Assignment", algorithms.AssignStagesOpti, cfg.Runs, slices.Clone(data.Artists), data.Stages)
	if err != nil {
		return nil, err
	}
	return benchmark.NewTest("Stage Assignment", nested, mapped), nil
}

func buildLookup(cfg appconfig.Config, data Data) (*benchmark.Test, error) {
	remote, err := benchmark.CreateVersion("Remote Lookup", algorithms.LookupArtistRemote, cfg.Runs, data.Artists, cfg.SearchName, cfg.LookupLatency())
	if err != nil {
		return nil, err
	}
	index := algorithms.NewArtistIndex(data.Artists)
	indexed, err := benchmark.CreateVersion("Indexed Lookup", index.Lookup, cfg.Runs, cfg.SearchName)
	if err != nil {
		return nil, err
	}
	return benchmark.NewTest("Artist Lookup", remote, indexed), nil
}
