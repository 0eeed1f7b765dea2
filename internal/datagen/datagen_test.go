package datagen

import (
	"reflect"
	"slices"
	"testing"

	"github.com/mwiater/algobench/internal/algorithms"
)

func TestStages(t *testing.T) {
	stages := NewSeeded(1).Stages(22)
	if len(stages) != 22 {
		t.Fatalf("expected 22 stages, got %d", len(stages))
	}
	if stages[0].ID != "1" || stages[0].Name != "Stage 1" || stages[0].Genres[0] != "Rock" {
		t.Fatalf("unexpected first stage: %+v", stages[0])
	}
	if len(stages[19].Genres) != 1 || stages[19].Genres[0] != Genres[19] {
		t.Fatalf("expected last catalogue genre on stage 20, got %+v", stages[19])
	}
	if len(stages[20].Genres) != 0 || len(stages[21].Genres) != 0 {
		t.Fatalf("expected stages past the catalogue to host no genre, got %+v %+v", stages[20], stages[21])
	}
	if got := NewSeeded(1).Stages(0); len(got) != 0 {
		t.Fatalf("expected no stages, got %d", len(got))
	}
}

func TestArtistsUseStageGenres(t *testing.T) {
	gen := NewSeeded(42)
	stages := gen.Stages(5)
	artists := gen.Artists(50, stages)
	if len(artists) != 50 {
		t.Fatalf("expected 50 artists, got %d", len(artists))
	}

	stageByGenre := map[string]string{}
	for _, s := range stages {
		stageByGenre[s.Genres[0]] = s.ID
	}
	for i, a := range artists {
		want, ok := stageByGenre[a.Genre]
		if !ok {
			t.Fatalf("artist %d has genre %q outside the stage catalogue", i, a.Genre)
		}
		if a.Stage != want {
			t.Fatalf("artist %d stage = %q, want %q", i, a.Stage, want)
		}
	}
	if artists[9].Name != "Artist 10" || artists[9].ID != "10" {
		t.Fatalf("unexpected artist naming: %+v", artists[9])
	}
}

func TestSeededGeneratorIsDeterministic(t *testing.T) {
	a := NewSeeded(7)
	b := NewSeeded(7)
	if !reflect.DeepEqual(a.Artists(20, a.Stages(20)), b.Artists(20, b.Stages(20))) {
		t.Fatal("expected identical output for identical seeds")
	}
}

func TestArtistsWithoutStages(t *testing.T) {
	artists := NewSeeded(1).Artists(3, nil)
	for _, a := range artists {
		if a.Genre != "" || a.Stage != "" {
			t.Fatalf("expected empty genre and stage, got %+v", a)
		}
	}
}

func TestGenreBelongsToOneStage(t *testing.T) {
	gen := NewSeeded(7)
	stages := gen.Stages(len(Genres) + 5)
	artists := gen.Artists(60, stages)

	seen := make(map[string]string)
	for _, stage := range stages {
		for _, genre := range stage.Genres {
			if other, ok := seen[genre]; ok {
				t.Fatalf("genre %q on stages %s and %s", genre, other, stage.ID)
			}
			seen[genre] = stage.ID
		}
	}

	nested := slices.Clone(artists)
	mapped := slices.Clone(artists)
	algorithms.AssignStages(nested, stages)
	algorithms.AssignStagesOpti(mapped, stages)
	for i := range artists {
		if nested[i].Stage != mapped[i].Stage {
			t.Fatalf("artist %s genre %s: nested=%s map=%s", artists[i].Name, artists[i].Genre, nested[i].Stage, mapped[i].Stage)
		}
	}
}
