// Package datagen builds random festival line-ups for the search and stage
// assignment scenarios.
package datagen

import (
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/mwiater/algobench/internal/algorithms"
)

// Genres is the fixed genre catalogue. Stage i hosts Genres[i].
var Genres = []string{
	"Rock", "Jazz", "Pop", "Metal", "Hip-Hop", "Electro", "Classical", "Blues",
	"Reggae", "Folk", "Punk", "Techno", "Country", "Funk", "R&B", "Soul",
	"Gospel", "Ska", "House", "Latin",
}

// Generator produces line-ups from an injected random source.
type Generator struct {
	rng *rand.Rand
}

// New returns a Generator drawing from rng.
func New(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// NewSeeded returns a Generator whose output is fully determined by seed.
func NewSeeded(seed uint64) *Generator {
	return New(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// Stages returns n stages named "Stage 1".."Stage n". The first len(Genres)
// stages host one genre each; any further stage hosts none, so a genre never
// belongs to more than one stage.
func (g *Generator) Stages(n int) []algorithms.Stage {
	stages := make([]algorithms.Stage, 0, max(n, 0))
	for i := 0; i < n; i++ {
		stage := algorithms.Stage{
			ID:   strconv.Itoa(i + 1),
			Name: fmt.Sprintf("Stage %d", i+1),
		}
		if i < len(Genres) {
			stage.Genres = []string{Genres[i]}
		}
		stages = append(stages, stage)
	}
	return stages
}

// Artists returns n artists named "Artist 1".."Artist n" with a random genre
// taken from stages, already placed on that genre's stage. With no stages
// the artists get no genre and no stage.
func (g *Generator) Artists(n int, stages []algorithms.Stage) []algorithms.Artist {
	genreToStage := make(map[string]string)
	var genres []string
	for _, stage := range stages {
		for _, genre := range stage.Genres {
			if _, ok := genreToStage[genre]; !ok {
				genres = append(genres, genre)
			}
			genreToStage[genre] = stage.ID
		}
	}

	artists := make([]algorithms.Artist, 0, max(n, 0))
	for i := 0; i < n; i++ {
		artist := algorithms.Artist{
			ID:   strconv.Itoa(i + 1),
			Name: fmt.Sprintf("Artist %d", i+1),
		}
		if len(genres) > 0 {
			artist.Genre = genres[g.rng.IntN(len(genres))]
			artist.Stage = genreToStage[artist.Genre]
		}
		artists = append(artists, artist)
	}
	return artists
}
