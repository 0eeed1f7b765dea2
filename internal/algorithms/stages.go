package algorithms

import "slices"

// AssignStages sets each artist's stage by scanning every stage's genre
// list. O(artists * stages * genres). Artists with no matching stage keep
// their current value.
func AssignStages(artists []Artist, stages []Stage) {
	for i := range artists {
		for _, stage := range stages {
			if slices.Contains(stage.Genres, artists[i].Genre) {
				artists[i].Stage = stage.ID
				break
			}
		}
	}
}

// AssignStagesOpti builds a genre to stage map once, then assigns in a
// single pass. O(artists + genres). Artists whose genre has no stage get
// an empty stage id.
func AssignStagesOpti(artists []Artist, stages []Stage) {
	genreToStage := make(map[string]string)
	for _, stage := range stages {
		for _, genre := range stage.Genres {
			genreToStage[genre] = stage.ID
		}
	}
	for i := range artists {
		artists[i].Stage = genreToStage[artists[i].Genre]
	}
}
