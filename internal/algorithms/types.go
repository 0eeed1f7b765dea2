// Package algorithms holds the candidate implementations compared by the
// bundled benchmark scenarios.
package algorithms

// Artist is a festival performer.
type Artist struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Genre string `json:"genre"`
	Stage string `json:"stage"`
}

// Stage hosts one or more genres. A genre belongs to at most one stage.
type Stage struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Genres []string `json:"genres"`
}
