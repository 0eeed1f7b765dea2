package algorithms

import "time"

// LookupArtistRemote simulates a lookup against a remote catalogue. The
// returned channel receives the artist id, or "" when absent, after latency
// has passed, and is then closed.
func LookupArtistRemote(artists []Artist, name string, latency time.Duration) <-chan string {
	out := make(chan string, 1)
	go func() {
		defer close(out)
		if latency > 0 {
			time.Sleep(latency)
		}
		id, _ := FindArtistIndex(artists, name)
		out <- id
	}()
	return out
}

// ArtistIndex maps artist names to ids.
type ArtistIndex map[string]string

// NewArtistIndex indexes artists by name. Later duplicates win.
func NewArtistIndex(artists []Artist) ArtistIndex {
	idx := make(ArtistIndex, len(artists))
	for _, a := range artists {
		idx[a.Name] = a.ID
	}
	return idx
}

// Lookup returns the id for name.
func (idx ArtistIndex) Lookup(name string) (string, bool) {
	id, ok := idx[name]
	return id, ok
}
