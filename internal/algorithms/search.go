package algorithms

// FindArtistIndex scans artists in order and returns the id of the first
// artist called name. O(n).
func FindArtistIndex(artists []Artist, name string) (string, bool) {
	for i := range artists {
		if artists[i].Name == name {
			return artists[i].ID, true
		}
	}
	return "", false
}

// FindArtistIndexOpti binary-searches artists, which must be sorted by name
// in ascending byte order. O(log n).
func FindArtistIndexOpti(artists []Artist, name string) (string, bool) {
	left, right := 0, len(artists)-1
	for left <= right {
		mid := left + (right-left)/2
		switch {
		case artists[mid].Name == name:
			return artists[mid].ID, true
		case artists[mid].Name < name:
			left = mid + 1
		default:
			right = mid - 1
		}
	}
	return "", false
}
