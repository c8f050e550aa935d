package buffer

// Location points between grapheme clusters of the document.
type Location struct {
	Line     int
	Grapheme int
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
