package semanticchunker

// breakpointsAbove returns the set of sentence indices whose trailing
// distance strictly exceeds threshold; a chunk ends after each of them.
// Distances equal to the threshold do not break. The final sentence index
// is always an implicit breakpoint and is not included here.
func breakpointsAbove(distances []float64, threshold float64) map[int]bool {
	breakpoints := make(map[int]bool)
	for i, d := range distances {
		if d > threshold {
			breakpoints[i] = true
		}
	}
	return breakpoints
}
