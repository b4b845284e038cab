package semanticchunker

import "iter"

// splitChunkText splits text into parts of at most maxChars characters,
// yielded lazily in order. While the remaining text exceeds maxChars, the
// window [maxChars, maxChars+overrunChars) is searched for the first
// newline; if one is found the cut lands exactly there, keeping the line
// intact in the emitted part, otherwise the text is hard-cut at maxChars.
// A newline consumed as a cut point is a separator, not content, and is
// stripped from the start of the next part. overrunChars = 0 disables the
// boundary search. The sequence is consumed once during assembly.
func splitChunkText(text string, maxChars, overrunChars int) iter.Seq[string] {
	return func(yield func(string) bool) {
		remaining := []rune(text)
		for maxChars > 0 && len(remaining) > maxChars {
			cut := maxChars
			atNewline := false
			if overrunChars > 0 {
				limit := min(maxChars+overrunChars, len(remaining))
				for j := maxChars; j < limit; j++ {
					if remaining[j] == '\n' {
						cut = j
						atNewline = true
						break
					}
				}
			}

			if !yield(string(remaining[:cut])) {
				return
			}
			remaining = remaining[cut:]
			if atNewline {
				remaining = remaining[1:]
			}
		}
		if len(remaining) > 0 {
			yield(string(remaining))
		}
	}
}
