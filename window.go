package semanticchunker

import "strings"

// buildContextualSentences expands each sentence into itself plus up to
// bufferSize neighbors on each side, joined by single spaces. The window
// is clamped to the array bounds, so the result has the same length and
// order as the input. Negative buffer sizes behave as zero.
func buildContextualSentences(sentences []string, bufferSize int) []string {
	buffer := max(bufferSize, 0)
	contextual := make([]string, len(sentences))
	for i := range sentences {
		lo := max(i-buffer, 0)
		hi := min(i+buffer+1, len(sentences))
		contextual[i] = strings.Join(sentences[lo:hi], " ")
	}
	return contextual
}
