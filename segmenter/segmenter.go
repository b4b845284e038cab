// Package segmenter provides sentence segmentation for the chunker.
// The default implementation uses a trained Punkt tokenizer, which handles
// abbreviations, initials, and other natural-language sentence-break rules.
package segmenter

import (
	"strings"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

// English segments English prose into sentences.
type English struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

// NewEnglish creates an English sentence segmenter.
func NewEnglish() (*English, error) {
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, err
	}
	return &English{tokenizer: tokenizer}, nil
}

// Segment splits text into trimmed, non-empty sentences in document order.
func (s *English) Segment(text string) ([]string, error) {
	var out []string
	for _, sentence := range s.tokenizer.Tokenize(text) {
		trimmed := strings.TrimSpace(sentence.Text)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out, nil
}
