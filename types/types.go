package types

import (
	"context"
	"errors"
)

// Chunk is a single unit of chunker output: a span of semantically
// coherent text together with its embedding.
type Chunk struct {
	// ID uniquely identifies the chunk within one CreateChunks call.
	ID string

	// Text is the chunk content, space-joined from its source sentences.
	Text string

	// Embedding is the vector for Text, computed by the embedding provider.
	Embedding []float32
}

// EmbeddingProvider defines the interface all embedding providers must satisfy.
// Implementations must be safe for concurrent use; the chunker fans out one
// EmbedText call per contextual sentence.
type EmbeddingProvider interface {
	// EmbedText turns a piece of text into its embedding vector.
	EmbedText(ctx context.Context, text string) ([]float32, error)
	// Close frees any resources held by the provider.
	Close()
}

// SentenceSegmenter splits raw text into sentences.
// Returned sentences must be trimmed, non-empty, and in document order.
type SentenceSegmenter interface {
	Segment(text string) ([]string, error)
}

// ThresholdType selects the algorithm used to derive the breakpoint
// threshold from the sentence distance sequence.
type ThresholdType string

const (
	// ThresholdPercentile uses the Nth percentile of the distances.
	ThresholdPercentile ThresholdType = "percentile"

	// ThresholdStandardDeviation uses mean + N standard deviations.
	ThresholdStandardDeviation ThresholdType = "standard_deviation"

	// ThresholdInterQuartile uses mean + N times the interquartile range.
	ThresholdInterQuartile ThresholdType = "interquartile"

	// ThresholdGradient uses the Nth percentile of the distance gradient.
	ThresholdGradient ThresholdType = "gradient"
)

// ErrUnknownThresholdType indicates a threshold type outside the closed
// set of supported strategies.
var ErrUnknownThresholdType = errors.New("unknown threshold type")

// defaultThresholdAmounts maps each strategy to its default parameter.
// Built once; never mutated at runtime.
var defaultThresholdAmounts = map[ThresholdType]float64{
	ThresholdPercentile:        95,
	ThresholdStandardDeviation: 3,
	ThresholdInterQuartile:     1.5,
	ThresholdGradient:          95,
}

// Valid reports whether t is one of the supported threshold types.
func (t ThresholdType) Valid() bool {
	_, ok := defaultThresholdAmounts[t]
	return ok
}

// DefaultAmount returns the default parameter for t.
// It returns ErrUnknownThresholdType for types outside the closed set.
func (t ThresholdType) DefaultAmount() (float64, error) {
	amount, ok := defaultThresholdAmounts[t]
	if !ok {
		return 0, ErrUnknownThresholdType
	}
	return amount, nil
}
