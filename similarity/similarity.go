// Package similarity provides the vector math used for semantic distance
// between neighboring text windows.
package similarity

import (
	"errors"
	"fmt"
	"math"
)

// Common vector input errors. Both signal a contract violation by the
// embedding provider, not a recoverable condition.
var (
	// ErrNilVector indicates a nil embedding vector was passed.
	ErrNilVector = errors.New("embedding vector must not be nil")

	// ErrVectorLength indicates two vectors of different lengths were compared.
	ErrVectorLength = errors.New("embedding vectors must have the same length")
)

// CosineSimilarity returns the cosine similarity of a and b, clamped to
// [-1, 1]. If either vector has zero magnitude the result is 0.
// Vectors of different lengths or nil vectors are an error.
func CosineSimilarity(a, b []float32) (float64, error) {
	if a == nil || b == nil {
		return 0, ErrNilVector
	}
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrVectorLength, len(a), len(b))
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	denom := math.Sqrt(normA) * math.Sqrt(normB)
	if denom == 0 {
		return 0, nil
	}
	return math.Max(-1, math.Min(1, dot/denom)), nil
}

// NeighborDistances returns the semantic distance 1 - cosine(e[i], e[i+1])
// for every adjacent pair of embeddings. The result has length
// len(embeddings) - 1; fewer than two embeddings yield an empty slice.
func NeighborDistances(embeddings [][]float32) ([]float64, error) {
	if len(embeddings) < 2 {
		return []float64{}, nil
	}

	distances := make([]float64, len(embeddings)-1)
	for i := 0; i < len(embeddings)-1; i++ {
		sim, err := CosineSimilarity(embeddings[i], embeddings[i+1])
		if err != nil {
			return nil, fmt.Errorf("distance between embeddings %d and %d: %w", i, i+1, err)
		}
		distances[i] = 1 - sim
	}
	return distances, nil
}
