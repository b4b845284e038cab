package semanticchunker

import (
	"fmt"
	"math"

	"github.com/botirk38/semanticchunker/stats"
	"github.com/botirk38/semanticchunker/types"
)

// breakpointThreshold maps the distance sequence to a single scalar
// threshold. A configured target chunk count overrides strategy-based
// thresholding entirely.
func (c *Chunker) breakpointThreshold(distances []float64) (float64, error) {
	if c.targetChunkCount > 0 {
		return thresholdForChunkCount(distances, c.targetChunkCount), nil
	}
	return thresholdForStrategy(distances, c.thresholdType, c.thresholdAmount)
}

// thresholdForStrategy evaluates one of the four named strategies.
func thresholdForStrategy(distances []float64, thresholdType types.ThresholdType, amount float64) (float64, error) {
	switch thresholdType {
	case types.ThresholdPercentile:
		return stats.Percentile(distances, amount), nil
	case types.ThresholdStandardDeviation:
		return stats.Mean(distances) + amount*stats.StandardDeviation(distances), nil
	case types.ThresholdInterQuartile:
		iqr := stats.Percentile(distances, 75) - stats.Percentile(distances, 25)
		return stats.Mean(distances) + amount*iqr, nil
	case types.ThresholdGradient:
		return stats.Percentile(stats.Gradient(distances), amount), nil
	default:
		return 0, fmt.Errorf("%w: %q", types.ErrUnknownThresholdType, string(thresholdType))
	}
}

// thresholdForChunkCount inverts a desired chunk count into a threshold.
// The count is clamped to [1, len(distances)+1]. The maximum count maps
// to -Inf so every boundary breaks; otherwise the count is mapped
// linearly from [1, max] onto the percentile range [100, 0] and the
// percentile of the distances is used. The mapping is linear
// interpolation, not a search, and may be off by one chunk for very
// short distance sequences.
func thresholdForChunkCount(distances []float64, target int) float64 {
	maxChunks := len(distances) + 1
	count := min(max(target, 1), maxChunks)
	if count == maxChunks {
		return math.Inf(-1)
	}
	percentile := 100 * float64(maxChunks-count) / float64(maxChunks-1)
	return stats.Percentile(distances, percentile)
}
