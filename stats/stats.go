// Package stats provides the numeric primitives used by threshold
// calculation: interpolated percentiles, population standard deviation,
// and numerical gradients.
package stats

import (
	"math"
	"slices"
)

// Percentile returns the interpolated p-th percentile of values.
// The rank is (len-1) * p/100; results between two elements are linearly
// interpolated. Values of p outside [0, 100] are permitted and clamp to
// the minimum or maximum element; callers are responsible for passing
// meaningful ranges. An empty input returns 0.
func Percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	rank := float64(len(sorted)-1) * p / 100
	lower := int(math.Floor(rank))
	upper := int(math.Ceil(rank))
	if lower < 0 {
		lower = 0
	}
	if upper > len(sorted)-1 {
		upper = len(sorted) - 1
	}
	if lower >= upper {
		return sorted[upper]
	}
	frac := rank - math.Floor(rank)
	return sorted[lower] + (sorted[upper]-sorted[lower])*frac
}

// Mean returns the arithmetic mean of values, or 0 for an empty input.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// StandardDeviation returns the population standard deviation of values
// (denominator N, not N-1). An empty input returns 0.
func StandardDeviation(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	mean := Mean(values)
	var sum float64
	for _, v := range values {
		d := v - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)))
}

// Gradient returns the numerical gradient of values: central differences
// for interior elements, a forward difference at index 0, and a backward
// difference at the last index. A single-element input yields [0]; a
// two-element input yields the same difference in both slots.
func Gradient(values []float64) []float64 {
	n := len(values)
	switch n {
	case 0:
		return nil
	case 1:
		return []float64{0}
	}

	out := make([]float64, n)
	out[0] = values[1] - values[0]
	out[n-1] = values[n-1] - values[n-2]
	for i := 1; i < n-1; i++ {
		out[i] = (values[i+1] - values[i-1]) / 2
	}
	return out
}
