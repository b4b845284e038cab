package semanticchunker

import (
	"errors"
	"math"
	"testing"

	"github.com/botirk38/semanticchunker/types"
)

func TestThresholdForStrategy(t *testing.T) {
	tests := []struct {
		name          string
		distances     []float64
		thresholdType types.ThresholdType
		amount        float64
		want          float64
	}{
		{
			name:          "percentile interpolates",
			distances:     []float64{0.1, 0.2, 0.3, 0.4},
			thresholdType: types.ThresholdPercentile,
			amount:        50,
			want:          0.25,
		},
		{
			name:          "percentile at 100 is the maximum",
			distances:     []float64{0.1, 0.2, 0.3},
			thresholdType: types.ThresholdPercentile,
			amount:        100,
			want:          0.3,
		},
		{
			name:          "standard deviation at zero amount is the mean",
			distances:     []float64{1, 2, 3},
			thresholdType: types.ThresholdStandardDeviation,
			amount:        0,
			want:          2,
		},
		{
			name:          "standard deviation adds scaled population stddev",
			distances:     []float64{1, 3},
			thresholdType: types.ThresholdStandardDeviation,
			amount:        1,
			want:          3, // mean 2 + 1 * population stddev 1
		},
		{
			name:          "interquartile adds scaled IQR to the mean",
			distances:     []float64{1, 2, 3, 4},
			thresholdType: types.ThresholdInterQuartile,
			amount:        2,
			want:          5.5, // mean 2.5 + 2 * (3.25 - 1.75)
		},
		{
			name:          "gradient takes percentile of the gradient",
			distances:     []float64{1, 2, 4},
			thresholdType: types.ThresholdGradient,
			amount:        100,
			want:          2, // gradient is [1, 1.5, 2]
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := thresholdForStrategy(tt.distances, tt.thresholdType, tt.amount)
			if err != nil {
				t.Fatalf("thresholdForStrategy() error = %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("thresholdForStrategy(%s, %v) = %v, want %v", tt.thresholdType, tt.amount, got, tt.want)
			}
		})
	}
}

func TestThresholdForStrategy_UnknownType(t *testing.T) {
	_, err := thresholdForStrategy([]float64{0.5}, types.ThresholdType("bogus"), 95)
	if !errors.Is(err, types.ErrUnknownThresholdType) {
		t.Errorf("expected ErrUnknownThresholdType, got %v", err)
	}
}

func TestThresholdForChunkCount(t *testing.T) {
	distances := []float64{0, 1} // three sentences, max three chunks

	t.Run("maximum count is negative infinity", func(t *testing.T) {
		got := thresholdForChunkCount(distances, 3)
		if !math.IsInf(got, -1) {
			t.Errorf("thresholdForChunkCount(3) = %v, want -Inf", got)
		}
	})

	t.Run("minimum count is the 100th percentile", func(t *testing.T) {
		got := thresholdForChunkCount(distances, 1)
		if got != 1 {
			t.Errorf("thresholdForChunkCount(1) = %v, want 1", got)
		}
	})

	t.Run("intermediate count interpolates the percentile range", func(t *testing.T) {
		// k=2 of max 3 maps to the 50th percentile of [0, 1].
		got := thresholdForChunkCount(distances, 2)
		if math.Abs(got-0.5) > 1e-9 {
			t.Errorf("thresholdForChunkCount(2) = %v, want 0.5", got)
		}
	})

	t.Run("count above maximum clamps to maximum", func(t *testing.T) {
		got := thresholdForChunkCount(distances, 10)
		if !math.IsInf(got, -1) {
			t.Errorf("thresholdForChunkCount(10) = %v, want -Inf", got)
		}
	})

	t.Run("count below one clamps to one", func(t *testing.T) {
		got := thresholdForChunkCount(distances, -5)
		if got != 1 {
			t.Errorf("thresholdForChunkCount(-5) = %v, want 1", got)
		}
	})
}

func TestDefaultThresholdAmounts(t *testing.T) {
	tests := []struct {
		thresholdType types.ThresholdType
		want          float64
	}{
		{types.ThresholdPercentile, 95},
		{types.ThresholdStandardDeviation, 3},
		{types.ThresholdInterQuartile, 1.5},
		{types.ThresholdGradient, 95},
	}

	for _, tt := range tests {
		t.Run(string(tt.thresholdType), func(t *testing.T) {
			got, err := tt.thresholdType.DefaultAmount()
			if err != nil {
				t.Fatalf("DefaultAmount() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("DefaultAmount() = %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := types.ThresholdType("bogus").DefaultAmount(); !errors.Is(err, types.ErrUnknownThresholdType) {
		t.Errorf("expected ErrUnknownThresholdType for bogus type, got %v", err)
	}
}
