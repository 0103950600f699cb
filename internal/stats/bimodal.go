package stats

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DefaultGapThreshold is the gap ratio above which a sample is flagged bimodal.
const DefaultGapThreshold = 0.3

const minBimodalSamples = 10

// BimodalResult describes the outcome of DetectBimodal. Reason is set only
// when the sample could not be assessed.
type BimodalResult struct {
	Bimodal          bool    `json:"bimodal"`
	Reason           string  `json:"reason,omitempty"`
	GapRatio         float64 `json:"gap_ratio"`
	Threshold        float64 `json:"threshold"`
	LowerClusterMean float64 `json:"lower_cluster_mean,omitempty"`
	UpperClusterMean float64 `json:"upper_cluster_mean,omitempty"`
}

// DetectBimodal is a heuristic, not a dip test: it splits the sample at the
// median and flags it bimodal when the empty gap between the two halves is a
// large enough share of the full range.
func DetectBimodal(values []float64, threshold float64) BimodalResult {
	if len(values) < minBimodalSamples {
		return BimodalResult{Reason: "Insufficient data"}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	median := sortedMedian(sorted)
	split := sort.SearchFloat64s(sorted, median)
	below, above := sorted[:split], sorted[split:]
	if len(below) < 3 || len(above) < 3 {
		return BimodalResult{Reason: "Unbalanced distribution"}
	}

	spread := sorted[len(sorted)-1] - sorted[0]
	if spread == 0 {
		return BimodalResult{Reason: "No variance"}
	}

	gapRatio := (floats.Min(above) - floats.Max(below)) / spread
	return BimodalResult{
		Bimodal:          gapRatio > threshold,
		GapRatio:         gapRatio,
		Threshold:        threshold,
		LowerClusterMean: stat.Mean(below, nil),
		UpperClusterMean: stat.Mean(above, nil),
	}
}

// sortedMedian averages the two middle values for even-length input.
func sortedMedian(sorted []float64) float64 {
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}
