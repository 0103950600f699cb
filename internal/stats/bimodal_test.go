package stats

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestDetectBimodal(t *testing.T) {
	nineOnes := []float64{1, 1, 1, 1, 1, 1, 1, 1, 1}

	tests := []struct {
		name   string
		values []float64
		want   BimodalResult
	}{
		{
			name:   "insufficient data",
			values: nineOnes,
			want:   BimodalResult{Reason: "Insufficient data"},
		},
		{
			name:   "constant sample is unbalanced",
			values: append(nineOnes, 1),
			want:   BimodalResult{Reason: "Unbalanced distribution"},
		},
		{
			name:   "unbalanced",
			values: []float64{1, 2, 5, 5, 5, 5, 5, 5, 5, 5},
			want:   BimodalResult{Reason: "Unbalanced distribution"},
		},
		{
			name:   "two clusters",
			values: []float64{9.4, 1, 9, 1.1, 9.1, 1.2, 9.2, 1.3, 9.3, 1.4},
			want: BimodalResult{
				Bimodal:          true,
				GapRatio:         7.6 / 8.4,
				Threshold:        DefaultGapThreshold,
				LowerClusterMean: 1.2,
				UpperClusterMean: 9.2,
			},
		},
		{
			name:   "uniform",
			values: []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
			want: BimodalResult{
				Bimodal:          false,
				GapRatio:         1.0 / 9.0,
				Threshold:        DefaultGapThreshold,
				LowerClusterMean: 3,
				UpperClusterMean: 8,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectBimodal(tt.values, DefaultGapThreshold)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
				t.Fatalf("DetectBimodal mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDetectBimodalThreshold(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	if res := DetectBimodal(values, 0.1); !res.Bimodal {
		t.Fatalf("expected gap ratio %f to exceed threshold 0.1", res.GapRatio)
	}
}

func TestDetectBimodalDoesNotMutateInput(t *testing.T) {
	values := []float64{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}
	DetectBimodal(values, DefaultGapThreshold)
	if values[0] != 10 || values[9] != 1 {
		t.Fatalf("input was reordered: %v", values)
	}
}

func TestBimodalResultJSONKeepsZeroThreshold(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	data, err := json.Marshal(DetectBimodal(values, 0))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, key := range []string{`"gap_ratio":`, `"threshold":0`} {
		if !strings.Contains(string(data), key) {
			t.Fatalf("expected %s in %s", key, data)
		}
	}
}
