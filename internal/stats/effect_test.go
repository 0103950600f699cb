package stats

import "testing"

func TestCohensD(t *testing.T) {
	tests := []struct {
		name   string
		g1, g2 []float64
		want   float64
	}{
		{name: "known", g1: []float64{1, 2, 3, 4, 5}, g2: []float64{2, 4, 6, 8, 10}, want: -1.2},
		{name: "too few in first", g1: []float64{1}, g2: []float64{1, 2, 3}, want: 0},
		{name: "too few in second", g1: []float64{1, 2, 3}, g2: nil, want: 0},
		{name: "constant and equal", g1: []float64{2, 2, 2}, g2: []float64{2, 2}, want: 0},
		{name: "constant and different", g1: []float64{3, 3}, g2: []float64{1, 1}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CohensD(tt.g1, tt.g2); !approxEqual(got, tt.want, 1e-12) {
				t.Fatalf("CohensD = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestCohensDAntisymmetric(t *testing.T) {
	g1 := []float64{0.91, 0.85, 0.88, 0.95, 0.79}
	g2 := []float64{0.72, 0.81, 0.69, 0.75}
	if d1, d2 := CohensD(g1, g2), CohensD(g2, g1); d1 != -d2 {
		t.Fatalf("expected d(g1,g2) = -d(g2,g1), got %f and %f", d1, d2)
	}
}
