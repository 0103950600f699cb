package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// CohensD is the standardized mean difference between two groups using the
// pooled sample standard deviation. It returns 0 when either group has fewer
// than two values or when the pooled deviation is zero.
func CohensD(group1, group2 []float64) float64 {
	n1, n2 := len(group1), len(group2)
	if n1 < 2 || n2 < 2 {
		return 0
	}

	mean1, var1 := stat.MeanVariance(group1, nil)
	mean2, var2 := stat.MeanVariance(group2, nil)

	pooled := math.Sqrt((float64(n1-1)*var1 + float64(n2-1)*var2) / float64(n1+n2-2))
	if pooled == 0 {
		return 0
	}
	return (mean1 - mean2) / pooled
}
