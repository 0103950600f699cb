package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// AccuracyWithCI returns the fraction of correct results together with the
// Wilson score interval at the given confidence level.
//
// The Wilson interval stays inside [0,1] and remains usable for small batches
// and for accuracies near 0 or 1. An empty batch yields (0, 0, 0).
func AccuracyWithCI(results []TestResult, confidence float64) (accuracy, lower, upper float64) {
	n := len(results)
	if n == 0 {
		return 0, 0, 0
	}
	return wilsonInterval(countCorrect(results), n, normalizeConfidence(confidence))
}

func wilsonInterval(successes, n int, confidence float64) (pHat, lower, upper float64) {
	nf := float64(n)
	pHat = float64(successes) / nf

	z := zScore(confidence)
	z2 := z * z
	denominator := 1 + z2/nf
	center := (pHat + z2/(2*nf)) / denominator
	margin := z * math.Sqrt((pHat*(1-pHat)+z2/(4*nf))/nf) / denominator

	lower = math.Max(0, center-margin)
	upper = math.Min(1, center+margin)

	// Rounding at pHat of exactly 0 or 1 can leave the bound a few ulps on the wrong side.
	lower = math.Min(lower, pHat)
	upper = math.Max(upper, pHat)
	return pHat, lower, upper
}

// zScore is the two-sided standard normal quantile for a confidence level.
func zScore(confidence float64) float64 {
	return distuv.UnitNormal.Quantile(1 - (1-confidence)/2)
}

func normalizeConfidence(confidence float64) float64 {
	if math.IsNaN(confidence) || confidence <= 0 || confidence >= 1 {
		return DefaultConfidence
	}
	return confidence
}
