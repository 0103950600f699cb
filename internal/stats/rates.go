package stats

// FalsePositiveRate is the share of ground-truth negatives that were judged
// incorrectly. It is 0 when the batch has no negatives.
func FalsePositiveRate(results []TestResult, negativeLabel string) float64 {
	return errorRateFor(results, negativeLabel)
}

// FalseNegativeRate is the share of ground-truth positives that were judged
// incorrectly. It is 0 when the batch has no positives.
func FalseNegativeRate(results []TestResult, positiveLabel string) float64 {
	return errorRateFor(results, positiveLabel)
}

func errorRateFor(results []TestResult, label string) float64 {
	total := 0
	wrong := 0
	for _, r := range results {
		if r.Expected != label {
			continue
		}
		total++
		if !r.Correct {
			wrong++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(wrong) / float64(total)
}
