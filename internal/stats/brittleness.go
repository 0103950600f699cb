package stats

// GroupByFormat partitions results by prompt format. Records keep their batch
// order inside each group.
func GroupByFormat(results []TestResult) map[string][]TestResult {
	groups := make(map[string][]TestResult)
	for _, r := range results {
		groups[r.PromptFormat] = append(groups[r.PromptFormat], r)
	}
	return groups
}

// Brittleness is the spread between the best and worst per-format accuracy,
// in percentage points. Empty groups are ignored, and fewer than two
// non-empty groups give 0.
func Brittleness(byFormat map[string][]TestResult) float64 {
	if len(byFormat) < 2 {
		return 0
	}

	seen := 0
	var minAcc, maxAcc float64
	for _, group := range byFormat {
		if len(group) == 0 {
			continue
		}
		acc := float64(countCorrect(group)) / float64(len(group))
		if seen == 0 || acc < minAcc {
			minAcc = acc
		}
		if seen == 0 || acc > maxAcc {
			maxAcc = acc
		}
		seen++
	}
	if seen < 2 {
		return 0
	}
	return (maxAcc - minAcc) * 100
}
