package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"
)

const (
	// exactMaxSmall is the largest smaller-group size for which the exact
	// U distribution is used when there are no ties.
	exactMaxSmall = 8
	// exactMaxLarge bounds the larger group for the exact computation.
	exactMaxLarge = 1000
)

// mannWhitneyU returns U for group1 and the two-sided p-value.
func mannWhitneyU(group1, group2 []float64) (float64, float64) {
	n1, n2 := len(group1), len(group2)
	if n1 == 0 || n2 == 0 {
		return 0, 1
	}

	ranks, tieTerm := averageRanks(group1, group2)
	var rankSum float64
	for _, r := range ranks[:n1] {
		rankSum += r
	}

	u1 := rankSum - float64(n1*(n1+1))/2
	u2 := float64(n1*n2) - u1
	u := math.Max(u1, u2)

	small, large := n1, n2
	if small > large {
		small, large = large, small
	}
	if tieTerm == 0 && small <= exactMaxSmall && large <= exactMaxLarge {
		return u1, clampProbability(2 * exactUSurvival(int(math.Round(u)), small, large))
	}

	n := float64(n1 + n2)
	mu := float64(n1*n2) / 2
	sigma := math.Sqrt(float64(n1*n2) / 12 * ((n + 1) - tieTerm/(n*(n-1))))
	if sigma == 0 {
		return u1, 1
	}
	z := (u - mu - 0.5) / sigma
	return u1, clampProbability(2 * distuv.UnitNormal.Survival(z))
}

// averageRanks ranks group1 followed by group2 in one pooled ordering,
// assigning tied values the mean of their ranks. It also returns the tie
// correction term, the sum of t^3-t over tie groups of size t.
func averageRanks(group1, group2 []float64) ([]float64, float64) {
	n := len(group1) + len(group2)
	values := make([]float64, 0, n)
	values = append(values, group1...)
	values = append(values, group2...)

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return values[order[a]] < values[order[b]]
	})

	ranks := make([]float64, n)
	var tieTerm float64
	for i := 0; i < n; {
		j := i + 1
		for j < n && values[order[j]] == values[order[i]] {
			j++
		}
		// positions i..j-1 share ranks i+1..j
		rank := float64(i+1+j) / 2
		for k := i; k < j; k++ {
			ranks[order[k]] = rank
		}
		if t := float64(j - i); t > 1 {
			tieTerm += t*t*t - t
		}
		i = j
	}
	return ranks, tieTerm
}

// exactUSurvival returns P(U >= k) under the null hypothesis for groups of
// size m and n, using the recurrence
//
//	p(m, n, u) = m/(m+n) p(m-1, n, u-n) + n/(m+n) p(m, n-1, u)
//
// on probabilities, which keeps every intermediate value in [0,1].
func exactUSurvival(k, m, n int) float64 {
	if k <= 0 {
		return 1
	}
	if k > m*n {
		return 0
	}

	size := m*n + 1
	prev := make([][]float64, m+1)
	curr := make([][]float64, m+1)
	for i := range prev {
		prev[i] = make([]float64, size)
		curr[i] = make([]float64, size)
		prev[i][0] = 1 // p(i, 0, 0)
	}

	for j := 1; j <= n; j++ {
		for i := range curr {
			clear(curr[i])
		}
		curr[0][0] = 1
		for i := 1; i <= m; i++ {
			total := float64(i + j)
			wi := float64(i) / total
			wj := float64(j) / total
			for u := 0; u <= i*j; u++ {
				p := wj * prev[i][u]
				if u >= j {
					p += wi * curr[i-1][u-j]
				}
				curr[i][u] = p
			}
		}
		prev, curr = curr, prev
	}

	var tail float64
	for u := k; u < size; u++ {
		tail += prev[m][u]
	}
	return tail
}
