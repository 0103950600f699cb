package stats

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// ErrUnsupportedTest is returned for a significance test selector outside the known set.
var ErrUnsupportedTest = errors.New("unsupported test type")

// TestType selects the two-sample significance test.
type TestType int

const (
	// TTest is Welch's unequal-variance two-sample t-test.
	TTest TestType = iota + 1
	// MannWhitney is the two-sided Mann-Whitney U test.
	MannWhitney
)

var testTypeNames = map[TestType]string{
	TTest:       "ttest",
	MannWhitney: "mannwhitney",
}

type sampleTest func(group1, group2 []float64) (statistic, pValue float64)

var sampleTests = map[TestType]sampleTest{
	TTest:       welchTTest,
	MannWhitney: mannWhitneyU,
}

// String returns the selector name of the test type.
func (t TestType) String() string {
	if name, ok := testTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TestType(%d)", int(t))
}

// MarshalText encodes the test type as its selector name.
func (t TestType) MarshalText() ([]byte, error) {
	name, ok := testTypeNames[t]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedTest, int(t))
	}
	return []byte(name), nil
}

// UnmarshalText decodes a selector name.
func (t *TestType) UnmarshalText(text []byte) error {
	parsed, err := ParseTestType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseTestType resolves a selector name ("ttest" or "mannwhitney").
func ParseTestType(name string) (TestType, error) {
	for t, n := range testTypeNames {
		if n == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedTest, name)
}

// SignificanceResult is the outcome of a two-sample significance test.
type SignificanceResult struct {
	TestType      TestType `json:"test_type"`
	Statistic     float64  `json:"statistic"`
	PValue        float64  `json:"p_value"`
	Significant05 bool     `json:"significant_05"`
	Significant01 bool     `json:"significant_01"`
	CohensD       float64  `json:"cohens_d"`
}

// SignificanceTest runs the selected test on two samples. Cohen's d is
// reported whatever the test type.
func SignificanceTest(group1, group2 []float64, testType TestType) (SignificanceResult, error) {
	run, ok := sampleTests[testType]
	if !ok {
		return SignificanceResult{}, fmt.Errorf("%w: %s", ErrUnsupportedTest, testType)
	}

	statistic, p := run(group1, group2)
	return SignificanceResult{
		TestType:      testType,
		Statistic:     statistic,
		PValue:        p,
		Significant05: p < 0.05,
		Significant01: p < 0.01,
		CohensD:       CohensD(group1, group2),
	}, nil
}

// Significance is SignificanceTest with the test chosen by selector name.
func Significance(group1, group2 []float64, testType string) (SignificanceResult, error) {
	t, err := ParseTestType(testType)
	if err != nil {
		return SignificanceResult{}, err
	}
	return SignificanceTest(group1, group2, t)
}

// welchTTest returns the t statistic and two-sided p-value without assuming
// equal variances. Groups too small for a variance give (0, 1).
func welchTTest(group1, group2 []float64) (float64, float64) {
	n1, n2 := float64(len(group1)), float64(len(group2))
	if n1 < 2 || n2 < 2 {
		return 0, 1
	}

	mean1, var1 := stat.MeanVariance(group1, nil)
	mean2, var2 := stat.MeanVariance(group2, nil)

	se1 := var1 / n1
	se2 := var2 / n2
	se := math.Sqrt(se1 + se2)
	diff := mean1 - mean2
	if se == 0 {
		if diff == 0 {
			return 0, 1
		}
		return math.Copysign(math.Inf(1), diff), 0
	}

	t := diff / se
	df := (se1 + se2) * (se1 + se2) / (se1*se1/(n1-1) + se2*se2/(n2-1))
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	return t, clampProbability(2 * dist.Survival(math.Abs(t)))
}

func clampProbability(p float64) float64 {
	switch {
	case math.IsNaN(p):
		return 1
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}
