// Package stats computes accuracy, error-rate and format-sensitivity statistics
// over labeled test outcomes.
package stats

const (
	// DefaultConfidence is the confidence level used when none (or an invalid one) is supplied.
	DefaultConfidence = 0.95
	// DefaultNegativeLabel identifies the ground-truth negative class.
	DefaultNegativeLabel = "NO"
	// DefaultPositiveLabel identifies the ground-truth positive class.
	DefaultPositiveLabel = "YES"
	// DefaultPromptFormat is the grouping tag for records that carry none.
	DefaultPromptFormat = "default"
	// DefaultModel is the system tag for records that carry none.
	DefaultModel = "unknown"
)

// TestResult records a single evaluated test case.
type TestResult struct {
	TestID       string  `json:"test_id"`
	Expected     string  `json:"expected"`
	Actual       string  `json:"actual"`
	Correct      bool    `json:"correct"`
	PromptFormat string  `json:"prompt_format"`
	Model        string  `json:"model"`
	LatencyMs    float64 `json:"latency_ms"`
}

// NewTestResult builds a record whose correctness is exact label equality.
func NewTestResult(testID, expected, actual, promptFormat string) TestResult {
	if promptFormat == "" {
		promptFormat = DefaultPromptFormat
	}
	return TestResult{
		TestID:       testID,
		Expected:     expected,
		Actual:       actual,
		Correct:      expected == actual,
		PromptFormat: promptFormat,
		Model:        DefaultModel,
	}
}

// Summary is the aggregate analysis of a batch of test results.
// BrittlenessScore is in percentage points; every other rate is a fraction.
type Summary struct {
	N                 int      `json:"n"`
	Accuracy          float64  `json:"accuracy"`
	CILower           float64  `json:"ci_lower"`
	CIUpper           float64  `json:"ci_upper"`
	FalsePositiveRate float64  `json:"false_positive_rate"`
	FalseNegativeRate float64  `json:"false_negative_rate"`
	BrittlenessScore  float64  `json:"brittleness_score"`
	CohensD           *float64 `json:"cohens_d,omitempty"`
}

// WithCohensD returns a copy of the summary carrying the given effect size.
func (s Summary) WithCohensD(d float64) Summary {
	s.CohensD = &d
	return s
}

// Options controls the parameters of an analysis. Zero values select the defaults.
type Options struct {
	Confidence    float64
	NegativeLabel string
	PositiveLabel string
}

func (o Options) withDefaults() Options {
	o.Confidence = normalizeConfidence(o.Confidence)
	if o.NegativeLabel == "" {
		o.NegativeLabel = DefaultNegativeLabel
	}
	if o.PositiveLabel == "" {
		o.PositiveLabel = DefaultPositiveLabel
	}
	return o
}

func countCorrect(results []TestResult) int {
	correct := 0
	for _, r := range results {
		if r.Correct {
			correct++
		}
	}
	return correct
}
