package stats

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrLengthMismatch is returned by QuickAnalyze when its label slices differ in length.
var ErrLengthMismatch = errors.New("length mismatch")

// Analyze summarizes a batch using the default class labels.
func Analyze(results []TestResult, confidence float64) Summary {
	return AnalyzeWith(results, Options{Confidence: confidence})
}

// AnalyzeWith summarizes a batch. The returned summary never carries an
// effect size; see Summary.WithCohensD.
func AnalyzeWith(results []TestResult, opts Options) Summary {
	opts = opts.withDefaults()

	accuracy, lower, upper := AccuracyWithCI(results, opts.Confidence)
	return Summary{
		N:                 len(results),
		Accuracy:          accuracy,
		CILower:           lower,
		CIUpper:           upper,
		FalsePositiveRate: FalsePositiveRate(results, opts.NegativeLabel),
		FalseNegativeRate: FalseNegativeRate(results, opts.PositiveLabel),
		BrittlenessScore:  Brittleness(GroupByFormat(results)),
	}
}

// QuickAnalyze builds records from parallel label slices, marking a record
// correct when its labels are equal, and summarizes them. A nil formats slice
// puts every record in the default format.
func QuickAnalyze(expected, actual, formats []string) (Summary, error) {
	return QuickAnalyzeWith(expected, actual, formats, Options{Confidence: DefaultConfidence})
}

// QuickAnalyzeWith is QuickAnalyze with explicit analysis options.
func QuickAnalyzeWith(expected, actual, formats []string, opts Options) (Summary, error) {
	if len(expected) != len(actual) {
		return Summary{}, fmt.Errorf("%w: %d expected labels, %d actual labels", ErrLengthMismatch, len(expected), len(actual))
	}
	if formats != nil && len(formats) != len(expected) {
		return Summary{}, fmt.Errorf("%w: %d labels, %d formats", ErrLengthMismatch, len(expected), len(formats))
	}

	results := make([]TestResult, len(expected))
	for i := range expected {
		format := DefaultPromptFormat
		if formats != nil {
			format = formats[i]
		}
		results[i] = NewTestResult(strconv.Itoa(i), expected[i], actual[i], format)
	}
	return AnalyzeWith(results, opts), nil
}
