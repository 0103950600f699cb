package stats

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestAnalyzeExampleBatch(t *testing.T) {
	got := Analyze(ExampleResults(), DefaultConfidence)

	_, lower, upper := AccuracyWithCI(ExampleResults(), DefaultConfidence)
	want := Summary{
		N:                 6,
		Accuracy:          0.5,
		CILower:           lower,
		CIUpper:           upper,
		FalsePositiveRate: 2.0 / 3.0,
		FalseNegativeRate: 1.0 / 3.0,
		BrittlenessScore:  100,
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Fatalf("Analyze mismatch (-want +got):\n%s", diff)
	}
	if got.CohensD != nil {
		t.Fatalf("expected CohensD to be unset, got %v", *got.CohensD)
	}
}

func TestAnalyzeEmpty(t *testing.T) {
	got := Analyze(nil, DefaultConfidence)
	if diff := cmp.Diff(Summary{}, got); diff != "" {
		t.Fatalf("expected zero summary for empty batch (-want +got):\n%s", diff)
	}
}

func TestAnalyzeWithCustomLabels(t *testing.T) {
	results := []TestResult{
		NewTestResult("1", "SAFE", "UNSAFE", "a"),
		NewTestResult("2", "SAFE", "SAFE", "a"),
		NewTestResult("3", "UNSAFE", "SAFE", "b"),
	}
	got := AnalyzeWith(results, Options{NegativeLabel: "SAFE", PositiveLabel: "UNSAFE"})
	if got.FalsePositiveRate != 0.5 || got.FalseNegativeRate != 1 {
		t.Fatalf("unexpected rates: FPR=%f FNR=%f", got.FalsePositiveRate, got.FalseNegativeRate)
	}
	if got.BrittlenessScore != 50 {
		t.Fatalf("BrittlenessScore = %f, want 50", got.BrittlenessScore)
	}
}

func TestSummaryWithCohensD(t *testing.T) {
	base := Analyze(ExampleResults(), DefaultConfidence)
	withD := base.WithCohensD(0.8)
	if base.CohensD != nil {
		t.Fatal("WithCohensD modified the receiver")
	}
	if withD.CohensD == nil || *withD.CohensD != 0.8 {
		t.Fatalf("expected CohensD 0.8, got %v", withD.CohensD)
	}
}

func TestQuickAnalyze(t *testing.T) {
	got, err := QuickAnalyze(
		[]string{"YES", "NO", "YES", "NO"},
		[]string{"YES", "YES", "YES", "NO"},
		nil,
	)
	if err != nil {
		t.Fatalf("QuickAnalyze error: %v", err)
	}
	if got.N != 4 || got.Accuracy != 0.75 || got.FalsePositiveRate != 0.5 || got.FalseNegativeRate != 0 {
		t.Fatalf("unexpected summary: %+v", got)
	}
	if got.BrittlenessScore != 0 {
		t.Fatalf("expected 0 brittleness with a single default format, got %f", got.BrittlenessScore)
	}

	withFormats, err := QuickAnalyze(
		[]string{"YES", "NO", "YES", "NO"},
		[]string{"YES", "YES", "YES", "NO"},
		[]string{"plain", "plain", "json", "json"},
	)
	if err != nil {
		t.Fatalf("QuickAnalyze error: %v", err)
	}
	if withFormats.BrittlenessScore != 50 {
		t.Fatalf("BrittlenessScore = %f, want 50", withFormats.BrittlenessScore)
	}
}

func TestQuickAnalyzeLengthMismatch(t *testing.T) {
	tests := []struct {
		name                      string
		expected, actual, formats []string
	}{
		{name: "actual shorter", expected: []string{"YES", "NO"}, actual: []string{"YES"}},
		{name: "formats shorter", expected: []string{"YES", "NO"}, actual: []string{"YES", "NO"}, formats: []string{"a"}},
		{name: "formats empty", expected: []string{"YES"}, actual: []string{"YES"}, formats: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := QuickAnalyze(tt.expected, tt.actual, tt.formats); !errors.Is(err, ErrLengthMismatch) {
				t.Fatalf("expected ErrLengthMismatch, got %v", err)
			}
		})
	}
}

func TestNewTestResultDefaults(t *testing.T) {
	r := NewTestResult("7", "YES", "YES", "")
	want := TestResult{TestID: "7", Expected: "YES", Actual: "YES", Correct: true, PromptFormat: DefaultPromptFormat, Model: DefaultModel}
	if diff := cmp.Diff(want, r); diff != "" {
		t.Fatalf("NewTestResult mismatch (-want +got):\n%s", diff)
	}
}

func TestQuickAnalyzeWithOptions(t *testing.T) {
	got, err := QuickAnalyzeWith(
		[]string{"SAFE", "UNSAFE", "UNSAFE"},
		[]string{"UNSAFE", "UNSAFE", "SAFE"},
		nil,
		Options{Confidence: 0.99, NegativeLabel: "SAFE", PositiveLabel: "UNSAFE"},
	)
	if err != nil {
		t.Fatalf("QuickAnalyzeWith error: %v", err)
	}
	if got.FalsePositiveRate != 1 || got.FalseNegativeRate != 0.5 {
		t.Fatalf("unexpected rates: %+v", got)
	}

	_, lower95, _ := AccuracyWithCI([]TestResult{
		NewTestResult("0", "SAFE", "UNSAFE", ""),
		NewTestResult("1", "UNSAFE", "UNSAFE", ""),
		NewTestResult("2", "UNSAFE", "SAFE", ""),
	}, 0.95)
	if got.CILower >= lower95 {
		t.Fatalf("expected a wider 99%% interval, lower %v vs 95%% lower %v", got.CILower, lower95)
	}
}
