// Package report renders statistical summaries as fixed-layout text reports.
package report

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"
	"text/template"

	"github.com/mwiater/riskstats/internal/stats"
)

// Interpretation bands. Downstream report parsers match on the exact wording
// produced from these, so they are not configurable.
const (
	highAccuracy        = 0.90
	moderateAccuracy    = 0.70
	criticalFPR         = 0.20
	highBrittleness     = 20.0
	moderateBrittleness = 10.0
)

const (
	accuracyHigh     = "- Accuracy: HIGH (>90%)"
	accuracyModerate = "- Accuracy: MODERATE (70-90%)"
	accuracyLow      = "- Accuracy: LOW (<70%) - DEPLOYMENT RISK"

	fprCritical = "- False Positive Rate: HIGH (>20%) - CRITICAL for safety applications"

	brittlenessHigh     = "- Brittleness: HIGH (>20pp) - Pattern matching, not robust understanding"
	brittlenessModerate = "- Brittleness: MODERATE (10-20pp) - Some format sensitivity"
	brittlenessLow      = "- Brittleness: LOW (<10pp) - Relatively robust to format changes"
)

// DefaultSystemName labels reports generated without a system name.
const DefaultSystemName = "LLM System"

var rule = strings.Repeat("=", 80)

type reportData struct {
	SystemName      string
	ConfidenceLabel string
	Summary         stats.Summary
	Interpretation  []string
	Rule            string
}

const reportTemplateText = `
{{.Rule}}
STATISTICAL ANALYSIS REPORT: {{.SystemName}}
{{.Rule}}

SAMPLE SIZE: {{.Summary.N}} test cases

ACCURACY METRICS
----------------
Overall Accuracy: {{pct .Summary.Accuracy}}
{{.ConfidenceLabel}} Confidence Interval: [{{pct .Summary.CILower}}, {{pct .Summary.CIUpper}}]

ERROR RATES
-----------
False Positive Rate: {{pct .Summary.FalsePositiveRate}}
False Negative Rate: {{pct .Summary.FalseNegativeRate}}

BRITTLENESS
-----------
Brittleness Score: {{fixed1 .Summary.BrittlenessScore}} percentage points
(Maximum accuracy difference across prompt formats)

INTERPRETATION
--------------
{{range .Interpretation}}{{.}}
{{end}}
{{.Rule}}
`

var reportTemplate = template.Must(template.New("stats-report").Funcs(template.FuncMap{
	"pct":    percent,
	"fixed1": func(v float64) string { return strconv.FormatFloat(v, 'f', 1, 64) },
}).Parse(reportTemplateText))

// Generate analyzes results with the default options and renders the report.
func Generate(results []stats.TestResult, systemName string) (string, error) {
	return GenerateWith(results, systemName, stats.Options{})
}

// GenerateWith analyzes results with opts and renders the report.
func GenerateWith(results []stats.TestResult, systemName string, opts stats.Options) (string, error) {
	confidence := opts.Confidence
	if math.IsNaN(confidence) || confidence <= 0 || confidence >= 1 {
		confidence = stats.DefaultConfidence
	}
	opts.Confidence = confidence

	return Render(stats.AnalyzeWith(results, opts), systemName, confidence)
}

// Render formats an existing summary. confidence only labels the interval line.
func Render(summary stats.Summary, systemName string, confidence float64) (string, error) {
	if strings.TrimSpace(systemName) == "" {
		systemName = DefaultSystemName
	}

	data := reportData{
		SystemName:      systemName,
		ConfidenceLabel: confidenceLabel(confidence),
		Summary:         summary,
		Interpretation:  Interpret(summary),
		Rule:            rule,
	}

	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}
	return buf.String(), nil
}

// Interpret returns the qualitative interpretation lines for a summary.
func Interpret(summary stats.Summary) []string {
	lines := make([]string, 0, 3)

	switch {
	case summary.Accuracy >= highAccuracy:
		lines = append(lines, accuracyHigh)
	case summary.Accuracy >= moderateAccuracy:
		lines = append(lines, accuracyModerate)
	default:
		lines = append(lines, accuracyLow)
	}

	if summary.FalsePositiveRate > criticalFPR {
		lines = append(lines, fprCritical)
	}

	switch {
	case summary.BrittlenessScore > highBrittleness:
		lines = append(lines, brittlenessHigh)
	case summary.BrittlenessScore > moderateBrittleness:
		lines = append(lines, brittlenessModerate)
	default:
		lines = append(lines, brittlenessLow)
	}

	return lines
}

func percent(v float64) string {
	return strconv.FormatFloat(v*100, 'f', 1, 64) + "%"
}

func confidenceLabel(confidence float64) string {
	return strconv.FormatFloat(math.Round(confidence*1000)/10, 'f', -1, 64) + "%"
}
