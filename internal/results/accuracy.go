package results

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mwiater/riskstats/internal/logging"
	"github.com/mwiater/riskstats/internal/stats"
)

// AccuracyRecord is the subset of an agon accuracy-suite JSONL line needed
// to build a test outcome.
type AccuracyRecord struct {
	PromptID          int    `json:"promptId"`
	Model             string `json:"model"`
	ExpectedAnswer    int    `json:"expectedAnswer"`
	Response          string `json:"response"`
	EvaluatedResponse string `json:"evaluatedResponse,omitempty"`
	Correct           bool   `json:"correct"`
	ParameterTemplate string `json:"parameterTemplate,omitempty"`
	TotalDurationMs   int    `json:"total_duration_ms"`
}

// TestResult converts the record. The parameter template stands in for the
// prompt format so brittleness compares templates.
func (r AccuracyRecord) TestResult() stats.TestResult {
	actual := strings.TrimSpace(r.EvaluatedResponse)
	if actual == "" {
		actual = strings.TrimSpace(r.Response)
	}
	format := strings.TrimSpace(r.ParameterTemplate)
	if format == "" {
		format = stats.DefaultPromptFormat
	}
	model := strings.TrimSpace(r.Model)
	if model == "" {
		model = stats.DefaultModel
	}
	return stats.TestResult{
		TestID:       strconv.Itoa(r.PromptID),
		Expected:     strconv.Itoa(r.ExpectedAnswer),
		Actual:       actual,
		Correct:      r.Correct,
		PromptFormat: format,
		Model:        model,
		LatencyMs:    float64(r.TotalDurationMs),
	}
}

// LoadAccuracyResults reads an agon accuracy results JSONL file.
func LoadAccuracyResults(path string) ([]stats.TestResult, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read accuracy file %s: %w", path, err)
	}
	defer file.Close()

	results, err := ReadAccuracyResults(file, path)
	if err != nil {
		return nil, err
	}
	logging.LogEvent("[RESULTS] loaded %d accuracy records from %s", len(results), path)
	return results, nil
}

// ReadAccuracyResults decodes agon accuracy JSONL from r.
func ReadAccuracyResults(r io.Reader, source string) ([]stats.TestResult, error) {
	var results []stats.TestResult
	err := scanJSONLines(r, source, accuracySchema, func(_ int, raw []byte) error {
		var record AccuracyRecord
		if err := json.Unmarshal(raw, &record); err != nil {
			return err
		}
		results = append(results, record.TestResult())
		return nil
	})
	return results, err
}
