package results

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mwiater/riskstats/internal/logging"
	"github.com/mwiater/riskstats/internal/stats"
	"github.com/xeipuuv/gojsonschema"
)

// outcomeRecord is the on-disk shape of a test outcome. Correct is optional;
// when absent the record is correct iff its labels match.
type outcomeRecord struct {
	TestID       recordID `json:"test_id"`
	Expected     string   `json:"expected"`
	Actual       string   `json:"actual"`
	Correct      *bool    `json:"correct"`
	PromptFormat string   `json:"prompt_format"`
	Model        string   `json:"model"`
	LatencyMs    float64  `json:"latency_ms"`
}

// recordID accepts either a JSON string or a JSON number.
type recordID string

func (id *recordID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = recordID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("test_id must be a string or number: %w", err)
	}
	*id = recordID(n.String())
	return nil
}

func (r outcomeRecord) toResult(line int) stats.TestResult {
	result := stats.TestResult{
		TestID:       string(r.TestID),
		Expected:     r.Expected,
		Actual:       r.Actual,
		Correct:      r.Expected == r.Actual,
		PromptFormat: r.PromptFormat,
		Model:        r.Model,
		LatencyMs:    r.LatencyMs,
	}
	if r.Correct != nil {
		result.Correct = *r.Correct
	}
	if result.TestID == "" {
		result.TestID = fmt.Sprintf("%d", line)
	}
	if strings.TrimSpace(result.PromptFormat) == "" {
		result.PromptFormat = stats.DefaultPromptFormat
	}
	if strings.TrimSpace(result.Model) == "" {
		result.Model = stats.DefaultModel
	}
	return result
}

// LoadOutcomes reads a JSONL file of test outcomes.
func LoadOutcomes(path string) ([]stats.TestResult, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read results file %s: %w", path, err)
	}
	defer file.Close()

	results, err := ReadOutcomes(file, path)
	if err != nil {
		return nil, err
	}
	logging.LogEvent("[RESULTS] loaded %d outcomes from %s", len(results), path)
	return results, nil
}

// ReadOutcomes decodes JSONL outcomes from r. source names the input in errors.
func ReadOutcomes(r io.Reader, source string) ([]stats.TestResult, error) {
	var results []stats.TestResult
	err := scanJSONLines(r, source, outcomeSchema, func(line int, raw []byte) error {
		var record outcomeRecord
		if err := json.Unmarshal(raw, &record); err != nil {
			return err
		}
		results = append(results, record.toResult(line))
		return nil
	})
	return results, err
}

// FilterModel keeps the results produced by model. An empty model keeps everything.
func FilterModel(results []stats.TestResult, model string) []stats.TestResult {
	model = strings.TrimSpace(model)
	if model == "" {
		return results
	}
	filtered := make([]stats.TestResult, 0, len(results))
	for _, r := range results {
		if r.Model == model {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// scanJSONLines validates each non-blank line against schema and hands it to
// fn with its 1-based line number.
func scanJSONLines(r io.Reader, source string, schema *gojsonschema.Schema, fn func(line int, raw []byte) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 1024*1024), 50*1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		raw := []byte(strings.TrimSpace(scanner.Text()))
		if len(raw) == 0 {
			continue
		}
		if err := validate(schema, raw); err != nil {
			return fmt.Errorf("invalid record %s:%d: %w", source, line, err)
		}
		if err := fn(line, raw); err != nil {
			return fmt.Errorf("parse record %s:%d: %w", source, line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scan results file %s: %w", source, err)
	}
	return nil
}
