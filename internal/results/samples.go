package results

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mwiater/riskstats/internal/logging"
)

// LoadSamples reads a JSON array of numbers.
func LoadSamples(path string) ([]float64, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sample file %s: %w", path, err)
	}
	values, err := ParseSamples(raw)
	if err != nil {
		return nil, fmt.Errorf("sample file %s: %w", path, err)
	}
	logging.LogEvent("[RESULTS] loaded %d values from %s", len(values), path)
	return values, nil
}

// ParseSamples decodes a JSON array of numbers.
func ParseSamples(raw []byte) ([]float64, error) {
	if err := validate(sampleSchema, raw); err != nil {
		return nil, err
	}
	var values []float64
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, fmt.Errorf("parse samples: %w", err)
	}
	return values, nil
}
