// Package results loads test outcomes and numeric samples from disk.
package results

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

func outcomeSchemaDefinition() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"test_id":       map[string]any{"type": []string{"string", "integer"}},
			"expected":      map[string]any{"type": "string"},
			"actual":        map[string]any{"type": "string"},
			"correct":       map[string]any{"type": "boolean"},
			"prompt_format": map[string]any{"type": "string"},
			"model":         map[string]any{"type": "string"},
			"latency_ms":    map[string]any{"type": "number", "minimum": 0},
		},
		"required": []string{"expected", "actual"},
	}
}

func accuracySchemaDefinition() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"promptId":          map[string]any{"type": "integer"},
			"model":             map[string]any{"type": "string"},
			"expectedAnswer":    map[string]any{"type": "integer"},
			"response":          map[string]any{"type": "string"},
			"evaluatedResponse": map[string]any{"type": "string"},
			"correct":           map[string]any{"type": "boolean"},
			"parameterTemplate": map[string]any{"type": "string"},
			"total_duration_ms": map[string]any{"type": "integer"},
		},
		"required": []string{"promptId", "expectedAnswer", "correct"},
	}
}

func sampleSchemaDefinition() map[string]any {
	return map[string]any{
		"type":     "array",
		"items":    map[string]any{"type": "number"},
		"minItems": 1,
	}
}

var (
	outcomeSchema  = mustSchema(outcomeSchemaDefinition())
	accuracySchema = mustSchema(accuracySchemaDefinition())
	sampleSchema   = mustSchema(sampleSchemaDefinition())
)

func mustSchema(def map[string]any) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(def))
	if err != nil {
		panic(fmt.Sprintf("invalid embedded schema: %v", err))
	}
	return schema
}

// validate checks a raw JSON document against schema and folds every
// violation into a single error.
func validate(schema *gojsonschema.Schema, raw []byte) error {
	result, err := schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var errs []string
	for _, desc := range result.Errors() {
		errs = append(errs, desc.String())
	}
	return fmt.Errorf("JSON validation failed: %s", strings.Join(errs, ", "))
}
