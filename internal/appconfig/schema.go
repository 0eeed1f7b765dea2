package appconfig

import (
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Schema returns the JSON schema a configuration file must satisfy.
func Schema() map[string]any {
	intArray := map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "integer"},
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"runs":            map[string]any{"type": "integer"},
			"seed":            map[string]any{"type": "integer", "minimum": 0},
			"artistCount":     map[string]any{"type": "integer", "minimum": 0},
			"stageCount":      map[string]any{"type": "integer", "minimum": 0},
			"searchName":      map[string]any{"type": "string"},
			"fibonacciN":      map[string]any{"type": "integer", "minimum": 0, "maximum": 50},
			"duplicateInput":  intArray,
			"commonInputs":    map[string]any{"type": "array", "items": intArray, "minItems": 2, "maxItems": 2},
			"lookupLatencyMs": map[string]any{"type": "integer", "minimum": 0},
			"tests": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"output":  map[string]any{"type": "string", "enum": []string{OutputText, OutputJSON, OutputTUI}},
			"debug":   map[string]any{"type": "boolean"},
			"logFile": map[string]any{"type": "string"},
		},
	}
}

// ValidateDocument checks a raw JSON configuration document against Schema.
func ValidateDocument(data []byte) error {
	result, err := gojsonschema.Validate(gojsonschema.NewGoLoader(Schema()), gojsonschema.NewBytesLoader(data))
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

// ValidateFile reads path and checks it against Schema.
func ValidateFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read config file %q: %w", path, err)
	}
	if err := ValidateDocument(data); err != nil {
		return fmt.Errorf("config file %q: %w", path, err)
	}
	return nil
}
