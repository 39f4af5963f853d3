package nlp

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// entitySchema constrains the vendor's entity-extraction response. Offsets
// are byte positions into the submitted text; a malformed response is a
// zero contribution, so validation failures surface as errors, never
// panics.
func entitySchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"entities": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"properties": map[string]any{
						"type":         map[string]any{"type": "string", "minLength": 1},
						"text":         map[string]any{"type": "string"},
						"begin_offset": map[string]any{"type": "integer", "minimum": 0},
						"end_offset":   map[string]any{"type": "integer", "minimum": 0},
						"normalized":   map[string]any{"type": "string"},
						"probability":  map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
					},
					"required": []string{"type", "begin_offset", "end_offset"},
				},
			},
		},
		"required": []string{"entities"},
	}
}

// validate checks data against schemaMap before parsing.
func validate(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
