package api

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// envelopeJSONSchema returns a JSON-Schema (draft 2020-12 subset) for the
// list-response envelope as a generic map. Responses are validated against it
// before any field is trusted; optimistic field access never leaves this
// package.
func envelopeJSONSchema() map[string]any {
	intProp := func() map[string]any {
		return map[string]any{"type": "integer", "minimum": 0}
	}
	pagination := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"page":       intProp(),
			"limit":      intProp(),
			"total":      intProp(),
			"totalPages": intProp(),
		},
		"required": []string{"page", "totalPages"},
	}
	data := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"items":      map[string]any{"type": "array"},
			"pagination": pagination,
		},
		"required": []string{"items"},
	}
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"success": map[string]any{"type": "boolean"},
			"message": map[string]any{"type": "string"},
			"data":    data,
		},
		"required": []string{"success", "data"},
	}
}

// compileSchema compiles schemaMap into a reusable validator.
func compileSchema(schemaMap map[string]any) (*jsonschema.Schema, error) {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("envelope.json", bytes.NewReader(b)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("envelope.json")
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return schema, nil
}

// validateJSON validates data against the compiled schema.
func validateJSON(schema *jsonschema.Schema, data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
