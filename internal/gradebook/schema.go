package gradebook

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://gradebook.json"

// Definition is the JSON Schema every loaded gradebook document must
// satisfy before it is decoded.
var Definition = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"assignments": map[string]any{
			"type": "array",
			"items": map[string]any{
				"oneOf": []any{
					map[string]any{"type": "string", "minLength": 1},
					map[string]any{
						"type": "object",
						"properties": map[string]any{
							"name": map[string]any{"type": "string", "minLength": 1},
							"id":   map[string]any{"type": "integer"},
						},
						"required": []any{"name"},
					},
				},
			},
		},
		"students": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"sortable_name": map[string]any{"type": "string"},
					"id":            map[string]any{"type": "integer"},
					"grades": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"score": map[string]any{"type": []any{"integer", "null"}},
								"late":  map[string]any{"type": "integer"},
								"posts": map[string]any{
									"type": "array",
									"items": map[string]any{
										"type": "object",
										"properties": map[string]any{
											"length": map[string]any{"type": "integer", "minimum": 0},
											"images": map[string]any{"type": "integer", "minimum": 0},
										},
										"required": []any{"length", "images"},
									},
								},
							},
							"required": []any{"score", "late", "posts"},
						},
					},
				},
				"required": []any{"sortable_name", "id", "grades"},
			},
		},
	},
	"required": []any{"assignments", "students"},
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// validateDocument checks a decoded JSON value against Definition.
func validateDocument(doc any) error {
	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile gradebook schema: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return &SchemaError{Err: err}
	}
	return nil
}

func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants a plain decoded JSON value, not Go maps with
		// typed slices, so round-trip the definition first.
		raw, err := json.Marshal(Definition)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var def any
		if err := json.Unmarshal(raw, &def); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}
