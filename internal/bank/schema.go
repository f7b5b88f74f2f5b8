package bank

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// fileSchema is the JSON schema a bank file must satisfy before it is
// decoded. Deliberately permissive about per-question content (the
// loader applies its own skip policy); strict about overall shape.
var fileSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"meta": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"title":   map[string]any{"type": "string"},
				"version": map[string]any{"type": "string"},
				"scoring": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"result_labels": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"min_percent": map[string]any{"type": "number"},
									"max_percent": map[string]any{"type": "number"},
									"label":       map[string]any{"type": "string"},
								},
								"required": []any{"min_percent", "max_percent", "label"},
							},
						},
					},
				},
			},
		},
		"questions": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":       map[string]any{"type": "string"},
					"text":     map[string]any{"type": "string"},
					"answer":   map[string]any{"type": "string"},
					"category": map[string]any{"type": "string"},
					"options": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"key":  map[string]any{"type": "string"},
								"text": map[string]any{"type": "string"},
							},
							"required": []any{"key", "text"},
						},
					},
				},
				"required": []any{"id", "text", "options", "answer"},
			},
		},
	},
	"required": []any{"questions"},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validateFile checks raw bank bytes against the file schema.
func validateFile(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := getCompiledSchema()
	if err != nil {
		return fmt.Errorf("compile bank schema: %w", err)
	}

	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("bank schema validation failed: %w", err)
	}
	return nil
}

func getCompiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value, not raw
		// bytes. Round-trip the definition through json to get one.
		defBytes, err := json.Marshal(fileSchema)
		if err != nil {
			compileErr = err
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = err
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://theoryprep-bank.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = err
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}
