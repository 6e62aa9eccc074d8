package bank

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const importSchemaURL = "schema://bank-import.json"

// importSchemaDef is the JSON Schema for import files. Shape and
// bounds live here; rules the schema cannot express, like correct
// counts per question type, run in validateImport.
var importSchemaDef = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"exam": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"name":               map[string]any{"type": "string", "minLength": 1},
				"vendor":             map[string]any{"type": "string"},
				"exam_code":          map[string]any{"type": "string"},
				"description":        map[string]any{"type": "string"},
				"passing_score":      map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
				"time_limit_minutes": map[string]any{"type": "integer", "minimum": 0},
			},
			"required":             []string{"name"},
			"additionalProperties": false,
		},
		"topics": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"name":           map[string]any{"type": "string", "minLength": 1},
					"description":    map[string]any{"type": "string"},
					"weight_percent": map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
				},
				"required":             []string{"name"},
				"additionalProperties": false,
			},
		},
		"questions": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"text":         map[string]any{"type": "string", "minLength": 1},
					"type":         map[string]any{"type": "string", "enum": []string{"single", "choose_n", "select_all"}},
					"choose_count": map[string]any{"type": "integer", "minimum": 1},
					"difficulty":   map[string]any{"type": "string", "enum": []string{"easy", "medium", "hard"}},
					"explanation":  map[string]any{"type": "string"},
					"source":       map[string]any{"type": "string"},
					"pattern_tags": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					"topics":       map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					"options": map[string]any{
						"type":     "array",
						"minItems": 2,
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"text":              map[string]any{"type": "string", "minLength": 1},
								"correct":           map[string]any{"type": "boolean"},
								"distractor_reason": map[string]any{"type": "string"},
							},
							"required":             []string{"text", "correct"},
							"additionalProperties": false,
						},
					},
				},
				"required":             []string{"text", "type", "options"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []string{"exam", "questions"},
	"additionalProperties": false,
}

// compiledImportSchema compiles the import schema once per process.
var compiledImportSchema = sync.OnceValues(compileImportSchema)

func compileImportSchema() (*jsonschema.Schema, error) {
	// The jsonschema library expects a parsed JSON value (any), not raw
	// bytes. Marshal then unmarshal to get a clean any representation.
	defBytes, err := json.Marshal(importSchemaDef)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(importSchemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(importSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	return compiled, nil
}
