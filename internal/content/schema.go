package content

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://sixteen-content.json"

// documentSchema is the structural shape of a content document. Semantic
// rules (axis letters, id ordering, full type coverage) live in Validate.
var documentSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"version": map[string]any{
			"type":    "string",
			"pattern": `^v[0-9]+\.[0-9]+\.[0-9]+$`,
		},
		"default_cta_link": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
		"questions": map[string]any{
			"type":     "array",
			"minItems": 4,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":   map[string]any{"type": "integer", "minimum": 1},
					"text": map[string]any{"type": "string", "minLength": 1},
					"axis": map[string]any{"type": "string", "enum": []any{"EI", "SN", "TF", "JP"}},
					"options": map[string]any{
						"type":     "array",
						"minItems": 2,
						"maxItems": 2,
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"text":  map[string]any{"type": "string", "minLength": 1},
								"value": map[string]any{"type": "string", "enum": []any{"E", "I", "S", "N", "T", "F", "J", "P"}},
							},
							"required":             []any{"text", "value"},
							"additionalProperties": false,
						},
					},
					"asset": map[string]any{"type": "string"},
				},
				"required":             []any{"id", "text", "axis", "options"},
				"additionalProperties": false,
			},
		},
		"results": map[string]any{
			"type":          "object",
			"propertyNames": map[string]any{"pattern": "^[EI][SN][TF][JP]$"},
			"minProperties": 16,
			"maxProperties": 16,
			"additionalProperties": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"type":        map[string]any{"type": "string", "pattern": "^[EI][SN][TF][JP]$"},
					"title":       map[string]any{"type": "string", "minLength": 1},
					"description": map[string]any{"type": "string", "minLength": 1},
					"strengths":   stringList,
					"weaknesses":  stringList,
					"professions": stringList,
					"cta_link":    map[string]any{"type": "string"},
					"asset":       map[string]any{"type": "string"},
				},
				"required":             []any{"type", "title", "description", "strengths", "weaknesses"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"version", "default_cta_link", "questions", "results"},
	"additionalProperties": false,
}

var stringList = map[string]any{
	"type":  "array",
	"items": map[string]any{"type": "string", "minLength": 1},
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants a decoded JSON value, not Go map literals with
		// typed slices, so round-trip the definition once.
		defBytes, err := json.Marshal(documentSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var def any
		if err := json.Unmarshal(defBytes, &def); err != nil {
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

// validateSchema checks raw JSON against the document schema.
func validateSchema(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	sch, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile content schema: %w", err)
	}
	if err := sch.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
