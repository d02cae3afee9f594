package draft

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/careerform/internal/form"
)

const schemaURL = "schema://careerform/draft.json"

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// schemaDefinition builds the draft document schema from the field catalog:
// checkbox groups are string arrays, every other field is a string. Unknown
// keys are allowed so that drafts written by older builds still load.
func schemaDefinition() map[string]any {
	props := make(map[string]any)
	for _, s := range form.Specs() {
		if s.IsMulti() {
			props[string(s.Field)] = map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			}
			continue
		}
		props[string(s.Field)] = map[string]any{"type": "string"}
	}
	return map[string]any{
		"$schema":    "https://json-schema.org/draft/2020-12/schema",
		"type":       "object",
		"properties": props,
	}
}

func draftSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants a decoded JSON value, so round-trip the definition.
		defBytes, err := json.Marshal(schemaDefinition())
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
		if compileErr != nil {
			compileErr = fmt.Errorf("compile: %w", compileErr)
		}
	})
	return compiled, compileErr
}

// validateDocument checks a decoded draft against the catalog schema.
func validateDocument(doc any) error {
	s, err := draftSchema()
	if err != nil {
		return err
	}
	return s.Validate(doc)
}
