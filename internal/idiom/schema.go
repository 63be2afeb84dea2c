package idiom

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// packSchema is the JSON Schema every content pack must satisfy before
// it is decoded. Structural problems surface here with a path into the
// offending idiom rather than as zero values later.
const packSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["name", "version", "idioms"],
  "properties": {
    "name": {"type": "string", "minLength": 1},
    "version": {"type": "string", "minLength": 1},
    "minAppVersion": {"type": "string"},
    "idioms": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["id", "idiom", "meaning", "literalMeaning", "categories", "difficulty", "frequency", "examples"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "idiom": {"type": "string", "minLength": 1},
          "meaning": {"type": "string", "minLength": 1},
          "literalMeaning": {"type": "string"},
          "categories": {"type": "array", "minItems": 1, "items": {"type": "string"}},
          "difficulty": {"enum": ["beginner", "intermediate", "advanced"]},
          "frequency": {"enum": ["common", "moderate", "rare"]},
          "examples": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["sentence"],
              "properties": {
                "sentence": {"type": "string", "minLength": 1},
                "context": {"type": "string"},
                "explanation": {"type": "string"}
              }
            }
          },
          "audioFile": {"type": "string"},
          "relatedIdioms": {"type": "array", "items": {"type": "string"}},
          "origin": {"type": "string"},
          "tags": {"type": "array", "items": {"type": "string"}}
        }
      }
    }
  }
}`

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validatePack checks raw pack JSON against packSchema.
func validatePack(raw []byte) error {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader([]byte(packSchema)))
		if err != nil {
			compileErr = fmt.Errorf("parse pack schema: %w", err)
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("pack.json", doc); err != nil {
			compileErr = fmt.Errorf("add pack schema: %w", err)
			return
		}
		compiledSchema, compileErr = compiler.Compile("pack.json")
	})
	if compileErr != nil {
		return compileErr
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid pack JSON: %w", err)
	}
	if err := compiledSchema.Validate(parsed); err != nil {
		return fmt.Errorf("pack schema validation failed: %w", err)
	}
	return nil
}
