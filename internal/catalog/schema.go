package catalog

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// catalogSchema is the JSON Schema every catalog file must satisfy.
const catalogSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "JobCatalog",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["title", "company", "location", "url", "skills"],
    "properties": {
      "title": {"type": "string", "minLength": 1},
      "company": {"type": "string", "minLength": 1},
      "location": {"type": "string", "minLength": 1},
      "url": {"type": "string", "minLength": 1},
      "skills": {
        "type": "array",
        "minItems": 1,
        "items": {"type": "string", "minLength": 1}
      }
    },
    "additionalProperties": false
  }
}`

// validateSchema checks the raw catalog document against the catalog schema.
func validateSchema(data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(catalogSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("catalog schema validation failed: %w", err)
	}

	if !result.Valid() {
		var msgs []string
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		return fmt.Errorf("catalog does not match schema: %s", strings.Join(msgs, "; "))
	}

	return nil
}
