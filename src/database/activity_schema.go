package database

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const activitiesSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": {
    "type": "object",
    "required": ["description", "schedule", "max_participants"],
    "properties": {
      "description": {"type": "string"},
      "schedule": {"type": "string"},
      "max_participants": {"type": "integer", "minimum": 1},
      "participants": {
        "type": "array",
        "items": {"type": "string"},
        "uniqueItems": true
      }
    }
  }
}`

var activitiesSchemaLoader = gojsonschema.NewStringLoader(activitiesSchema)

// validateActivitiesDocument checks raw file content against the activities schema.
func validateActivitiesDocument(raw []byte) error {
	result, err := gojsonschema.Validate(activitiesSchemaLoader, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return fmt.Errorf("activities file does not match schema: %s", strings.Join(errs, "; "))
	}
	return nil
}
