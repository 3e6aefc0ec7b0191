package sdk

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// taskSchemaJSON validates a single task payload before decoding. Only the
// fields the engine depends on are constrained; unknown fields pass through.
const taskSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["task"],
  "properties": {
    "task": { "$ref": "#/definitions/task" }
  },
  "definitions": {
    "task": {
      "type": "object",
      "required": ["id"],
      "properties": {
        "id": { "type": "string", "minLength": 1 },
        "title": { "type": "string" },
        "priority": { "enum": ["", "low", "medium", "high"] },
        "roadmapItems": {
          "type": "array",
          "items": {
            "type": "object",
            "required": ["text", "completed"],
            "properties": {
              "text": { "type": "string" },
              "completed": { "type": "boolean" }
            }
          }
        },
        "overallProgress": { "type": "integer", "minimum": 0, "maximum": 100 },
        "completed": { "type": "boolean" }
      }
    }
  }
}`

// taskListSchemaJSON validates the task collection payload.
const taskListSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["tasks"],
  "properties": {
    "tasks": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id"],
        "properties": {
          "id": { "type": "string", "minLength": 1 }
        }
      }
    }
  }
}`

// membersSchemaJSON validates the group-membership payload.
const membersSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["members"],
  "properties": {
    "members": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id"],
        "properties": {
          "id": { "type": "string" },
          "username": { "type": "string" }
        }
      }
    }
  }
}`

var (
	taskSchemaLoader     = gojsonschema.NewStringLoader(taskSchemaJSON)
	taskListSchemaLoader = gojsonschema.NewStringLoader(taskListSchemaJSON)
	membersSchemaLoader  = gojsonschema.NewStringLoader(membersSchemaJSON)
)

// validatePayload checks raw payload bytes against a schema before decoding.
func validatePayload(schema gojsonschema.JSONLoader, data []byte, path string) error {
	if len(data) == 0 {
		return fmt.Errorf("%s: %w", path, ErrNoData)
	}
	result, err := gojsonschema.Validate(schema, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return &SchemaError{Path: path, Causes: []string{err.Error()}}
	}
	if !result.Valid() {
		causes := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			causes = append(causes, desc.String())
		}
		return &SchemaError{Path: path, Causes: causes}
	}
	return nil
}
