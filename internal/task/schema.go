package task

import (
	"encoding/json"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/szydag/taskdeck/internal/utils"
)

// collectionSchema describes the JSON array returned by the collection
// endpoint, draft 2020-12.
const collectionSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "title", "status"],
    "properties": {
      "id": {"type": "string", "minLength": 1},
      "title": {"type": "string"},
      "description": {"type": "string"},
      "dueDate": {"type": "string"},
      "status": {"type": "boolean"}
    },
    "additionalProperties": true
  }
}`

// ValidationError represents a payload validation error with its location.
type ValidationError struct {
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ValidatePayload validates a raw collection response body against the
// embedded schema. It returns one error per failing location.
func ValidatePayload(data []byte) []error {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("tasks.schema.json", strings.NewReader(collectionSchema)); err != nil {
		return []error{fmt.Errorf("load schema: %w", err)}
	}
	schema, err := compiler.Compile("tasks.schema.json")
	if err != nil {
		return []error{fmt.Errorf("compile schema: %w", err)}
	}

	var payload interface{}
	if err := json.Unmarshal(data, &payload); err != nil {
		return []error{fmt.Errorf("parse payload: %w", err)}
	}

	if err := schema.Validate(payload); err != nil {
		ve, ok := err.(*jsonschema.ValidationError)
		if !ok {
			return []error{err}
		}
		return flattenSchemaErrors(ve)
	}
	return nil
}

// flattenSchemaErrors converts the nested jsonschema error tree into flat
// errors with dot-notation paths.
func flattenSchemaErrors(ve *jsonschema.ValidationError) []error {
	var errs []error
	if len(ve.Causes) == 0 {
		errs = append(errs, &ValidationError{
			Path: utils.JSONPointerToPath("#" + ve.InstanceLocation),
			Err:  fmt.Errorf("%s", ve.Message),
		})
		return errs
	}
	for _, cause := range ve.Causes {
		errs = append(errs, flattenSchemaErrors(cause)...)
	}
	return errs
}
