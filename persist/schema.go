package persist

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed tasks.schema.json
var tasksSchemaJSON []byte

const tasksSchemaURL = "https://github.com/amonks/kaban/persist/tasks.schema.json"

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func tasksSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.AssertFormat = true
		if err := compiler.AddResource(tasksSchemaURL, bytes.NewReader(tasksSchemaJSON)); err != nil {
			schemaErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		schema, schemaErr = compiler.Compile(tasksSchemaURL)
	})
	return schema, schemaErr
}

// ValidationError reports one schema violation in a stored blob.
type ValidationError struct {
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	if e.Path == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// validateShape checks data against the embedded schema.
func validateShape(data []byte) error {
	s, err := tasksSchema()
	if err != nil {
		return err
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	if err := s.Validate(doc); err != nil {
		ve, ok := err.(*jsonschema.ValidationError)
		if !ok {
			return fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
		return fmt.Errorf("%w: %w", ErrCorrupt, firstLeafError(ve))
	}
	return nil
}

// firstLeafError walks to the most specific cause of a schema failure.
func firstLeafError(err *jsonschema.ValidationError) *ValidationError {
	for len(err.Causes) > 0 {
		err = err.Causes[0]
	}
	return &ValidationError{
		Path: jsonPointerToPath(err.InstanceLocation),
		Err:  fmt.Errorf("%s", err.Message),
	}
}

func jsonPointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}
	return strings.ReplaceAll(ptr, "/", ".")
}
