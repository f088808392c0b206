package dispatch

import (
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// schemaCache caches compiled tool schemas by tool name. Catalog
// schemas are static for the process lifetime, so the name alone is a
// sufficient key.
var schemaCache sync.Map // tool name -> *jsonschema.Schema

func compileSchema(toolName string, schema []byte) (*jsonschema.Schema, error) {
	if v, ok := schemaCache.Load(toolName); ok {
		return v.(*jsonschema.Schema), nil
	}
	s, err := jsonschema.CompileString(toolName+".json", string(schema))
	if err != nil {
		return nil, err
	}
	schemaCache.Store(toolName, s)
	return s, nil
}

// validateParams checks decoded parameters against a tool's schema and
// returns a message pointing at the first offending location.
func validateParams(toolName string, schema []byte, params any) error {
	if len(schema) == 0 {
		return nil
	}
	s, err := compileSchema(toolName, schema)
	if err != nil {
		return fmt.Errorf("invalid schema for tool %s: %w", toolName, err)
	}
	if err := s.Validate(params); err != nil {
		if ve, ok := err.(*jsonschema.ValidationError); ok {
			leaf := firstLeaf(ve)
			loc := leaf.InstanceLocation
			if loc == "" {
				loc = "/"
			}
			return fmt.Errorf("params invalid at %s: %s", loc, leaf.Message)
		}
		return err
	}
	return nil
}

func firstLeaf(err *jsonschema.ValidationError) *jsonschema.ValidationError {
	if len(err.Causes) == 0 {
		return err
	}
	return firstLeaf(err.Causes[0])
}
