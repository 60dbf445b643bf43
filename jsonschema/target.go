package jsonschema

import (
	"fmt"

	"github.com/eelcoh/jsonschema-viewer/errors"
	"github.com/eelcoh/jsonschema-viewer/jsonpointer"
)

// GetTarget evaluates a JSON pointer against the model and returns the schema
// it addresses. The pointer "/" addresses the root schema, pointers beginning
// with "/definitions/<name>" navigate into the named definition, any other
// pointer navigates from the root schema.
//
// Within a schema the navigable keywords are "properties" followed by a
// property name, "items", and "oneOf", "anyOf" or "allOf" followed by an
// index. The raw value of a fallback schema cannot be addressed into.
func GetTarget(model *Model, pointer jsonpointer.JSONPointer) (Schema, error) {
	if model == nil {
		return nil, jsonpointer.ErrNotFound.Wrap(errors.New("model is nil"))
	}

	parts, err := pointer.Parts()
	if err != nil {
		return nil, err
	}

	if len(parts) > 0 && parts[0].Value == "definitions" {
		if len(parts) == 1 {
			return nil, jsonpointer.ErrInvalidPath.Wrap(errors.New("expected definition name at /definitions"))
		}

		name := parts[1].Value
		currentPath := "/definitions/" + jsonpointer.EscapeString(name)

		schema, ok := model.Definitions.Get(name)
		if !ok {
			return nil, jsonpointer.ErrNotFound.Wrap(fmt.Errorf("definition %s not found at %s", name, currentPath))
		}

		return getSchemaTarget(schema, parts[2:], currentPath)
	}

	return getSchemaTarget(model.Root, parts, "/")
}

func getSchemaTarget(schema Schema, parts []jsonpointer.Part, currentPath string) (Schema, error) {
	if schema == nil {
		return nil, jsonpointer.ErrNotFound.Wrap(fmt.Errorf("schema is nil at %s", currentPath))
	}

	if len(parts) == 0 {
		return schema, nil
	}

	part := parts[0]
	childPath := buildPath(currentPath, part)

	switch t := schema.(type) {
	case *ObjectSchema:
		if part.Value != "properties" {
			return nil, jsonpointer.ErrNotFound.Wrap(fmt.Errorf("key %s not found in object schema at %s", part.Value, childPath))
		}
		if len(parts) == 1 {
			return nil, jsonpointer.ErrInvalidPath.Wrap(fmt.Errorf("expected property name at %s", childPath))
		}

		name := parts[1].Value
		namePath := buildPath(childPath, parts[1])

		prop, ok := t.GetProperty(name)
		if !ok {
			return nil, jsonpointer.ErrNotFound.Wrap(fmt.Errorf("property %s not found at %s", name, namePath))
		}

		return getSchemaTarget(prop.Schema, parts[2:], namePath)
	case *ArraySchema:
		if part.Value != "items" {
			return nil, jsonpointer.ErrNotFound.Wrap(fmt.Errorf("key %s not found in array schema at %s", part.Value, childPath))
		}
		items := t.GetItems()
		if items == nil {
			return nil, jsonpointer.ErrNotFound.Wrap(fmt.Errorf("items schema is absent at %s", childPath))
		}

		return getSchemaTarget(items, parts[1:], childPath)
	case *OneOfSchema:
		if part.Value != "oneOf" {
			return nil, jsonpointer.ErrNotFound.Wrap(fmt.Errorf("key %s not found in oneOf schema at %s", part.Value, childPath))
		}
		return getSubSchemaTarget(t.GetSubSchemas(), parts[1:], childPath)
	case *AnyOfSchema:
		if part.Value != "anyOf" {
			return nil, jsonpointer.ErrNotFound.Wrap(fmt.Errorf("key %s not found in anyOf schema at %s", part.Value, childPath))
		}
		return getSubSchemaTarget(t.GetSubSchemas(), parts[1:], childPath)
	case *AllOfSchema:
		if part.Value != "allOf" {
			return nil, jsonpointer.ErrNotFound.Wrap(fmt.Errorf("key %s not found in allOf schema at %s", part.Value, childPath))
		}
		return getSubSchemaTarget(t.GetSubSchemas(), parts[1:], childPath)
	case *FallbackSchema:
		return nil, jsonpointer.ErrNotFound.Wrap(fmt.Errorf("cannot address into the raw value of a fallback schema at %s", childPath))
	case *StringSchema, *IntegerSchema, *NumberSchema, *BooleanSchema, *NullSchema, *ReferenceSchema:
		return nil, jsonpointer.ErrNotFound.Wrap(fmt.Errorf("key %s not found in %s schema at %s", part.Value, schema.Kind(), childPath))
	default:
		panic(fmt.Sprintf("unknown schema kind: %T", schema))
	}
}

func getSubSchemaTarget(subSchemas []Schema, parts []jsonpointer.Part, currentPath string) (Schema, error) {
	if len(parts) == 0 {
		return nil, jsonpointer.ErrInvalidPath.Wrap(fmt.Errorf("expected index at %s", currentPath))
	}

	part := parts[0]
	if !part.IsIndex {
		return nil, jsonpointer.ErrInvalidPath.Wrap(fmt.Errorf("expected index, got %s at %s", part.Value, buildPath(currentPath, part)))
	}

	index := part.Index()
	indexPath := buildPath(currentPath, part)

	if index >= len(subSchemas) {
		return nil, jsonpointer.ErrNotFound.Wrap(fmt.Errorf("index %d out of range for %d sub schemas at %s", index, len(subSchemas), indexPath))
	}

	return getSchemaTarget(subSchemas[index], parts[1:], indexPath)
}

func buildPath(currentPath string, part jsonpointer.Part) string {
	if currentPath == "/" {
		currentPath = ""
	}
	return currentPath + "/" + jsonpointer.EscapeString(part.Value)
}
