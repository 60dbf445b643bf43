package jsonschema

import (
	"fmt"

	"github.com/eelcoh/jsonschema-viewer/values"
)

// Clone returns a deep copy of a schema of any kind. Cloning nil returns nil.
func Clone(s Schema) Schema {
	if s == nil {
		return nil
	}

	switch t := s.(type) {
	case *ObjectSchema:
		return t.Clone()
	case *ArraySchema:
		return t.Clone()
	case *StringSchema:
		return t.Clone()
	case *IntegerSchema:
		return t.Clone()
	case *NumberSchema:
		return t.Clone()
	case *BooleanSchema:
		return t.Clone()
	case *NullSchema:
		return t.Clone()
	case *ReferenceSchema:
		return t.Clone()
	case *OneOfSchema:
		return t.Clone()
	case *AnyOfSchema:
		return t.Clone()
	case *AllOfSchema:
		return t.Clone()
	case *FallbackSchema:
		return t.Clone()
	default:
		panic(fmt.Sprintf("unknown schema kind: %T", s))
	}
}

func cloneSchemaSlice(schemas []Schema) []Schema {
	if schemas == nil {
		return nil
	}

	copied := make([]Schema, len(schemas))
	for i, s := range schemas {
		copied[i] = Clone(s)
	}
	return copied
}

func cloneValueSlice(vals []values.Value) []values.Value {
	if vals == nil {
		return nil
	}

	copied := make([]values.Value, len(vals))
	for i, v := range vals {
		copied[i] = values.Clone(v)
	}
	return copied
}
