package jsonschema

import (
	"fmt"
	"slices"

	"github.com/eelcoh/jsonschema-viewer/values"
)

// Equal compares two schemas of any kind for equality. Schemas of different
// kinds are never equal. Nil and empty collections compare as equal.
func Equal(a, b Schema) bool {
	if a == nil || b == nil {
		return a == b
	}

	switch t := a.(type) {
	case *ObjectSchema:
		o, ok := b.(*ObjectSchema)
		return ok && t.IsEqual(o)
	case *ArraySchema:
		o, ok := b.(*ArraySchema)
		return ok && t.IsEqual(o)
	case *StringSchema:
		o, ok := b.(*StringSchema)
		return ok && t.IsEqual(o)
	case *IntegerSchema:
		o, ok := b.(*IntegerSchema)
		return ok && t.IsEqual(o)
	case *NumberSchema:
		o, ok := b.(*NumberSchema)
		return ok && t.IsEqual(o)
	case *BooleanSchema:
		o, ok := b.(*BooleanSchema)
		return ok && t.IsEqual(o)
	case *NullSchema:
		o, ok := b.(*NullSchema)
		return ok && t.IsEqual(o)
	case *ReferenceSchema:
		o, ok := b.(*ReferenceSchema)
		return ok && t.IsEqual(o)
	case *OneOfSchema:
		o, ok := b.(*OneOfSchema)
		return ok && t.IsEqual(o)
	case *AnyOfSchema:
		o, ok := b.(*AnyOfSchema)
		return ok && t.IsEqual(o)
	case *AllOfSchema:
		o, ok := b.(*AllOfSchema)
		return ok && t.IsEqual(o)
	case *FallbackSchema:
		o, ok := b.(*FallbackSchema)
		return ok && t.IsEqual(o)
	default:
		panic(fmt.Sprintf("unknown schema kind: %T", a))
	}
}

func equalValueSlices(a, b []values.Value) bool {
	return slices.EqualFunc(a, b, values.Equal)
}
