// Package jsonschema provides an in-memory, strongly typed model of JSON
// Schema documents. A document is represented as a Model: a table of named
// definitions plus a root Schema, where Schema is a closed set of kinds
// covering objects, arrays, the primitive types, references, the oneOf, anyOf
// and allOf combinators, and a raw fallback for unrecognized subdocuments.
//
// The model carries no validation, resolution or serialization behavior:
// constructors are total and never reject, reference tokens are held verbatim
// and raw values round-trip untouched. Decoders, validators and encoders are
// built on top of the model's constructors, accessors and traversal helpers.
//
// Values are treated as immutable once constructed. Constructors copy their
// slice and pointer inputs, so later mutation of constructor arguments does
// not leak into built schemas, and built schemas are safe for concurrent
// reads.
package jsonschema

import (
	"fmt"

	"github.com/eelcoh/jsonschema-viewer/values"
)

// Kind identifies which variety of schema a Schema value holds.
type Kind string

const (
	// KindObject describes JSON objects and their properties.
	KindObject Kind = "object"
	// KindArray describes JSON arrays and their items.
	KindArray Kind = "array"
	// KindString describes JSON strings.
	KindString Kind = "string"
	// KindInteger describes whole JSON numbers.
	KindInteger Kind = "integer"
	// KindNumber describes JSON numbers with a fractional part.
	KindNumber Kind = "number"
	// KindBoolean describes JSON booleans.
	KindBoolean Kind = "boolean"
	// KindNull describes the JSON null value.
	KindNull Kind = "null"
	// KindRef points at a schema defined elsewhere.
	KindRef Kind = "ref"
	// KindOneOf requires instances to match exactly one subschema.
	KindOneOf Kind = "oneOf"
	// KindAnyOf requires instances to match at least one subschema.
	KindAnyOf Kind = "anyOf"
	// KindAllOf requires instances to match every subschema.
	KindAllOf Kind = "allOf"
	// KindFallback carries an unrecognized subdocument verbatim.
	KindFallback Kind = "fallback"
)

// Schema is a single node of a schema document. The set of implementations is
// closed: a Schema is always one of the kinds declared in this package, so a
// type switch over all of them is exhaustive.
type Schema interface {
	// Kind reports which variety of schema this value holds.
	Kind() Kind

	isSchema()
}

// Annotated is implemented by every schema kind that carries the shared
// descriptive fields. Fallback schemas are opaque and not annotated.
type Annotated interface {
	GetTitle() string
	GetDescription() string
	GetExamples() []values.Value
}

var (
	_ Annotated = (*ObjectSchema)(nil)
	_ Annotated = (*ArraySchema)(nil)
	_ Annotated = (*StringSchema)(nil)
	_ Annotated = (*IntegerSchema)(nil)
	_ Annotated = (*NumberSchema)(nil)
	_ Annotated = (*BooleanSchema)(nil)
	_ Annotated = (*NullSchema)(nil)
	_ Annotated = (*ReferenceSchema)(nil)
	_ Annotated = (*OneOfSchema)(nil)
	_ Annotated = (*AnyOfSchema)(nil)
	_ Annotated = (*AllOfSchema)(nil)
)

// Name returns the display name of a schema, which is its title when one is
// set. The second return value reports whether a name is present. Fallback
// schemas and nil schemas never have a name.
func Name(s Schema) (string, bool) {
	switch t := s.(type) {
	case nil:
		return "", false
	case *ObjectSchema:
		if t == nil {
			return "", false
		}
		return nameFromTitle(t.Title)
	case *ArraySchema:
		if t == nil {
			return "", false
		}
		return nameFromTitle(t.Title)
	case *StringSchema:
		if t == nil {
			return "", false
		}
		return nameFromTitle(t.Title)
	case *IntegerSchema:
		if t == nil {
			return "", false
		}
		return nameFromTitle(t.Title)
	case *NumberSchema:
		if t == nil {
			return "", false
		}
		return nameFromTitle(t.Title)
	case *BooleanSchema:
		if t == nil {
			return "", false
		}
		return nameFromTitle(t.Title)
	case *NullSchema:
		if t == nil {
			return "", false
		}
		return nameFromTitle(t.Title)
	case *ReferenceSchema:
		if t == nil {
			return "", false
		}
		return nameFromTitle(t.Title)
	case *OneOfSchema:
		if t == nil {
			return "", false
		}
		return nameFromTitle(t.Title)
	case *AnyOfSchema:
		if t == nil {
			return "", false
		}
		return nameFromTitle(t.Title)
	case *AllOfSchema:
		if t == nil {
			return "", false
		}
		return nameFromTitle(t.Title)
	case *FallbackSchema:
		return "", false
	default:
		panic(fmt.Sprintf("unknown schema kind: %T", s))
	}
}

func nameFromTitle(title *string) (string, bool) {
	if title == nil {
		return "", false
	}
	return *title, true
}
