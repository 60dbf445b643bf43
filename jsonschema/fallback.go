package jsonschema

import (
	"github.com/eelcoh/jsonschema-viewer/values"
)

// FallbackSchema preserves a schema fragment this package does not model. It
// holds the raw value verbatim so the fragment survives a round trip through
// the model untouched. It carries no annotation fields and no name.
type FallbackSchema struct {
	// Value is the raw fragment, exactly as it appeared in the source document.
	Value values.Value
}

var _ Schema = (*FallbackSchema)(nil)

// NewFallbackSchema creates a fallback schema holding the given raw value
// verbatim.
func NewFallbackSchema(value values.Value) *FallbackSchema {
	return &FallbackSchema{Value: value}
}

// Kind returns KindFallback.
func (*FallbackSchema) Kind() Kind { return KindFallback }

func (*FallbackSchema) isSchema() {}

// GetValue returns the value of the Value field. Returns nil if not set.
func (s *FallbackSchema) GetValue() values.Value {
	if s == nil {
		return nil
	}
	return s.Value
}

// IsEqual compares two FallbackSchema objects for equality.
func (s *FallbackSchema) IsEqual(other *FallbackSchema) bool {
	if s == nil || other == nil {
		return s == other
	}

	return values.Equal(s.Value, other.Value)
}

// Clone returns a deep copy of the schema.
func (s *FallbackSchema) Clone() *FallbackSchema {
	if s == nil {
		return nil
	}

	return &FallbackSchema{Value: values.Clone(s.Value)}
}
