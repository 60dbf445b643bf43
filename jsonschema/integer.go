package jsonschema

import (
	"slices"

	"github.com/eelcoh/jsonschema-viewer/pointer"
	"github.com/eelcoh/jsonschema-viewer/values"
)

// IntegerSchema describes JSON integers, with optional inclusive bounds and an
// enumeration of allowed values.
type IntegerSchema struct {
	BaseSchema

	// Minimum is the inclusive lower bound of an instance.
	Minimum *int64
	// Maximum is the inclusive upper bound of an instance.
	Maximum *int64
	// Enum restricts instances to the listed values when non-empty.
	Enum []int64
}

var _ Schema = (*IntegerSchema)(nil)

// NewIntegerSchema creates an integer schema.
func NewIntegerSchema(title, description *string, minimum, maximum *int64, enum []int64, examples []values.Value) *IntegerSchema {
	return &IntegerSchema{
		BaseSchema: newBaseSchema(title, description, examples),
		Minimum:    pointer.Clone(minimum),
		Maximum:    pointer.Clone(maximum),
		Enum:       slices.Clone(enum),
	}
}

// Kind returns KindInteger.
func (*IntegerSchema) Kind() Kind { return KindInteger }

func (*IntegerSchema) isSchema() {}

// GetTitle returns the value of the Title field. Returns empty string if not set.
func (s *IntegerSchema) GetTitle() string {
	if s == nil {
		return ""
	}
	return pointer.Value(s.Title)
}

// GetDescription returns the value of the Description field. Returns empty string if not set.
func (s *IntegerSchema) GetDescription() string {
	if s == nil {
		return ""
	}
	return pointer.Value(s.Description)
}

// GetExamples returns the value of the Examples field. Returns nil if not set.
func (s *IntegerSchema) GetExamples() []values.Value {
	if s == nil {
		return nil
	}
	return s.Examples
}

// GetMinimum returns the value of the Minimum field. Returns 0 if not set.
func (s *IntegerSchema) GetMinimum() int64 {
	if s == nil {
		return 0
	}
	return pointer.Value(s.Minimum)
}

// GetMaximum returns the value of the Maximum field. Returns 0 if not set.
func (s *IntegerSchema) GetMaximum() int64 {
	if s == nil {
		return 0
	}
	return pointer.Value(s.Maximum)
}

// GetEnum returns the value of the Enum field. Returns nil if not set.
func (s *IntegerSchema) GetEnum() []int64 {
	if s == nil {
		return nil
	}
	return s.Enum
}

// IsEqual compares two IntegerSchema objects for equality.
func (s *IntegerSchema) IsEqual(other *IntegerSchema) bool {
	if s == nil || other == nil {
		return s == other
	}

	if !s.BaseSchema.isEqual(&other.BaseSchema) {
		return false
	}
	if !pointer.Equal(s.Minimum, other.Minimum) {
		return false
	}
	if !pointer.Equal(s.Maximum, other.Maximum) {
		return false
	}

	return slices.Equal(s.Enum, other.Enum)
}

// Clone returns a deep copy of the schema.
func (s *IntegerSchema) Clone() *IntegerSchema {
	if s == nil {
		return nil
	}

	return &IntegerSchema{
		BaseSchema: s.BaseSchema.clone(),
		Minimum:    pointer.Clone(s.Minimum),
		Maximum:    pointer.Clone(s.Maximum),
		Enum:       slices.Clone(s.Enum),
	}
}
