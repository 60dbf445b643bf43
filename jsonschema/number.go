package jsonschema

import (
	"slices"

	"github.com/eelcoh/jsonschema-viewer/pointer"
	"github.com/eelcoh/jsonschema-viewer/values"
)

// NumberSchema describes JSON numbers, with optional inclusive bounds and an
// enumeration of allowed values.
type NumberSchema struct {
	BaseSchema

	// Minimum is the inclusive lower bound of an instance.
	Minimum *float64
	// Maximum is the inclusive upper bound of an instance.
	Maximum *float64
	// Enum restricts instances to the listed values when non-empty.
	Enum []float64
}

var _ Schema = (*NumberSchema)(nil)

// NewNumberSchema creates a number schema.
func NewNumberSchema(title, description *string, minimum, maximum *float64, enum []float64, examples []values.Value) *NumberSchema {
	return &NumberSchema{
		BaseSchema: newBaseSchema(title, description, examples),
		Minimum:    pointer.Clone(minimum),
		Maximum:    pointer.Clone(maximum),
		Enum:       slices.Clone(enum),
	}
}

// Kind returns KindNumber.
func (*NumberSchema) Kind() Kind { return KindNumber }

func (*NumberSchema) isSchema() {}

// GetTitle returns the value of the Title field. Returns empty string if not set.
func (s *NumberSchema) GetTitle() string {
	if s == nil {
		return ""
	}
	return pointer.Value(s.Title)
}

// GetDescription returns the value of the Description field. Returns empty string if not set.
func (s *NumberSchema) GetDescription() string {
	if s == nil {
		return ""
	}
	return pointer.Value(s.Description)
}

// GetExamples returns the value of the Examples field. Returns nil if not set.
func (s *NumberSchema) GetExamples() []values.Value {
	if s == nil {
		return nil
	}
	return s.Examples
}

// GetMinimum returns the value of the Minimum field. Returns 0 if not set.
func (s *NumberSchema) GetMinimum() float64 {
	if s == nil {
		return 0
	}
	return pointer.Value(s.Minimum)
}

// GetMaximum returns the value of the Maximum field. Returns 0 if not set.
func (s *NumberSchema) GetMaximum() float64 {
	if s == nil {
		return 0
	}
	return pointer.Value(s.Maximum)
}

// GetEnum returns the value of the Enum field. Returns nil if not set.
func (s *NumberSchema) GetEnum() []float64 {
	if s == nil {
		return nil
	}
	return s.Enum
}

// IsEqual compares two NumberSchema objects for equality.
func (s *NumberSchema) IsEqual(other *NumberSchema) bool {
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
func (s *NumberSchema) Clone() *NumberSchema {
	if s == nil {
		return nil
	}

	return &NumberSchema{
		BaseSchema: s.BaseSchema.clone(),
		Minimum:    pointer.Clone(s.Minimum),
		Maximum:    pointer.Clone(s.Maximum),
		Enum:       slices.Clone(s.Enum),
	}
}
