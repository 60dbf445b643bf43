package jsonschema

import (
	"slices"

	"github.com/eelcoh/jsonschema-viewer/pointer"
	"github.com/eelcoh/jsonschema-viewer/values"
)

// BooleanSchema describes JSON booleans, with an optional enumeration of
// allowed values.
type BooleanSchema struct {
	BaseSchema

	// Enum restricts instances to the listed values when non-empty.
	Enum []bool
}

var _ Schema = (*BooleanSchema)(nil)

// NewBooleanSchema creates a boolean schema.
func NewBooleanSchema(title, description *string, enum []bool, examples []values.Value) *BooleanSchema {
	return &BooleanSchema{
		BaseSchema: newBaseSchema(title, description, examples),
		Enum:       slices.Clone(enum),
	}
}

// Kind returns KindBoolean.
func (*BooleanSchema) Kind() Kind { return KindBoolean }

func (*BooleanSchema) isSchema() {}

// GetTitle returns the value of the Title field. Returns empty string if not set.
func (s *BooleanSchema) GetTitle() string {
	if s == nil {
		return ""
	}
	return pointer.Value(s.Title)
}

// GetDescription returns the value of the Description field. Returns empty string if not set.
func (s *BooleanSchema) GetDescription() string {
	if s == nil {
		return ""
	}
	return pointer.Value(s.Description)
}

// GetExamples returns the value of the Examples field. Returns nil if not set.
func (s *BooleanSchema) GetExamples() []values.Value {
	if s == nil {
		return nil
	}
	return s.Examples
}

// GetEnum returns the value of the Enum field. Returns nil if not set.
func (s *BooleanSchema) GetEnum() []bool {
	if s == nil {
		return nil
	}
	return s.Enum
}

// IsEqual compares two BooleanSchema objects for equality.
func (s *BooleanSchema) IsEqual(other *BooleanSchema) bool {
	if s == nil || other == nil {
		return s == other
	}

	if !s.BaseSchema.isEqual(&other.BaseSchema) {
		return false
	}

	return slices.Equal(s.Enum, other.Enum)
}

// Clone returns a deep copy of the schema.
func (s *BooleanSchema) Clone() *BooleanSchema {
	if s == nil {
		return nil
	}

	return &BooleanSchema{
		BaseSchema: s.BaseSchema.clone(),
		Enum:       slices.Clone(s.Enum),
	}
}
