package jsonschema

import (
	"github.com/eelcoh/jsonschema-viewer/pointer"
	"github.com/eelcoh/jsonschema-viewer/values"
)

// NullSchema describes the JSON null value. It carries no constraints beyond
// the shared annotation fields.
type NullSchema struct {
	BaseSchema
}

var _ Schema = (*NullSchema)(nil)

// NewNullSchema creates a null schema.
func NewNullSchema(title, description *string, examples []values.Value) *NullSchema {
	return &NullSchema{
		BaseSchema: newBaseSchema(title, description, examples),
	}
}

// Kind returns KindNull.
func (*NullSchema) Kind() Kind { return KindNull }

func (*NullSchema) isSchema() {}

// GetTitle returns the value of the Title field. Returns empty string if not set.
func (s *NullSchema) GetTitle() string {
	if s == nil {
		return ""
	}
	return pointer.Value(s.Title)
}

// GetDescription returns the value of the Description field. Returns empty string if not set.
func (s *NullSchema) GetDescription() string {
	if s == nil {
		return ""
	}
	return pointer.Value(s.Description)
}

// GetExamples returns the value of the Examples field. Returns nil if not set.
func (s *NullSchema) GetExamples() []values.Value {
	if s == nil {
		return nil
	}
	return s.Examples
}

// IsEqual compares two NullSchema objects for equality.
func (s *NullSchema) IsEqual(other *NullSchema) bool {
	if s == nil || other == nil {
		return s == other
	}

	return s.BaseSchema.isEqual(&other.BaseSchema)
}

// Clone returns a deep copy of the schema.
func (s *NullSchema) Clone() *NullSchema {
	if s == nil {
		return nil
	}

	return &NullSchema{
		BaseSchema: s.BaseSchema.clone(),
	}
}
