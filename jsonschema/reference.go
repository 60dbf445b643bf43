package jsonschema

import (
	"github.com/eelcoh/jsonschema-viewer/pointer"
	"github.com/eelcoh/jsonschema-viewer/references"
	"github.com/eelcoh/jsonschema-viewer/values"
)

// ReferenceSchema points at another schema by reference. The reference string
// is held verbatim and never resolved by this package.
type ReferenceSchema struct {
	BaseSchema

	// Ref is the reference to another schema, such as "#/definitions/User".
	Ref references.Reference
}

var _ Schema = (*ReferenceSchema)(nil)

// NewReferenceSchema creates a reference schema. The reference is stored as
// given, resolving it is left to the caller.
func NewReferenceSchema(title, description *string, ref references.Reference, examples []values.Value) *ReferenceSchema {
	return &ReferenceSchema{
		BaseSchema: newBaseSchema(title, description, examples),
		Ref:        ref,
	}
}

// Kind returns KindRef.
func (*ReferenceSchema) Kind() Kind { return KindRef }

func (*ReferenceSchema) isSchema() {}

// GetTitle returns the value of the Title field. Returns empty string if not set.
func (s *ReferenceSchema) GetTitle() string {
	if s == nil {
		return ""
	}
	return pointer.Value(s.Title)
}

// GetDescription returns the value of the Description field. Returns empty string if not set.
func (s *ReferenceSchema) GetDescription() string {
	if s == nil {
		return ""
	}
	return pointer.Value(s.Description)
}

// GetExamples returns the value of the Examples field. Returns nil if not set.
func (s *ReferenceSchema) GetExamples() []values.Value {
	if s == nil {
		return nil
	}
	return s.Examples
}

// GetRef returns the value of the Ref field. Returns empty Reference if not set.
func (s *ReferenceSchema) GetRef() references.Reference {
	if s == nil {
		return ""
	}
	return s.Ref
}

// IsEqual compares two ReferenceSchema objects for equality.
func (s *ReferenceSchema) IsEqual(other *ReferenceSchema) bool {
	if s == nil || other == nil {
		return s == other
	}

	if !s.BaseSchema.isEqual(&other.BaseSchema) {
		return false
	}

	return s.Ref == other.Ref
}

// Clone returns a deep copy of the schema.
func (s *ReferenceSchema) Clone() *ReferenceSchema {
	if s == nil {
		return nil
	}

	return &ReferenceSchema{
		BaseSchema: s.BaseSchema.clone(),
		Ref:        s.Ref,
	}
}
