package jsonschema

import (
	"slices"

	"github.com/eelcoh/jsonschema-viewer/pointer"
	"github.com/eelcoh/jsonschema-viewer/values"
)

// combinatorSchema carries the shared shape of the oneOf, anyOf and allOf
// schemas. The three exported types embed it so their construction, equality
// and cloning stay in lockstep.
type combinatorSchema struct {
	BaseSchema

	// SubSchemas are the member schemas of the combinator, in declaration order.
	SubSchemas []Schema
}

func newCombinatorSchema(title, description *string, subSchemas []Schema, examples []values.Value) combinatorSchema {
	return combinatorSchema{
		BaseSchema: newBaseSchema(title, description, examples),
		SubSchemas: slices.Clone(subSchemas),
	}
}

func (c *combinatorSchema) isEqual(other *combinatorSchema) bool {
	if !c.BaseSchema.isEqual(&other.BaseSchema) {
		return false
	}

	return slices.EqualFunc(c.SubSchemas, other.SubSchemas, Equal)
}

func (c *combinatorSchema) clone() combinatorSchema {
	return combinatorSchema{
		BaseSchema: c.BaseSchema.clone(),
		SubSchemas: cloneSchemaSlice(c.SubSchemas),
	}
}

// OneOfSchema matches instances valid against exactly one of its sub-schemas.
type OneOfSchema struct {
	combinatorSchema
}

var _ Schema = (*OneOfSchema)(nil)

// NewOneOfSchema creates a oneOf schema over the given sub-schemas.
func NewOneOfSchema(title, description *string, subSchemas []Schema, examples []values.Value) *OneOfSchema {
	return &OneOfSchema{
		combinatorSchema: newCombinatorSchema(title, description, subSchemas, examples),
	}
}

// Kind returns KindOneOf.
func (*OneOfSchema) Kind() Kind { return KindOneOf }

func (*OneOfSchema) isSchema() {}

// GetTitle returns the value of the Title field. Returns empty string if not set.
func (s *OneOfSchema) GetTitle() string {
	if s == nil {
		return ""
	}
	return pointer.Value(s.Title)
}

// GetDescription returns the value of the Description field. Returns empty string if not set.
func (s *OneOfSchema) GetDescription() string {
	if s == nil {
		return ""
	}
	return pointer.Value(s.Description)
}

// GetExamples returns the value of the Examples field. Returns nil if not set.
func (s *OneOfSchema) GetExamples() []values.Value {
	if s == nil {
		return nil
	}
	return s.Examples
}

// GetSubSchemas returns the value of the SubSchemas field. Returns nil if not set.
func (s *OneOfSchema) GetSubSchemas() []Schema {
	if s == nil {
		return nil
	}
	return s.SubSchemas
}

// IsEqual compares two OneOfSchema objects for equality.
func (s *OneOfSchema) IsEqual(other *OneOfSchema) bool {
	if s == nil || other == nil {
		return s == other
	}

	return s.combinatorSchema.isEqual(&other.combinatorSchema)
}

// Clone returns a deep copy of the schema.
func (s *OneOfSchema) Clone() *OneOfSchema {
	if s == nil {
		return nil
	}

	return &OneOfSchema{combinatorSchema: s.combinatorSchema.clone()}
}

// AnyOfSchema matches instances valid against at least one of its sub-schemas.
type AnyOfSchema struct {
	combinatorSchema
}

var _ Schema = (*AnyOfSchema)(nil)

// NewAnyOfSchema creates an anyOf schema over the given sub-schemas.
func NewAnyOfSchema(title, description *string, subSchemas []Schema, examples []values.Value) *AnyOfSchema {
	return &AnyOfSchema{
		combinatorSchema: newCombinatorSchema(title, description, subSchemas, examples),
	}
}

// Kind returns KindAnyOf.
func (*AnyOfSchema) Kind() Kind { return KindAnyOf }

func (*AnyOfSchema) isSchema() {}

// GetTitle returns the value of the Title field. Returns empty string if not set.
func (s *AnyOfSchema) GetTitle() string {
	if s == nil {
		return ""
	}
	return pointer.Value(s.Title)
}

// GetDescription returns the value of the Description field. Returns empty string if not set.
func (s *AnyOfSchema) GetDescription() string {
	if s == nil {
		return ""
	}
	return pointer.Value(s.Description)
}

// GetExamples returns the value of the Examples field. Returns nil if not set.
func (s *AnyOfSchema) GetExamples() []values.Value {
	if s == nil {
		return nil
	}
	return s.Examples
}

// GetSubSchemas returns the value of the SubSchemas field. Returns nil if not set.
func (s *AnyOfSchema) GetSubSchemas() []Schema {
	if s == nil {
		return nil
	}
	return s.SubSchemas
}

// IsEqual compares two AnyOfSchema objects for equality.
func (s *AnyOfSchema) IsEqual(other *AnyOfSchema) bool {
	if s == nil || other == nil {
		return s == other
	}

	return s.combinatorSchema.isEqual(&other.combinatorSchema)
}

// Clone returns a deep copy of the schema.
func (s *AnyOfSchema) Clone() *AnyOfSchema {
	if s == nil {
		return nil
	}

	return &AnyOfSchema{combinatorSchema: s.combinatorSchema.clone()}
}

// AllOfSchema matches instances valid against all of its sub-schemas.
type AllOfSchema struct {
	combinatorSchema
}

var _ Schema = (*AllOfSchema)(nil)

// NewAllOfSchema creates an allOf schema over the given sub-schemas.
func NewAllOfSchema(title, description *string, subSchemas []Schema, examples []values.Value) *AllOfSchema {
	return &AllOfSchema{
		combinatorSchema: newCombinatorSchema(title, description, subSchemas, examples),
	}
}

// Kind returns KindAllOf.
func (*AllOfSchema) Kind() Kind { return KindAllOf }

func (*AllOfSchema) isSchema() {}

// GetTitle returns the value of the Title field. Returns empty string if not set.
func (s *AllOfSchema) GetTitle() string {
	if s == nil {
		return ""
	}
	return pointer.Value(s.Title)
}

// GetDescription returns the value of the Description field. Returns empty string if not set.
func (s *AllOfSchema) GetDescription() string {
	if s == nil {
		return ""
	}
	return pointer.Value(s.Description)
}

// GetExamples returns the value of the Examples field. Returns nil if not set.
func (s *AllOfSchema) GetExamples() []values.Value {
	if s == nil {
		return nil
	}
	return s.Examples
}

// GetSubSchemas returns the value of the SubSchemas field. Returns nil if not set.
func (s *AllOfSchema) GetSubSchemas() []Schema {
	if s == nil {
		return nil
	}
	return s.SubSchemas
}

// IsEqual compares two AllOfSchema objects for equality.
func (s *AllOfSchema) IsEqual(other *AllOfSchema) bool {
	if s == nil || other == nil {
		return s == other
	}

	return s.combinatorSchema.isEqual(&other.combinatorSchema)
}

// Clone returns a deep copy of the schema.
func (s *AllOfSchema) Clone() *AllOfSchema {
	if s == nil {
		return nil
	}

	return &AllOfSchema{combinatorSchema: s.combinatorSchema.clone()}
}
