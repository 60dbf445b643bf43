package jsonschema

import (
	"github.com/eelcoh/jsonschema-viewer/pointer"
	"github.com/eelcoh/jsonschema-viewer/values"
)

// ArraySchema describes JSON arrays: the schema their items must satisfy and
// optional bounds on the item count.
type ArraySchema struct {
	BaseSchema

	// Items is the schema each item must satisfy. Nil leaves items unconstrained.
	Items Schema
	// MinItems is the minimum number of items an instance may carry.
	MinItems *int64
	// MaxItems is the maximum number of items an instance may carry.
	MaxItems *int64
}

var _ Schema = (*ArraySchema)(nil)

// NewArraySchema creates an array schema. A nil items schema leaves the array
// items unconstrained.
func NewArraySchema(title, description *string, items Schema, minItems, maxItems *int64, examples []values.Value) *ArraySchema {
	return &ArraySchema{
		BaseSchema: newBaseSchema(title, description, examples),
		Items:      items,
		MinItems:   pointer.Clone(minItems),
		MaxItems:   pointer.Clone(maxItems),
	}
}

// Kind returns KindArray.
func (*ArraySchema) Kind() Kind { return KindArray }

func (*ArraySchema) isSchema() {}

// GetTitle returns the value of the Title field. Returns empty string if not set.
func (s *ArraySchema) GetTitle() string {
	if s == nil {
		return ""
	}
	return pointer.Value(s.Title)
}

// GetDescription returns the value of the Description field. Returns empty string if not set.
func (s *ArraySchema) GetDescription() string {
	if s == nil {
		return ""
	}
	return pointer.Value(s.Description)
}

// GetExamples returns the value of the Examples field. Returns nil if not set.
func (s *ArraySchema) GetExamples() []values.Value {
	if s == nil {
		return nil
	}
	return s.Examples
}

// GetItems returns the value of the Items field. Returns nil if not set.
func (s *ArraySchema) GetItems() Schema {
	if s == nil {
		return nil
	}
	return s.Items
}

// GetMinItems returns the value of the MinItems field. Returns 0 if not set.
func (s *ArraySchema) GetMinItems() int64 {
	if s == nil {
		return 0
	}
	return pointer.Value(s.MinItems)
}

// GetMaxItems returns the value of the MaxItems field. Returns 0 if not set.
func (s *ArraySchema) GetMaxItems() int64 {
	if s == nil {
		return 0
	}
	return pointer.Value(s.MaxItems)
}

// IsEqual compares two ArraySchema objects for equality.
func (s *ArraySchema) IsEqual(other *ArraySchema) bool {
	if s == nil || other == nil {
		return s == other
	}

	if !s.BaseSchema.isEqual(&other.BaseSchema) {
		return false
	}
	if !pointer.Equal(s.MinItems, other.MinItems) {
		return false
	}
	if !pointer.Equal(s.MaxItems, other.MaxItems) {
		return false
	}

	return Equal(s.Items, other.Items)
}

// Clone returns a deep copy of the schema.
func (s *ArraySchema) Clone() *ArraySchema {
	if s == nil {
		return nil
	}

	return &ArraySchema{
		BaseSchema: s.BaseSchema.clone(),
		Items:      Clone(s.Items),
		MinItems:   pointer.Clone(s.MinItems),
		MaxItems:   pointer.Clone(s.MaxItems),
	}
}
