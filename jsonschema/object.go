package jsonschema

import (
	"slices"

	"github.com/eelcoh/jsonschema-viewer/pointer"
	"github.com/eelcoh/jsonschema-viewer/sequencedmap"
	"github.com/eelcoh/jsonschema-viewer/values"
)

// ObjectSchema describes JSON objects: the properties they carry, which of
// those must be present, and optional bounds on the member count.
type ObjectSchema struct {
	BaseSchema

	// Properties holds the object's properties in document order.
	Properties []ObjectProperty
	// MinProperties is the minimum number of members an instance may carry.
	MinProperties *int64
	// MaxProperties is the maximum number of members an instance may carry.
	MaxProperties *int64
}

var _ Schema = (*ObjectSchema)(nil)

// ObjectProperty is a single property of an object schema: its name, the
// schema constraining its value, and whether it must be present on instances.
// Properties are derived by NewObjectSchema rather than constructed directly.
type ObjectProperty struct {
	Name     string
	Schema   Schema
	Required bool
}

// NewObjectSchema creates an object schema. The entries of properties become
// the property sequence in map order, each marked required when its name
// appears in required. Names in required without a matching property are
// discarded.
func NewObjectSchema(title, description *string, properties *sequencedmap.Map[string, Schema], required []string, minProperties, maxProperties *int64, examples []values.Value) *ObjectSchema {
	props := make([]ObjectProperty, 0, properties.Len())
	for name, schema := range properties.All() {
		props = append(props, ObjectProperty{
			Name:     name,
			Schema:   schema,
			Required: slices.Contains(required, name),
		})
	}

	return &ObjectSchema{
		BaseSchema:    newBaseSchema(title, description, examples),
		Properties:    props,
		MinProperties: pointer.Clone(minProperties),
		MaxProperties: pointer.Clone(maxProperties),
	}
}

// Kind returns KindObject.
func (*ObjectSchema) Kind() Kind { return KindObject }

func (*ObjectSchema) isSchema() {}

// GetTitle returns the value of the Title field. Returns empty string if not set.
func (s *ObjectSchema) GetTitle() string {
	if s == nil {
		return ""
	}
	return pointer.Value(s.Title)
}

// GetDescription returns the value of the Description field. Returns empty string if not set.
func (s *ObjectSchema) GetDescription() string {
	if s == nil {
		return ""
	}
	return pointer.Value(s.Description)
}

// GetExamples returns the value of the Examples field. Returns nil if not set.
func (s *ObjectSchema) GetExamples() []values.Value {
	if s == nil {
		return nil
	}
	return s.Examples
}

// GetProperties returns the value of the Properties field. Returns nil if not set.
func (s *ObjectSchema) GetProperties() []ObjectProperty {
	if s == nil {
		return nil
	}
	return s.Properties
}

// GetProperty returns the named property and whether it exists.
func (s *ObjectSchema) GetProperty(name string) (ObjectProperty, bool) {
	if s == nil {
		return ObjectProperty{}, false
	}

	for _, prop := range s.Properties {
		if prop.Name == name {
			return prop, true
		}
	}

	return ObjectProperty{}, false
}

// GetMinProperties returns the value of the MinProperties field. Returns 0 if not set.
func (s *ObjectSchema) GetMinProperties() int64 {
	if s == nil {
		return 0
	}
	return pointer.Value(s.MinProperties)
}

// GetMaxProperties returns the value of the MaxProperties field. Returns 0 if not set.
func (s *ObjectSchema) GetMaxProperties() int64 {
	if s == nil {
		return 0
	}
	return pointer.Value(s.MaxProperties)
}

// IsEqual compares two ObjectSchema objects for equality.
func (s *ObjectSchema) IsEqual(other *ObjectSchema) bool {
	if s == nil || other == nil {
		return s == other
	}

	if !s.BaseSchema.isEqual(&other.BaseSchema) {
		return false
	}
	if !pointer.Equal(s.MinProperties, other.MinProperties) {
		return false
	}
	if !pointer.Equal(s.MaxProperties, other.MaxProperties) {
		return false
	}

	if len(s.Properties) != len(other.Properties) {
		return false
	}
	for i, prop := range s.Properties {
		if !prop.IsEqual(other.Properties[i]) {
			return false
		}
	}

	return true
}

// Clone returns a deep copy of the schema.
func (s *ObjectSchema) Clone() *ObjectSchema {
	if s == nil {
		return nil
	}

	var props []ObjectProperty
	if s.Properties != nil {
		props = make([]ObjectProperty, len(s.Properties))
		for i, prop := range s.Properties {
			props[i] = ObjectProperty{
				Name:     prop.Name,
				Schema:   Clone(prop.Schema),
				Required: prop.Required,
			}
		}
	}

	return &ObjectSchema{
		BaseSchema:    s.BaseSchema.clone(),
		Properties:    props,
		MinProperties: pointer.Clone(s.MinProperties),
		MaxProperties: pointer.Clone(s.MaxProperties),
	}
}

// GetName returns the value of the Name field.
func (p ObjectProperty) GetName() string { return p.Name }

// GetSchema returns the value of the Schema field.
func (p ObjectProperty) GetSchema() Schema { return p.Schema }

// IsRequired returns true if the property must be present on instances.
func (p ObjectProperty) IsRequired() bool { return p.Required }

// IsOptional returns true if the property may be absent from instances.
func (p ObjectProperty) IsOptional() bool { return !p.Required }

// IsEqual compares two ObjectProperty values for equality.
func (p ObjectProperty) IsEqual(other ObjectProperty) bool {
	return p.Name == other.Name && p.Required == other.Required && Equal(p.Schema, other.Schema)
}
