package jsonschema

import (
	"slices"

	"github.com/eelcoh/jsonschema-viewer/pointer"
	"github.com/eelcoh/jsonschema-viewer/values"
)

// StringSchema describes JSON strings, with optional length bounds, a regular
// expression pattern, a format hint and an enumeration of allowed values.
type StringSchema struct {
	BaseSchema

	// MinLength is the minimum length of an instance in characters.
	MinLength *int64
	// MaxLength is the maximum length of an instance in characters.
	MaxLength *int64
	// Pattern is a regular expression instances must match. Held verbatim.
	Pattern *string
	// Format names the expected format of instances, such as FormatEmail.
	Format *Format
	// Enum restricts instances to the listed values when non-empty.
	Enum []string
}

var _ Schema = (*StringSchema)(nil)

// NewStringSchema creates a string schema. The pattern is held verbatim and
// never compiled or checked here.
func NewStringSchema(title, description *string, minLength, maxLength *int64, pattern *string, format *Format, enum []string, examples []values.Value) *StringSchema {
	return &StringSchema{
		BaseSchema: newBaseSchema(title, description, examples),
		MinLength:  pointer.Clone(minLength),
		MaxLength:  pointer.Clone(maxLength),
		Pattern:    pointer.Clone(pattern),
		Format:     pointer.Clone(format),
		Enum:       slices.Clone(enum),
	}
}

// Kind returns KindString.
func (*StringSchema) Kind() Kind { return KindString }

func (*StringSchema) isSchema() {}

// GetTitle returns the value of the Title field. Returns empty string if not set.
func (s *StringSchema) GetTitle() string {
	if s == nil {
		return ""
	}
	return pointer.Value(s.Title)
}

// GetDescription returns the value of the Description field. Returns empty string if not set.
func (s *StringSchema) GetDescription() string {
	if s == nil {
		return ""
	}
	return pointer.Value(s.Description)
}

// GetExamples returns the value of the Examples field. Returns nil if not set.
func (s *StringSchema) GetExamples() []values.Value {
	if s == nil {
		return nil
	}
	return s.Examples
}

// GetMinLength returns the value of the MinLength field. Returns 0 if not set.
func (s *StringSchema) GetMinLength() int64 {
	if s == nil {
		return 0
	}
	return pointer.Value(s.MinLength)
}

// GetMaxLength returns the value of the MaxLength field. Returns 0 if not set.
func (s *StringSchema) GetMaxLength() int64 {
	if s == nil {
		return 0
	}
	return pointer.Value(s.MaxLength)
}

// GetPattern returns the value of the Pattern field. Returns empty string if not set.
func (s *StringSchema) GetPattern() string {
	if s == nil {
		return ""
	}
	return pointer.Value(s.Pattern)
}

// GetFormat returns the value of the Format field. Returns empty Format if not set.
func (s *StringSchema) GetFormat() Format {
	if s == nil {
		return ""
	}
	return pointer.Value(s.Format)
}

// GetEnum returns the value of the Enum field. Returns nil if not set.
func (s *StringSchema) GetEnum() []string {
	if s == nil {
		return nil
	}
	return s.Enum
}

// IsEqual compares two StringSchema objects for equality.
func (s *StringSchema) IsEqual(other *StringSchema) bool {
	if s == nil || other == nil {
		return s == other
	}

	if !s.BaseSchema.isEqual(&other.BaseSchema) {
		return false
	}
	if !pointer.Equal(s.MinLength, other.MinLength) {
		return false
	}
	if !pointer.Equal(s.MaxLength, other.MaxLength) {
		return false
	}
	if !pointer.Equal(s.Pattern, other.Pattern) {
		return false
	}
	if !pointer.Equal(s.Format, other.Format) {
		return false
	}

	return slices.Equal(s.Enum, other.Enum)
}

// Clone returns a deep copy of the schema.
func (s *StringSchema) Clone() *StringSchema {
	if s == nil {
		return nil
	}

	return &StringSchema{
		BaseSchema: s.BaseSchema.clone(),
		MinLength:  pointer.Clone(s.MinLength),
		MaxLength:  pointer.Clone(s.MaxLength),
		Pattern:    pointer.Clone(s.Pattern),
		Format:     pointer.Clone(s.Format),
		Enum:       slices.Clone(s.Enum),
	}
}
