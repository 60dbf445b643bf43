package jsonschema

import (
	"slices"

	"github.com/eelcoh/jsonschema-viewer/pointer"
	"github.com/eelcoh/jsonschema-viewer/values"
)

// BaseSchema holds the descriptive fields shared by every schema kind except
// fallbacks. All fields are optional. Example values are raw nodes held
// verbatim, like every raw value in the model.
type BaseSchema struct {
	// Title is a short human readable name for the schema.
	Title *string
	// Description explains the purpose of the schema at more length.
	Description *string
	// Examples holds raw example values in document order.
	Examples []values.Value
}

func newBaseSchema(title, description *string, examples []values.Value) BaseSchema {
	return BaseSchema{
		Title:       pointer.Clone(title),
		Description: pointer.Clone(description),
		Examples:    slices.Clone(examples),
	}
}

func (b *BaseSchema) isEqual(other *BaseSchema) bool {
	if !pointer.Equal(b.Title, other.Title) {
		return false
	}
	if !pointer.Equal(b.Description, other.Description) {
		return false
	}
	return equalValueSlices(b.Examples, other.Examples)
}

func (b *BaseSchema) clone() BaseSchema {
	return BaseSchema{
		Title:       pointer.Clone(b.Title),
		Description: pointer.Clone(b.Description),
		Examples:    cloneValueSlice(b.Examples),
	}
}
