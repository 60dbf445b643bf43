package jsonschema

import (
	"github.com/eelcoh/jsonschema-viewer/sequencedmap"
)

// Model is a complete schema document, a table of named definitions plus the
// root schema. Definitions keep the order they were declared in.
type Model struct {
	// Definitions holds the named schemas of the document, in declaration order.
	Definitions *sequencedmap.Map[string, Schema]
	// Root is the top-level schema of the document.
	Root Schema
}

// NewModel creates a model from the given definitions and root schema. The
// definitions map is copied, later changes to the argument do not show up in
// the model.
func NewModel(definitions *sequencedmap.Map[string, Schema], root Schema) *Model {
	var defs *sequencedmap.Map[string, Schema]
	if definitions != nil {
		defs = sequencedmap.From(definitions.All())
	}

	return &Model{
		Definitions: defs,
		Root:        root,
	}
}

// GetDefinitions returns the value of the Definitions field. Returns nil if not set.
func (m *Model) GetDefinitions() *sequencedmap.Map[string, Schema] {
	if m == nil {
		return nil
	}
	return m.Definitions
}

// GetDefinition returns the named definition and true if present.
func (m *Model) GetDefinition(name string) (Schema, bool) {
	if m == nil {
		return nil, false
	}
	return m.Definitions.Get(name)
}

// GetRoot returns the value of the Root field. Returns nil if not set.
func (m *Model) GetRoot() Schema {
	if m == nil {
		return nil
	}
	return m.Root
}

// IsEqual compares two Model objects for equality. Definitions are compared
// without regard to declaration order.
func (m *Model) IsEqual(other *Model) bool {
	if m == nil || other == nil {
		return m == other
	}

	if !m.Definitions.IsEqualFunc(other.Definitions, Equal) {
		return false
	}

	return Equal(m.Root, other.Root)
}

// Clone returns a deep copy of the model.
func (m *Model) Clone() *Model {
	if m == nil {
		return nil
	}

	var defs *sequencedmap.Map[string, Schema]
	if m.Definitions != nil {
		defs = sequencedmap.NewWithCapacity[string, Schema](m.Definitions.Len())
		for name, schema := range m.Definitions.All() {
			defs.Set(name, Clone(schema))
		}
	}

	return &Model{
		Definitions: defs,
		Root:        Clone(m.Root),
	}
}
