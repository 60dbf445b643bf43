// Package values provides the representation of raw JSON values carried
// verbatim by a schema document, such as examples, enum members and
// unrecognized subdocuments. A Value is a yaml.Node tree (JSON is a subset of
// YAML), which preserves member order and scalar formatting so values
// round-trip untouched between a decoder and an encoder.
package values

import (
	"strconv"

	"gopkg.in/yaml.v3"
)

// Value represents a raw value in a schema document.
type Value = *yaml.Node

// CreateStringNode creates a scalar node holding a string value.
func CreateStringNode(value string) Value {
	return &yaml.Node{
		Value: value,
		Kind:  yaml.ScalarNode,
		Tag:   "!!str",
	}
}

// CreateIntNode creates a scalar node holding an integer value.
func CreateIntNode(value int64) Value {
	return &yaml.Node{
		Value: strconv.FormatInt(value, 10),
		Kind:  yaml.ScalarNode,
		Tag:   "!!int",
	}
}

// CreateFloatNode creates a scalar node holding a floating point value.
func CreateFloatNode(value float64) Value {
	return &yaml.Node{
		Value: strconv.FormatFloat(value, 'f', -1, 64),
		Kind:  yaml.ScalarNode,
		Tag:   "!!float",
	}
}

// CreateBoolNode creates a scalar node holding a boolean value.
func CreateBoolNode(value bool) Value {
	return &yaml.Node{
		Value: strconv.FormatBool(value),
		Kind:  yaml.ScalarNode,
		Tag:   "!!bool",
	}
}

// CreateNullNode creates a scalar node holding a null value.
func CreateNullNode() Value {
	return &yaml.Node{
		Value: "null",
		Kind:  yaml.ScalarNode,
		Tag:   "!!null",
	}
}

// CreateSeqNode creates a sequence node with the provided elements.
func CreateSeqNode(elements ...Value) Value {
	return &yaml.Node{
		Content: elements,
		Kind:    yaml.SequenceNode,
		Tag:     "!!seq",
	}
}

// CreateMapNode creates a mapping node from alternating key and value nodes.
func CreateMapNode(content ...Value) Value {
	return &yaml.Node{
		Content: content,
		Kind:    yaml.MappingNode,
		Tag:     "!!map",
	}
}

// ResolveAlias follows alias nodes to the node they reference.
func ResolveAlias(value Value) Value {
	if value == nil {
		return nil
	}

	if value.Kind == yaml.AliasNode {
		return ResolveAlias(value.Alias)
	}

	return value
}

// Equal compares two values for equality. It performs a deep comparison of
// the essential fields, resolving aliases before comparing.
func Equal(a, b Value) bool {
	resolvedA := ResolveAlias(a)
	resolvedB := ResolveAlias(b)

	if resolvedA == nil || resolvedB == nil {
		return resolvedA == resolvedB
	}

	if resolvedA.Kind != resolvedB.Kind {
		return false
	}
	if resolvedA.Tag != resolvedB.Tag {
		return false
	}
	if resolvedA.Value != resolvedB.Value {
		return false
	}

	if len(resolvedA.Content) != len(resolvedB.Content) {
		return false
	}
	for i, contentA := range resolvedA.Content {
		if !Equal(contentA, resolvedB.Content[i]) {
			return false
		}
	}

	return true
}

// Clone returns a deep copy of the given value. Alias nodes are resolved to
// their targets so the copy shares no nodes with the original tree.
func Clone(value Value) Value {
	resolved := ResolveAlias(value)
	if resolved == nil {
		return nil
	}

	copied := *resolved
	copied.Alias = nil

	if len(resolved.Content) > 0 {
		copied.Content = make([]Value, len(resolved.Content))
		for i, child := range resolved.Content {
			copied.Content[i] = Clone(child)
		}
	}

	return &copied
}
