package jsonschema

import (
	"fmt"
	"hash/fnv"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/eelcoh/jsonschema-viewer/pointer"
	"github.com/eelcoh/jsonschema-viewer/values"
)

// Hash returns a deterministic hash of a schema. Schemas that compare equal
// with Equal hash to the same value.
func Hash(s Schema) string {
	hasher := fnv.New64a()
	_, _ = hasher.Write([]byte(schemaToHashableString(s)))
	return formatHash(hasher.Sum64())
}

// HashModel returns a deterministic hash of a model. Models that compare equal
// with Model.IsEqual hash to the same value, definitions hash in name order so
// declaration order does not affect the result.
func HashModel(m *Model) string {
	hasher := fnv.New64a()
	_, _ = hasher.Write([]byte(modelToHashableString(m)))
	return formatHash(hasher.Sum64())
}

// formatHash renders a uint64 hash as a zero-padded 16 character hex string.
func formatHash(h uint64) string {
	const hexDigits = "0123456789abcdef"
	var buf [16]byte
	for i := 15; i >= 0; i-- {
		buf[i] = hexDigits[h&0xf]
		h >>= 4
	}
	return string(buf[:])
}

func modelToHashableString(m *Model) string {
	if m == nil {
		return ""
	}

	var builder strings.Builder

	if m.Definitions.Len() > 0 {
		names := slices.Sorted(m.Definitions.Keys())
		for _, name := range names {
			schema, _ := m.Definitions.Get(name)
			builder.WriteString(name)
			builder.WriteString(schemaToHashableString(schema))
		}
	}

	writeField(&builder, "Root", schemaToHashableString(m.Root))

	return builder.String()
}

func schemaToHashableString(s Schema) string {
	if s == nil {
		return ""
	}
	if v := reflect.ValueOf(s); v.Kind() == reflect.Pointer && v.IsNil() {
		return ""
	}

	var builder strings.Builder
	builder.WriteString(string(s.Kind()))

	switch t := s.(type) {
	case *ObjectSchema:
		writeBaseFields(&builder, &t.BaseSchema)
		writeField(&builder, "Properties", propertiesToHashableString(t.Properties))
		writeField(&builder, "MinProperties", int64PtrToHashableString(t.MinProperties))
		writeField(&builder, "MaxProperties", int64PtrToHashableString(t.MaxProperties))
	case *ArraySchema:
		writeBaseFields(&builder, &t.BaseSchema)
		writeField(&builder, "Items", schemaToHashableString(t.Items))
		writeField(&builder, "MinItems", int64PtrToHashableString(t.MinItems))
		writeField(&builder, "MaxItems", int64PtrToHashableString(t.MaxItems))
	case *StringSchema:
		writeBaseFields(&builder, &t.BaseSchema)
		writeField(&builder, "MinLength", int64PtrToHashableString(t.MinLength))
		writeField(&builder, "MaxLength", int64PtrToHashableString(t.MaxLength))
		writeField(&builder, "Pattern", pointer.Value(t.Pattern))
		writeField(&builder, "Format", formatPtrToHashableString(t.Format))
		writeField(&builder, "Enum", stringSliceToHashableString(t.Enum))
	case *IntegerSchema:
		writeBaseFields(&builder, &t.BaseSchema)
		writeField(&builder, "Minimum", int64PtrToHashableString(t.Minimum))
		writeField(&builder, "Maximum", int64PtrToHashableString(t.Maximum))
		writeField(&builder, "Enum", int64SliceToHashableString(t.Enum))
	case *NumberSchema:
		writeBaseFields(&builder, &t.BaseSchema)
		writeField(&builder, "Minimum", float64PtrToHashableString(t.Minimum))
		writeField(&builder, "Maximum", float64PtrToHashableString(t.Maximum))
		writeField(&builder, "Enum", float64SliceToHashableString(t.Enum))
	case *BooleanSchema:
		writeBaseFields(&builder, &t.BaseSchema)
		writeField(&builder, "Enum", boolSliceToHashableString(t.Enum))
	case *NullSchema:
		writeBaseFields(&builder, &t.BaseSchema)
	case *ReferenceSchema:
		writeBaseFields(&builder, &t.BaseSchema)
		writeField(&builder, "Ref", string(t.Ref))
	case *OneOfSchema:
		writeBaseFields(&builder, &t.BaseSchema)
		writeField(&builder, "SubSchemas", schemaSliceToHashableString(t.SubSchemas))
	case *AnyOfSchema:
		writeBaseFields(&builder, &t.BaseSchema)
		writeField(&builder, "SubSchemas", schemaSliceToHashableString(t.SubSchemas))
	case *AllOfSchema:
		writeBaseFields(&builder, &t.BaseSchema)
		writeField(&builder, "SubSchemas", schemaSliceToHashableString(t.SubSchemas))
	case *FallbackSchema:
		writeField(&builder, "Value", nodeToHashableString(t.Value))
	default:
		panic(fmt.Sprintf("unknown schema kind: %T", s))
	}

	return builder.String()
}

func writeBaseFields(builder *strings.Builder, base *BaseSchema) {
	writeField(builder, "Title", pointer.Value(base.Title))
	writeField(builder, "Description", pointer.Value(base.Description))
	writeField(builder, "Examples", valueSliceToHashableString(base.Examples))
}

func writeField(builder *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	builder.WriteString(name)
	builder.WriteString(value)
}

func propertiesToHashableString(props []ObjectProperty) string {
	var builder strings.Builder
	for _, prop := range props {
		writeField(&builder, "Name", prop.Name)
		builder.WriteString("Required")
		builder.WriteString(strconv.FormatBool(prop.Required))
		writeField(&builder, "Schema", schemaToHashableString(prop.Schema))
	}
	return builder.String()
}

func schemaSliceToHashableString(schemas []Schema) string {
	var builder strings.Builder
	for _, s := range schemas {
		builder.WriteString(schemaToHashableString(s))
	}
	return builder.String()
}

func valueSliceToHashableString(vals []values.Value) string {
	var builder strings.Builder
	for _, v := range vals {
		builder.WriteString(nodeToHashableString(v))
	}
	return builder.String()
}

// nodeToHashableString covers the semantic fields of a node only, positional
// metadata such as Line and Column does not affect the hash. Aliases resolve
// to their targets first, matching values.Equal.
func nodeToHashableString(node values.Value) string {
	resolved := values.ResolveAlias(node)
	if resolved == nil {
		return ""
	}

	var builder strings.Builder

	builder.WriteString("Kind")
	builder.WriteString(strconv.Itoa(int(resolved.Kind)))
	if resolved.Tag != "" {
		builder.WriteString("Tag" + resolved.Tag)
	}
	if resolved.Value != "" {
		builder.WriteString("Value" + resolved.Value)
	}

	for _, child := range resolved.Content {
		builder.WriteString(nodeToHashableString(child))
	}

	return builder.String()
}

func int64PtrToHashableString(p *int64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatInt(*p, 10)
}

func float64PtrToHashableString(p *float64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatFloat(*p, 'f', -1, 64)
}

func formatPtrToHashableString(p *Format) string {
	if p == nil {
		return ""
	}
	return string(*p)
}

func stringSliceToHashableString(vals []string) string {
	return strings.Join(vals, "")
}

func int64SliceToHashableString(vals []int64) string {
	var builder strings.Builder
	for _, v := range vals {
		builder.WriteString(strconv.FormatInt(v, 10))
	}
	return builder.String()
}

func float64SliceToHashableString(vals []float64) string {
	var builder strings.Builder
	for _, v := range vals {
		builder.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
	}
	return builder.String()
}

func boolSliceToHashableString(vals []bool) string {
	var builder strings.Builder
	for _, v := range vals {
		builder.WriteString(strconv.FormatBool(v))
	}
	return builder.String()
}
