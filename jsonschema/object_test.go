package jsonschema_test

import (
	"testing"

	"github.com/eelcoh/jsonschema-viewer/jsonschema"
	"github.com/eelcoh/jsonschema-viewer/pointer"
	"github.com/eelcoh/jsonschema-viewer/sequencedmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewObjectSchema_PropertyPartition_Success(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		properties *sequencedmap.Map[string, jsonschema.Schema]
		required   []string
		expected   []struct {
			name     string
			required bool
		}
	}{
		{
			name: "required names mark matching properties",
			properties: sequencedmap.New(
				sequencedmap.NewElem[string, jsonschema.Schema]("id", jsonschema.NewStringSchema(nil, nil, nil, nil, nil, nil, nil, nil)),
				sequencedmap.NewElem[string, jsonschema.Schema]("name", jsonschema.NewStringSchema(nil, nil, nil, nil, nil, nil, nil, nil)),
				sequencedmap.NewElem[string, jsonschema.Schema]("email", jsonschema.NewStringSchema(nil, nil, nil, nil, nil, nil, nil, nil)),
			),
			required: []string{"id", "email"},
			expected: []struct {
				name     string
				required bool
			}{
				{name: "id", required: true},
				{name: "name", required: false},
				{name: "email", required: true},
			},
		},
		{
			name: "required names without a matching property are dropped",
			properties: sequencedmap.New(
				sequencedmap.NewElem[string, jsonschema.Schema]("id", jsonschema.NewStringSchema(nil, nil, nil, nil, nil, nil, nil, nil)),
			),
			required: []string{"id", "missing", "alsoMissing"},
			expected: []struct {
				name     string
				required bool
			}{
				{name: "id", required: true},
			},
		},
		{
			name: "required matching is exact",
			properties: sequencedmap.New(
				sequencedmap.NewElem[string, jsonschema.Schema]("id", jsonschema.NewStringSchema(nil, nil, nil, nil, nil, nil, nil, nil)),
			),
			required: []string{"ID"},
			expected: []struct {
				name     string
				required bool
			}{
				{name: "id", required: false},
			},
		},
		{
			name:       "nil properties with required names yields no properties",
			properties: nil,
			required:   []string{"id"},
			expected: []struct {
				name     string
				required bool
			}{},
		},
		{
			name: "no required names leaves all properties optional",
			properties: sequencedmap.New(
				sequencedmap.NewElem[string, jsonschema.Schema]("a", jsonschema.NewIntegerSchema(nil, nil, nil, nil, nil, nil)),
				sequencedmap.NewElem[string, jsonschema.Schema]("b", jsonschema.NewIntegerSchema(nil, nil, nil, nil, nil, nil)),
			),
			required: nil,
			expected: []struct {
				name     string
				required bool
			}{
				{name: "a", required: false},
				{name: "b", required: false},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			schema := jsonschema.NewObjectSchema(nil, nil, tt.properties, tt.required, nil, nil, nil)

			actual := schema.GetProperties()
			require.Len(t, actual, len(tt.expected))

			for i, expected := range tt.expected {
				assert.Equal(t, expected.name, actual[i].GetName())
				assert.Equal(t, expected.required, actual[i].IsRequired())
				assert.Equal(t, !expected.required, actual[i].IsOptional())
				assert.NotNil(t, actual[i].GetSchema())
			}
		})
	}
}

func TestNewObjectSchema_InputIsolation_Success(t *testing.T) {
	t.Parallel()

	properties := sequencedmap.New(
		sequencedmap.NewElem[string, jsonschema.Schema]("id", jsonschema.NewStringSchema(nil, nil, nil, nil, nil, nil, nil, nil)),
	)
	required := []string{"id"}
	minProperties := pointer.From(int64(1))

	schema := jsonschema.NewObjectSchema(nil, nil, properties, required, minProperties, nil, nil)

	// Later changes to the constructor arguments must not show up in the schema.
	properties.Set("extra", jsonschema.NewNullSchema(nil, nil, nil))
	required[0] = "changed"
	*minProperties = 99

	require.Len(t, schema.GetProperties(), 1)
	assert.Equal(t, "id", schema.GetProperties()[0].GetName())
	assert.True(t, schema.GetProperties()[0].IsRequired())
	assert.Equal(t, int64(1), schema.GetMinProperties())
}

func TestObjectSchema_GetProperty_Success(t *testing.T) {
	t.Parallel()

	schema := jsonschema.NewObjectSchema(nil, nil, sequencedmap.New(
		sequencedmap.NewElem[string, jsonschema.Schema]("id", jsonschema.NewStringSchema(nil, nil, nil, nil, nil, nil, nil, nil)),
		sequencedmap.NewElem[string, jsonschema.Schema]("age", jsonschema.NewIntegerSchema(nil, nil, nil, nil, nil, nil)),
	), []string{"id"}, nil, nil, nil)

	prop, ok := schema.GetProperty("age")
	require.True(t, ok)
	assert.Equal(t, "age", prop.GetName())
	assert.Equal(t, jsonschema.KindInteger, prop.GetSchema().Kind())
	assert.False(t, prop.IsRequired())

	_, ok = schema.GetProperty("missing")
	assert.False(t, ok)
}

func TestObjectSchema_Getters_NilSchema_Success(t *testing.T) {
	t.Parallel()

	var schema *jsonschema.ObjectSchema

	assert.Empty(t, schema.GetTitle())
	assert.Empty(t, schema.GetDescription())
	assert.Nil(t, schema.GetExamples())
	assert.Nil(t, schema.GetProperties())
	assert.Equal(t, int64(0), schema.GetMinProperties())
	assert.Equal(t, int64(0), schema.GetMaxProperties())

	_, ok := schema.GetProperty("id")
	assert.False(t, ok)
}

func TestObjectSchema_IsEqual_Success(t *testing.T) {
	t.Parallel()

	newSchema := func(required []string, minProperties *int64) *jsonschema.ObjectSchema {
		return jsonschema.NewObjectSchema(pointer.From("User"), nil, sequencedmap.New(
			sequencedmap.NewElem[string, jsonschema.Schema]("id", jsonschema.NewStringSchema(nil, nil, nil, nil, nil, nil, nil, nil)),
			sequencedmap.NewElem[string, jsonschema.Schema]("name", jsonschema.NewStringSchema(nil, nil, nil, nil, nil, nil, nil, nil)),
		), required, minProperties, nil, nil)
	}

	tests := []struct {
		name     string
		a        *jsonschema.ObjectSchema
		b        *jsonschema.ObjectSchema
		expected bool
	}{
		{
			name:     "identical schemas are equal",
			a:        newSchema([]string{"id"}, pointer.From(int64(1))),
			b:        newSchema([]string{"id"}, pointer.From(int64(1))),
			expected: true,
		},
		{
			name:     "different required partitions are not equal",
			a:        newSchema([]string{"id"}, nil),
			b:        newSchema([]string{"id", "name"}, nil),
			expected: false,
		},
		{
			name:     "different bounds are not equal",
			a:        newSchema(nil, pointer.From(int64(1))),
			b:        newSchema(nil, pointer.From(int64(2))),
			expected: false,
		},
		{
			name:     "bound presence differs",
			a:        newSchema(nil, pointer.From(int64(0))),
			b:        newSchema(nil, nil),
			expected: false,
		},
		{
			name:     "both nil are equal",
			a:        nil,
			b:        nil,
			expected: true,
		},
		{
			name:     "nil and non nil are not equal",
			a:        newSchema(nil, nil),
			b:        nil,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.a.IsEqual(tt.b))
			assert.Equal(t, tt.expected, tt.b.IsEqual(tt.a))
		})
	}
}

func TestObjectSchema_Clone_Success(t *testing.T) {
	t.Parallel()

	original := jsonschema.NewObjectSchema(pointer.From("User"), pointer.From("a user"), sequencedmap.New(
		sequencedmap.NewElem[string, jsonschema.Schema]("id", jsonschema.NewStringSchema(pointer.From("ID"), nil, nil, nil, nil, nil, nil, nil)),
	), []string{"id"}, pointer.From(int64(1)), pointer.From(int64(10)), nil)

	cloned := original.Clone()

	require.True(t, original.IsEqual(cloned))

	// Mutating the clone must leave the original untouched.
	*cloned.Title = "changed"
	cloned.Properties[0].Name = "changed"
	*cloned.Properties[0].Schema.(*jsonschema.StringSchema).Title = "changed"
	*cloned.MinProperties = 99

	assert.Equal(t, "User", original.GetTitle())
	assert.Equal(t, "id", original.GetProperties()[0].GetName())
	assert.Equal(t, "ID", original.GetProperties()[0].GetSchema().(*jsonschema.StringSchema).GetTitle())
	assert.Equal(t, int64(1), original.GetMinProperties())
}
