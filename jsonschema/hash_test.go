package jsonschema_test

import (
	"regexp"
	"testing"

	"github.com/eelcoh/jsonschema-viewer/jsonschema"
	"github.com/eelcoh/jsonschema-viewer/pointer"
	"github.com/eelcoh/jsonschema-viewer/sequencedmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hashFormatRegex = regexp.MustCompile("^[0-9a-f]{16}$")

func TestHash_EqualSchemasHashEqual_Success(t *testing.T) {
	t.Parallel()

	first := buildEverySchemaKind()
	second := buildEverySchemaKind()

	for i, schema := range first {
		t.Run(string(schema.Kind()), func(t *testing.T) {
			t.Parallel()

			actual := jsonschema.Hash(schema)

			assert.Regexp(t, hashFormatRegex, actual)
			assert.Equal(t, actual, jsonschema.Hash(second[i]))
		})
	}
}

func TestHash_DifferentContentHashesDiffer_Success(t *testing.T) {
	t.Parallel()

	a := jsonschema.NewStringSchema(pointer.From("A"), nil, nil, nil, nil, nil, nil, nil)
	b := jsonschema.NewStringSchema(pointer.From("B"), nil, nil, nil, nil, nil, nil, nil)

	assert.NotEqual(t, jsonschema.Hash(a), jsonschema.Hash(b))
}

func TestHash_KindDistinguishesSchemas_Success(t *testing.T) {
	t.Parallel()

	// An integer enum and a number enum with the same rendering still hash
	// differently because the kind is part of the hash input.
	integer := jsonschema.NewIntegerSchema(nil, nil, nil, nil, []int64{1}, nil)
	number := jsonschema.NewNumberSchema(nil, nil, nil, nil, []float64{1}, nil)

	assert.NotEqual(t, jsonschema.Hash(integer), jsonschema.Hash(number))
}

func TestHashModel_DefinitionOrderInsensitive_Success(t *testing.T) {
	t.Parallel()

	user := func() jsonschema.Schema {
		return jsonschema.NewObjectSchema(pointer.From("User"), nil, nil, nil, nil, nil, nil)
	}
	address := func() jsonschema.Schema {
		return jsonschema.NewObjectSchema(pointer.From("Address"), nil, nil, nil, nil, nil, nil)
	}
	root := func() jsonschema.Schema {
		return jsonschema.NewReferenceSchema(nil, nil, "#/definitions/User", nil)
	}

	a := jsonschema.NewModel(sequencedmap.New(
		sequencedmap.NewElem("User", user()),
		sequencedmap.NewElem("Address", address()),
	), root())
	b := jsonschema.NewModel(sequencedmap.New(
		sequencedmap.NewElem("Address", address()),
		sequencedmap.NewElem("User", user()),
	), root())

	require.True(t, a.IsEqual(b))
	assert.Equal(t, jsonschema.HashModel(a), jsonschema.HashModel(b))
}

func TestHashModel_DifferentDefinitionsHashDiffer_Success(t *testing.T) {
	t.Parallel()

	root := jsonschema.NewNullSchema(nil, nil, nil)

	a := jsonschema.NewModel(sequencedmap.New(
		sequencedmap.NewElem[string, jsonschema.Schema]("User", jsonschema.NewObjectSchema(pointer.From("User"), nil, nil, nil, nil, nil, nil)),
	), root)
	b := jsonschema.NewModel(sequencedmap.New(
		sequencedmap.NewElem[string, jsonschema.Schema]("Account", jsonschema.NewObjectSchema(pointer.From("Account"), nil, nil, nil, nil, nil, nil)),
	), root)

	assert.NotEqual(t, jsonschema.HashModel(a), jsonschema.HashModel(b))
}
