package references_test

import (
	"testing"

	"github.com/eelcoh/jsonschema-viewer/jsonpointer"
	"github.com/eelcoh/jsonschema-viewer/references"
	"github.com/stretchr/testify/assert"
)

func TestReference_GetURI_Success(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		ref      references.Reference
		expected string
	}{
		{
			name:     "empty reference",
			ref:      "",
			expected: "",
		},
		{
			name:     "fragment only",
			ref:      "#/definitions/User",
			expected: "",
		},
		{
			name:     "uri only",
			ref:      "./common.json",
			expected: "./common.json",
		},
		{
			name:     "uri with fragment",
			ref:      "./common.json#/definitions/Address",
			expected: "./common.json",
		},
		{
			name:     "absolute uri with fragment",
			ref:      "https://example.com/schemas/user.json#/definitions/User",
			expected: "https://example.com/schemas/user.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.ref.GetURI())
		})
	}
}

func TestReference_HasJSONPointer_Success(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		ref      references.Reference
		expected bool
	}{
		{
			name:     "empty reference",
			ref:      "",
			expected: false,
		},
		{
			name:     "uri only",
			ref:      "./common.json",
			expected: false,
		},
		{
			name:     "fragment only",
			ref:      "#/definitions/User",
			expected: true,
		},
		{
			name:     "bare fragment marker",
			ref:      "./common.json#",
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.ref.HasJSONPointer())
		})
	}
}

func TestReference_GetJSONPointer_Success(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		ref      references.Reference
		expected jsonpointer.JSONPointer
	}{
		{
			name:     "no fragment",
			ref:      "./common.json",
			expected: "",
		},
		{
			name:     "fragment only",
			ref:      "#/definitions/User",
			expected: "/definitions/User",
		},
		{
			name:     "uri with fragment",
			ref:      "./common.json#/definitions/Address",
			expected: "/definitions/Address",
		},
		{
			name:     "percent encoded fragment",
			ref:      "#/definitions/50%25off",
			expected: "/definitions/50%off",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.ref.GetJSONPointer())
		})
	}
}

func TestReference_Validate_Success(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		ref  references.Reference
	}{
		{
			name: "empty reference",
			ref:  "",
		},
		{
			name: "definitions pointer",
			ref:  "#/definitions/User",
		},
		{
			name: "uri with pointer",
			ref:  "./common.json#/definitions/Address",
		},
		{
			name: "bare fragment marker",
			ref:  "./common.json#",
		},
		{
			name: "plain name token",
			ref:  "User",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.NoError(t, tt.ref.Validate())
		})
	}
}

func TestReference_Validate_Error(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		ref  references.Reference
	}{
		{
			name: "malformed pointer fragment",
			ref:  "#definitions/User",
		},
		{
			name: "pointer with empty token",
			ref:  "#/definitions//User",
		},
		{
			name: "unparseable uri",
			ref:  "http://exa mple.com#/definitions/User",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Error(t, tt.ref.Validate())
		})
	}
}

func TestReference_String_Success(t *testing.T) {
	t.Parallel()

	ref := references.Reference("#/definitions/User")
	assert.Equal(t, "#/definitions/User", ref.String())
}
