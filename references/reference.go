// Package references provides the reference token type used to point at other
// schemas, either by URI, by JSON pointer fragment, or both. Tokens are held
// verbatim; splitting a token into its parts never modifies it, and resolving
// what a token points at is the consumer's concern.
package references

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/eelcoh/jsonschema-viewer/jsonpointer"
)

// Reference is a reference token such as "#/definitions/User" or
// "./common.json#/definitions/Address".
type Reference string

var _ fmt.Stringer = (*Reference)(nil)

// GetURI returns the URI part of the reference, the portion before any "#".
// Returns an empty string for fragment-only references.
func (r Reference) GetURI() string {
	uri, _, _ := strings.Cut(string(r), "#")
	return strings.TrimSpace(uri)
}

// HasJSONPointer returns true if the reference carries a fragment part.
func (r Reference) HasJSONPointer() bool {
	_, _, found := strings.Cut(string(r), "#")
	return found
}

// GetJSONPointer returns the JSON pointer held in the reference's fragment
// part. Returns an empty pointer if the reference has no fragment.
func (r Reference) GetJSONPointer() jsonpointer.JSONPointer {
	_, fragment, found := strings.Cut(string(r), "#")
	if !found {
		return ""
	}

	pointer := strings.TrimSpace(fragment)

	// fragments may carry percent-encoded characters such as %25
	if decoded, err := url.QueryUnescape(pointer); err == nil {
		pointer = decoded
	}

	return jsonpointer.JSONPointer(pointer)
}

// Validate checks that the parts of the reference are syntactically valid. An
// empty reference is valid: tokens are accepted as-is at construction and only
// checked when a consumer asks.
func (r Reference) Validate() error {
	if r == "" {
		return nil
	}

	if uri := r.GetURI(); uri != "" {
		if _, err := url.Parse(uri); err != nil {
			return fmt.Errorf("invalid reference URI: %w", err)
		}
	}

	if r.HasJSONPointer() {
		jp := r.GetJSONPointer()
		if jp == "" {
			return nil // bare "#" addresses the referenced document root
		}

		if err := jp.Validate(); err != nil {
			return fmt.Errorf("invalid reference JSON pointer: %w", err)
		}
	}

	return nil
}

// String returns the reference in its string form.
func (r Reference) String() string {
	return string(r)
}
