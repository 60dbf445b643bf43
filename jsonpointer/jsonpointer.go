// Package jsonpointer provides the RFC 6901 JSON pointer syntax used to
// address locations within a schema document.
package jsonpointer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/eelcoh/jsonschema-viewer/errors"
)

const (
	// ErrNotFound is returned when the target of a pointer does not exist.
	ErrNotFound = errors.Error("not found")
	// ErrInvalidPath is returned when a pointer addresses something that cannot be navigated.
	ErrInvalidPath = errors.Error("invalid path")
	// ErrValidation is returned when the pointer itself is malformed.
	ErrValidation = errors.Error("validation error")
)

var (
	tokenRegex     = regexp.MustCompile("^(?:[\x00-\x2E\x30-\x7D\x7F-￿]|~[01])+$")
	digitOnlyRegex = regexp.MustCompile("^[0-9]+$")
)

// JSONPointer represents an RFC 6901 JSON pointer. Pointers always begin with
// "/"; the pointer "/" on its own addresses the document root.
type JSONPointer string

// Part is a single reference token of a JSON pointer, with escape sequences decoded.
type Part struct {
	Value   string
	IsIndex bool
}

// Index returns the token as an array index. Only meaningful when IsIndex is true.
func (p Part) Index() int {
	index, _ := strconv.Atoi(p.Value)
	return index
}

// Validate checks that the pointer is valid as per RFC 6901.
func (j JSONPointer) Validate() error {
	if _, err := j.Parts(); err != nil {
		return err
	}
	return nil
}

// String returns the pointer in its string form.
func (j JSONPointer) String() string {
	return string(j)
}

// Parts splits the pointer into its reference tokens in document order. The
// root pointer "/" yields no parts.
func (j JSONPointer) Parts() ([]Part, error) {
	if len(j) == 0 {
		return nil, ErrValidation.Wrap(errors.New("jsonpointer must not be empty"))
	}

	if !strings.HasPrefix(string(j), "/") {
		return nil, ErrValidation.Wrap(fmt.Errorf("jsonpointer must start with /: %s", string(j)))
	}

	if len(j) == 1 {
		return nil, nil
	}

	tokens := strings.Split(strings.TrimPrefix(string(j), "/"), "/")
	parts := make([]Part, 0, len(tokens))

	for _, token := range tokens {
		if len(token) == 0 {
			return nil, ErrValidation.Wrap(fmt.Errorf("jsonpointer part must not be empty: %s", string(j)))
		}

		if !tokenRegex.MatchString(token) {
			return nil, ErrValidation.Wrap(fmt.Errorf("jsonpointer part must be a valid token [%s]: %s", tokenRegex.String(), string(j)))
		}

		parts = append(parts, Part{
			Value:   UnescapeString(token),
			IsIndex: isIndexToken(token),
		})
	}

	return parts, nil
}

// indexes must not carry leading zeros, per RFC 6901 array token grammar
func isIndexToken(token string) bool {
	return digitOnlyRegex.MatchString(token) && (len(token) == 1 || token[0] != '0')
}

// PartsToJSONPointer will convert the exploded parts of a JSONPointer to a JSONPointer.
func PartsToJSONPointer(parts []string) JSONPointer {
	var sb strings.Builder
	for _, part := range parts {
		sb.WriteByte('/')
		sb.WriteString(EscapeString(part))
	}
	return JSONPointer(sb.String())
}

// EscapeString escapes a string for use as a reference token, replacing "~"
// with "~0" and "/" with "~1" as required by RFC 6901.
func EscapeString(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "~", "~0"), "/", "~1")
}

// UnescapeString decodes the RFC 6901 escape sequences in a reference token.
func UnescapeString(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "~1", "/"), "~0", "~")
}
