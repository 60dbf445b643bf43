// Package walk provides location tracking for iterator based traversals of a
// document tree, letting consumers recover where an element sits within its
// parents as an RFC 6901 JSON pointer.
package walk

import (
	"strconv"
	"strings"

	"github.com/eelcoh/jsonschema-viewer/jsonpointer"
)

// LocationContext represents the context of where an element is located within
// its parent. The generic type T carries the parent element itself.
type LocationContext[T any] struct {
	Parent      T
	ParentField string
	ParentKey   *string
	ParentIndex *int
}

// Locations is the chain of location contexts leading from the root of a
// document to an element.
type Locations[T any] []LocationContext[T]

// ToJSONPointer converts the locations to a JSON pointer addressing the element.
func (l Locations[T]) ToJSONPointer() jsonpointer.JSONPointer {
	var sb strings.Builder
	sb.WriteString("/")

	for _, location := range l {
		if location.ParentField != "" {
			if !strings.HasSuffix(sb.String(), "/") {
				sb.WriteString("/")
			}
			sb.WriteString(jsonpointer.EscapeString(location.ParentField))
		}

		if location.ParentKey != nil {
			sb.WriteString("/")
			sb.WriteString(jsonpointer.EscapeString(*location.ParentKey))
		} else if location.ParentIndex != nil {
			sb.WriteString("/")
			sb.WriteString(strconv.Itoa(*location.ParentIndex))
		}
	}

	return jsonpointer.JSONPointer(sb.String())
}

// IsParent reports whether the element's nearest enclosing field matches field.
func (l Locations[T]) IsParent(field string) bool {
	if len(l) == 0 {
		return false
	}

	last := l[len(l)-1]
	if last.ParentField != "" {
		return last.ParentField == field
	}

	if (last.ParentKey != nil || last.ParentIndex != nil) && len(l) > 1 {
		return l[len(l)-2].ParentField == field
	}

	return false
}
