// Package pointer provides utilities for working with pointer-typed optional values.
package pointer

// From will create a pointer to the provided value.
func From[T any](v T) *T {
	return &v
}

// Value will return the value of the pointer or the zero value if the pointer is nil.
func Value[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}

	return *p
}

// Equal reports whether two pointers are both nil or point at equal values.
func Equal[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}

// Clone returns a pointer to a copy of the value p points at, or nil if p is nil.
func Clone[T any](p *T) *T {
	if p == nil {
		return nil
	}

	v := *p
	return &v
}
