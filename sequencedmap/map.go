// Package sequencedmap provides a map implementation that maintains the order of keys as they are added.
package sequencedmap

import (
	"cmp"
	"iter"
	"maps"
	"reflect"
	"slices"
)

// Element is a key-value pair that is stored in a sequenced map.
type Element[K comparable, V any] struct {
	Key   K
	Value V
}

// NewElem creates a new element with the specified key and value.
func NewElem[K comparable, V any](key K, value V) *Element[K, V] {
	return &Element[K, V]{
		Key:   key,
		Value: value,
	}
}

// Map is a map implementation that maintains the order of keys as they are added.
// Setting an existing key updates its value in place, keeping its original position.
type Map[K comparable, V any] struct {
	byKey map[K]*Element[K, V]
	order []*Element[K, V]
}

// New creates a new map with the specified elements.
func New[K comparable, V any](elements ...*Element[K, V]) *Map[K, V] {
	return newMap(len(elements), elements...)
}

// NewWithCapacity creates a new map with the specified capacity and elements.
func NewWithCapacity[K comparable, V any](capacity int, elements ...*Element[K, V]) *Map[K, V] {
	return newMap(capacity, elements...)
}

func newMap[K comparable, V any](capacity int, elements ...*Element[K, V]) *Map[K, V] {
	if capacity < len(elements) {
		capacity = len(elements)
	}

	m := &Map[K, V]{
		byKey: make(map[K]*Element[K, V], capacity),
		order: make([]*Element[K, V], 0, capacity),
	}

	for _, element := range elements {
		m.Set(element.Key, element.Value)
	}

	return m
}

// From creates a new map from the key-value pairs of seq, in the order yielded.
func From[K comparable, V any](seq iter.Seq2[K, V]) *Map[K, V] {
	m := New[K, V]()

	for k, v := range seq {
		m.Set(k, v)
	}

	return m
}

// FromMap creates a new map from a plain Go map, inserting keys in ascending
// order so the resulting sequence is deterministic.
func FromMap[K cmp.Ordered, V any](src map[K]V) *Map[K, V] {
	m := NewWithCapacity[K, V](len(src))

	for _, key := range slices.Sorted(maps.Keys(src)) {
		m.Set(key, src[key])
	}

	return m
}

// Init initializes the underlying resources of the map, allowing a zero value map to be used.
func (m *Map[K, V]) Init() {
	if m.byKey == nil {
		m.byKey = make(map[K]*Element[K, V])
	}
}

// Len returns the number of elements in the map. nil safe.
func (m *Map[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.order)
}

// Set sets the value for the specified key. An existing key keeps its position.
func (m *Map[K, V]) Set(key K, value V) {
	m.Init()

	if element, ok := m.byKey[key]; ok {
		element.Value = value
		return
	}

	element := NewElem(key, value)
	m.byKey[key] = element
	m.order = append(m.order, element)
}

// Get returns the value for the specified key and a boolean indicating whether the key was found.
func (m *Map[K, V]) Get(key K) (V, bool) {
	var zero V
	if m == nil {
		return zero, false
	}

	element, ok := m.byKey[key]
	if !ok {
		return zero, false
	}

	return element.Value, true
}

// GetOrZero returns the value for the specified key or the zero value if the key is not found.
func (m *Map[K, V]) GetOrZero(key K) V {
	value, _ := m.Get(key)
	return value
}

// Has returns a boolean indicating whether the map contains the specified key.
func (m *Map[K, V]) Has(key K) bool {
	if m == nil {
		return false
	}

	_, ok := m.byKey[key]
	return ok
}

// Delete removes the element with the specified key from the map.
func (m *Map[K, V]) Delete(key K) {
	if m == nil {
		return
	}

	if _, ok := m.byKey[key]; !ok {
		return
	}

	delete(m.byKey, key)

	i := slices.IndexFunc(m.order, func(e *Element[K, V]) bool {
		return e.Key == key
	})
	if i >= 0 {
		m.order = slices.Delete(m.order, i, i+1)
	}
}

// All returns an iterator that iterates over all elements in the map, in the order they were added.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m == nil {
			return
		}

		for _, element := range m.order {
			if !yield(element.Key, element.Value) {
				return
			}
		}
	}
}

// Keys returns an iterator that iterates over all keys in the map, in the order they were added.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		if m == nil {
			return
		}

		for _, element := range m.order {
			if !yield(element.Key) {
				return
			}
		}
	}
}

// Values returns an iterator that iterates over all values in the map, in the order they were added.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		if m == nil {
			return
		}

		for _, element := range m.order {
			if !yield(element.Value) {
				return
			}
		}
	}
}

// IsEqual reports whether the two maps hold the same keys with deeply equal
// values. Insertion order does not affect equality.
func (m *Map[K, V]) IsEqual(other *Map[K, V]) bool {
	return m.IsEqualFunc(other, func(a, b V) bool {
		return reflect.DeepEqual(a, b)
	})
}

// IsEqualFunc reports whether the two maps hold the same keys with values
// equal under eq. Insertion order does not affect equality.
func (m *Map[K, V]) IsEqualFunc(other *Map[K, V], eq func(a, b V) bool) bool {
	if m.Len() != other.Len() {
		return false
	}

	for key, value := range m.All() {
		otherValue, ok := other.Get(key)
		if !ok || !eq(value, otherValue) {
			return false
		}
	}

	return true
}
