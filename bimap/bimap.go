// Package bimap provides an immutable, insertion-ordered bidirectional map.
//
// An Ordered mapping is injective in both directions: no two keys share a
// value and no two values share a key. Lookups are O(1) either way. The
// inverse is a transposed view built once at construction; it shares the
// backing maps with its parent, so holding both costs no more than holding
// one.
package bimap

import (
	"fmt"
	"iter"
	"slices"
)

// Pair is a single (key, value) association.
type Pair[K, V comparable] struct {
	Key   K
	Value V
}

// ErrDuplicateKey indicates that a key appeared more than once in the
// construction input.
type ErrDuplicateKey struct {
	Key any
}

func (e *ErrDuplicateKey) Error() string {
	return fmt.Sprintf("bimap: duplicate key: %v", e.Key)
}

// ErrDuplicateValue indicates that a value appeared more than once in the
// construction input.
type ErrDuplicateValue struct {
	Value any
}

func (e *ErrDuplicateValue) Error() string {
	return fmt.Sprintf("bimap: duplicate value: %v", e.Value)
}

// ErrNotFound indicates a lookup for a key that is not in the mapping.
type ErrNotFound struct {
	Key any
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("bimap: key not found: %v", e.Key)
}

// Ordered is an immutable, insertion-ordered bidirectional map.
//
// The zero value is not usable; construct via FromPairs or FromKeys.
// Once constructed an Ordered mapping is never mutated, so it is safe for
// concurrent readers without locking.
type Ordered[K, V comparable] struct {
	fwd  map[K]V
	rev  map[V]K
	keys []K // insertion order
	inv  *Ordered[V, K]
}

// FromPairs builds an Ordered mapping from pairs, preserving their order.
// It fails with *ErrDuplicateKey or *ErrDuplicateValue if the input
// violates injectivity.
func FromPairs[K, V comparable](pairs []Pair[K, V]) (*Ordered[K, V], error) {
	fwd := make(map[K]V, len(pairs))
	rev := make(map[V]K, len(pairs))
	keys := make([]K, 0, len(pairs))
	vals := make([]V, 0, len(pairs))

	for _, p := range pairs {
		if _, ok := fwd[p.Key]; ok {
			return nil, &ErrDuplicateKey{Key: p.Key}
		}
		if _, ok := rev[p.Value]; ok {
			return nil, &ErrDuplicateValue{Value: p.Value}
		}
		fwd[p.Key] = p.Value
		rev[p.Value] = p.Key
		keys = append(keys, p.Key)
		vals = append(vals, p.Value)
	}

	m := &Ordered[K, V]{fwd: fwd, rev: rev, keys: keys}
	m.inv = &Ordered[V, K]{fwd: rev, rev: fwd, keys: vals, inv: m}

	return m, nil
}

// FromKeys builds an Ordered mapping that assigns the dense values
// 0..len(keys)-1 to the keys in order. It fails with *ErrDuplicateKey if a
// key repeats.
func FromKeys[K comparable](keys []K) (*Ordered[K, int], error) {
	pairs := make([]Pair[K, int], len(keys))
	for i, k := range keys {
		pairs[i] = Pair[K, int]{Key: k, Value: i}
	}
	return FromPairs(pairs)
}

// Len returns the number of associations.
func (m *Ordered[K, V]) Len() int {
	return len(m.keys)
}

// Get returns the value associated with k, or *ErrNotFound.
func (m *Ordered[K, V]) Get(k K) (V, error) {
	v, ok := m.fwd[k]
	if !ok {
		var zero V
		return zero, &ErrNotFound{Key: k}
	}
	return v, nil
}

// GetOk returns the value associated with k and whether it is present.
func (m *Ordered[K, V]) GetOk(k K) (V, bool) {
	v, ok := m.fwd[k]
	return v, ok
}

// Contains reports whether k is present.
func (m *Ordered[K, V]) Contains(k K) bool {
	_, ok := m.fwd[k]
	return ok
}

// Inverse returns the transposed view of the mapping. The view shares the
// backing storage with its parent and m.Inverse().Inverse() returns m
// itself.
func (m *Ordered[K, V]) Inverse() *Ordered[V, K] {
	return m.inv
}

// All iterates the associations in insertion order. The returned sequence
// is restartable.
func (m *Ordered[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.keys {
			if !yield(k, m.fwd[k]) {
				return
			}
		}
	}
}

// Keys returns the keys in insertion order.
func (m *Ordered[K, V]) Keys() []K {
	return slices.Clone(m.keys)
}

// Values returns the values in insertion order.
func (m *Ordered[K, V]) Values() []V {
	return slices.Clone(m.inv.keys)
}
