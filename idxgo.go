package idxgo

import (
	"iter"
	"slices"
	"sync"

	"github.com/hupe1980/idxgo/bimap"
	"github.com/hupe1980/idxgo/ndarray"
)

// Selection is an immutable, order-preserving, injective mapping between an
// original index space K and a selected space P.
//
// Every directly constructed selection maps into the dense positions
// 0..n-1, so P is int; the second type parameter exists so that the inverse
// of a selection is itself a Selection (and composition results, whose
// selected space is another selection's key space, stay first class).
//
// A Selection acts as two capabilities on one entity:
//
//   - a key/position map: Lookup, LookupAll, Inverse, All
//   - an index array: Keys returns the dense array of original keys in
//     position order, so a Selection[int, int] is interchangeable with the
//     boolean mask or integer gather it was built from (see ndarray.Take).
//
// Selections are safe for concurrent readers.
type Selection[K, P comparable] struct {
	m    *bimap.Ordered[K, P]
	keys func() []K
	inv  *Selection[P, K]
}

// newSelection wraps a bimap and links the inverse twin. If eager is
// non-nil it becomes the memoized key array; otherwise the array is
// derived from the mapping on first use.
func newSelection[K, P comparable](m *bimap.Ordered[K, P], eager []K) *Selection[K, P] {
	s := &Selection[K, P]{m: m}
	t := &Selection[P, K]{m: m.Inverse()}
	s.inv, t.inv = t, s

	if eager != nil {
		s.keys = func() []K { return eager }
	} else {
		s.keys = sync.OnceValue(m.Keys)
	}
	t.keys = sync.OnceValue(m.Values)

	return s
}

// FromMask builds a selection from a boolean mask over the original space.
// The original keys are the indices of the true cells in ascending order,
// assigned dense positions in that same order.
func FromMask(mask []bool) *Selection[int, int] {
	keys := make([]int, 0, len(mask))
	for i, b := range mask {
		if b {
			keys = append(keys, i)
		}
	}
	m, err := bimap.FromKeys(keys)
	if err != nil {
		// Ascending indices cannot collide.
		panic(err)
	}
	return newSelection(m, keys)
}

// FromIndices builds a selection from an integer gather: the original keys
// are the indices in gather order. A repeated index violates injectivity
// and fails with *bimap.ErrDuplicateKey.
func FromIndices(indices []int) (*Selection[int, int], error) {
	keys := slices.Clone(indices)
	m, err := bimap.FromKeys(keys)
	if err != nil {
		return nil, err
	}
	return newSelection(m, keys), nil
}

// FromKeys builds a selection from an arbitrary key sequence, assigning
// dense positions in order. Use this for non-integer original spaces such
// as labels.
func FromKeys[K comparable](keys []K) (*Selection[K, int], error) {
	own := slices.Clone(keys)
	m, err := bimap.FromKeys(own)
	if err != nil {
		return nil, err
	}
	return newSelection(m, own), nil
}

// FromSeq builds a selection from a one-shot key iterator, assigning dense
// positions in iteration order.
func FromSeq[K comparable](seq iter.Seq[K]) (*Selection[K, int], error) {
	var keys []K
	for k := range seq {
		keys = append(keys, k)
	}
	return FromKeys(keys)
}

// FromBoolArray is FromMask for an ndarray operand. It fails with
// *ErrDimensionMismatch unless the array is one-dimensional.
func FromBoolArray(a *ndarray.Array[bool]) (*Selection[int, int], error) {
	if a.NDim() != 1 {
		return nil, &ErrDimensionMismatch{Expected: 1, Actual: a.NDim()}
	}
	return FromMask(a.Data()), nil
}

// FromIndexArray is FromIndices for an ndarray operand. It fails with
// *ErrDimensionMismatch unless the array is one-dimensional.
func FromIndexArray(a *ndarray.Array[int]) (*Selection[int, int], error) {
	if a.NDim() != 1 {
		return nil, &ErrDimensionMismatch{Expected: 1, Actual: a.NDim()}
	}
	return FromIndices(a.Data())
}

// Len returns the number of selected elements.
func (s *Selection[K, P]) Len() int {
	return s.m.Len()
}

// Lookup returns the selected-space position of an original key, or
// *ErrKeyNotFound.
func (s *Selection[K, P]) Lookup(k K) (P, error) {
	v, err := s.m.Get(k)
	if err != nil {
		var zero P
		return zero, translateError(err)
	}
	return v, nil
}

// LookupAll broadcasts Lookup over a key sequence, returning one position
// per key in order. The first absent key fails the whole call with
// *ErrKeyNotFound reporting that key.
func (s *Selection[K, P]) LookupAll(keys []K) ([]P, error) {
	out := make([]P, len(keys))
	for i, k := range keys {
		v, err := s.Lookup(k)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Contains reports whether k is in the selection's original space.
func (s *Selection[K, P]) Contains(k K) bool {
	return s.m.Contains(k)
}

// Inverse returns the position-to-key view. The inverse is itself a
// Selection and s.Inverse().Inverse() returns s.
func (s *Selection[K, P]) Inverse() *Selection[P, K] {
	return s.inv
}

// All iterates (key, position) pairs in position order. The returned
// sequence is restartable.
func (s *Selection[K, P]) All() iter.Seq2[K, P] {
	return s.m.All()
}

// Keys returns the dense array of original keys ordered by position. For
// selections built from a mask or gather this is the equivalent index
// array, usable anywhere integer indexing is expected.
//
// The slice is memoized and shared; callers must not modify it.
func (s *Selection[K, P]) Keys() []K {
	return s.keys()
}

// Positions returns the selected-space positions in insertion order. For
// directly constructed selections this is 0..n-1.
func (s *Selection[K, P]) Positions() []P {
	return s.m.Values()
}
