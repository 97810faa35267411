package idxgo

import "iter"

// Builder assembles a selection incrementally, for callers that discover
// keys one at a time (scanning a source, merging streams). Duplicate
// detection is deferred to Build.
//
// A Builder is not safe for concurrent use; the built Selection is.
type Builder[K comparable] struct {
	keys []K
}

// NewBuilder creates an empty selection builder.
func NewBuilder[K comparable]() *Builder[K] {
	return &Builder[K]{}
}

// Add appends keys in order and returns the builder for chaining.
func (b *Builder[K]) Add(keys ...K) *Builder[K] {
	b.keys = append(b.keys, keys...)
	return b
}

// AddSeq appends every key of seq in iteration order.
func (b *Builder[K]) AddSeq(seq iter.Seq[K]) *Builder[K] {
	for k := range seq {
		b.keys = append(b.keys, k)
	}
	return b
}

// Len returns the number of keys added so far.
func (b *Builder[K]) Len() int {
	return len(b.keys)
}

// Build constructs the selection, assigning dense positions in insertion
// order. It fails with *bimap.ErrDuplicateKey if any key repeats. The
// builder may be reused afterwards; the selection does not alias it.
func (b *Builder[K]) Build() (*Selection[K, int], error) {
	return FromKeys(b.keys)
}
