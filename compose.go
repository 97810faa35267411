package idxgo

import (
	"github.com/hupe1980/idxgo/bimap"
)

// Compose evaluates the composite selection equivalent to applying a and
// then b: a maps the original space into S, b maps S into P, and the
// result maps the original space directly into P.
//
// For every (s, p) pair in b, the original key is recovered through a's
// inverse view; a key of b absent from a's position space fails with
// *ErrKeyNotFound. Composition is associative but not commutative.
//
// Compose is a free function rather than a method because the result
// introduces a new type parameter pairing; chains read left to right:
//
//	total, _ := idxgo.Compose(step1, step2)
func Compose[K, S, P comparable](a *Selection[K, S], b *Selection[S, P]) (*Selection[K, P], error) {
	ainv := a.Inverse()
	pairs := make([]bimap.Pair[K, P], 0, b.Len())
	for s, p := range b.All() {
		k, err := ainv.Lookup(s)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, bimap.Pair[K, P]{Key: k, Value: p})
	}

	// The join of two injective mappings is injective, so this cannot
	// fail on duplicates.
	m, err := bimap.FromPairs(pairs)
	if err != nil {
		return nil, err
	}
	return newSelection(m, nil), nil
}

// ComposeMask composes a with the selection of a raw boolean mask over a's
// position space.
func ComposeMask[K comparable](a *Selection[K, int], mask []bool) (*Selection[K, int], error) {
	return Compose(a, FromMask(mask))
}

// ComposeIndices composes a with the selection of a raw integer gather
// over a's position space.
func ComposeIndices[K comparable](a *Selection[K, int], indices []int) (*Selection[K, int], error) {
	b, err := FromIndices(indices)
	if err != nil {
		return nil, err
	}
	return Compose(a, b)
}
