package idxgo

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// FromBitmap builds a selection from a roaring bitmap interpreted as a
// boolean mask over a 32-bit original space: the set bits become the
// original keys in ascending order, assigned dense positions in that same
// order.
func FromBitmap(rb *roaring.Bitmap) *Selection[uint32, int] {
	keys := rb.ToArray()
	sel, err := FromKeys(keys)
	if err != nil {
		// Bitmap members are unique.
		panic(err)
	}
	return sel
}

// ToBitmap returns the selection's original keys as a roaring bitmap.
// Position order is discarded; for selections built with FromBitmap the
// round trip is exact.
func ToBitmap(s *Selection[uint32, int]) *roaring.Bitmap {
	rb := roaring.New()
	rb.AddMany(s.Keys())
	return rb
}
