package idxgo

import (
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromBitmap(t *testing.T) {
	rb := roaring.BitmapOf(9, 1, 5)
	sel := FromBitmap(rb)

	// Bitmap order is ascending regardless of add order.
	assert.Equal(t, []uint32{1, 5, 9}, sel.Keys())

	pos, err := sel.Lookup(5)
	require.NoError(t, err)
	assert.Equal(t, 1, pos)

	orig, err := sel.Inverse().Lookup(2)
	require.NoError(t, err)
	assert.Equal(t, uint32(9), orig)
}

func TestToBitmap(t *testing.T) {
	rb := roaring.BitmapOf(2, 4, 8)
	sel := FromBitmap(rb)

	back := ToBitmap(sel)
	assert.True(t, rb.Equals(back))
}

func TestBitmapAsMask(t *testing.T) {
	// A bitmap selection agrees with the equivalent boolean mask over the
	// same universe (modulo key width).
	rb := roaring.BitmapOf(0, 3)
	fromBitmap := FromBitmap(rb)
	fromMask := FromMask([]bool{true, false, false, true})

	require.Equal(t, fromMask.Len(), fromBitmap.Len())
	for i, k := range fromMask.Keys() {
		assert.Equal(t, uint32(k), fromBitmap.Keys()[i])
	}
}
