package idxgo

import (
	"testing"

	"github.com/hupe1980/idxgo/ndarray"
)

func benchSelection(n int) *Selection[int, int] {
	mask := make([]bool, n)
	for i := range mask {
		mask[i] = i%3 != 0
	}
	return FromMask(mask)
}

func BenchmarkLookup(b *testing.B) {
	sel := benchSelection(1 << 16)
	keys := sel.Keys()

	b.ResetTimer()
	for i := 0; b.Loop(); i++ {
		_, _ = sel.Lookup(keys[i%len(keys)])
	}
}

func BenchmarkCompose(b *testing.B) {
	a := benchSelection(1 << 12)
	mask := make([]bool, a.Len())
	for i := range mask {
		mask[i] = i%2 == 0
	}

	b.ResetTimer()
	for b.Loop() {
		_, _ = ComposeMask(a, mask)
	}
}

func BenchmarkArrayToDict(b *testing.B) {
	sel := benchSelection(1 << 12)
	x, _ := ndarray.New[float64](sel.Len())

	b.ResetTimer()
	for b.Loop() {
		_, _ = ArrayToDict(x, sel)
	}
}
