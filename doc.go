// Package idxgo tracks index correspondences across selections.
//
// A Selection is an immutable, order-preserving, one-to-one mapping between
// an original index space (positions or labels in a source sequence) and
// the dense positions 0..n-1 produced by a filtration step. Pipelines that
// apply several successive filters to array-like data can compose their
// selections into one and map a fully-filtered element back to its original
// position in a single lookup.
//
// # Quick Start
//
// Track one boolean filtration:
//
//	x := ndarray.FromSlice([]float64{3, 1, 4, 1, 5})
//	mask := []bool{false, false, true, false, true}
//	sel := idxgo.FromMask(mask)
//
//	filtered, _ := ndarray.Compress(x, mask)
//	// sel.Keys() is the equivalent gather: Take(x, sel.Keys()) == filtered
//	pos, _ := sel.Lookup(4)   // original index 4 survived at dense position 1
//	orig, _ := sel.Inverse().Lookup(1)
//
// Compose two filtration steps:
//
//	step1 := idxgo.FromMask(mask1)          // original -> S1
//	step2 := idxgo.FromMask(mask2)          // S1 -> S2
//	total, _ := idxgo.Compose(step1, step2) // original -> S2
//
// Convert between labeled dictionaries and dense arrays:
//
//	cities, _ := idxgo.FromKeys([]string{"Rome", "Berlin", "Paris"})
//	arr, _ := idxgo.DictToArray(map[string]float64{"Rome": 2.873}, cities, math.NaN())
//
// Selections are immutable once built and safe for concurrent readers.
package idxgo
