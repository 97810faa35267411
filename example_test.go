package idxgo_test

import (
	"fmt"

	"github.com/hupe1980/idxgo"
	"github.com/hupe1980/idxgo/ndarray"
)

func ExampleFromMask() {
	sel := idxgo.FromMask([]bool{false, false, true, false, true})

	fmt.Println(sel.Keys())

	pos, _ := sel.Lookup(4)
	fmt.Println(pos)

	orig, _ := sel.Inverse().Lookup(0)
	fmt.Println(orig)
	// Output:
	// [2 4]
	// 1
	// 2
}

func ExampleCompose() {
	x := ndarray.FromSlice([]float64{3, 1, 4, 1, 5, 9})

	// First filtration keeps indices 2, 4, 5; the second keeps the last
	// two of those.
	step1 := idxgo.FromMask([]bool{false, false, true, false, true, true})
	total, _ := idxgo.ComposeMask(step1, []bool{false, true, true})

	final, _ := ndarray.Take(x, total.Keys())
	fmt.Println(total.Keys())
	fmt.Println(final.Data())
	// Output:
	// [4 5]
	// [5 9]
}

func ExampleDictToArray() {
	cities, _ := idxgo.FromKeys([]string{"Rome", "Berlin", "Paris"})
	population := map[string]float64{"Rome": 2.873, "Berlin": 3.769}

	x, _ := idxgo.DictToArray(population, cities, -1)
	fmt.Println(x.Data())
	// Output:
	// [2.873 3.769 -1]
}

func ExampleArrayToDict() {
	cities, _ := idxgo.FromKeys([]string{"Rome", "Berlin"})
	population := ndarray.FromSlice([]float64{2.873, 3.769})

	d, _ := idxgo.ArrayToDict(population, cities)
	fmt.Println(d["Berlin"])
	// Output:
	// 3.769
}
