package idxgo

import (
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/idxgo/ndarray"
)

// Cell is a comparable two-axis coordinate in the original space, used as
// the map key by the two-dimensional converters.
type Cell[R, C comparable] struct {
	Row R
	Col C
}

// Entry is an N-dimensional coordinate/value pair with homogeneous key
// type, used by the rank-generic converters. Heterogeneous coordinate
// tuples cannot be Go map keys, which is why ranks one and two get the
// dedicated map-based converters.
type Entry[K comparable, T any] struct {
	Coords []K
	Value  T
}

// chunks invokes fn over [0,n) split into roughly equal ranges processed
// concurrently. With parallelism below 2 it runs fn(0, n) inline.
func chunks(n, parallelism int, fn func(lo, hi int) error) error {
	if parallelism < 2 || n == 0 {
		return fn(0, n)
	}
	if parallelism > n {
		parallelism = n
	}
	size := (n + parallelism - 1) / parallelism

	var g errgroup.Group
	for lo := 0; lo < n; lo += size {
		hi := min(lo+size, n)
		g.Go(func() error { return fn(lo, hi) })
	}
	return g.Wait()
}

func checkAxes[T any](x *ndarray.Array[T], sizes ...int) error {
	if x.NDim() != len(sizes) {
		return &ErrDimensionMismatch{Expected: len(sizes), Actual: x.NDim()}
	}
	for axis, size := range sizes {
		if x.Dim(axis) != size {
			return &ErrAxisSizeMismatch{Axis: axis, AxisLen: x.Dim(axis), SelectionSize: size}
		}
	}
	return nil
}

// ArrayToDict converts a one-dimensional array into a map from
// original-space keys to values: each dense position is translated back to
// its original key through the selection's inverse. The array length must
// equal the selection size.
func ArrayToDict[K comparable, T any](x *ndarray.Array[T], sel *Selection[K, int], opts ...ConvertOption) (map[K]T, error) {
	o := applyConvertOptions(opts)
	if err := checkAxes(x, sel.Len()); err != nil {
		return nil, err
	}

	keys := sel.Keys()
	data := x.Data()

	build := func(lo, hi int) map[K]T {
		m := make(map[K]T, hi-lo)
		for i := lo; i < hi; i++ {
			m[keys[i]] = data[i]
		}
		return m
	}

	if o.parallelism < 2 || len(data) == 0 {
		return build(0, len(data)), nil
	}

	return mergeParts(len(data), o.parallelism, build), nil
}

// ArrayToDict2 converts a two-dimensional array into a map from Cell
// coordinates to values, one selection per axis.
func ArrayToDict2[R, C comparable, T any](x *ndarray.Array[T], rows *Selection[R, int], cols *Selection[C, int], opts ...ConvertOption) (map[Cell[R, C]]T, error) {
	o := applyConvertOptions(opts)
	if err := checkAxes(x, rows.Len(), cols.Len()); err != nil {
		return nil, err
	}

	rk, ck := rows.Keys(), cols.Keys()
	data := x.Data()
	nc := cols.Len()

	if len(data) == 0 {
		return map[Cell[R, C]]T{}, nil
	}

	build := func(lo, hi int) map[Cell[R, C]]T {
		m := make(map[Cell[R, C]]T, hi-lo)
		for f := lo; f < hi; f++ {
			m[Cell[R, C]{Row: rk[f/nc], Col: ck[f%nc]}] = data[f]
		}
		return m
	}

	if o.parallelism < 2 {
		return build(0, len(data)), nil
	}

	return mergeParts(len(data), o.parallelism, build), nil
}

func mergeParts[M comparable, T any](n, parallelism int, build func(lo, hi int) map[M]T) map[M]T {
	if parallelism > n {
		parallelism = n
	}
	size := (n + parallelism - 1) / parallelism
	numParts := (n + size - 1) / size
	parts := make([]map[M]T, numParts)

	var g errgroup.Group
	for ci := range numParts {
		g.Go(func() error {
			lo := ci * size
			parts[ci] = build(lo, min(lo+size, n))
			return nil
		})
	}
	_ = g.Wait() // build closures never fail

	out := make(map[M]T, n)
	for _, part := range parts {
		for k, v := range part {
			out[k] = v
		}
	}
	return out
}

// DictToArray scatters a map of key/value pairs into a dense
// one-dimensional array of the selection's size. Every cell starts as
// fill, so keys without data read back as the fill sentinel. A key absent
// from the selection fails with *ErrKeyNotFound unless IgnoreMissingKeys
// is set, in which case the entry is skipped.
func DictToArray[K comparable, T any](d map[K]T, sel *Selection[K, int], fill T, opts ...ConvertOption) (*ndarray.Array[T], error) {
	o := applyConvertOptions(opts)
	out, err := ndarray.Full(fill, sel.Len())
	if err != nil {
		return nil, err
	}
	data := out.Data()

	if o.parallelism < 2 {
		for k, v := range d {
			p, err := sel.Lookup(k)
			if err != nil {
				if o.ignoreMissingKeys {
					continue
				}
				return nil, err
			}
			data[p] = v
		}
		return out, nil
	}

	type kv struct {
		k K
		v T
	}
	entries := make([]kv, 0, len(d))
	for k, v := range d {
		entries = append(entries, kv{k: k, v: v})
	}
	err = chunks(len(entries), o.parallelism, func(lo, hi int) error {
		for _, e := range entries[lo:hi] {
			p, err := sel.Lookup(e.k)
			if err != nil {
				if o.ignoreMissingKeys {
					continue
				}
				return err
			}
			data[p] = e.v
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DictToArray2 scatters a map of Cell/value pairs into a dense
// two-dimensional array shaped by the two selections' sizes. Missing-key
// handling matches DictToArray.
func DictToArray2[R, C comparable, T any](d map[Cell[R, C]]T, rows *Selection[R, int], cols *Selection[C, int], fill T, opts ...ConvertOption) (*ndarray.Array[T], error) {
	o := applyConvertOptions(opts)
	out, err := ndarray.Full(fill, rows.Len(), cols.Len())
	if err != nil {
		return nil, err
	}
	data := out.Data()
	nc := cols.Len()

	scatter := func(cell Cell[R, C], v T) error {
		pr, err := rows.Lookup(cell.Row)
		if err != nil {
			return err
		}
		pc, err := cols.Lookup(cell.Col)
		if err != nil {
			return err
		}
		data[pr*nc+pc] = v
		return nil
	}

	if o.parallelism < 2 {
		for cell, v := range d {
			if err := scatter(cell, v); err != nil {
				if o.ignoreMissingKeys {
					continue
				}
				return nil, err
			}
		}
		return out, nil
	}

	type kv struct {
		cell Cell[R, C]
		v    T
	}
	entries := make([]kv, 0, len(d))
	for cell, v := range d {
		entries = append(entries, kv{cell: cell, v: v})
	}
	err = chunks(len(entries), o.parallelism, func(lo, hi int) error {
		for _, e := range entries[lo:hi] {
			if err := scatter(e.cell, e.v); err != nil {
				if o.ignoreMissingKeys {
					continue
				}
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ArrayToEntries converts an N-dimensional array into coordinate/value
// entries, one selection per axis, all axes sharing the key type K. The
// entries appear in row-major order, one per element.
func ArrayToEntries[K comparable, T any](x *ndarray.Array[T], sels []*Selection[K, int], opts ...ConvertOption) ([]Entry[K, T], error) {
	o := applyConvertOptions(opts)
	sizes := make([]int, len(sels))
	for i, sel := range sels {
		sizes[i] = sel.Len()
	}
	if err := checkAxes(x, sizes...); err != nil {
		return nil, err
	}

	tabs := make([][]K, len(sels))
	for i, sel := range sels {
		tabs[i] = sel.Keys()
	}
	data := x.Data()

	out := make([]Entry[K, T], len(data))
	err := chunks(len(data), o.parallelism, func(lo, hi int) error {
		for f := lo; f < hi; f++ {
			coords := x.Coords(f)
			kc := make([]K, len(coords))
			for i, c := range coords {
				kc[i] = tabs[i][c]
			}
			out[f] = Entry[K, T]{Coords: kc, Value: data[f]}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// EntriesToArray scatters coordinate/value entries into a dense
// N-dimensional array shaped by the selections' sizes, every cell starting
// as fill. An entry whose coordinate count does not match the axis count
// fails with *ErrDimensionMismatch; missing-key handling matches
// DictToArray. If two entries share a coordinate the result is
// unspecified.
func EntriesToArray[K comparable, T any](entries []Entry[K, T], fill T, sels []*Selection[K, int], opts ...ConvertOption) (*ndarray.Array[T], error) {
	o := applyConvertOptions(opts)
	shape := make([]int, len(sels))
	for i, sel := range sels {
		shape[i] = sel.Len()
	}
	out, err := ndarray.Full(fill, shape...)
	if err != nil {
		return nil, err
	}

	scatter := func(e Entry[K, T]) error {
		if len(e.Coords) != len(sels) {
			return &ErrDimensionMismatch{Expected: len(sels), Actual: len(e.Coords)}
		}
		pos := make([]int, len(sels))
		for i, k := range e.Coords {
			p, err := sels[i].Lookup(k)
			if err != nil {
				return err
			}
			pos[i] = p
		}
		return out.Set(e.Value, pos...)
	}

	err = chunks(len(entries), o.parallelism, func(lo, hi int) error {
		for _, e := range entries[lo:hi] {
			if err := scatter(e); err != nil {
				var nf *ErrKeyNotFound
				if o.ignoreMissingKeys && errors.As(err, &nf) {
					continue
				}
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
