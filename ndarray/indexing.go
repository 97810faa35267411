package ndarray

// Take gathers elements of a one-dimensional array by an explicit index
// list, in index-list order. Repeats are allowed. It fails with
// *ErrShapeMismatch if a is not one-dimensional and with *ErrOutOfBounds
// on an index outside the array.
func Take[T any](a *Array[T], indices []int) (*Array[T], error) {
	if a.NDim() != 1 {
		return nil, &ErrShapeMismatch{Expected: 1, Actual: a.NDim()}
	}
	out := make([]T, len(indices))
	for j, i := range indices {
		if i < 0 || i >= len(a.data) {
			return nil, &ErrOutOfBounds{Axis: 0, Index: i, Size: len(a.data)}
		}
		out[j] = a.data[i]
	}
	return FromSlice(out), nil
}

// Compress filters a one-dimensional array by a boolean mask of the same
// length, keeping the elements at true positions in ascending order.
func Compress[T any](a *Array[T], mask []bool) (*Array[T], error) {
	if a.NDim() != 1 {
		return nil, &ErrShapeMismatch{Expected: 1, Actual: a.NDim()}
	}
	if len(mask) != len(a.data) {
		return nil, &ErrShapeMismatch{Expected: len(a.data), Actual: len(mask)}
	}
	var out []T
	for i, keep := range mask {
		if keep {
			out = append(out, a.data[i])
		}
	}
	return FromSlice(out), nil
}
