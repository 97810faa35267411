// Package ndarray implements a dense, row-major N-dimensional array with a
// generic element type.
//
// It covers the capability set the idxgo converters need from an array
// library: shape and ndim introspection, coordinate addressing, elementwise
// fill, and 1-D advanced indexing (integer gather and boolean compress).
// It is not a numeric computing package; it does no arithmetic on elements.
package ndarray

import (
	"fmt"
	"iter"
	"slices"
)

// ErrInvalidShape indicates a shape with a negative dimension.
type ErrInvalidShape struct {
	Shape []int
}

func (e *ErrInvalidShape) Error() string {
	return fmt.Sprintf("ndarray: invalid shape: %v", e.Shape)
}

// ErrShapeMismatch indicates that a data or operand length does not match
// the expected element count.
type ErrShapeMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrShapeMismatch) Error() string {
	return fmt.Sprintf("ndarray: shape mismatch: expected %d elements, got %d", e.Expected, e.Actual)
}

// ErrOutOfBounds indicates a coordinate outside the valid range of an axis,
// or a coordinate count that does not match the array's ndim.
type ErrOutOfBounds struct {
	Axis  int
	Index int
	Size  int
}

func (e *ErrOutOfBounds) Error() string {
	return fmt.Sprintf("ndarray: index %d out of bounds for axis %d with size %d", e.Index, e.Axis, e.Size)
}

// Array is a dense N-dimensional array of T in row-major order.
//
// A zero-dimensional Array holds exactly one element. Arrays are addressed
// by one coordinate per axis; the flat backing storage is exposed via Data
// for bulk access.
type Array[T any] struct {
	shape   []int
	strides []int
	data    []T
}

func size(shape []int) (int, error) {
	n := 1
	for _, d := range shape {
		if d < 0 {
			return 0, &ErrInvalidShape{Shape: slices.Clone(shape)}
		}
		n *= d
	}
	return n, nil
}

func strides(shape []int) []int {
	st := make([]int, len(shape))
	acc := 1
	for i := len(shape) - 1; i >= 0; i-- {
		st[i] = acc
		acc *= shape[i]
	}
	return st
}

// New creates an array of the given shape with every element set to the
// zero value of T.
func New[T any](shape ...int) (*Array[T], error) {
	n, err := size(shape)
	if err != nil {
		return nil, err
	}
	return &Array[T]{
		shape:   slices.Clone(shape),
		strides: strides(shape),
		data:    make([]T, n),
	}, nil
}

// Full creates an array of the given shape with every element set to fill.
func Full[T any](fill T, shape ...int) (*Array[T], error) {
	a, err := New[T](shape...)
	if err != nil {
		return nil, err
	}
	a.Fill(fill)
	return a, nil
}

// FromSlice wraps a slice as a one-dimensional array. The slice is not
// copied; the array aliases it.
func FromSlice[T any](data []T) *Array[T] {
	return &Array[T]{
		shape:   []int{len(data)},
		strides: []int{1},
		data:    data,
	}
}

// FromData wraps a flat row-major slice as an array of the given shape.
// It fails with *ErrShapeMismatch if the slice length does not equal the
// shape's element count. The slice is not copied.
func FromData[T any](data []T, shape ...int) (*Array[T], error) {
	n, err := size(shape)
	if err != nil {
		return nil, err
	}
	if len(data) != n {
		return nil, &ErrShapeMismatch{Expected: n, Actual: len(data)}
	}
	return &Array[T]{
		shape:   slices.Clone(shape),
		strides: strides(shape),
		data:    data,
	}, nil
}

// NDim returns the number of axes.
func (a *Array[T]) NDim() int {
	return len(a.shape)
}

// Shape returns a copy of the array's shape.
func (a *Array[T]) Shape() []int {
	return slices.Clone(a.shape)
}

// Dim returns the length of the given axis.
func (a *Array[T]) Dim(axis int) int {
	return a.shape[axis]
}

// Len returns the total number of elements.
func (a *Array[T]) Len() int {
	return len(a.data)
}

func (a *Array[T]) flatIndex(coords []int) (int, error) {
	if len(coords) != len(a.shape) {
		return 0, &ErrOutOfBounds{Axis: len(coords), Index: 0, Size: len(a.shape)}
	}
	flat := 0
	for i, c := range coords {
		if c < 0 || c >= a.shape[i] {
			return 0, &ErrOutOfBounds{Axis: i, Index: c, Size: a.shape[i]}
		}
		flat += c * a.strides[i]
	}
	return flat, nil
}

// At returns the element at the given coordinates, one per axis.
func (a *Array[T]) At(coords ...int) (T, error) {
	flat, err := a.flatIndex(coords)
	if err != nil {
		var zero T
		return zero, err
	}
	return a.data[flat], nil
}

// Set assigns v at the given coordinates, one per axis.
func (a *Array[T]) Set(v T, coords ...int) error {
	flat, err := a.flatIndex(coords)
	if err != nil {
		return err
	}
	a.data[flat] = v
	return nil
}

// Fill assigns v to every element.
func (a *Array[T]) Fill(v T) {
	for i := range a.data {
		a.data[i] = v
	}
}

// Data returns the flat row-major backing slice. Mutating it mutates the
// array.
func (a *Array[T]) Data() []T {
	return a.data
}

// Clone returns a deep copy of the array.
func (a *Array[T]) Clone() *Array[T] {
	return &Array[T]{
		shape:   slices.Clone(a.shape),
		strides: slices.Clone(a.strides),
		data:    slices.Clone(a.data),
	}
}

// Flat iterates (flat index, element) pairs in row-major order. The
// returned sequence is restartable.
func (a *Array[T]) Flat() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range a.data {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Coords translates a flat row-major index into one coordinate per axis.
func (a *Array[T]) Coords(flat int) []int {
	coords := make([]int, len(a.shape))
	for i, st := range a.strides {
		coords[i] = flat / st
		flat %= st
	}
	return coords
}

// Equal reports whether two arrays have the same shape and elements.
func Equal[T comparable](a, b *Array[T]) bool {
	return slices.Equal(a.shape, b.shape) && slices.Equal(a.data, b.data)
}
