package ndarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("Zeros", func(t *testing.T) {
		a, err := New[float64](2, 3)
		require.NoError(t, err)
		assert.Equal(t, 2, a.NDim())
		assert.Equal(t, []int{2, 3}, a.Shape())
		assert.Equal(t, 6, a.Len())
		assert.Equal(t, make([]float64, 6), a.Data())
	})

	t.Run("ZeroDim", func(t *testing.T) {
		a, err := New[int]()
		require.NoError(t, err)
		assert.Equal(t, 0, a.NDim())
		assert.Equal(t, 1, a.Len())
	})

	t.Run("NegativeDim", func(t *testing.T) {
		_, err := New[int](2, -1)
		var inv *ErrInvalidShape
		require.ErrorAs(t, err, &inv)
		assert.Equal(t, []int{2, -1}, inv.Shape)
	})
}

func TestFull(t *testing.T) {
	a, err := Full("x", 2, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "x", "x", "x"}, a.Data())
}

func TestFromData(t *testing.T) {
	a, err := FromData([]int{1, 2, 3, 4, 5, 6}, 2, 3)
	require.NoError(t, err)

	v, err := a.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 6, v)

	_, err = FromData([]int{1, 2, 3}, 2, 3)
	var mismatch *ErrShapeMismatch
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 6, mismatch.Expected)
	assert.Equal(t, 3, mismatch.Actual)
}

func TestAtSet(t *testing.T) {
	a, err := New[int](2, 3)
	require.NoError(t, err)

	require.NoError(t, a.Set(42, 1, 1))
	v, err := a.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	// Row-major: (1,1) is flat index 1*3+1.
	assert.Equal(t, 42, a.Data()[4])

	var oob *ErrOutOfBounds
	_, err = a.At(2, 0)
	require.ErrorAs(t, err, &oob)
	assert.Equal(t, 0, oob.Axis)

	_, err = a.At(0, 3)
	require.ErrorAs(t, err, &oob)
	assert.Equal(t, 1, oob.Axis)

	err = a.Set(1, 0)
	require.ErrorAs(t, err, &oob)
}

func TestCoords(t *testing.T) {
	a, err := New[int](2, 3, 4)
	require.NoError(t, err)

	for flat := range a.Len() {
		coords := a.Coords(flat)
		back, err := a.flatIndex(coords)
		require.NoError(t, err)
		assert.Equal(t, flat, back)
	}

	assert.Equal(t, []int{1, 2, 3}, a.Coords(1*12+2*4+3))
}

func TestFlat(t *testing.T) {
	a, err := FromData([]int{10, 20, 30}, 3)
	require.NoError(t, err)

	var got []int
	for i, v := range a.Flat() {
		got = append(got, i, v)
	}
	assert.Equal(t, []int{0, 10, 1, 20, 2, 30}, got)
}

func TestClone(t *testing.T) {
	a := FromSlice([]int{1, 2, 3})
	b := a.Clone()
	b.Data()[0] = 99
	assert.Equal(t, 1, a.Data()[0])
	assert.True(t, Equal(a, FromSlice([]int{1, 2, 3})))
	assert.False(t, Equal(a, b))
}

func TestTake(t *testing.T) {
	a := FromSlice([]float64{1.5, 2.5, 3.5, 4.5})

	out, err := Take(a, []int{3, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, []float64{4.5, 1.5, 1.5}, out.Data())

	_, err = Take(a, []int{4})
	var oob *ErrOutOfBounds
	require.ErrorAs(t, err, &oob)

	two, err := New[float64](2, 2)
	require.NoError(t, err)
	_, err = Take(two, []int{0})
	var mismatch *ErrShapeMismatch
	require.ErrorAs(t, err, &mismatch)
}

func TestCompress(t *testing.T) {
	a := FromSlice([]string{"a", "b", "c", "d"})

	out, err := Compress(a, []bool{true, false, false, true})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "d"}, out.Data())

	_, err = Compress(a, []bool{true})
	var mismatch *ErrShapeMismatch
	require.ErrorAs(t, err, &mismatch)
}

func TestEqual(t *testing.T) {
	a, err := FromData([]int{1, 2, 3, 4}, 2, 2)
	require.NoError(t, err)
	b, err := FromData([]int{1, 2, 3, 4}, 4)
	require.NoError(t, err)

	// Same data, different shape.
	assert.False(t, Equal(a, b))
}
