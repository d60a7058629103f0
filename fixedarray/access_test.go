package fixedarray_test

import (
	"testing"

	"github.com/katalvlaran/dynarray/fixedarray"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAccess_IntScenario: set via Index, Ref and Data, read back via Index, At and Back.
func TestAccess_IntScenario(t *testing.T) {
	a, err := fixedarray.New[int](3)
	require.NoError(t, err)

	// unchecked, checked, raw buffer
	*a.Index(0) = 1
	p, err := a.Ref(1)
	require.NoError(t, err)
	*p = 2
	a.Data()[2] = 3

	v1, err := a.At(1)
	require.NoError(t, err)
	last, err := a.Back()
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3}, []int{*a.Index(0), v1, last})
}

// TestAccess_Aliasing verifies Ref and Index return the same element, not copies.
func TestAccess_Aliasing(t *testing.T) {
	a := countingArray(t, 5)
	for pos := 0; pos < a.Size(); pos++ {
		p, err := a.Ref(pos)
		require.NoError(t, err)
		require.Same(t, p, a.Index(pos), "pos=%d", pos)

		*p = 100 + pos
		assert.Equal(t, 100+pos, *a.Index(pos))
		v, err := a.At(pos)
		require.NoError(t, err)
		assert.Equal(t, 100+pos, v)
	}
}

// TestAccess_OutOfRange checks every checked accessor reports exactly pos and length.
func TestAccess_OutOfRange(t *testing.T) {
	a := countingArray(t, 3)

	for _, pos := range []int{3, 4, 100, -1} {
		_, err := a.At(pos)
		requireRangeError(t, err, pos, 3)

		p, err := a.Ref(pos)
		requireRangeError(t, err, pos, 3)
		assert.Nil(t, p)

		err = a.Set(pos, 9)
		requireRangeError(t, err, pos, 3)
	}
	// failed writes leave the array intact
	assert.Equal(t, []int{0, 1, 2}, a.Data())
}

// TestRangeError_Message checks the diagnostic text.
func TestRangeError_Message(t *testing.T) {
	a := countingArray(t, 3)
	_, err := a.At(5)
	require.EqualError(t, err, "FixedArray.At(5): index 5 out of range for length 3")
}

// TestSet_Valid writes through Set and reads back with At.
func TestSet_Valid(t *testing.T) {
	a := countingArray(t, 3)
	require.NoError(t, a.Set(2, 42))
	v, err := a.At(2)
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

// TestIndex_PanicsOutOfRange documents the unchecked accessor: the runtime check fires.
func TestIndex_PanicsOutOfRange(t *testing.T) {
	a := countingArray(t, 2)
	require.Panics(t, func() { _ = a.Index(2) })
	require.Panics(t, func() { _ = a.Index(-1) })
}

// TestFrontBack verifies Front == At(0) and Back == At(n-1).
func TestFrontBack(t *testing.T) {
	a := countingArray(t, 4)

	front, err := a.Front()
	require.NoError(t, err)
	at0, _ := a.At(0)
	assert.Equal(t, at0, front)

	back, err := a.Back()
	require.NoError(t, err)
	atLast, _ := a.At(a.Size() - 1)
	assert.Equal(t, atLast, back)

	fp, err := a.FrontRef()
	require.NoError(t, err)
	require.Same(t, a.Index(0), fp)
	bp, err := a.BackRef()
	require.NoError(t, err)
	require.Same(t, a.Index(3), bp)
}

// TestFrontBack_SingleElement: front and back alias the same element.
func TestFrontBack_SingleElement(t *testing.T) {
	a := countingArray(t, 1)
	fp, err := a.FrontRef()
	require.NoError(t, err)
	bp, err := a.BackRef()
	require.NoError(t, err)
	require.Same(t, fp, bp)
}

// TestFrontBack_Empty ensures both fail on an empty array without underflow.
func TestFrontBack_Empty(t *testing.T) {
	a := fixedarray.MustNew[int](0)

	_, err := a.Front()
	requireRangeError(t, err, 0, 0)
	_, err = a.FrontRef()
	requireRangeError(t, err, 0, 0)
	_, err = a.Back()
	requireRangeError(t, err, 0, 0)
	_, err = a.BackRef()
	requireRangeError(t, err, 0, 0)
}

// TestData_AliasesStorage verifies Data is a view, not a copy, and cannot grow in place.
func TestData_AliasesStorage(t *testing.T) {
	a := countingArray(t, 3)
	d := a.Data()
	require.Len(t, d, 3)
	require.Equal(t, 3, cap(d), "capacity is clipped to the length")

	d[1] = 77
	v, _ := a.At(1)
	assert.Equal(t, 77, v)

	// appending reallocates and leaves the array untouched
	grown := append(d, 5)
	grown[0] = -1
	assert.Equal(t, 3, a.Size())
	assert.Equal(t, 0, *a.Index(0))

	assert.Nil(t, fixedarray.MustNew[int](0).Data())
}
