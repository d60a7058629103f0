package fixedarray_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/dynarray/fixedarray"
	"github.com/stretchr/testify/require"
)

// record is the plain value element used across tests.
type record struct {
	X int
	Y float64
	Z string
}

// tagged is an element type that needs a deep copy of its slice field.
type tagged struct {
	Name string
	Tags []string
}

// Clone implements fixedarray.Cloner[tagged].
func (t tagged) Clone() tagged {
	cp := tagged{Name: t.Name}
	if t.Tags != nil {
		cp.Tags = append([]string(nil), t.Tags...)
	}

	return cp
}

// countingArray fills a fresh array of n ints with 0..n-1.
func countingArray(t testing.TB, n int) *fixedarray.FixedArray[int] {
	t.Helper()
	a, err := fixedarray.New(n, fixedarray.WithGenerator(func(i int) int { return i }))
	require.NoError(t, err)

	return a
}

// requireRangeError asserts err is a *RangeError with the given index and length.
func requireRangeError(t *testing.T, err error, index, length int) {
	t.Helper()
	require.ErrorIs(t, err, fixedarray.ErrOutOfRange)
	var re *fixedarray.RangeError
	require.True(t, errors.As(err, &re), "expected *RangeError, got %T", err)
	require.Equal(t, index, re.Index, "reported index")
	require.Equal(t, length, re.Length, "reported length")
}
