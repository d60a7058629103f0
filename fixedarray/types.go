// SPDX-License-Identifier: MIT

// Package fixedarray - FixedArray storage & constructors.
//
// Purpose:
//   - Own exactly one contiguous buffer whose length is fixed at construction.
//   - Guarantee safety at the public surface: checked accessors return errors
//     instead of panicking.
//   - Provide value semantics on request: Clone/Assign deep-copy, Swap moves
//     ownership in O(1).
//
// Complexity quicksheet:
//   - New: O(n) init; At/Ref/Set/Front/Back: O(1); Clone/Assign: O(n); Swap: O(1).

package fixedarray

import "fmt"

// FixedArray is a fixed-length, heap-allocated array of T.
//   - data is the single exclusively owned buffer; len(data) is the element count.
//   - The element count never changes; only Assign and Swap replace the buffer.
//   - The zero value is a valid empty array (Size() == 0).
//
// A FixedArray is not safe for concurrent mutation; callers synchronize
// externally when sharing one across goroutines.
type FixedArray[T any] struct {
	data []T // contiguous storage (len == element count)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*FixedArray[int])(nil)

// New creates an array of length elements.
// MAIN DESCRIPTION:
//   - Public constructor with length validation and optional initializers.
//
// Implementation:
//   - Stage 1: validate length >= 0; else ErrInvalidLength.
//   - Stage 2: allocate the buffer; make() zero-fills it.
//   - Stage 3: run the resolved initializer (WithValue/WithGenerator) in index order.
//
// Behavior highlights:
//   - length == 0 is legal and yields an empty array.
//   - Without options every element is T's zero value.
//
// Inputs:
//   - length: number of elements (>= 0).
//   - opts  : optional initializers; the last one wins.
//
// Returns:
//   - *FixedArray[T]: newly allocated array.
//
// Errors:
//   - ErrInvalidLength (negative length), wrapped with "FixedArray.New".
//
// Complexity:
//   - Time O(n), Space O(n).
func New[T any](length int, opts ...Option[T]) (*FixedArray[T], error) {
	if length < 0 {
		return nil, fmt.Errorf("FixedArray.%s(%d): %w", ctxNew, length, ErrInvalidLength)
	}
	o := gatherOptions(opts)

	buf := make([]T, length)
	if o.init != nil {
		for i := range buf {
			buf[i] = o.init(i)
		}
	}

	return &FixedArray[T]{data: buf}, nil
}

// MustNew is like New but panics on error.
// Intended for tests, examples and package-level literals with constant lengths.
func MustNew[T any](length int, opts ...Option[T]) *FixedArray[T] {
	a, err := New(length, opts...)
	if err != nil {
		panic(err)
	}

	return a
}

// FromSlice creates an array holding a deep copy of src, in index order.
// The result never aliases src.
// Complexity: O(len(src)).
func FromSlice[T any](src []T) *FixedArray[T] {
	buf := make([]T, len(src))
	copyElems(buf, src)

	return &FixedArray[T]{data: buf}
}

// Size returns the element count. No side effects.
// Complexity: O(1).
func (a *FixedArray[T]) Size() int { return len(a.data) }

// Empty reports whether the array holds no elements.
// Complexity: O(1).
func (a *FixedArray[T]) Empty() bool { return len(a.data) == 0 }
