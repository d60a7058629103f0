// SPDX-License-Identifier: MIT

// Package fixedarray - range algorithms over [first, last) cursor pairs.
//
// Purpose:
//   - Write each traversal once and reuse it for forward and reverse, mutable
//     and read-only iterators alike.
//   - Mirror the classic half-open range contract: first is visited, last is not.
//
// Contract:
//   - first and last come from the same array and first can reach last by
//     repeated Next(); otherwise the walk stops at the first invalid position.

package fixedarray

import "iter"

// Cursor is the method set shared by Iterator[T] and Reverse[T].
// C is the cursor type itself, so Next and Equal stay strongly typed.
type Cursor[T any, C any] interface {
	Pos() int
	Valid() bool
	Next() C
	Equal(other C) bool
	Distance(other C) int
	Get() (T, error)
	Ref() (*T, error)
}

// Compile-time assertions: both iterator flavours satisfy Cursor.
var (
	_ Cursor[int, Iterator[int]] = Iterator[int]{}
	_ Cursor[int, Reverse[int]]  = Reverse[int]{}
)

// Distance returns the number of Next() steps from first to last.
// Complexity: O(1).
func Distance[T any, C Cursor[T, C]](first, last C) int {
	return first.Distance(last)
}

// Range yields a pointer to every element of [first, last) in traversal order.
// MAIN DESCRIPTION:
//   - Lazy, restartable, mutable walk over a cursor range.
//
// Behavior highlights:
//   - Read-only cursors yield nothing (Ref fails with ErrReadOnly); use Values.
//   - Stops early when yield returns false or a position turns invalid.
//
// Complexity:
//   - Time O(n) over the full walk, Space O(1).
func Range[T any, C Cursor[T, C]](first, last C) iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for it := first; !it.Equal(last); it = it.Next() {
			p, err := it.Ref()
			if err != nil {
				return
			}
			if !yield(p) {
				return
			}
		}
	}
}

// Indexed is Range paired with the array index of each element.
// For reverse cursors the indices run from high to low.
func Indexed[T any, C Cursor[T, C]](first, last C) iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for it := first; !it.Equal(last); it = it.Next() {
			p, err := it.Ref()
			if err != nil {
				return
			}
			if !yield(it.Pos(), p) {
				return
			}
		}
	}
}

// Values yields a copy of every element of [first, last) in traversal order.
// Works for read-only and mutable cursors alike.
func Values[T any, C Cursor[T, C]](first, last C) iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := first; !it.Equal(last); it = it.Next() {
			v, err := it.Get()
			if err != nil {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Copy deep-copies [first, last) into the range starting at dst, in
// traversal order, and returns the cursor one past the last written position.
// MAIN DESCRIPTION:
//   - Cursor-level element copy; Cloner elements are copied via Clone().
//
// Errors:
//   - ErrReadOnly when dst is a read-only cursor.
//   - *RangeError when the source or the destination runs out of bounds.
//     Elements written before the error remain updated.
//
// Complexity:
//   - Time O(n), Space O(1).
func Copy[T any, C Cursor[T, C], D Cursor[T, D]](first, last C, dst D) (D, error) {
	for it := first; !it.Equal(last); it = it.Next() {
		v, err := it.Get()
		if err != nil {
			return dst, err
		}
		p, err := dst.Ref()
		if err != nil {
			return dst, err
		}
		*p = cloneElem(v)
		dst = dst.Next()
	}

	return dst, nil
}

// Fill stores a copy of v at every position of [first, last).
// Errors mirror Copy: ErrReadOnly or *RangeError.
func Fill[T any, C Cursor[T, C]](first, last C, v T) error {
	for it := first; !it.Equal(last); it = it.Next() {
		p, err := it.Ref()
		if err != nil {
			return err
		}
		*p = cloneElem(v)
	}

	return nil
}
