// SPDX-License-Identifier: MIT

package fixedarray

import "iter"

// NOTE: every sequence below is a thin wrapper over the cursor algorithms in
// algorithm.go; forward and reverse share the same walk, reverse merely runs
// it over Reverse cursors wrapping the forward positions.
//
// Aliasing: Go cannot forbid two live mutable walks over one array. Callers
// keep at most one writer at a time, or only readers.

// All yields (index, pointer) pairs in index order 0..n-1.
// Writes through the pointer update the array.
//
//	for i, p := range a.All() {
//		*p = i * i
//	}
func (a *FixedArray[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		Indexed[T](a.Begin(), a.End())(yield)
	}
}

// Values yields a copy of each element in index order 0..n-1.
func (a *FixedArray[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		Values[T](a.CBegin(), a.CEnd())(yield)
	}
}

// Backward yields (index, pointer) pairs in index order n-1..0.
func (a *FixedArray[T]) Backward() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		Indexed[T](a.RBegin(), a.REnd())(yield)
	}
}

// BackwardValues yields a copy of each element in index order n-1..0.
func (a *FixedArray[T]) BackwardValues() iter.Seq[T] {
	return func(yield func(T) bool) {
		Values[T](a.CRBegin(), a.CREnd())(yield)
	}
}
