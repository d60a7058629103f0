// Package dynarray is a small home for a single container: the fixed-length,
// heap-allocated array.
//
// 🚀 What is inside?
//
//	fixedarray/ - FixedArray[T]: length fixed at construction, checked and
//	              unchecked access, forward/reverse random-access iterators,
//	              deep copy (Clone/Assign) and O(1) Swap.
//
// ✨ Why?
//
//   - Slices grow; arrays need a compile-time length. FixedArray sits in
//     between: the length is a runtime value that can never change.
//   - Safe surface – checked accessors return *RangeError with index & length
//   - Pure Go – no cgo, no runtime dependencies
//
// Quick example:
//
//	a := fixedarray.MustNew[int](3)
//	_ = a.Set(0, 1)
//	fmt.Println(a) // [1, 0, 0]
//
//	go get github.com/katalvlaran/dynarray/fixedarray
package dynarray
