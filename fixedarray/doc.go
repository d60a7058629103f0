// Package fixedarray provides FixedArray, a generic heap-allocated array whose
// length is chosen at construction and never changes afterwards.
//
// 🚀 What is a FixedArray?
//
//	Something between a Go array (length fixed at compile time) and a slice
//	(length free to grow): the length is a runtime value, but once the array
//	exists no operation inserts, erases or resizes. It offers:
//	  • checked access (At, Ref, Set, Front, Back) returning *RangeError
//	  • unchecked access (Index) and a raw view (Data)
//	  • random-access iterators: Begin/End, CBegin/CEnd, RBegin/REnd, CRBegin/CREnd
//	  • range-over-func sequences: All, Values, Backward, BackwardValues
//	  • value semantics on request: Clone, Assign (deep copy), Swap (O(1))
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/dynarray/fixedarray"
//
//	a, err := fixedarray.New[int](3)
//	if err != nil {
//	  // only a negative length fails
//	}
//	*a.Index(0) = 1                 // unchecked
//	_ = a.Set(1, 2)                 // checked
//	a.Data()[2] = 3                 // raw buffer
//	last, _ := a.Back()             // 3
//	for i, p := range a.Backward() { // 2,1,0
//	  *p += i
//	}
//
// Iterators:
//
//	A single Iterator[T] type covers both mutable and read-only positions
//	(the read-only flag rejects Ref with ErrReadOnly). Reverse[T] wraps an
//	Iterator and mirrors its arithmetic, so the reverse walk visits exactly
//	the same elements as the forward walk. The generic algorithms Range,
//	Indexed, Values, Distance, Copy and Fill accept either flavour through
//	the Cursor constraint.
//
// Errors:
//
//	ErrOutOfRange    – checked access outside [0, Size()) (via *RangeError)
//	ErrInvalidLength – New with a negative length
//	ErrNilArray      – Assign/Swap with a nil argument
//	ErrReadOnly      – Ref through a read-only iterator
//
// Concurrency:
//
//	FixedArray holds no locks. Concurrent mutation, or mutation concurrent
//	with iteration, must be serialized by the caller.
//
// Performance:
//
//   - New, Clone, Assign: O(n) time & memory
//   - At/Ref/Set/Index/Front/Back, iterator arithmetic: O(1)
//   - Swap: O(1), no allocation
package fixedarray
