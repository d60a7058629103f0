// SPDX-License-Identifier: MIT

package fixedarray

// Cloner is implemented by element types that need more than assignment to
// be copied (e.g. types holding slices, maps or pointers).
// When T implements Cloner[T], Clone, Assign, FromSlice, WithValue and Copy
// call Clone() on every element instead of assigning it.
//
// Pointer element types must handle a nil receiver, since the zero value of
// a pointer element is nil.
type Cloner[T any] interface {
	Clone() T
}

// cloneElem copies v via Cloner when available, plain assignment otherwise.
func cloneElem[T any](v T) T {
	if c, ok := any(v).(Cloner[T]); ok {
		return c.Clone()
	}

	return v
}

// copyElems deep-copies src into dst in index order 0..len(src)-1.
// Callers guarantee len(dst) >= len(src).
func copyElems[T any](dst, src []T) {
	var zero T
	// Interface element types have a nil zero value and are checked per element.
	if _, ok := any(zero).(Cloner[T]); !ok && any(zero) != nil {
		copy(dst, src)
		return
	}
	for i := range src {
		dst[i] = cloneElem(src[i])
	}
}

// Clone returns a deep copy: a fresh buffer of the same length, filled in
// index order. The copy shares no storage with a.
// MAIN DESCRIPTION:
//   - Copy construction.
//
// Behavior highlights:
//   - Independence: mutations of either array are invisible to the other.
//   - Elements implementing Cloner are copied via Clone().
//
// Complexity:
//   - Time O(n), Space O(n).
func (a *FixedArray[T]) Clone() *FixedArray[T] {
	buf := make([]T, len(a.data))
	copyElems(buf, a.data)

	return &FixedArray[T]{data: buf}
}

// Assign replaces the contents of a with a deep copy of other.
// MAIN DESCRIPTION:
//   - Copy assignment; the previous buffer is dropped.
//
// Implementation:
//   - Stage 1: reject nil other; treat self-assignment as a no-op.
//   - Stage 2: allocate a buffer sized other.Size() and deep-copy in index order.
//   - Stage 3: install the new buffer.
//
// Behavior highlights:
//   - Works across lengths: a takes other's length.
//   - Slices from Data() and iterators taken before the call keep pointing at
//     the old buffer.
//
// Errors:
//   - ErrNilArray when other is nil.
//
// Complexity:
//   - Time O(n), Space O(n).
func (a *FixedArray[T]) Assign(other *FixedArray[T]) error {
	if other == nil {
		return arrayErrorf(ctxAssign, ErrNilArray)
	}
	if other == a {
		return nil
	}
	buf := make([]T, len(other.data))
	copyElems(buf, other.data)
	a.data = buf

	return nil
}

// Swap exchanges the storage of a and other in O(1).
// No element is copied and nothing is allocated; calling Swap twice restores
// both arrays.
//
// Errors:
//   - ErrNilArray when other is nil.
func (a *FixedArray[T]) Swap(other *FixedArray[T]) error {
	if other == nil {
		return arrayErrorf(ctxSwap, ErrNilArray)
	}
	a.data, other.data = other.data, a.data

	return nil
}
