// SPDX-License-Identifier: MIT

package fixedarray

// inRange reports whether pos addresses a live element.
func (a *FixedArray[T]) inRange(pos int) bool {
	return pos >= 0 && pos < len(a.data)
}

// At returns a copy of the element at pos, or a *RangeError.
// MAIN DESCRIPTION:
//   - Checked, read-only element access.
//
// Behavior highlights:
//   - Never panics on out-of-range; the error carries pos and Size().
//
// Errors:
//   - *RangeError (errors.Is(err, ErrOutOfRange)) when pos < 0 or pos >= Size().
//
// Complexity:
//   - Time O(1), Space O(1).
func (a *FixedArray[T]) At(pos int) (T, error) {
	if !a.inRange(pos) {
		var zero T
		return zero, rangeErrorf(ctxAt, pos, len(a.data))
	}

	return a.data[pos], nil
}

// Ref returns a pointer to the element at pos, or a *RangeError.
// The pointer aliases the storage: writes through it are visible via At,
// Index, Data and every iterator, until the next Assign or Swap.
//
// Complexity: O(1).
func (a *FixedArray[T]) Ref(pos int) (*T, error) {
	if !a.inRange(pos) {
		return nil, rangeErrorf(ctxRef, pos, len(a.data))
	}

	return &a.data[pos], nil
}

// Set stores v at pos, or returns a *RangeError.
// v is stored as-is; Cloner is not consulted (the caller hands over v).
//
// Complexity: O(1).
func (a *FixedArray[T]) Set(pos int, v T) error {
	if !a.inRange(pos) {
		return rangeErrorf(ctxSet, pos, len(a.data))
	}
	a.data[pos] = v

	return nil
}

// Index returns a pointer to the element at pos without an explicit check.
// MAIN DESCRIPTION:
//   - Unchecked access for hot paths; mirrors raw indexing.
//
// Behavior highlights:
//   - Go has no unchecked primitive: an out-of-range pos triggers the
//     runtime's index-out-of-range panic instead of undefined behavior.
//     Use At/Ref when pos comes from untrusted input.
//
// Complexity:
//   - Time O(1), Space O(1).
func (a *FixedArray[T]) Index(pos int) *T {
	return &a.data[pos]
}

// Front returns a copy of the first element.
// Fails with *RangeError{Index: 0, Length: 0} on an empty array.
func (a *FixedArray[T]) Front() (T, error) {
	if len(a.data) == 0 {
		var zero T
		return zero, rangeErrorf(ctxFront, 0, 0)
	}

	return a.data[0], nil
}

// FrontRef returns a pointer to the first element.
// Fails with *RangeError{Index: 0, Length: 0} on an empty array.
func (a *FixedArray[T]) FrontRef() (*T, error) {
	if len(a.data) == 0 {
		return nil, rangeErrorf(ctxFront, 0, 0)
	}

	return &a.data[0], nil
}

// Back returns a copy of the last element.
// MAIN DESCRIPTION:
//   - Checked access at Size()-1.
//
// Behavior highlights:
//   - The empty case is guarded before computing Size()-1, and is reported
//     as index 0 of length 0 (same shape as Front).
//
// Complexity:
//   - Time O(1), Space O(1).
func (a *FixedArray[T]) Back() (T, error) {
	n := len(a.data)
	if n == 0 {
		var zero T
		return zero, rangeErrorf(ctxBack, 0, 0)
	}

	return a.data[n-1], nil
}

// BackRef returns a pointer to the last element.
// Fails with *RangeError{Index: 0, Length: 0} on an empty array.
func (a *FixedArray[T]) BackRef() (*T, error) {
	n := len(a.data)
	if n == 0 {
		return nil, rangeErrorf(ctxBack, 0, 0)
	}

	return &a.data[n-1], nil
}

// Data returns the contiguous storage as a slice, for APIs that expect a raw buffer.
// The slice aliases the array: writes are visible through every accessor.
// It stays valid until the next Assign or Swap, and is nil for an empty array.
// Do not append to it; the element count of the array never changes.
//
// Complexity: O(1).
func (a *FixedArray[T]) Data() []T {
	if len(a.data) == 0 {
		return nil
	}

	return a.data[:len(a.data):len(a.data)]
}
