// SPDX-License-Identifier: MIT

// Package fixedarray - position-based random-access iterator.
//
// Purpose:
//   - One iterator type for both mutability levels: the read-only flag decides
//     whether Ref is allowed, everything else (arithmetic, ordering, Get) is shared.
//   - Reverse traversal is an adapter over this type (reverse.go), not a copy of it.
//
// Validity:
//   - An iterator captures the buffer at the time it was obtained. Assign and
//     Swap install another buffer; iterators taken before that keep walking
//     the old one.
//   - Positions may move outside [0, Size()]; Get/Ref then return *RangeError.

package fixedarray

// Iterator is a random-access position inside a FixedArray.
// The zero value is a read-write iterator over an empty buffer.
type Iterator[T any] struct {
	data     []T  // buffer captured from the array
	pos      int  // current position; End() == len(data)
	readOnly bool // Ref is rejected when true
}

// Begin returns a mutable iterator at position 0.
func (a *FixedArray[T]) Begin() Iterator[T] {
	return Iterator[T]{data: a.data, pos: 0}
}

// End returns a mutable iterator one past the last element.
func (a *FixedArray[T]) End() Iterator[T] {
	return Iterator[T]{data: a.data, pos: len(a.data)}
}

// CBegin returns a read-only iterator at position 0.
func (a *FixedArray[T]) CBegin() Iterator[T] {
	return Iterator[T]{data: a.data, pos: 0, readOnly: true}
}

// CEnd returns a read-only iterator one past the last element.
func (a *FixedArray[T]) CEnd() Iterator[T] {
	return Iterator[T]{data: a.data, pos: len(a.data), readOnly: true}
}

// Pos returns the current position.
func (it Iterator[T]) Pos() int { return it.pos }

// ReadOnly reports whether Ref is rejected on this iterator.
func (it Iterator[T]) ReadOnly() bool { return it.readOnly }

// Valid reports whether the iterator points at a live element.
func (it Iterator[T]) Valid() bool { return it.pos >= 0 && it.pos < len(it.data) }

// Next returns the iterator advanced by one position.
func (it Iterator[T]) Next() Iterator[T] { return it.Advance(1) }

// Prev returns the iterator moved back by one position.
func (it Iterator[T]) Prev() Iterator[T] { return it.Advance(-1) }

// Advance returns the iterator moved by n positions (n may be negative).
// The result is not bounds-checked; dereferencing an invalid position fails.
// Complexity: O(1).
func (it Iterator[T]) Advance(n int) Iterator[T] {
	it.pos += n
	return it
}

// Distance returns the number of steps from it to other (other.Pos() - it.Pos()).
// Both iterators must come from the same array.
// Complexity: O(1).
func (it Iterator[T]) Distance(other Iterator[T]) int { return other.pos - it.pos }

// Less reports whether it is strictly before other.
func (it Iterator[T]) Less(other Iterator[T]) bool { return it.pos < other.pos }

// Equal reports whether it and other denote the same position of the same buffer.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.pos == other.pos && sameBuffer(it.data, other.data)
}

// Get returns a copy of the element under the iterator.
// Errors:
//   - *RangeError when the position is outside [0, len).
//
// Complexity: O(1).
func (it Iterator[T]) Get() (T, error) { return it.get(ctxIterGet) }

// Ref returns a pointer to the element under the iterator.
// Errors:
//   - ErrReadOnly for iterators obtained via CBegin/CEnd (and their reverse forms).
//   - *RangeError when the position is outside [0, len).
//
// Complexity: O(1).
func (it Iterator[T]) Ref() (*T, error) { return it.ref(ctxIterRef) }

// get is Get with a caller-provided error tag (shared with Reverse).
func (it Iterator[T]) get(op string) (T, error) {
	if !it.Valid() {
		var zero T
		return zero, rangeErrorf(op, it.pos, len(it.data))
	}

	return it.data[it.pos], nil
}

// ref is Ref with a caller-provided error tag (shared with Reverse).
func (it Iterator[T]) ref(op string) (*T, error) {
	if it.readOnly {
		return nil, arrayErrorf(op, ErrReadOnly)
	}
	if !it.Valid() {
		return nil, rangeErrorf(op, it.pos, len(it.data))
	}

	return &it.data[it.pos], nil
}

// sameBuffer reports whether a and b view the same backing array with the same length.
func sameBuffer[T any](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}

	return &a[0] == &b[0]
}
