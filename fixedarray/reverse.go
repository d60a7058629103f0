// SPDX-License-Identifier: MIT

package fixedarray

// Reverse adapts an Iterator to walk backwards.
// It follows the usual reverse-iterator convention: a Reverse built over
// base refers to the element just before base. Hence RBegin wraps End() and
// REnd wraps Begin(), and every reversed element is the very element the
// forward iterator would yield (same address, same mutability).
type Reverse[T any] struct {
	base Iterator[T]
}

// MakeReverse wraps base into a reverse iterator.
func MakeReverse[T any](base Iterator[T]) Reverse[T] {
	return Reverse[T]{base: base}
}

// RBegin returns a mutable reverse iterator at the last element.
func (a *FixedArray[T]) RBegin() Reverse[T] { return MakeReverse(a.End()) }

// REnd returns a mutable reverse iterator one before the first element.
func (a *FixedArray[T]) REnd() Reverse[T] { return MakeReverse(a.Begin()) }

// CRBegin returns a read-only reverse iterator at the last element.
func (a *FixedArray[T]) CRBegin() Reverse[T] { return MakeReverse(a.CEnd()) }

// CREnd returns a read-only reverse iterator one before the first element.
func (a *FixedArray[T]) CREnd() Reverse[T] { return MakeReverse(a.CBegin()) }

// Base returns the wrapped forward iterator.
func (r Reverse[T]) Base() Iterator[T] { return r.base }

// Pos returns the array index of the referenced element (Base().Pos() - 1).
func (r Reverse[T]) Pos() int { return r.base.pos - 1 }

// ReadOnly reports whether Ref is rejected on this iterator.
func (r Reverse[T]) ReadOnly() bool { return r.base.readOnly }

// Valid reports whether the iterator points at a live element.
func (r Reverse[T]) Valid() bool { return r.base.Prev().Valid() }

// Next moves one step towards the front of the array.
func (r Reverse[T]) Next() Reverse[T] { return Reverse[T]{base: r.base.Prev()} }

// Prev moves one step towards the back of the array.
func (r Reverse[T]) Prev() Reverse[T] { return Reverse[T]{base: r.base.Next()} }

// Advance moves n steps in reverse order (towards the front for n > 0).
func (r Reverse[T]) Advance(n int) Reverse[T] { return Reverse[T]{base: r.base.Advance(-n)} }

// Distance returns the number of reverse steps from r to other.
func (r Reverse[T]) Distance(other Reverse[T]) int { return other.base.Distance(r.base) }

// Less reports whether r comes strictly before other in reverse order.
func (r Reverse[T]) Less(other Reverse[T]) bool { return other.base.Less(r.base) }

// Equal reports whether r and other wrap the same position.
func (r Reverse[T]) Equal(other Reverse[T]) bool { return r.base.Equal(other.base) }

// Get returns a copy of the referenced element, or *RangeError.
func (r Reverse[T]) Get() (T, error) { return r.base.Prev().get(ctxRevGet) }

// Ref returns a pointer to the referenced element.
// Errors:
//   - ErrReadOnly for CRBegin/CREnd iterators.
//   - *RangeError when the referenced position is outside [0, len).
func (r Reverse[T]) Ref() (*T, error) { return r.base.Prev().ref(ctxRevRef) }
