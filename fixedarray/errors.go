// SPDX-License-Identifier: MIT
// Package fixedarray: sentinel error set and the structured range error.
// Public accessors MUST return these sentinels (directly or wrapped) and tests
// MUST check them via errors.Is / errors.As. No accessor panics on a
// user-triggered condition; the unchecked Index is the single documented
// exception.

package fixedarray

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "fixedarray: ..." so it is easy to grep.
// Index failures are reported as *RangeError, which unwraps to ErrOutOfRange.

var (
	// ErrOutOfRange indicates that a position is outside [0, Size()).
	// Checked accessors (At/Ref/Set/Front/Back) and iterator dereference
	// report it through *RangeError.
	ErrOutOfRange = errors.New("fixedarray: index out of range")

	// ErrInvalidLength is returned by New when the requested length is negative.
	ErrInvalidLength = errors.New("fixedarray: length must be >= 0")

	// ErrNilArray indicates that a nil *FixedArray was passed to Assign or Swap.
	ErrNilArray = errors.New("fixedarray: nil array")

	// ErrReadOnly is returned when a mutable reference is requested through a
	// read-only iterator (CBegin/CEnd/CRBegin/CREnd).
	ErrReadOnly = errors.New("fixedarray: read-only iterator")
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"
	ctxRef     = "Ref"
	ctxSet     = "Set"
	ctxFront   = "Front"
	ctxBack    = "Back"
	ctxIterGet = "Iterator.Get"
	ctxIterRef = "Iterator.Ref"
	ctxRevGet  = "Reverse.Get"
	ctxRevRef  = "Reverse.Ref"
	ctxNew     = "New"
	ctxAssign  = "Assign"
	ctxSwap    = "Swap"
)

// RangeError reports a failed checked access together with the requested
// index and the length of the array at the time of the call.
//
// errors.Is(err, ErrOutOfRange) holds for every *RangeError, and
// errors.As(err, &re) recovers Index and Length for diagnostics.
type RangeError struct {
	Op     string // accessor that failed (e.g. "At", "Back", "Iterator.Get")
	Index  int    // requested position
	Length int    // element count of the array
}

// Error renders "FixedArray.<Op>(<Index>): index <Index> out of range for length <Length>".
func (e *RangeError) Error() string {
	return fmt.Sprintf("FixedArray.%s(%d): index %d out of range for length %d",
		e.Op, e.Index, e.Index, e.Length)
}

// Unwrap exposes ErrOutOfRange so callers can match with errors.Is.
func (e *RangeError) Unwrap() error { return ErrOutOfRange }

// rangeErrorf builds the *RangeError for method op at position pos.
// Complexity: O(1).
func rangeErrorf(op string, pos, length int) error {
	return &RangeError{Op: op, Index: pos, Length: length}
}

// arrayErrorf wraps a sentinel with FixedArray method context, in the same
// shape as the range error so logs read uniformly.
func arrayErrorf(method string, err error) error {
	return fmt.Errorf("FixedArray.%s: %w", method, err)
}
