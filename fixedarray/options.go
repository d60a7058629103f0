// SPDX-License-Identifier: MIT

// Package fixedarray: functional configuration for construction.
// This file defines:
//   - Option[T] (functional option over an internal options[T] state),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves the effective initializer.
//
// Design goals:
//   - No global state: every New call resolves its own options.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Zero-value default: without options every element is T's zero value,
//     which is Go's default-construction contract.

package fixedarray

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicNilGenerator = "fixedarray: WithGenerator: fn must be non-nil"
)

// Option configures how New initializes the elements of a fresh array.
// Options are applied left-to-right; the last initializer wins.
type Option[T any] func(*options[T])

// options stores the effective configuration after applying Option setters.
// It is unexported so callers can only reach it through ...Option[T].
type options[T any] struct {
	// init produces the initial value for position i; nil means zero value.
	init func(i int) T
}

// WithValue fills every element with a copy of v.
// When T implements Cloner[T], each element receives its own v.Clone(),
// so no two elements share state through v.
//
// Complexity: O(1) to build; O(n) applied by New.
func WithValue[T any](v T) Option[T] {
	return func(o *options[T]) {
		o.init = func(int) T { return cloneElem(v) }
	}
}

// WithGenerator sets element i to fn(i), called once per position in index
// order 0..n-1.
// Panics if fn is nil.
//
// Complexity: O(1) to build; O(n) calls of fn applied by New.
func WithGenerator[T any](fn func(i int) T) Option[T] {
	if fn == nil {
		panic(panicNilGenerator)
	}

	return func(o *options[T]) { o.init = fn }
}

// gatherOptions resolves opts into the effective configuration.
// nil entries are skipped.
func gatherOptions[T any](opts []Option[T]) options[T] {
	var o options[T]
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&o)
	}

	return o
}
