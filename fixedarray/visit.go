// SPDX-License-Identifier: MIT

package fixedarray

import (
	"fmt"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
)

// Do visits each element in index order and calls f(i, v).
// MAIN DESCRIPTION:
//   - Read-only visitor; stops early when f returns false.
//
// Behavior highlights:
//   - f receives a copy; mutate via Apply, All or Ref instead.
//   - No allocations; deterministic order.
//
// Complexity:
//   - Time O(n), Space O(1).
func (a *FixedArray[T]) Do(f func(i int, v T) bool) {
	for i := range a.data {
		if !f(i, a.data[i]) {
			return
		}
	}
}

// Apply replaces each element with f(i, v) in place, in index order.
// Complexity: O(n).
func (a *FixedArray[T]) Apply(f func(i int, v T) T) {
	for i := range a.data {
		a.data[i] = f(i, a.data[i])
	}
}

// String renders the elements as "[e0, e1, ...]" using %v.
// Intended for debugging and examples; not for hot paths.
// Complexity: O(n).
func (a *FixedArray[T]) String() string {
	var b strings.Builder
	b.WriteString(_fmtOpen)
	for i := range a.data {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		fmt.Fprintf(&b, "%v", a.data[i])
	}
	b.WriteString(_fmtClose)

	return b.String()
}
