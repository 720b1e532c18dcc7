// Package ranges defines the two entity types every other package in this
// module traffics in: a plain integer range, and a range paired with a
// value for the map containers.
//
// Every stream in this module (internal/store's iterators, disjoint's
// algebra, mapdisjoint's priority algorithms) produces or consumes these
// types; nothing here is itself a container — see internal/store for that.
package ranges

import (
	"fmt"

	"github.com/josestg/rangeblaze/ordinal"
)

// Range is a closed, inclusive interval [Start, End] with Start <= End.
// An empty range (Start > End) is never constructed by this module's own
// code; functions that might otherwise produce one silently drop it
// instead.
type Range[T ordinal.Integer] struct {
	Start T
	End   T
}

// New builds a Range. It does not validate Start <= End; callers that
// receive arbitrary input (the unsorted package) check IsEmpty themselves
// so they can silently skip rather than panic.
func New[T ordinal.Integer](start, end T) Range[T] {
	return Range[T]{Start: start, End: end}
}

// IsEmpty reports whether the range holds no integers (Start > End).
func (r Range[T]) IsEmpty() bool {
	return r.Start > r.End
}

// Len returns the count of integers in the range.
func (r Range[T]) Len() ordinal.Len {
	if r.IsEmpty() {
		return ordinal.Zero
	}
	return ordinal.SafeLen(r.Start, r.End)
}

// Contains reports whether x falls within [Start, End].
func (r Range[T]) Contains(x T) bool {
	return r.Start <= x && x <= r.End
}

// Touches reports whether r and other are adjacent with no gap and no
// overlap, i.e. r.End+1 == other.Start (saturating, so a range ending at
// the type's maximum never "touches" anything after it).
func (r Range[T]) Touches(other Range[T]) bool {
	next, ok := ordinal.CheckedAddOne(r.End)
	return ok && next == other.Start
}

// Overlaps reports whether r and other share at least one integer.
func (r Range[T]) Overlaps(other Range[T]) bool {
	return other.Start <= r.End && r.Start <= other.End
}

// TouchesOrOverlaps reports whether r and other are disjoint-but-adjacent
// or share integers — the merge condition for set-semantics coalescing.
func (r Range[T]) TouchesOrOverlaps(other Range[T]) bool {
	return r.Overlaps(other) || r.Touches(other) || other.Touches(r)
}

// String renders the range as "s..=e", this module's textual display
// convention for a single range.
func (r Range[T]) String() string {
	return fmt.Sprintf("%v..=%v", r.Start, r.End)
}

// Value pairs a Range with a value for the map containers. V is
// comparable so map-union/symmetric-difference can test for the
// value-equality that governs touching-range coalescing.
type Value[T ordinal.Integer, V comparable] struct {
	Range Range[T]
	Val   V
}

// NewValue builds a Value.
func NewValue[T ordinal.Integer, V comparable](r Range[T], v V) Value[T, V] {
	return Value[T, V]{Range: r, Val: v}
}

// String renders the pair as "(s..=e, v)", the map analogue of Range's
// display convention.
func (rv Value[T, V]) String() string {
	return fmt.Sprintf("(%s, %v)", rv.Range, rv.Val)
}
