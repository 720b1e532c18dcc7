// Package unsorted implements the bulk-construction preprocessor: turning
// an arbitrary, unsorted, possibly-overlapping, possibly-empty sequence of
// input ranges into the normalized forms the rest of this module expects.
//
// The set variant coalesces with a single-range lookback buffer, which
// leaves the result in arrival order, since touching/overlapping is
// decided purely by comparing each input range to the one pending range;
// SortedDisjoint then sorts that result by start. The map variant
// additionally assigns a strictly-increasing priority number in input
// order, then the caller re-sorts by start (ties broken by priority) to
// get a priority-sorted-starts stream for the priority-union algorithm in
// package mapdisjoint.
package unsorted

import (
	"slices"

	"github.com/josestg/rangeblaze/ordinal"
	"github.com/josestg/rangeblaze/ranges"
)

// Normalize coalesces an arbitrary sequence of ranges with a single
// pending-range lookback buffer: each input range is merged into the
// pending one if they touch or overlap, otherwise the pending range is
// emitted and the input becomes the new pending range. Empty ranges are
// dropped. The result is sorted by start only to the extent that merging
// makes it so — callers that need a fully sorted-disjoint stream sort it
// first (SortedDisjoint) and then run it through disjoint.Union.
func Normalize[T ordinal.Integer](in iterFunc[ranges.Range[T]]) []ranges.Range[T] {
	var out []ranges.Range[T]
	var pending ranges.Range[T]
	hasPending := false

	for {
		r, ok := in()
		if !ok {
			break
		}
		if r.IsEmpty() {
			continue
		}
		if !hasPending {
			pending, hasPending = r, true
			continue
		}
		if pending.TouchesOrOverlaps(r) {
			if r.Start < pending.Start {
				pending.Start = r.Start
			}
			if r.End > pending.End {
				pending.End = r.End
			}
			continue
		}
		out = append(out, pending)
		pending = r
	}
	if hasPending {
		out = append(out, pending)
	}
	return out
}

// FromSlice builds the arbitrary-order input this package accepts out of
// a plain slice.
func FromSlice[T ordinal.Integer](rs []ranges.Range[T]) iterFunc[ranges.Range[T]] {
	i := 0
	return func() (ranges.Range[T], bool) {
		if i >= len(rs) {
			return ranges.Range[T]{}, false
		}
		r := rs[i]
		i++
		return r, true
	}
}

type iterFunc[E any] func() (E, bool)

// SortedDisjoint runs Normalize and then sorts the result by start. The
// result is sorted-starts, not yet guaranteed disjoint: Normalize only
// coalesces ranges that were adjacent in arrival order, so two ranges
// that overlap but had something else arrive in between them survive as
// separate entries here. Callers that need genuine sorted-disjoint output
// must still run this through disjoint.Union (see rangeset.FromRanges).
func SortedDisjoint[T ordinal.Integer](in iterFunc[ranges.Range[T]]) []ranges.Range[T] {
	out := Normalize(in)
	slices.SortFunc(out, func(a, b ranges.Range[T]) int {
		return ordinal.Compare(a.Start, b.Start)
	})
	return out
}
