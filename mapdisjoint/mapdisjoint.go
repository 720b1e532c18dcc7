// Package mapdisjoint implements the value-carrying algebra over
// priority-sorted-starts map streams: priority-union, symmetric
// difference, and set-mask intersection. Grounded on union_iter_map.rs
// and sym_diff_iter_map.rs; package disjoint is the set-only analogue
// this package borrows its stream shape from.
package mapdisjoint

import (
	"iter"

	"github.com/josestg/rangeblaze/ordinal"
	"github.com/josestg/rangeblaze/ranges"
	"github.com/josestg/rangeblaze/unsorted"
)

// PriorityStream yields a priority-sorted-starts map input: items arrive
// with non-decreasing Range.Start, each carrying the priority assigned by
// unsorted.PrioritySortedStarts (lower Priority means "seen earlier").
type PriorityStream[T ordinal.Integer, V comparable] interface {
	Next() (unsorted.PriorityItem[T, V], bool)
}

// PriorityStreamFunc adapts a plain function to PriorityStream.
type PriorityStreamFunc[T ordinal.Integer, V comparable] func() (unsorted.PriorityItem[T, V], bool)

// Next implements PriorityStream.
func (f PriorityStreamFunc[T, V]) Next() (unsorted.PriorityItem[T, V], bool) { return f() }

// FromPriorityItems builds a PriorityStream out of a plain slice, for
// tests and for chaining with unsorted.PrioritySortedStarts.
func FromPriorityItems[T ordinal.Integer, V comparable](items []unsorted.PriorityItem[T, V]) PriorityStream[T, V] {
	i := 0
	return PriorityStreamFunc[T, V](func() (unsorted.PriorityItem[T, V], bool) {
		if i >= len(items) {
			return unsorted.PriorityItem[T, V]{}, false
		}
		item := items[i]
		i++
		return item, true
	})
}

// MapStream yields a sorted-disjoint map output: non-decreasing,
// non-touching (or touching-with-different-value) range/value pairs.
type MapStream[T ordinal.Integer, V comparable] interface {
	Next() (ranges.Value[T, V], bool)
}

// MapStreamFunc adapts a plain function to MapStream.
type MapStreamFunc[T ordinal.Integer, V comparable] func() (ranges.Value[T, V], bool)

// Next implements MapStream.
func (f MapStreamFunc[T, V]) Next() (ranges.Value[T, V], bool) { return f() }

// Seq bridges a MapStream into a Go 1.23 range-over-func sequence, the
// map analogue of disjoint.Seq.
func Seq[T ordinal.Integer, V comparable](s MapStream[T, V]) iter.Seq[ranges.Value[T, V]] {
	return func(yield func(ranges.Value[T, V]) bool) {
		for {
			rv, ok := s.Next()
			if !ok || !yield(rv) {
				return
			}
		}
	}
}

// CollectMap drains a MapStream into a slice.
func CollectMap[T ordinal.Integer, V comparable](s MapStream[T, V]) []ranges.Value[T, V] {
	var out []ranges.Value[T, V]
	for {
		rv, ok := s.Next()
		if !ok {
			return out
		}
		out = append(out, rv)
	}
}

// touches reports whether a range ending at end touches a range starting
// at start, using saturating arithmetic.
func touches[T ordinal.Integer](end, start T) bool {
	next, ok := ordinal.CheckedAddOne(end)
	return ok && next == start
}
