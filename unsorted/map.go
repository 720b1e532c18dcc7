package unsorted

import (
	"slices"

	"github.com/josestg/rangeblaze/ordinal"
	"github.com/josestg/rangeblaze/ranges"
)

// PriorityItem is a range/value pair decorated with the input-order
// priority number the priority-union algorithm (package mapdisjoint)
// needs to resolve overlaps deterministically: a smaller Priority means
// the range was seen earlier, so a larger Priority always wins.
type PriorityItem[T ordinal.Integer, V comparable] struct {
	Range    ranges.Range[T]
	Val      V
	Priority int
}

// NormalizeMap is the map analogue of Normalize: a single pending-range
// buffer merges consecutive same-value touching/overlapping input ranges,
// and every emitted item is decorated with a priority number assigned in
// input arrival order. When ranges merge, the merged item keeps the
// priority of whichever input first became the pending range — the
// priority records "first seen", not "last touched". Grounded on
// unsorted_priority_map.rs.
func NormalizeMap[T ordinal.Integer, V comparable](in iterFunc[ranges.Value[T, V]]) []PriorityItem[T, V] {
	var out []PriorityItem[T, V]
	var pending PriorityItem[T, V]
	hasPending := false
	priority := 0

	for {
		rv, ok := in()
		if !ok {
			break
		}
		if rv.Range.IsEmpty() {
			continue
		}
		item := PriorityItem[T, V]{Range: rv.Range, Val: rv.Val, Priority: priority}
		priority++

		if !hasPending {
			pending, hasPending = item, true
			continue
		}
		if pending.Val == item.Val && pending.Range.TouchesOrOverlaps(item.Range) {
			if item.Range.Start < pending.Range.Start {
				pending.Range.Start = item.Range.Start
			}
			if item.Range.End > pending.Range.End {
				pending.Range.End = item.Range.End
			}
			continue
		}
		out = append(out, pending)
		pending = item
	}
	if hasPending {
		out = append(out, pending)
	}
	return out
}

// FromSliceMap builds the arbitrary-order map input NormalizeMap accepts
// out of a plain slice.
func FromSliceMap[T ordinal.Integer, V comparable](rvs []ranges.Value[T, V]) iterFunc[ranges.Value[T, V]] {
	i := 0
	return func() (ranges.Value[T, V], bool) {
		if i >= len(rvs) {
			return ranges.Value[T, V]{}, false
		}
		rv := rvs[i]
		i++
		return rv, true
	}
}

// PrioritySortedStarts runs NormalizeMap and re-sorts the result by
// start, breaking ties by priority so the item seen later always sorts
// after one with an equal start seen earlier. The result is a
// priority-sorted-starts stream: starts are non-decreasing, but
// disjointness is not yet guaranteed — that is package mapdisjoint's job.
func PrioritySortedStarts[T ordinal.Integer, V comparable](in iterFunc[ranges.Value[T, V]]) []PriorityItem[T, V] {
	out := NormalizeMap(in)
	slices.SortFunc(out, func(a, b PriorityItem[T, V]) int {
		if c := ordinal.Compare(a.Range.Start, b.Range.Start); c != 0 {
			return c
		}
		return a.Priority - b.Priority
	})
	return out
}
