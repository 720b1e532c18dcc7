package mapdisjoint

import (
	"slices"

	"github.com/josestg/rangeblaze/ordinal"
	"github.com/josestg/rangeblaze/ranges"
)

// sdItem is one input range/value pair tagged with the index of the
// stream it came from, which doubles as its priority: a later stream
// outranks an earlier one wherever both cover the same position.
type sdItem[T ordinal.Integer, V comparable] struct {
	start, end T
	val        V
	priority   int
}

// SymmetricDifference computes the k-way symmetric difference: a
// position belongs to the output iff an odd number of inputs cover it,
// and its value comes from the highest-priority (last-given) input
// covering it.
//
// This is deliberately an event-sweep rather than a direct port of
// SymDiffIterMap's single-pass workspace automaton in
// sym_diff_iter_map.rs: that automaton's dominance pruning is sound for
// priority-union because a dominated candidate can never again supply
// the *value*, but parity needs the exact count of covering inputs at
// every position, and a dominated-but-still-active candidate still
// contributes to that count. Reusing union's pruning here would silently
// miscount parity. Each input stream is already internally
// sorted-disjoint, so collecting all of them and sweeping their combined
// boundaries is a direct, easily-verified way to get both the count and
// the winner right; it trades the fully lazy, one-pass streaming shape
// for a materialize-then-sweep one.
func SymmetricDifference[T ordinal.Integer, V comparable](streams ...MapStream[T, V]) MapStream[T, V] {
	var items []sdItem[T, V]
	for i, s := range streams {
		for {
			rv, ok := s.Next()
			if !ok {
				break
			}
			if rv.Range.IsEmpty() {
				continue
			}
			items = append(items, sdItem[T, V]{rv.Range.Start, rv.Range.End, rv.Val, i})
		}
	}

	out := sweepParity(items)
	idx := 0
	return MapStreamFunc[T, V](func() (ranges.Value[T, V], bool) {
		if idx >= len(out) {
			return ranges.Value[T, V]{}, false
		}
		rv := out[idx]
		idx++
		return rv, true
	})
}

// SymmetricDifferenceK is an alias kept for call-site symmetry with
// disjoint.IntersectionK/UnionK; SymmetricDifference already accepts any
// number of streams.
func SymmetricDifferenceK[T ordinal.Integer, V comparable](streams ...MapStream[T, V]) MapStream[T, V] {
	return SymmetricDifference(streams...)
}

func sweepParity[T ordinal.Integer, V comparable](items []sdItem[T, V]) []ranges.Value[T, V] {
	if len(items) == 0 {
		return nil
	}

	var bounds []T
	for _, it := range items {
		bounds = append(bounds, it.start)
		if next, ok := ordinal.CheckedAddOne(it.end); ok {
			bounds = append(bounds, next)
		}
	}
	slices.SortFunc(bounds, ordinal.Compare[T])
	bounds = slices.CompactFunc(bounds, func(a, b T) bool { return a == b })

	var out []ranges.Value[T, V]
	var pending ranges.Value[T, V]
	hasPending := false

	for i, lo := range bounds {
		var hi T
		if i+1 < len(bounds) {
			hi = ordinal.SubOne(bounds[i+1])
		} else {
			hi = ordinal.SafeMaxValue[T]()
		}
		if hi < lo {
			continue
		}

		var active []sdItem[T, V]
		for _, it := range items {
			if it.start <= lo && lo <= it.end {
				active = append(active, it)
			}
		}
		if len(active)%2 == 0 {
			if hasPending {
				out = append(out, pending)
				hasPending = false
			}
			continue
		}

		winner := active[0]
		for _, it := range active[1:] {
			if it.priority > winner.priority {
				winner = it
			}
		}

		if hasPending && pending.Val == winner.val && touches(pending.Range.End, lo) {
			pending.Range.End = hi
			continue
		}
		if hasPending {
			out = append(out, pending)
		}
		pending = ranges.NewValue(ranges.New(lo, hi), winner.val)
		hasPending = true
	}
	if hasPending {
		out = append(out, pending)
	}
	return out
}
