package rangemap

import (
	"github.com/josestg/rangeblaze/disjoint"
	"github.com/josestg/rangeblaze/mapdisjoint"
	"github.com/josestg/rangeblaze/ordinal"
	"github.com/josestg/rangeblaze/ranges"
	"github.com/josestg/rangeblaze/unsorted"
)

// Union returns the multiway priority union of maps. This is the
// list-style combinator (three or more containers reduced at once),
// grounded on MultiwayRangeMapBlaze::union in multiway_map.rs, whose own
// doc-test resolves overlaps with the FIRST-given container winning: a ∪
// b ∪ c keeps a's value at positions a and c both cover. That is the
// opposite tie-break from the two-argument (*RangeMap).Union operator
// below, which keeps a "later write wins" reading — the same asymmetry
// exists in the upstream library
// between its BitOr operator (right side wins) and its multiway trait
// (first element wins), so it is carried here rather than papered over.
// Priority is assigned by feeding the containers to the priority-union
// engine in reverse argument order, since that engine's own convention is
// "later-fed outranks earlier-fed".
func Union[T ordinal.Integer, V comparable](maps ...*RangeMap[T, V]) *RangeMap[T, V] {
	var all []ranges.Value[T, V]
	for i := len(maps) - 1; i >= 0; i-- {
		maps[i].m.Ascend(func(rv ranges.Value[T, V]) bool {
			all = append(all, rv)
			return true
		})
	}
	sorted := unsorted.PrioritySortedStarts(unsorted.FromSliceMap(all))
	return FromStream[T, V](mapdisjoint.NewPriorityUnion[T, V](mapdisjoint.FromPriorityItems(sorted)))
}

// SymmetricDifference returns the multiway symmetric difference of maps:
// a key is in the output iff covered by an odd number of inputs, with
// the value from the highest-priority covering input. As
// with Union above, this list-style combinator gives the FIRST-given
// container priority, grounded on MultiwayRangeMapBlaze::symmetric_difference
// in multiway_map.rs (verified against its own worked a/b/c doc-test).
// Streams are handed to the underlying engine in reverse argument order to
// get that tie-break out of its "last-fed wins" primitive.
func SymmetricDifference[T ordinal.Integer, V comparable](maps ...*RangeMap[T, V]) *RangeMap[T, V] {
	streams := make([]mapdisjoint.MapStream[T, V], len(maps))
	for i, m := range maps {
		streams[len(maps)-1-i] = m.Stream()
	}
	return FromStream[T, V](mapdisjoint.SymmetricDifference[T, V](streams...))
}

// Union returns the two-way priority union of m and other: other's
// value wins wherever it overlaps m's. This is the "later write wins"
// operator form; the variadic package-level Union above is the distinct
// multiway form.
func (m *RangeMap[T, V]) Union(other *RangeMap[T, V]) *RangeMap[T, V] {
	return FromStream[T, V](mapdisjoint.NewPriorityUnion[T, V](priorityStreamOf(m, other)))
}

// SymmetricDifference returns the two-way symmetric difference of m and
// other, using the same later-wins tie rule as Union.
func (m *RangeMap[T, V]) SymmetricDifference(other *RangeMap[T, V]) *RangeMap[T, V] {
	return FromStream[T, V](mapdisjoint.SymmetricDifference[T, V](m.Stream(), other.Stream()))
}

// Intersect returns the entries of m whose key also appears in mask,
// values taken from m.
func (m *RangeMap[T, V]) Intersect(mask *RangeMap[T, V]) *RangeMap[T, V] {
	return FromStream[T, V](mapdisjoint.NewMaskIntersect[T, V](m.Stream(), mask.keys()))
}

// IntersectSet returns the entries of m whose key also appears in mask,
// values taken from m.
func (m *RangeMap[T, V]) IntersectSet(mask disjoint.Stream[T]) *RangeMap[T, V] {
	return FromStream[T, V](mapdisjoint.NewMaskIntersect[T, V](m.Stream(), mask))
}

// Complement returns every key not in m, all mapped to def — the map
// complement needs a supplied default value since there is no value to
// carry over for keys m never held.
func (m *RangeMap[T, V]) Complement(def V) *RangeMap[T, V] {
	notKeys := disjoint.NewComplement[T](m.keys())
	var out []ranges.Value[T, V]
	for {
		r, ok := notKeys.Next()
		if !ok {
			break
		}
		out = append(out, ranges.NewValue(r, def))
	}
	i := 0
	next := mapdisjoint.MapStreamFunc[T, V](func() (ranges.Value[T, V], bool) {
		if i >= len(out) {
			return ranges.Value[T, V]{}, false
		}
		rv := out[i]
		i++
		return rv, true
	})
	return FromStream[T, V](next)
}
