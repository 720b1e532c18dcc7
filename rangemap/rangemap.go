// Package rangemap implements RangeMap[T,V]: a map from integers to
// values, stored as a sorted collection of disjoint ranges that coalesce
// wherever adjacent ranges share a value. It mirrors package rangeset's
// shape, substituting package mapdisjoint for the value-aware algebra.
package rangemap

import (
	"fmt"
	"iter"
	"strings"

	"github.com/josestg/rangeblaze/disjoint"
	"github.com/josestg/rangeblaze/internal/store"
	"github.com/josestg/rangeblaze/mapdisjoint"
	"github.com/josestg/rangeblaze/ordinal"
	"github.com/josestg/rangeblaze/ranges"
	"github.com/josestg/rangeblaze/sequence"
	"github.com/josestg/rangeblaze/unsorted"
)

// Options configures construction; see rangeset.Options for the
// extend-strategy crossover this mirrors.
type Options[T ordinal.Integer, V comparable] struct {
	ExtendCrossover func(sizeA, sizeB int) bool
}

func defaultCrossover(sizeA, sizeB int) bool {
	if sizeA == 0 {
		return true
	}
	log2A := 0
	for n := sizeA; n > 1; n >>= 1 {
		log2A++
	}
	return sizeB*log2A < sizeA+sizeB
}

// RangeMap maps integers of type T to values of type V, coalesced into
// disjoint ranges that merge wherever they touch and share a value.
type RangeMap[T ordinal.Integer, V comparable] struct {
	m         *store.Map[T, V]
	crossover func(sizeA, sizeB int) bool
}

// New returns an empty RangeMap with default options.
func New[T ordinal.Integer, V comparable]() *RangeMap[T, V] {
	return NewWith[T, V](Options[T, V]{})
}

// NewWith returns an empty RangeMap configured by opts.
func NewWith[T ordinal.Integer, V comparable](opts Options[T, V]) *RangeMap[T, V] {
	crossover := opts.ExtendCrossover
	if crossover == nil {
		crossover = defaultCrossover
	}
	return &RangeMap[T, V]{m: store.NewMap[T, V](), crossover: crossover}
}

// FromValues bulk-builds a RangeMap from arbitrary, possibly unsorted,
// possibly overlapping, possibly empty range/value pairs, resolving
// overlaps with later-given-wins priority via mapdisjoint.PriorityUnion.
func FromValues[T ordinal.Integer, V comparable](rvs ...ranges.Value[T, V]) *RangeMap[T, V] {
	sorted := unsorted.PrioritySortedStarts(unsorted.FromSliceMap(rvs))
	return FromStream[T, V](mapdisjoint.NewPriorityUnion[T, V](mapdisjoint.FromPriorityItems(sorted)))
}

// FromStream bulk-builds a RangeMap directly from an already
// sorted-disjoint map stream.
func FromStream[T ordinal.Integer, V comparable](in mapdisjoint.MapStream[T, V]) *RangeMap[T, V] {
	return &RangeMap[T, V]{m: store.BuildSortedMap[T, V](in.Next), crossover: defaultCrossover}
}

// Stream exposes the map's ranges as a mapdisjoint.MapStream.
func (m *RangeMap[T, V]) Stream() mapdisjoint.MapStream[T, V] {
	var rvs []ranges.Value[T, V]
	m.m.Ascend(func(rv ranges.Value[T, V]) bool {
		rvs = append(rvs, rv)
		return true
	})
	i := 0
	return mapdisjoint.MapStreamFunc[T, V](func() (ranges.Value[T, V], bool) {
		if i >= len(rvs) {
			return ranges.Value[T, V]{}, false
		}
		rv := rvs[i]
		i++
		return rv, true
	})
}

// keys exposes the map's domain as a disjoint.Stream[T], for composing
// with set-only operators (mask intersection, IsDisjointFrom,
// Complement).
func (m *RangeMap[T, V]) keys() disjoint.Stream[T] {
	var rs []ranges.Range[T]
	m.m.Ascend(func(rv ranges.Value[T, V]) bool {
		rs = append(rs, rv.Range)
		return true
	})
	return disjoint.FromSlice(rs)
}

// IsEmpty reports whether the map holds no keys.
func (m *RangeMap[T, V]) IsEmpty() bool { return m.m.IsEmpty() }

// Len returns the total count of keys stored.
func (m *RangeMap[T, V]) Len() ordinal.Len { return m.m.Len() }

// RangeCount returns the number of disjoint ranges stored.
func (m *RangeMap[T, V]) RangeCount() int { return m.m.RangeCount() }

// Contains reports whether x is a key.
func (m *RangeMap[T, V]) Contains(x T) bool { return m.m.Contains(x) }

// Get returns the value stored at x, if any.
func (m *RangeMap[T, V]) Get(x T) (V, bool) { return m.m.Get(x) }

// First returns the smallest stored key.
func (m *RangeMap[T, V]) First() (T, bool) { return m.m.First() }

// Last returns the largest stored key.
func (m *RangeMap[T, V]) Last() (T, bool) { return m.m.Last() }

// RangeContaining returns the stored (range,value) containing x, if any.
func (m *RangeMap[T, V]) RangeContaining(x T) (ranges.Value[T, V], bool) {
	return m.m.RangeContaining(x)
}

// Ranges iterates every stored (range,value) pair in increasing order of
// start.
func (m *RangeMap[T, V]) Ranges() iter.Seq[ranges.Value[T, V]] {
	return func(yield func(ranges.Value[T, V]) bool) {
		m.m.Ascend(yield)
	}
}

// Elements iterates every stored (key,value) pair in increasing order of
// key.
func (m *RangeMap[T, V]) Elements() iter.Seq2[T, V] {
	return func(yield func(T, V) bool) {
		m.m.Ascend(func(rv ranges.Value[T, V]) bool {
			x := rv.Range.Start
			for {
				if !yield(x, rv.Val) {
					return false
				}
				if x == rv.Range.End {
					return true
				}
				x = ordinal.AddOne(x)
			}
		})
	}
}

// Window iterates every stored (range,value) pair clipped to [lo,hi].
func (m *RangeMap[T, V]) Window(lo, hi T) iter.Seq[ranges.Value[T, V]] {
	return func(yield func(ranges.Value[T, V]) bool) {
		if lo > hi {
			return
		}
		m.m.Ascend(func(rv ranges.Value[T, V]) bool {
			if rv.Range.End < lo {
				return true
			}
			if rv.Range.Start > hi {
				return false
			}
			clipLo, clipHi := rv.Range.Start, rv.Range.End
			if clipLo < lo {
				clipLo = lo
			}
			if clipHi > hi {
				clipHi = hi
			}
			return yield(ranges.NewValue(ranges.New(clipLo, clipHi), rv.Val))
		})
	}
}

// IsSubsetOf reports whether every key of m is a key of other with the
// same value.
func (m *RangeMap[T, V]) IsSubsetOf(other *RangeMap[T, V]) bool {
	ok := true
	m.m.Ascend(func(rv ranges.Value[T, V]) bool {
		x := rv.Range.Start
		for {
			v, present := other.Get(x)
			if !present || v != rv.Val {
				ok = false
				return false
			}
			if x == rv.Range.End {
				break
			}
			x = ordinal.AddOne(x)
		}
		return true
	})
	return ok
}

// IsSupersetOf reports whether other.IsSubsetOf(m).
func (m *RangeMap[T, V]) IsSupersetOf(other *RangeMap[T, V]) bool {
	return other.IsSubsetOf(m)
}

// IsDisjointFrom reports whether m and other share no key.
func (m *RangeMap[T, V]) IsDisjointFrom(other *RangeMap[T, V]) bool {
	a, b := m.keys(), other.keys()
	_, ok := disjoint.Intersection[T](a, b).Next()
	return !ok
}

// Insert inserts the single key/value pair.
func (m *RangeMap[T, V]) Insert(x T, val V) { m.m.Add(ranges.New(x, x), val) }

// Remove deletes the single key x.
func (m *RangeMap[T, V]) Remove(x T) { m.m.Remove(x) }

// InsertRange inserts val for every key in r, coalescing with whatever
// neighbors already hold the same value the way Insert does.
func (m *RangeMap[T, V]) InsertRange(r ranges.Range[T], val V) { m.m.Add(r, val) }

// Clear removes every key.
func (m *RangeMap[T, V]) Clear() { m.m.Clear() }

// Clone returns an independent copy.
func (m *RangeMap[T, V]) Clone() *RangeMap[T, V] {
	return &RangeMap[T, V]{m: m.m.Clone(), crossover: m.crossover}
}

// SplitOff partitions the map at k: m keeps every key < k, and the
// returned map holds every key >= k.
func (m *RangeMap[T, V]) SplitOff(k T) *RangeMap[T, V] {
	return &RangeMap[T, V]{m: m.m.SplitOff(k), crossover: m.crossover}
}

// RetainFunc rebuilds the map keeping only (key,value) pairs for which
// keep returns true.
func (m *RangeMap[T, V]) RetainFunc(keep func(x T, val V) bool) {
	var kept []ranges.Value[T, V]
	m.m.Ascend(func(rv ranges.Value[T, V]) bool {
		var runStart T
		inRun := false
		x := rv.Range.Start
		for {
			if keep(x, rv.Val) {
				if !inRun {
					runStart, inRun = x, true
				}
			} else if inRun {
				kept = append(kept, ranges.NewValue(ranges.New(runStart, ordinal.SubOne(x)), rv.Val))
				inRun = false
			}
			if x == rv.Range.End {
				break
			}
			x = ordinal.AddOne(x)
		}
		if inRun {
			kept = append(kept, ranges.NewValue(ranges.New(runStart, rv.Range.End), rv.Val))
		}
		return true
	})
	i := 0
	next := func() (ranges.Value[T, V], bool) {
		if i >= len(kept) {
			return ranges.Value[T, V]{}, false
		}
		rv := kept[i]
		i++
		return rv, true
	}
	m.m = store.BuildSortedMap[T, V](next)
}

// Append moves every entry of other into m and clears other.
func (m *RangeMap[T, V]) Append(other *RangeMap[T, V]) {
	m.m.Append(other.m)
}

// ExtendFrom merges other into m using the cheaper of Internal-add-each-
// range or rebuild-via-priority-union. Entries from other take priority
// over m's existing entries wherever they overlap, matching the "later
// write wins" rule carried throughout this module.
// Unlike Append, it does not clear other.
func (m *RangeMap[T, V]) ExtendFrom(other *RangeMap[T, V]) {
	sizeA, sizeB := m.m.RangeCount(), other.m.RangeCount()
	if m.crossover(sizeA, sizeB) {
		other.m.Ascend(func(rv ranges.Value[T, V]) bool {
			m.m.Add(rv.Range, rv.Val)
			return true
		})
		return
	}
	merged := FromStream[T, V](mapdisjoint.NewPriorityUnion[T, V](priorityStreamOf(m, other)))
	m.m = merged.m
}

// priorityStreamOf turns (earlier, later) into a priority-sorted-starts
// stream where later's entries always outrank earlier's.
func priorityStreamOf[T ordinal.Integer, V comparable](earlier, later *RangeMap[T, V]) mapdisjoint.PriorityStream[T, V] {
	var all []ranges.Value[T, V]
	earlier.m.Ascend(func(rv ranges.Value[T, V]) bool {
		all = append(all, rv)
		return true
	})
	later.m.Ascend(func(rv ranges.Value[T, V]) bool {
		all = append(all, rv)
		return true
	})
	sorted := unsorted.PrioritySortedStarts(unsorted.FromSliceMap(all))
	return mapdisjoint.FromPriorityItems(sorted)
}

// String renders the map as "(s1..=e1, v1), …".
func (m *RangeMap[T, V]) String() string {
	var b strings.Builder
	for i, rv := range sequence.Enum(mapdisjoint.Seq[T, V](m.Stream())) {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s", rv)
	}
	return b.String()
}
