// Package store is the range-coalescing data structure backing both
// RangeSet and RangeMap. It owns all memory: a Set or Map is the only
// thing that knows how to turn "insert [s,e]" into a tree of disjoint,
// non-touching entries, and it is the only place the invariants from the
// data model (unique strictly-increasing starts; no two consecutive
// entries that overlap, or that touch, except Map entries with differing
// values; a running length counter) are enforced.
//
// The tree itself is a github.com/google/btree B-tree keyed by an entry's
// start: it gives the O(log n) floor/insert/delete/split this module
// needs without hand-rolling tree rebalancing, the same way the rest of
// the example pack reaches for google/btree for ordered key storage.
package store

import (
	"github.com/google/btree"

	"github.com/josestg/rangeblaze/ordinal"
	"github.com/josestg/rangeblaze/ranges"
)

const degree = 16

type setEntry[T ordinal.Integer] struct {
	start T
	end   T
}

func setLess[T ordinal.Integer](a, b setEntry[T]) bool {
	return a.start < b.start
}

// touchesOrOverlapsToTheRight reports whether pred (whose start is known
// to be <= r.Start) touches or overlaps r.
func touchesOrOverlapsToTheRight[T ordinal.Integer](pred setEntry[T], r ranges.Range[T]) bool {
	predRange := ranges.New(pred.start, pred.end)
	return predRange.Overlaps(r) || predRange.Touches(r)
}

// Set is the range store backing RangeSet[T]: an ordered start->end
// mapping where consecutive entries are guaranteed disjoint and
// non-touching (data model invariants 1-3).
type Set[T ordinal.Integer] struct {
	tree *btree.BTreeG[setEntry[T]]
	len  ordinal.Len
}

// NewSet returns an empty Set.
func NewSet[T ordinal.Integer]() *Set[T] {
	return &Set[T]{tree: btree.NewG(degree, setLess[T])}
}

// Len returns the total count of integers stored.
func (s *Set[T]) Len() ordinal.Len { return s.len }

// RangeCount returns the number of disjoint ranges stored.
func (s *Set[T]) RangeCount() int { return s.tree.Len() }

// IsEmpty reports whether the store holds no integers.
func (s *Set[T]) IsEmpty() bool { return s.tree.Len() == 0 }

// Clear removes every entry.
func (s *Set[T]) Clear() {
	s.tree.Clear(false)
	s.len = ordinal.Zero
}

// Clone returns a deep-enough copy (google/btree's Clone is copy-on-write,
// which is safe here because entries are small value types).
func (s *Set[T]) Clone() *Set[T] {
	return &Set[T]{tree: s.tree.Clone(), len: s.len}
}

// floor returns the entry with the largest start <= x, if any.
func (s *Set[T]) floor(x T) (setEntry[T], bool) {
	var found setEntry[T]
	ok := false
	s.tree.DescendLessOrEqual(setEntry[T]{start: x}, func(e setEntry[T]) bool {
		found, ok = e, true
		return false
	})
	return found, ok
}

// successor returns the entry with the smallest start > x, if any.
func (s *Set[T]) successor(x T) (setEntry[T], bool) {
	var found setEntry[T]
	ok := false
	next, canInc := ordinal.CheckedAddOne(x)
	if canInc {
		s.tree.AscendGreaterOrEqual(setEntry[T]{start: next}, func(e setEntry[T]) bool {
			found, ok = e, true
			return false
		})
		return found, ok
	}
	return found, ok
}

// Contains reports whether x is stored.
func (s *Set[T]) Contains(x T) bool {
	e, ok := s.floor(x)
	return ok && x <= e.end
}

// RangeContaining returns the stored range containing x, if any.
func (s *Set[T]) RangeContaining(x T) (ranges.Range[T], bool) {
	e, ok := s.floor(x)
	if !ok || x > e.end {
		return ranges.Range[T]{}, false
	}
	return ranges.New(e.start, e.end), true
}

// First returns the smallest stored integer.
func (s *Set[T]) First() (T, bool) {
	e, ok := s.tree.Min()
	return e.start, ok
}

// Last returns the largest stored integer.
func (s *Set[T]) Last() (T, bool) {
	e, ok := s.tree.Max()
	return e.end, ok
}

// Ascend calls yield for every stored range in increasing order of start,
// stopping early if yield returns false.
func (s *Set[T]) Ascend(yield func(ranges.Range[T]) bool) {
	s.tree.Ascend(func(e setEntry[T]) bool {
		return yield(ranges.New(e.start, e.end))
	})
}

// Descend calls yield for every stored range in decreasing order of
// start, stopping early if yield returns false.
func (s *Set[T]) Descend(yield func(ranges.Range[T]) bool) {
	s.tree.Descend(func(e setEntry[T]) bool {
		return yield(ranges.New(e.start, e.end))
	})
}

// Add inserts [s,e] into the store, re-establishing the disjoint,
// non-touching invariant by absorbing whatever predecessor and successor
// entries it now touches or overlaps. An empty range (s > e) is silently
// ignored.
func (s *Set[T]) Add(r ranges.Range[T]) {
	if r.IsEmpty() {
		return
	}

	pred, hasPred := s.floor(r.Start)
	predTouchesOrOverlaps := hasPred && touchesOrOverlapsToTheRight(pred, r)

	if !predTouchesOrOverlaps {
		// Disjoint from any predecessor: insert a fresh entry and absorb
		// whatever it now touches or overlaps to the right.
		s.insertEntry(setEntry[T]{start: r.Start, end: r.End}, r.Len())
		s.deleteExtra(r.Start, r.End)
		return
	}

	// Predecessor touches or overlaps [s,e].
	if pred.end >= r.End {
		// Fully absorbed already; nothing changes.
		return
	}
	oldLen := ranges.New(pred.start, pred.end).Len()
	newEnd := r.End
	s.replaceEntry(setEntry[T]{start: pred.start, end: newEnd})
	s.len = s.len.Sub(oldLen).Add(ranges.New(pred.start, newEnd).Len())
	s.deleteExtra(pred.start, newEnd)
}

// deleteExtra absorbs every entry to the right of [start,end] that
// touches or overlaps it. It walks
// by tree key order from start (the merged entry's own, unchanging key),
// not from end: end only grows as entries are absorbed, so probing
// successor(end) would skip over an entry whose start already lies inside
// [start,end] but is less than the current end.
func (s *Set[T]) deleteExtra(start, end T) {
	for {
		nxt, ok := s.successor(start)
		if !ok {
			return
		}
		if !(nxt.start <= end || ranges.New(start, end).Touches(ranges.New(nxt.start, nxt.end))) {
			return
		}
		oldLen := ranges.New(start, end).Len()
		nxtLen := ranges.New(nxt.start, nxt.end).Len()
		if nxt.end > end {
			end = nxt.end
		}
		s.tree.Delete(nxt)
		s.replaceEntry(setEntry[T]{start: start, end: end})
		s.len = s.len.Sub(oldLen).Sub(nxtLen).Add(ranges.New(start, end).Len())
	}
}

func (s *Set[T]) insertEntry(e setEntry[T], added ordinal.Len) {
	s.tree.ReplaceOrInsert(e)
	s.len = s.len.Add(added)
}

func (s *Set[T]) replaceEntry(e setEntry[T]) {
	s.tree.ReplaceOrInsert(e)
}

// Remove deletes a single integer x from the store. A no-op if x is not
// stored.
func (s *Set[T]) Remove(x T) {
	e, ok := s.floor(x)
	if !ok || x > e.end {
		return
	}
	s.tree.Delete(e)
	total := ranges.New(e.start, e.end).Len()
	switch {
	case e.start == x && e.end == x:
		s.len = s.len.Sub(total)
	case e.start == x:
		s.insertUnaccounted(setEntry[T]{start: ordinal.AddOne(x), end: e.end})
		s.len = s.len.Sub(total).Add(ranges.New(ordinal.AddOne(x), e.end).Len())
	case e.end == x:
		s.insertUnaccounted(setEntry[T]{start: e.start, end: ordinal.SubOne(x)})
		s.len = s.len.Sub(total).Add(ranges.New(e.start, ordinal.SubOne(x)).Len())
	default:
		left := setEntry[T]{start: e.start, end: ordinal.SubOne(x)}
		right := setEntry[T]{start: ordinal.AddOne(x), end: e.end}
		s.insertUnaccounted(left)
		s.insertUnaccounted(right)
		s.len = s.len.Sub(total).Add(ranges.New(left.start, left.end).Len()).Add(ranges.New(right.start, right.end).Len())
	}
}

func (s *Set[T]) insertUnaccounted(e setEntry[T]) {
	s.tree.ReplaceOrInsert(e)
}

// SplitOff partitions the store into {entries fully < k} (kept by the
// receiver) and {entries >= k} (returned). An entry straddling k is split
// at k so each half satisfies every store invariant independently.
func (s *Set[T]) SplitOff(k T) *Set[T] {
	right := NewSet[T]()

	straddle, hasStraddle := s.floor(ordinal.SubOne(k))
	if k == ordinal.MinValue[T]() {
		hasStraddle = false
	}
	if hasStraddle && straddle.end >= k {
		s.tree.Delete(straddle)
		leftLen := ranges.New(straddle.start, ordinal.SubOne(k)).Len()
		rightLen := ranges.New(k, straddle.end).Len()
		s.insertUnaccounted(setEntry[T]{start: straddle.start, end: ordinal.SubOne(k)})
		right.insertUnaccounted(setEntry[T]{start: k, end: straddle.end})
		s.len = s.len.Sub(ranges.New(straddle.start, straddle.end).Len()).Add(leftLen)
		right.len = right.len.Add(rightLen)
	}

	var toMove []setEntry[T]
	s.tree.AscendGreaterOrEqual(setEntry[T]{start: k}, func(e setEntry[T]) bool {
		toMove = append(toMove, e)
		return true
	})
	for _, e := range toMove {
		s.tree.Delete(e)
		right.insertUnaccounted(e)
		l := ranges.New(e.start, e.end).Len()
		s.len = s.len.Sub(l)
		right.len = right.len.Add(l)
	}
	return right
}

// Append moves every range out of other into s and clears other, using
// Internal-add for each range — the cheap strategy when the moved-in
// side is small.
func (s *Set[T]) Append(other *Set[T]) {
	other.Ascend(func(r ranges.Range[T]) bool {
		s.Add(r)
		return true
	})
	other.Clear()
}

// BuildSortedSet appends ranges from an already sorted-disjoint source
// directly, without going through Internal-add's predecessor search. This
// is the bulk-construction fast path.
func BuildSortedSet[T ordinal.Integer](next func() (ranges.Range[T], bool)) *Set[T] {
	s := NewSet[T]()
	for {
		r, ok := next()
		if !ok {
			break
		}
		if r.IsEmpty() {
			continue
		}
		s.tree.ReplaceOrInsert(setEntry[T]{start: r.Start, end: r.End})
		s.len = s.len.Add(r.Len())
	}
	return s
}
