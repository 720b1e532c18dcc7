package store

import (
	"github.com/google/btree"

	"github.com/josestg/rangeblaze/internal/generics"
	"github.com/josestg/rangeblaze/ordinal"
	"github.com/josestg/rangeblaze/ranges"
)

type mapEntry[T ordinal.Integer, V comparable] struct {
	start T
	end   T
	val   V
}

func mapLess[T ordinal.Integer, V comparable](a, b mapEntry[T, V]) bool {
	return a.start < b.start
}

// Map is the range store backing RangeMap[T,V]: an ordered start->(end,val)
// mapping where consecutive entries are guaranteed disjoint, or touching
// only when their values differ (data model invariant 4).
type Map[T ordinal.Integer, V comparable] struct {
	tree *btree.BTreeG[mapEntry[T, V]]
	len  ordinal.Len
}

// NewMap returns an empty Map.
func NewMap[T ordinal.Integer, V comparable]() *Map[T, V] {
	return &Map[T, V]{tree: btree.NewG(degree, mapLess[T, V])}
}

// Len returns the total count of integers stored.
func (m *Map[T, V]) Len() ordinal.Len { return m.len }

// RangeCount returns the number of disjoint ranges stored.
func (m *Map[T, V]) RangeCount() int { return m.tree.Len() }

// IsEmpty reports whether the store holds no integers.
func (m *Map[T, V]) IsEmpty() bool { return m.tree.Len() == 0 }

// Clear removes every entry.
func (m *Map[T, V]) Clear() {
	m.tree.Clear(false)
	m.len = ordinal.Zero
}

// Clone returns a copy-on-write clone, safe because entries are value
// types plus a comparable V.
func (m *Map[T, V]) Clone() *Map[T, V] {
	return &Map[T, V]{tree: m.tree.Clone(), len: m.len}
}

func (m *Map[T, V]) floor(x T) (mapEntry[T, V], bool) {
	var found mapEntry[T, V]
	ok := false
	m.tree.DescendLessOrEqual(mapEntry[T, V]{start: x}, func(e mapEntry[T, V]) bool {
		found, ok = e, true
		return false
	})
	return found, ok
}

func (m *Map[T, V]) successor(x T) (mapEntry[T, V], bool) {
	var found mapEntry[T, V]
	ok := false
	next, canInc := ordinal.CheckedAddOne(x)
	if canInc {
		m.tree.AscendGreaterOrEqual(mapEntry[T, V]{start: next}, func(e mapEntry[T, V]) bool {
			found, ok = e, true
			return false
		})
	}
	return found, ok
}

// Get returns the value stored at x, if any.
func (m *Map[T, V]) Get(x T) (V, bool) {
	e, ok := m.floor(x)
	if !ok || x > e.end {
		return generics.ZeroValue[V](), false
	}
	return e.val, true
}

// Contains reports whether x is stored.
func (m *Map[T, V]) Contains(x T) bool {
	_, ok := m.Get(x)
	return ok
}

// RangeContaining returns the stored (range,value) containing x, if any.
func (m *Map[T, V]) RangeContaining(x T) (ranges.Value[T, V], bool) {
	e, ok := m.floor(x)
	if !ok || x > e.end {
		return ranges.Value[T, V]{}, false
	}
	return ranges.NewValue(ranges.New(e.start, e.end), e.val), true
}

// First returns the smallest stored integer.
func (m *Map[T, V]) First() (T, bool) {
	e, ok := m.tree.Min()
	return e.start, ok
}

// Last returns the largest stored integer.
func (m *Map[T, V]) Last() (T, bool) {
	e, ok := m.tree.Max()
	return e.end, ok
}

// Ascend calls yield for every stored (range,value) in increasing order
// of start, stopping early if yield returns false.
func (m *Map[T, V]) Ascend(yield func(ranges.Value[T, V]) bool) {
	m.tree.Ascend(func(e mapEntry[T, V]) bool {
		return yield(ranges.NewValue(ranges.New(e.start, e.end), e.val))
	})
}

// Descend calls yield for every stored (range,value) in decreasing order
// of start, stopping early if yield returns false.
func (m *Map[T, V]) Descend(yield func(ranges.Value[T, V]) bool) {
	m.tree.Descend(func(e mapEntry[T, V]) bool {
		return yield(ranges.NewValue(ranges.New(e.start, e.end), e.val))
	})
}

// Add inserts [r.Start,r.End]=val into the store, re-coalescing with
// whatever already-stored entries it overlaps, touches with an equal
// value, or fully subsumes. An empty range is silently ignored.
func (m *Map[T, V]) Add(r ranges.Range[T], val V) {
	if r.IsEmpty() {
		return
	}

	pred, hasPred := m.floor(r.Start)
	predTouchesOrOverlaps := hasPred && touchesOrOverlapsMap(pred, r)

	if !predTouchesOrOverlaps {
		m.insertFresh(r.Start, r.End, val)
		m.deleteExtra(r.Start, r.End, val)
		return
	}

	if pred.val != val {
		// Differing value: carve the predecessor back to end at s-1 (it
		// may vanish if s == pred.start), then treat [s,e] as the
		// disjoint case starting at s.
		oldLen := ranges.New(pred.start, pred.end).Len()
		m.tree.Delete(pred)
		m.len = m.len.Sub(oldLen)
		if pred.start < r.Start {
			left := mapEntry[T, V]{start: pred.start, end: ordinal.SubOne(r.Start), val: pred.val}
			m.tree.ReplaceOrInsert(left)
			m.len = m.len.Add(ranges.New(left.start, left.end).Len())
		}
		// Any remainder of the old predecessor past r.End is subsumed by
		// deleteExtra below, which walks from r.Start/r.End forward and
		// will encounter it as an ordinary "next" entry only if it still
		// exists; since we deleted the whole predecessor, re-add its
		// overhang first if it extends past r.End.
		if pred.end > r.End {
			overhang := mapEntry[T, V]{start: ordinal.AddOne(r.End), end: pred.end, val: pred.val}
			m.tree.ReplaceOrInsert(overhang)
			m.len = m.len.Add(ranges.New(overhang.start, overhang.end).Len())
		}
		// If the predecessor started at r.Start it is gone entirely, so the
		// entry before it may now touch r.Start with an equal value.
		start := r.Start
		if pred.start == r.Start && r.Start != ordinal.MinValue[T]() {
			before, ok := m.floor(ordinal.SubOne(r.Start))
			if ok && before.val == val && before.end == ordinal.SubOne(r.Start) {
				m.tree.Delete(before)
				m.len = m.len.Sub(ranges.New(before.start, before.end).Len())
				start = before.start
			}
		}
		m.insertFresh(start, r.End, val)
		m.deleteExtra(start, r.End, val)
		return
	}

	// Same value: extend predecessor's end to max(pE,e) and absorb
	// whatever now touches-with-equal-value or overlaps to the right.
	if pred.end >= r.End {
		return
	}
	oldLen := ranges.New(pred.start, pred.end).Len()
	newEnd := r.End
	m.tree.ReplaceOrInsert(mapEntry[T, V]{start: pred.start, end: newEnd, val: pred.val})
	m.len = m.len.Sub(oldLen).Add(ranges.New(pred.start, newEnd).Len())
	m.deleteExtra(pred.start, newEnd, pred.val)
}

func (m *Map[T, V]) insertFresh(start, end T, val V) {
	e := mapEntry[T, V]{start: start, end: end, val: val}
	m.tree.ReplaceOrInsert(e)
	m.len = m.len.Add(ranges.New(start, end).Len())
}

// touchesOrOverlapsMap reports whether pred (start <= r.Start) touches or
// overlaps r, irrespective of value.
func touchesOrOverlapsMap[T ordinal.Integer, V comparable](pred mapEntry[T, V], r ranges.Range[T]) bool {
	predRange := ranges.New(pred.start, pred.end)
	return predRange.Overlaps(r) || predRange.Touches(r)
}

// deleteExtra absorbs entries to the right of [start,end]=val per spec
// section 4.3: a strictly overlapping entry is always absorbed (its
// covered portion is overwritten by val); a merely-touching entry is
// absorbed only if its value equals val. It walks by tree key order from
// start (the merged entry's own, unchanging key), not from end: end only
// grows as entries are absorbed, so probing successor(end) would skip
// over an entry whose start already lies inside [start,end] but is less
// than the current end.
func (m *Map[T, V]) deleteExtra(start, end T, val V) {
	for {
		nxt, ok := m.successor(start)
		if !ok {
			return
		}
		overlaps := nxt.start <= end
		touches := ranges.New(start, end).Touches(ranges.New(nxt.start, nxt.end))
		if !overlaps && !touches {
			return
		}
		if touches && !overlaps && nxt.val != val {
			return
		}

		oldLen := ranges.New(start, end).Len()
		nxtLen := ranges.New(nxt.start, nxt.end).Len()
		m.tree.Delete(nxt)
		m.len = m.len.Sub(nxtLen)

		if overlaps && nxt.val != val {
			// The overlapping portion of nxt is overwritten by val; only
			// keep the tail of nxt that extends past end, with nxt's own
			// value (it was never covered by the inserted range).
			if nxt.end > end {
				tail := mapEntry[T, V]{start: ordinal.AddOne(end), end: nxt.end, val: nxt.val}
				m.tree.ReplaceOrInsert(tail)
				m.len = m.len.Add(ranges.New(tail.start, tail.end).Len())
				return
			}
			continue
		}

		// Same value (touching or overlapping): merge into [start,end].
		if nxt.end > end {
			end = nxt.end
		}
		m.tree.ReplaceOrInsert(mapEntry[T, V]{start: start, end: end, val: val})
		m.len = m.len.Sub(oldLen).Add(ranges.New(start, end).Len())
	}
}

// Remove deletes a single integer x from the store.
func (m *Map[T, V]) Remove(x T) {
	e, ok := m.floor(x)
	if !ok || x > e.end {
		return
	}
	m.tree.Delete(e)
	total := ranges.New(e.start, e.end).Len()
	switch {
	case e.start == x && e.end == x:
		m.len = m.len.Sub(total)
	case e.start == x:
		left := mapEntry[T, V]{start: ordinal.AddOne(x), end: e.end, val: e.val}
		m.tree.ReplaceOrInsert(left)
		m.len = m.len.Sub(total).Add(ranges.New(left.start, left.end).Len())
	case e.end == x:
		left := mapEntry[T, V]{start: e.start, end: ordinal.SubOne(x), val: e.val}
		m.tree.ReplaceOrInsert(left)
		m.len = m.len.Sub(total).Add(ranges.New(left.start, left.end).Len())
	default:
		left := mapEntry[T, V]{start: e.start, end: ordinal.SubOne(x), val: e.val}
		right := mapEntry[T, V]{start: ordinal.AddOne(x), end: e.end, val: e.val}
		m.tree.ReplaceOrInsert(left)
		m.tree.ReplaceOrInsert(right)
		m.len = m.len.Sub(total).Add(ranges.New(left.start, left.end).Len()).Add(ranges.New(right.start, right.end).Len())
	}
}

// SplitOff partitions the store into {entries fully < k} (kept) and
// {entries >= k} (returned), splitting a straddling entry at k.
func (m *Map[T, V]) SplitOff(k T) *Map[T, V] {
	right := NewMap[T, V]()

	hasStraddle := k != ordinal.MinValue[T]()
	var straddle mapEntry[T, V]
	if hasStraddle {
		straddle, hasStraddle = m.floor(ordinal.SubOne(k))
	}
	if hasStraddle && straddle.end >= k {
		m.tree.Delete(straddle)
		total := ranges.New(straddle.start, straddle.end).Len()
		left := mapEntry[T, V]{start: straddle.start, end: ordinal.SubOne(k), val: straddle.val}
		rightEntry := mapEntry[T, V]{start: k, end: straddle.end, val: straddle.val}
		m.tree.ReplaceOrInsert(left)
		right.tree.ReplaceOrInsert(rightEntry)
		leftLen := ranges.New(left.start, left.end).Len()
		rightLen := ranges.New(rightEntry.start, rightEntry.end).Len()
		m.len = m.len.Sub(total).Add(leftLen)
		right.len = right.len.Add(rightLen)
	}

	var toMove []mapEntry[T, V]
	m.tree.AscendGreaterOrEqual(mapEntry[T, V]{start: k}, func(e mapEntry[T, V]) bool {
		toMove = append(toMove, e)
		return true
	})
	for _, e := range toMove {
		m.tree.Delete(e)
		right.tree.ReplaceOrInsert(e)
		l := ranges.New(e.start, e.end).Len()
		m.len = m.len.Sub(l)
		right.len = right.len.Add(l)
	}
	return right
}

// Append moves every range out of other into m via Internal-add, then
// clears other.
func (m *Map[T, V]) Append(other *Map[T, V]) {
	other.Ascend(func(rv ranges.Value[T, V]) bool {
		m.Add(rv.Range, rv.Val)
		return true
	})
	other.Clear()
}

// BuildSortedMap appends ranges from an already sorted-disjoint source
// directly, skipping Add's predecessor search entirely.
func BuildSortedMap[T ordinal.Integer, V comparable](next func() (ranges.Value[T, V], bool)) *Map[T, V] {
	m := NewMap[T, V]()
	for {
		rv, ok := next()
		if !ok {
			break
		}
		if rv.Range.IsEmpty() {
			continue
		}
		m.tree.ReplaceOrInsert(mapEntry[T, V]{start: rv.Range.Start, end: rv.Range.End, val: rv.Val})
		m.len = m.len.Add(rv.Range.Len())
	}
	return m
}
