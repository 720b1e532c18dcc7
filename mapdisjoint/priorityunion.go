package mapdisjoint

import (
	"container/heap"

	"github.com/josestg/rangeblaze/ordinal"
	"github.com/josestg/rangeblaze/ranges"
	"github.com/josestg/rangeblaze/unsorted"
)

// wsItem is one candidate occupying the priority-union workspace: the
// portion of some input range not yet resolved into output, re-anchored
// at its current start as the sweep advances.
type wsItem[T ordinal.Integer, V comparable] struct {
	start, end T
	val        V
	priority   int
}

// workspace is a max-heap ordered by priority: the root is always the
// highest-priority candidate currently active, i.e. the value the union
// emits at the workspace's leading edge.
type workspace[T ordinal.Integer, V comparable] []wsItem[T, V]

func (w workspace[T, V]) Len() int           { return len(w) }
func (w workspace[T, V]) Less(i, j int) bool { return w[i].priority > w[j].priority }
func (w workspace[T, V]) Swap(i, j int)      { w[i], w[j] = w[j], w[i] }

func (w *workspace[T, V]) Push(x any) { *w = append(*w, x.(wsItem[T, V])) }

func (w *workspace[T, V]) Pop() any {
	old := *w
	n := len(old)
	item := old[n-1]
	*w = old[:n-1]
	return item
}

// PriorityUnion implements the k-way priority union: where inputs
// overlap, the highest-priority (most-recently-added) input
// wins. The workspace holds every candidate that might still become the
// winner at some future position; dominance pruning drops a candidate
// once the highest-priority surviving candidate covers its entire
// remaining reach, since such a candidate can never win again. Grounded on
// UnionIterMap::next in union_iter_map.rs.
type PriorityUnion[T ordinal.Integer, V comparable] struct {
	in       PriorityStream[T, V]
	nextItem unsorted.PriorityItem[T, V]
	hasNext  bool

	ws workspace[T, V]

	gather    ranges.Value[T, V]
	hasGather bool
	ready     ranges.Value[T, V]
	hasReady  bool
}

// NewPriorityUnion wraps a priority-sorted-starts map stream.
func NewPriorityUnion[T ordinal.Integer, V comparable](in PriorityStream[T, V]) *PriorityUnion[T, V] {
	u := &PriorityUnion[T, V]{in: in}
	u.nextItem, u.hasNext = in.Next()
	return u
}

// Next implements MapStream.
func (u *PriorityUnion[T, V]) Next() (ranges.Value[T, V], bool) {
	for {
		if u.hasReady {
			r := u.ready
			u.hasReady = false
			return r, true
		}

		// Admit every held input item whose start matches the current
		// workspace best, or whose start is still ahead of the workspace
		// entirely (first item seen).
		for u.hasNext {
			if len(u.ws) == 0 {
				heap.Push(&u.ws, wsItem[T, V]{u.nextItem.Range.Start, u.nextItem.Range.End, u.nextItem.Val, u.nextItem.Priority})
				u.nextItem, u.hasNext = u.in.Next()
				continue
			}
			best := u.ws[0]
			if u.nextItem.Range.Start != best.start {
				break
			}
			if u.nextItem.Priority > best.priority || u.nextItem.Range.End > best.end {
				heap.Push(&u.ws, wsItem[T, V]{u.nextItem.Range.Start, u.nextItem.Range.End, u.nextItem.Val, u.nextItem.Priority})
			}
			u.nextItem, u.hasNext = u.in.Next()
		}

		if len(u.ws) == 0 {
			if u.hasGather {
				g := u.gather
				u.hasGather = false
				return g, true
			}
			return ranges.Value[T, V]{}, false
		}

		best := u.ws[0]
		nextSliceEnd := best.end
		if u.hasNext {
			priorEnd := ordinal.SubOne(u.nextItem.Range.Start)
			if priorEnd < nextSliceEnd {
				nextSliceEnd = priorEnd
			}
		}

		if u.hasGather && u.gather.Val == best.val && touches(u.gather.Range.End, best.start) {
			u.gather.Range.End = nextSliceEnd
		} else {
			if u.hasGather {
				u.ready, u.hasReady = u.gather, true
			}
			u.gather = ranges.NewValue(ranges.New(best.start, nextSliceEnd), best.val)
			u.hasGather = true
		}

		u.advance(nextSliceEnd)
	}
}

// advance pops every workspace candidate in priority-descending order,
// drops the ones that expire at or before nextSliceEnd, re-anchors the
// survivors' start just past it, and drops any survivor dominated by the
// highest-priority survivor (lower priority, reaching no farther) — such
// a candidate cannot win at any position it would still cover.
func (u *PriorityUnion[T, V]) advance(nextSliceEnd T) {
	old := u.ws
	u.ws = nil
	for len(old) > 0 {
		item := heap.Pop(&old).(wsItem[T, V])
		if item.end <= nextSliceEnd {
			continue
		}
		item.start = ordinal.AddOne(nextSliceEnd)
		if len(u.ws) > 0 {
			newBest := u.ws[0]
			if item.priority < newBest.priority && item.end <= newBest.end {
				continue
			}
		}
		u.ws = append(u.ws, item)
	}
	heap.Init(&u.ws)
}
