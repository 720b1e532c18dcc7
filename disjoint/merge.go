package disjoint

import (
	"container/heap"

	"github.com/josestg/rangeblaze/ordinal"
	"github.com/josestg/rangeblaze/ranges"
)

// Merge combines two sorted-disjoint streams into one sorted-starts
// stream (starts non-decreasing; ranges may still overlap), grounded on
// merge.rs. It is the 2-way input to Union.
type Merge[T ordinal.Integer] struct {
	left, right  Stream[T]
	lNext, rNext ranges.Range[T]
	lHas, rHas   bool
}

// NewMerge returns a Merge of left and right.
func NewMerge[T ordinal.Integer](left, right Stream[T]) *Merge[T] {
	m := &Merge[T]{left: left, right: right}
	m.lNext, m.lHas = left.Next()
	m.rNext, m.rHas = right.Next()
	return m
}

// Next implements Stream.
func (m *Merge[T]) Next() (ranges.Range[T], bool) {
	switch {
	case m.lHas && m.rHas:
		if m.lNext.Start <= m.rNext.Start {
			r := m.lNext
			m.lNext, m.lHas = m.left.Next()
			return r, true
		}
		r := m.rNext
		m.rNext, m.rHas = m.right.Next()
		return r, true
	case m.lHas:
		r := m.lNext
		m.lNext, m.lHas = m.left.Next()
		return r, true
	case m.rHas:
		r := m.rNext
		m.rNext, m.rHas = m.right.Next()
		return r, true
	default:
		return ranges.Range[T]{}, false
	}
}

// kmergeItem is one input stream's current head, tracked in the heap by
// start so KMerge always emits the globally-smallest-start range next.
type kmergeItem[T ordinal.Integer] struct {
	r      ranges.Range[T]
	stream Stream[T]
}

type kmergeHeap[T ordinal.Integer] []kmergeItem[T]

func (h kmergeHeap[T]) Len() int            { return len(h) }
func (h kmergeHeap[T]) Less(i, j int) bool  { return h[i].r.Start < h[j].r.Start }
func (h kmergeHeap[T]) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *kmergeHeap[T]) Push(x any)         { *h = append(*h, x.(kmergeItem[T])) }
func (h *kmergeHeap[T]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// KMerge combines any number of sorted-disjoint streams into one
// sorted-starts stream, grounded on merger.rs (the k-way counterpart of
// merge.rs), implemented with container/heap the way
// edirooss-zmux-server's scheduler orders its candidate events.
type KMerge[T ordinal.Integer] struct {
	h kmergeHeap[T]
}

// NewKMerge returns a KMerge of the given streams.
func NewKMerge[T ordinal.Integer](streams ...Stream[T]) *KMerge[T] {
	km := &KMerge[T]{}
	for _, s := range streams {
		if r, ok := s.Next(); ok {
			km.h = append(km.h, kmergeItem[T]{r: r, stream: s})
		}
	}
	heap.Init(&km.h)
	return km
}

// Next implements Stream.
func (km *KMerge[T]) Next() (ranges.Range[T], bool) {
	if km.h.Len() == 0 {
		return ranges.Range[T]{}, false
	}
	top := km.h[0]
	if next, ok := top.stream.Next(); ok {
		km.h[0].r = next
		heap.Fix(&km.h, 0)
	} else {
		heap.Pop(&km.h)
	}
	return top.r, true
}
