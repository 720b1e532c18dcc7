package disjoint

import (
	"container/heap"

	"github.com/josestg/rangeblaze/ordinal"
	"github.com/josestg/rangeblaze/ranges"
)

// Intersection returns A ∩ B, defined compositionally as ¬(¬A ∪ ¬B) —
// single-pass and O(n+m) amortized since every stage here pulls lazily.
func Intersection[T ordinal.Integer](a, b Stream[T]) Stream[T] {
	return NewComplement[T](Union2[T](NewComplement[T](a), NewComplement[T](b)))
}

// IntersectionK returns the intersection of any number of streams. The
// intersection of zero streams is the universe: every integer of T.
func IntersectionK[T ordinal.Integer](streams ...Stream[T]) Stream[T] {
	if len(streams) == 0 {
		return NewComplement[T](FromSlice[T](nil))
	}
	acc := streams[0]
	for _, s := range streams[1:] {
		acc = Intersection[T](acc, s)
	}
	return acc
}

// Difference returns A − B, defined as A ∩ ¬B.
func Difference[T ordinal.Integer](a, b Stream[T]) Stream[T] {
	return Intersection[T](a, NewComplement[T](b))
}

// endHeap is a min-heap of the end values of the ranges currently active
// in SymDiff's workspace: its size is how many inputs cover the sweep's
// current position.
type endHeap[T ordinal.Integer] []T

func (h endHeap[T]) Len() int           { return len(h) }
func (h endHeap[T]) Less(i, j int) bool { return h[i] < h[j] }
func (h endHeap[T]) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *endHeap[T]) Push(x any)        { *h = append(*h, x.(T)) }
func (h *endHeap[T]) Pop() any {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]
	return v
}

// SymDiff turns a sorted-starts stream (the output of Merge/KMerge, ranges
// may overlap) into a sorted-disjoint stream covering exactly the
// positions touched by an odd number of inputs — the n-way symmetric
// difference. It is a one-pass sweep: endHeap tracks the ends of whatever
// ranges are currently open so its size is always the live coverage
// count, and nothing from the input stream is ever retained past the
// point its range closes. Grounded on sym_diff_iter.rs.
type SymDiff[T ordinal.Integer] struct {
	in    Stream[T]
	start T

	endHeap endHeap[T]

	nextAgain    ranges.Range[T]
	hasNextAgain bool

	gather    ranges.Range[T]
	hasGather bool
}

// NewSymDiff wraps a sorted-starts stream.
func NewSymDiff[T ordinal.Integer](in Stream[T]) *SymDiff[T] {
	return &SymDiff[T]{in: in, start: ordinal.MinValue[T]()}
}

// SymmetricDifference is the two-stream symmetric difference: the n-way
// SymDiff over Merge(a,b).
func SymmetricDifference[T ordinal.Integer](a, b Stream[T]) Stream[T] {
	return NewSymDiff[T](NewMerge(a, b))
}

// SymmetricDifferenceK is the k-way symmetric difference: a position is
// in the output iff it is covered by an odd number of inputs.
func SymmetricDifferenceK[T ordinal.Integer](streams ...Stream[T]) Stream[T] {
	if len(streams) == 0 {
		return FromSlice[T](nil)
	}
	return NewSymDiff[T](NewKMerge(streams...))
}

// Next implements Stream.
func (d *SymDiff[T]) Next() (ranges.Range[T], bool) {
	for {
		count := d.endHeap.Len()

		var next ranges.Range[T]
		var hasNext bool
		if d.hasNextAgain {
			next, hasNext = d.nextAgain, true
			d.hasNextAgain = false
		} else {
			next, hasNext = d.in.Next()
		}

		if !hasNext {
			if count == 0 {
				if d.hasGather {
					d.hasGather = false
					return d.gather, true
				}
				return ranges.Range[T]{}, false
			}
			end := heap.Pop(&d.endHeap).(T)
			d.removeSameEnd(end)
			result := ranges.New(d.start, end)
			if d.endHeap.Len() != 0 {
				d.start = ordinal.AddOne(end)
			}
			if out, ok := d.process(count%2 == 1, result); ok {
				return out, true
			}
			continue
		}

		if count == 0 || d.start == next.Start {
			d.start = next.Start
			heap.Push(&d.endHeap, next.End)
			continue
		}

		end := d.endHeap[0]
		if next.Start <= end {
			result := ranges.New(d.start, ordinal.SubOne(next.Start))
			d.start = next.Start
			heap.Push(&d.endHeap, next.End)
			if out, ok := d.process(count%2 == 1, result); ok {
				return out, true
			}
			continue
		}

		d.removeSameEnd(end)
		result := ranges.New(d.start, end)
		if d.endHeap.Len() == 0 {
			d.start = next.Start
			heap.Push(&d.endHeap, next.End)
			if out, ok := d.process(count%2 == 1, result); ok {
				return out, true
			}
			continue
		}

		d.start = ordinal.AddOne(end)
		d.nextAgain, d.hasNextAgain = next, true
		if out, ok := d.process(count%2 == 1, result); ok {
			return out, true
		}
	}
}

// removeSameEnd pops every workspace entry whose end equals end: since
// end is always the current minimum, duplicates of it stay at the root
// until all of them are gone.
func (d *SymDiff[T]) removeSameEnd(end T) {
	for d.endHeap.Len() > 0 && d.endHeap[0] == end {
		heap.Pop(&d.endHeap)
	}
}

// process folds next into the pending gather chunk: dropped if keep is
// false, absorbed into gather if gather is empty or touches next, or
// flushed (replaced by next as the new gather) once a gap opens between
// them.
func (d *SymDiff[T]) process(keep bool, next ranges.Range[T]) (ranges.Range[T], bool) {
	if !keep {
		return ranges.Range[T]{}, false
	}
	if !d.hasGather {
		d.gather, d.hasGather = next, true
		return ranges.Range[T]{}, false
	}
	if touched, ok := ordinal.CheckedAddOne(d.gather.End); ok && touched == next.Start {
		d.gather.End = next.End
		return ranges.Range[T]{}, false
	}
	out := d.gather
	d.gather = next
	return out, true
}
