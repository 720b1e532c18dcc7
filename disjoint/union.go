package disjoint

import (
	"github.com/josestg/rangeblaze/ordinal"
	"github.com/josestg/rangeblaze/ranges"
)

// Union turns a sorted-starts stream (starts non-decreasing, ranges may
// overlap — the output of Merge/KMerge) into a sorted-disjoint stream of
// the union: every integer in any input range, coalesced wherever ranges
// touch or overlap. Grounded on union_iter.rs.
type Union[T ordinal.Integer] struct {
	in         Stream[T]
	cur        ranges.Range[T]
	hasCur     bool
	done       bool
}

// NewUnion wraps a sorted-starts stream.
func NewUnion[T ordinal.Integer](in Stream[T]) *Union[T] {
	return &Union[T]{in: in}
}

// Next implements Stream.
func (u *Union[T]) Next() (ranges.Range[T], bool) {
	if u.done {
		return ranges.Range[T]{}, false
	}
	for {
		next, ok := u.in.Next()
		if !ok {
			if u.hasCur {
				u.hasCur = false
				u.done = true
				return u.cur, true
			}
			u.done = true
			return ranges.Range[T]{}, false
		}
		if !u.hasCur {
			u.cur, u.hasCur = next, true
			continue
		}
		if touchesOrOverlapsSaturating(u.cur, next) {
			if next.End > u.cur.End {
				u.cur.End = next.End
			}
			continue
		}
		out := u.cur
		u.cur = next
		return out, true
	}
}

// touchesOrOverlapsSaturating reports whether b (whose start is >= a's
// start, from a sorted-starts stream) touches or overlaps a, using
// saturating arithmetic so a range ending at T's maximum never wraps into
// a false "touch".
func touchesOrOverlapsSaturating[T ordinal.Integer](a, b ranges.Range[T]) bool {
	next, ok := ordinal.CheckedAddOne(a.End)
	return b.Start <= a.End || (ok && b.Start <= next)
}

// Union2 is the convenience two-stream union: Union(Merge(a,b)).
func Union2[T ordinal.Integer](a, b Stream[T]) *Union[T] {
	return NewUnion[T](NewMerge(a, b))
}

// UnionK is the convenience k-way union: Union(KMerge(streams...)).
func UnionK[T ordinal.Integer](streams ...Stream[T]) *Union[T] {
	return NewUnion[T](NewKMerge(streams...))
}
