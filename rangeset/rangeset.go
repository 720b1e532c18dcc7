// Package rangeset implements RangeSet[T]: a set of integers stored as a
// sorted collection of disjoint, non-touching inclusive ranges. It is the
// container-level bridge between internal/store's range-coalescing
// B-tree and package disjoint's lazy streaming algebra.
//
// Grounded on josestg/dsa/sets.HashSet for the container shape (New,
// NewWith, Options, method naming) and on original_source/src/set.rs for
// operation semantics a plain hash set never needs (subset/superset/
// disjoint checks, split_off, extend-strategy crossover).
package rangeset

import (
	"fmt"
	"iter"
	"strings"

	"github.com/josestg/rangeblaze/disjoint"
	"github.com/josestg/rangeblaze/internal/store"
	"github.com/josestg/rangeblaze/ordinal"
	"github.com/josestg/rangeblaze/ranges"
	"github.com/josestg/rangeblaze/sequence"
	"github.com/josestg/rangeblaze/unsorted"
)

// Options configures construction. Its only tunable is the extend-strategy
// crossover: merging a smaller container into a larger one can either
// Internal-add each of the smaller side's ranges, or re-run Union and
// rebuild from scratch. ExtendCrossover overrides the default formula
// (`sizeB*log2(sizeA) < sizeA+sizeB`); leave it nil to use the default.
// Grounded on hashmap.Options[E]'s shape.
type Options[T ordinal.Integer] struct {
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

// RangeSet is a set of integers of type T, coalesced into disjoint,
// non-touching ranges.
type RangeSet[T ordinal.Integer] struct {
	s         *store.Set[T]
	crossover func(sizeA, sizeB int) bool
}

// New returns an empty RangeSet with default options.
func New[T ordinal.Integer]() *RangeSet[T] {
	return NewWith[T](Options[T]{})
}

// NewWith returns an empty RangeSet configured by opts.
func NewWith[T ordinal.Integer](opts Options[T]) *RangeSet[T] {
	crossover := opts.ExtendCrossover
	if crossover == nil {
		crossover = defaultCrossover
	}
	return &RangeSet[T]{s: store.NewSet[T](), crossover: crossover}
}

// FromRanges bulk-builds a RangeSet from arbitrary, possibly unsorted,
// possibly overlapping, possibly empty ranges.
// unsorted.SortedDisjoint only coalesces ranges that were already adjacent
// in arrival order and then sorts by start — two ranges that overlap but
// arrived with something else in between stay as separate, still-
// overlapping entries after that sort. disjoint.Union is what actually
// establishes disjointness regardless of arrival order, so it always runs
// over the sorted-starts result before anything reaches the store.
func FromRanges[T ordinal.Integer](rs ...ranges.Range[T]) *RangeSet[T] {
	sorted := unsorted.SortedDisjoint(unsorted.FromSlice(rs))
	return FromStream[T](disjoint.NewUnion[T](disjoint.FromSlice(sorted)))
}

// FromStream bulk-builds a RangeSet directly from an already
// sorted-disjoint stream, skipping Internal-add's predecessor search
// entirely — the fast path for bulk construction.
func FromStream[T ordinal.Integer](in disjoint.Stream[T]) *RangeSet[T] {
	return &RangeSet[T]{s: store.BuildSortedSet[T](in.Next), crossover: defaultCrossover}
}

// Stream exposes the set's ranges as a disjoint.Stream, so it composes
// with the rest of the algebra. The ranges are copied into a slice when
// Stream is called, and the stream reads from that copy.
func (s *RangeSet[T]) Stream() disjoint.Stream[T] {
	var rs []ranges.Range[T]
	s.s.Ascend(func(r ranges.Range[T]) bool {
		rs = append(rs, r)
		return true
	})
	return disjoint.FromSlice(rs)
}

// IsEmpty reports whether the set holds no integers.
func (s *RangeSet[T]) IsEmpty() bool { return s.s.IsEmpty() }

// Len returns the total count of integers stored.
func (s *RangeSet[T]) Len() ordinal.Len { return s.s.Len() }

// RangeCount returns the number of disjoint ranges stored.
func (s *RangeSet[T]) RangeCount() int { return s.s.RangeCount() }

// Contains reports whether x is a member.
func (s *RangeSet[T]) Contains(x T) bool { return s.s.Contains(x) }

// First returns the smallest member.
func (s *RangeSet[T]) First() (T, bool) { return s.s.First() }

// Last returns the largest member.
func (s *RangeSet[T]) Last() (T, bool) { return s.s.Last() }

// RangeContaining returns the stored range containing x, if any.
func (s *RangeSet[T]) RangeContaining(x T) (ranges.Range[T], bool) { return s.s.RangeContaining(x) }

// Ranges iterates every stored range in increasing order of start.
func (s *RangeSet[T]) Ranges() iter.Seq[ranges.Range[T]] {
	return func(yield func(ranges.Range[T]) bool) {
		s.s.Ascend(yield)
	}
}

// Elements iterates every stored integer in increasing order. Iterating a
// set near T's maximum value is still safe: the loop stops at each range's
// end before advancing, and advances with the saturating AddOne.
func (s *RangeSet[T]) Elements() iter.Seq[T] {
	return func(yield func(T) bool) {
		s.s.Ascend(func(r ranges.Range[T]) bool {
			x := r.Start
			for {
				if !yield(x) {
					return false
				}
				if x == r.End {
					return true
				}
				x = ordinal.AddOne(x)
			}
		})
	}
}

// Window iterates every stored range clipped to [lo,hi].
func (s *RangeSet[T]) Window(lo, hi T) iter.Seq[ranges.Range[T]] {
	return func(yield func(ranges.Range[T]) bool) {
		if lo > hi {
			return
		}
		s.s.Ascend(func(r ranges.Range[T]) bool {
			if r.End < lo {
				return true
			}
			if r.Start > hi {
				return false
			}
			clipLo, clipHi := r.Start, r.End
			if clipLo < lo {
				clipLo = lo
			}
			if clipHi > hi {
				clipHi = hi
			}
			return yield(ranges.New(clipLo, clipHi))
		})
	}
}

// IsSubsetOf reports whether every member of s is a member of other:
// s ∖ other is empty.
func (s *RangeSet[T]) IsSubsetOf(other *RangeSet[T]) bool {
	return Difference[T](s, other).IsEmpty()
}

// IsSupersetOf reports whether every member of other is a member of s.
func (s *RangeSet[T]) IsSupersetOf(other *RangeSet[T]) bool {
	return other.IsSubsetOf(s)
}

// IsDisjointFrom reports whether s and other share no member.
func (s *RangeSet[T]) IsDisjointFrom(other *RangeSet[T]) bool {
	return Intersection[T](s, other).IsEmpty()
}

// InsertInt inserts the single integer x.
func (s *RangeSet[T]) InsertInt(x T) { s.s.Add(ranges.New(x, x)) }

// RemoveInt removes the single integer x.
func (s *RangeSet[T]) RemoveInt(x T) { s.s.Remove(x) }

// InsertRange inserts every integer in r, coalescing with whatever
// neighbors already touch or overlap it.
func (s *RangeSet[T]) InsertRange(r ranges.Range[T]) { s.s.Add(r) }

// Clear removes every member.
func (s *RangeSet[T]) Clear() { s.s.Clear() }

// Clone returns an independent copy.
func (s *RangeSet[T]) Clone() *RangeSet[T] {
	return &RangeSet[T]{s: s.s.Clone(), crossover: s.crossover}
}

// SplitOff partitions the set at k: s keeps every member < k, and the
// returned set holds every member >= k.
func (s *RangeSet[T]) SplitOff(k T) *RangeSet[T] {
	return &RangeSet[T]{s: s.s.SplitOff(k), crossover: s.crossover}
}

// RetainFunc rebuilds the set keeping only integers for which keep
// returns true. Rebuilt via the bulk-construction bridge rather than
// mutated in place, since a predicate can un-coalesce any range (spec
// section 6.2, "retain-by-predicate").
func (s *RangeSet[T]) RetainFunc(keep func(x T) bool) {
	var kept []ranges.Range[T]
	s.s.Ascend(func(r ranges.Range[T]) bool {
		var runStart T
		inRun := false
		x := r.Start
		for {
			if keep(x) {
				if !inRun {
					runStart, inRun = x, true
				}
			} else if inRun {
				kept = append(kept, ranges.New(runStart, ordinal.SubOne(x)))
				inRun = false
			}
			if x == r.End {
				break
			}
			x = ordinal.AddOne(x)
		}
		if inRun {
			kept = append(kept, ranges.New(runStart, r.End))
		}
		return true
	})
	s.s = store.BuildSortedSet[T](disjoint.FromSlice(kept).Next)
}

// Append moves every member of other into s and clears other (spec
// section 6.2, "append another container").
func (s *RangeSet[T]) Append(other *RangeSet[T]) {
	s.s.Append(other.s)
}

// ExtendFrom merges other into s using the cheaper of Internal-add-each-
// range or rebuild-via-union. Unlike Append, it does not clear other.
func (s *RangeSet[T]) ExtendFrom(other *RangeSet[T]) {
	sizeA, sizeB := s.s.RangeCount(), other.s.RangeCount()
	if s.crossover(sizeA, sizeB) {
		other.s.Ascend(func(r ranges.Range[T]) bool {
			s.s.Add(r)
			return true
		})
		return
	}
	merged := FromStream[T](disjoint.Union2[T](s.Stream(), other.Stream()))
	s.s = merged.s
}

// String renders the set as "s1..=e1, s2..=e2, …".
func (s *RangeSet[T]) String() string {
	var b strings.Builder
	for i, r := range sequence.Enum(disjoint.Seq[T](s.Stream())) {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s", r)
	}
	return b.String()
}
