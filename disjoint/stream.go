// Package disjoint implements the lazy, one-pass streaming algebra over
// sorted-disjoint range iterators: merge, union, complement, intersection,
// difference, and symmetric difference. Every operation here both
// consumes and produces a Stream, so they compose without ever
// materializing an intermediate container — that composability is the
// whole point of modeling these as pull-based iterators rather than
// slice-returning functions.
//
// A sorted-disjoint stream is any Stream whose successive ranges have
// strictly increasing starts and never touch or overlap. Nothing in this
// package checks that property on every call (that would defeat the
// point of a one-pass algorithm); Checked is the one adapter that does,
// for callers who want the guarantee enforced at a boundary.
package disjoint

import (
	"iter"

	"github.com/josestg/rangeblaze/ordinal"
	"github.com/josestg/rangeblaze/ranges"
)

// Stream is a pull-based iterator of ranges: call Next repeatedly until
// the second return value is false. This mirrors the classic Go iterator
// shape (bufio.Scanner, sql.Rows) rather than a push-based callback,
// because the algebra below needs to interleave pulls from more than one
// stream at a time.
type Stream[T ordinal.Integer] interface {
	Next() (ranges.Range[T], bool)
}

// StreamFunc adapts a plain function into a Stream.
type StreamFunc[T ordinal.Integer] func() (ranges.Range[T], bool)

// Next implements Stream.
func (f StreamFunc[T]) Next() (ranges.Range[T], bool) { return f() }

// Seq bridges a Stream into a Go 1.23 range-over-func sequence, the same
// convention josestg/dsa/sequence uses for its own iterators.
func Seq[T ordinal.Integer](s Stream[T]) iter.Seq[ranges.Range[T]] {
	return func(yield func(ranges.Range[T]) bool) {
		for {
			r, ok := s.Next()
			if !ok {
				return
			}
			if !yield(r) {
				return
			}
		}
	}
}

// FromSlice returns a Stream over a slice of ranges, in order, with no
// validation — the caller asserts they are already sorted-disjoint.
func FromSlice[T ordinal.Integer](rs []ranges.Range[T]) Stream[T] {
	i := 0
	return StreamFunc[T](func() (ranges.Range[T], bool) {
		if i >= len(rs) {
			return ranges.Range[T]{}, false
		}
		r := rs[i]
		i++
		return r, true
	})
}

// Collect drains a Stream into a slice. Mostly useful for tests and for
// feeding the bulk-construction bridges.
func Collect[T ordinal.Integer](s Stream[T]) []ranges.Range[T] {
	var out []ranges.Range[T]
	for {
		r, ok := s.Next()
		if !ok {
			return out
		}
		out = append(out, r)
	}
}

// Dyn erases the concrete type of a Stream so that heterogeneous stream
// types can be combined in one slice for a k-way operation, grounded on
// dyn_sorted_disjoint.rs.
type Dyn[T ordinal.Integer] struct {
	inner Stream[T]
}

// NewDyn wraps any Stream as a Dyn.
func NewDyn[T ordinal.Integer](s Stream[T]) Dyn[T] {
	return Dyn[T]{inner: s}
}

// Next implements Stream.
func (d Dyn[T]) Next() (ranges.Range[T], bool) { return d.inner.Next() }
