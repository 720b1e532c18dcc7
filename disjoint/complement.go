package disjoint

import (
	"github.com/josestg/rangeblaze/ordinal"
	"github.com/josestg/rangeblaze/ranges"
)

// Complement turns a sorted-disjoint stream into a sorted-disjoint stream
// of its complement: every integer not covered by the input, walking from
// T's minimum value up through the gaps between consecutive input
// ranges and finally to T's safe maximum. Grounded on not_iter.rs.
//
// Complementing an unbounded-looking stream like this is always finite:
// the domain itself (every value of T) is finite, so there are at most
// len(input)+1 gaps to emit.
type Complement[T ordinal.Integer] struct {
	in       Stream[T]
	startNot T
	done     bool
}

// NewComplement wraps a sorted-disjoint stream.
func NewComplement[T ordinal.Integer](in Stream[T]) *Complement[T] {
	return &Complement[T]{in: in, startNot: ordinal.MinValue[T]()}
}

// Next implements Stream.
func (c *Complement[T]) Next() (ranges.Range[T], bool) {
	if c.done {
		return ranges.Range[T]{}, false
	}
	for {
		next, ok := c.in.Next()
		if !ok {
			c.done = true
			return ranges.New(c.startNot, ordinal.SafeMaxValue[T]()), true
		}
		if c.startNot < next.Start {
			gap := ranges.New(c.startNot, ordinal.SubOne(next.Start))
			if next.End < ordinal.SafeMaxValue[T]() {
				c.startNot = ordinal.AddOne(next.End)
			} else {
				c.done = true
			}
			return gap, true
		}
		if next.End < ordinal.SafeMaxValue[T]() {
			c.startNot = ordinal.AddOne(next.End)
			continue
		}
		c.done = true
		return ranges.Range[T]{}, false
	}
}
