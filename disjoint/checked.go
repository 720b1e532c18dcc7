package disjoint

import (
	"github.com/josestg/rangeblaze/internal/contract"
	"github.com/josestg/rangeblaze/ordinal"
	"github.com/josestg/rangeblaze/ranges"
)

// Checked wraps any Stream and panics the first time two consecutive
// ranges it yields are not sorted-disjoint: starts must strictly
// increase, and consecutive ranges must neither touch nor overlap.
// Grounded on check_sorted_disjoint.rs; this is the one adapter in this
// package that pays per-item validation, for callers at a trust boundary
// who want the invariant enforced rather than assumed.
type Checked[T ordinal.Integer] struct {
	inner   Stream[T]
	prev    ranges.Range[T]
	hasPrev bool
}

// NewChecked wraps s.
func NewChecked[T ordinal.Integer](s Stream[T]) *Checked[T] {
	return &Checked[T]{inner: s}
}

// Next implements Stream, panicking on a sorted-disjoint violation:
// treated as a programmer error rather than a recoverable one, since it
// means some upstream producer broke the contract this type exists to
// enforce.
func (c *Checked[T]) Next() (ranges.Range[T], bool) {
	r, ok := c.inner.Next()
	if !ok {
		return r, false
	}
	contract.Assertf(r.Start <= r.End, "disjoint: checked stream yielded empty range %s", r)
	if c.hasPrev {
		contract.Assertf(c.prev.Start < r.Start,
			"disjoint: checked stream starts not strictly increasing: %s then %s", c.prev, r)
		contract.Assertf(!c.prev.TouchesOrOverlaps(r),
			"disjoint: checked stream yielded touching/overlapping ranges: %s then %s", c.prev, r)
	}
	c.prev, c.hasPrev = r, true
	return r, true
}
