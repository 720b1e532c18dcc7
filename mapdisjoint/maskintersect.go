package mapdisjoint

import (
	"github.com/josestg/rangeblaze/disjoint"
	"github.com/josestg/rangeblaze/ordinal"
	"github.com/josestg/rangeblaze/ranges"
)

// MaskIntersect clips a sorted-disjoint map stream down to the positions
// also covered by a sorted-disjoint set stream, a two-pointer walk over
// both inputs at once.
type MaskIntersect[T ordinal.Integer, V comparable] struct {
	mapIn  MapStream[T, V]
	maskIn disjoint.Stream[T]

	curMap  ranges.Value[T, V]
	hasMap  bool
	curMask ranges.Range[T]
	hasMask bool
}

// NewMaskIntersect wraps a map stream and a set stream.
func NewMaskIntersect[T ordinal.Integer, V comparable](mapIn MapStream[T, V], maskIn disjoint.Stream[T]) *MaskIntersect[T, V] {
	return &MaskIntersect[T, V]{mapIn: mapIn, maskIn: maskIn}
}

// Next implements MapStream.
func (m *MaskIntersect[T, V]) Next() (ranges.Value[T, V], bool) {
	for {
		if !m.hasMap {
			m.curMap, m.hasMap = m.mapIn.Next()
			if !m.hasMap {
				return ranges.Value[T, V]{}, false
			}
		}
		if !m.hasMask {
			m.curMask, m.hasMask = m.maskIn.Next()
			if !m.hasMask {
				return ranges.Value[T, V]{}, false
			}
		}

		lo := m.curMap.Range.Start
		if m.curMask.Start > lo {
			lo = m.curMask.Start
		}
		hi := m.curMap.Range.End
		if m.curMask.End < hi {
			hi = m.curMask.End
		}

		if lo > hi {
			if m.curMap.Range.End < m.curMask.Start {
				m.hasMap = false
			} else {
				m.hasMask = false
			}
			continue
		}

		out := ranges.NewValue(ranges.New(lo, hi), m.curMap.Val)

		if m.curMap.Range.End > hi {
			m.curMap.Range.Start = ordinal.AddOne(hi)
		} else {
			m.hasMap = false
		}
		if m.curMask.End > hi {
			m.curMask.Start = ordinal.AddOne(hi)
		} else {
			m.hasMask = false
		}
		return out, true
	}
}
