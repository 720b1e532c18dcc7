package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josestg/rangeblaze/internal/store"
	"github.com/josestg/rangeblaze/ranges"
)

func TestSetAddCoalescesOverlap(t *testing.T) {
	s := store.NewSet[int]()
	s.Add(ranges.New(1, 5))
	s.Add(ranges.New(3, 8))
	assert.Equal(t, 1, s.RangeCount())
	n, _ := s.Len().Uint64()
	assert.EqualValues(t, 8, n)
}

func TestSetAddTouchingMerges(t *testing.T) {
	s := store.NewSet[int]()
	s.Add(ranges.New(1, 5))
	s.Add(ranges.New(6, 10))
	assert.Equal(t, 1, s.RangeCount())
	r, ok := s.RangeContaining(7)
	require.True(t, ok)
	assert.Equal(t, ranges.New(1, 10), r)
}

func TestSetAddDisjointStaysApart(t *testing.T) {
	s := store.NewSet[int]()
	s.Add(ranges.New(1, 5))
	s.Add(ranges.New(10, 20))
	assert.Equal(t, 2, s.RangeCount())
	assert.False(t, s.Contains(7))
}

// A predecessor extension that lands on top of a farther-out, already
// disjoint entry must absorb it too, not just the entries it directly
// touches at its original boundary.
func TestSetAddExtensionAbsorbsFartherEntry(t *testing.T) {
	s := store.NewSet[int]()
	s.Add(ranges.New(1, 5))
	s.Add(ranges.New(10, 20))
	s.Add(ranges.New(4, 12))
	assert.Equal(t, 1, s.RangeCount())
	r, ok := s.RangeContaining(8)
	require.True(t, ok)
	assert.Equal(t, ranges.New(1, 20), r)
	n, _ := s.Len().Uint64()
	assert.EqualValues(t, 20, n)
}

func TestSetRemoveSplitsEntry(t *testing.T) {
	s := store.NewSet[int]()
	s.Add(ranges.New(1, 10))
	s.Remove(5)
	assert.Equal(t, 2, s.RangeCount())
	assert.False(t, s.Contains(5))
	assert.True(t, s.Contains(4))
	assert.True(t, s.Contains(6))
	n, _ := s.Len().Uint64()
	assert.EqualValues(t, 9, n)
}

func TestSetRemoveAtBoundary(t *testing.T) {
	s := store.NewSet[int]()
	s.Add(ranges.New(1, 10))
	s.Remove(1)
	assert.True(t, s.Contains(2))
	assert.False(t, s.Contains(1))
	r, ok := s.RangeContaining(2)
	require.True(t, ok)
	assert.Equal(t, ranges.New(2, 10), r)
}

func TestSetRemoveSingleton(t *testing.T) {
	s := store.NewSet[int]()
	s.Add(ranges.New(5, 5))
	s.Remove(5)
	assert.True(t, s.IsEmpty())
}

func TestSetSplitOffStraddlingEntry(t *testing.T) {
	s := store.NewSet[int]()
	s.Add(ranges.New(1, 20))
	right := s.SplitOff(10)
	assert.Equal(t, ranges.New(1, 9), mustRange(t, s, 5))
	assert.Equal(t, ranges.New(10, 20), mustRange(t, right, 15))
	leftLen, _ := s.Len().Uint64()
	rightLen, _ := right.Len().Uint64()
	assert.EqualValues(t, 9, leftLen)
	assert.EqualValues(t, 11, rightLen)
}

func TestSetSplitOffAtExactStart(t *testing.T) {
	s := store.NewSet[int]()
	s.Add(ranges.New(1, 3))
	s.Add(ranges.New(17, 17))
	s.Add(ranges.New(41, 41))
	right := s.SplitOff(17)
	assert.Equal(t, 1, s.RangeCount())
	assert.Equal(t, 2, right.RangeCount())
}

func TestSetCloneIsIndependent(t *testing.T) {
	s := store.NewSet[int]()
	s.Add(ranges.New(1, 5))
	c := s.Clone()
	s.Add(ranges.New(10, 15))
	assert.Equal(t, 1, c.RangeCount())
	assert.Equal(t, 2, s.RangeCount())
}

func TestSetAppendMovesAndClears(t *testing.T) {
	a := store.NewSet[int]()
	a.Add(ranges.New(1, 5))
	b := store.NewSet[int]()
	b.Add(ranges.New(6, 10))
	a.Append(b)
	assert.Equal(t, 1, a.RangeCount())
	assert.True(t, b.IsEmpty())
	n, _ := a.Len().Uint64()
	assert.EqualValues(t, 10, n)
}

func TestSetFirstLastAscendDescend(t *testing.T) {
	s := store.NewSet[int]()
	s.Add(ranges.New(10, 20))
	s.Add(ranges.New(1, 5))
	first, _ := s.First()
	last, _ := s.Last()
	assert.Equal(t, 1, first)
	assert.Equal(t, 20, last)

	var ascended []ranges.Range[int]
	s.Ascend(func(r ranges.Range[int]) bool {
		ascended = append(ascended, r)
		return true
	})
	assert.Equal(t, []ranges.Range[int]{ranges.New(1, 5), ranges.New(10, 20)}, ascended)

	var descended []ranges.Range[int]
	s.Descend(func(r ranges.Range[int]) bool {
		descended = append(descended, r)
		return true
	})
	assert.Equal(t, []ranges.Range[int]{ranges.New(10, 20), ranges.New(1, 5)}, descended)
}

func TestBuildSortedSetSkipsEmptyRanges(t *testing.T) {
	in := []ranges.Range[int]{ranges.New(5, 1), ranges.New(1, 5)}
	i := 0
	s := store.BuildSortedSet[int](func() (ranges.Range[int], bool) {
		if i >= len(in) {
			return ranges.Range[int]{}, false
		}
		r := in[i]
		i++
		return r, true
	})
	assert.Equal(t, 1, s.RangeCount())
}

func mustRange(t *testing.T, s *store.Set[int], at int) ranges.Range[int] {
	t.Helper()
	r, ok := s.RangeContaining(at)
	require.True(t, ok)
	return r
}

func TestMapAddOverwritesOverlapWithDifferingValue(t *testing.T) {
	m := store.NewMap[int, string]()
	m.Add(ranges.New(1, 10), "a")
	m.Add(ranges.New(5, 15), "b")

	v, ok := m.Get(4)
	require.True(t, ok)
	assert.Equal(t, "a", v)

	v, ok = m.Get(5)
	require.True(t, ok)
	assert.Equal(t, "b", v)

	v, ok = m.Get(15)
	require.True(t, ok)
	assert.Equal(t, "b", v)

	assert.Equal(t, 2, m.RangeCount())
}

func TestMapAddMergesSameValueTouching(t *testing.T) {
	m := store.NewMap[int, string]()
	m.Add(ranges.New(1, 5), "a")
	m.Add(ranges.New(6, 10), "a")
	assert.Equal(t, 1, m.RangeCount())
	rv, ok := m.RangeContaining(3)
	require.True(t, ok)
	assert.Equal(t, ranges.New(1, 10), rv.Range)
	assert.Equal(t, "a", rv.Val)
}

func TestMapAddKeepsTouchingDifferingValuesSeparate(t *testing.T) {
	m := store.NewMap[int, string]()
	m.Add(ranges.New(1, 5), "a")
	m.Add(ranges.New(6, 10), "b")
	assert.Equal(t, 2, m.RangeCount())
	v, _ := m.Get(5)
	assert.Equal(t, "a", v)
	v, _ = m.Get(6)
	assert.Equal(t, "b", v)
}

// Mirrors the Set regression above: an overwrite whose value differs from
// a farther-out, already-disjoint entry must still absorb that entry's
// overlapped portion, even though the value boundary it creates partway
// through is unrelated to it.
func TestMapAddExtensionAbsorbsFartherDifferingEntry(t *testing.T) {
	m := store.NewMap[int, string]()
	m.Add(ranges.New(1, 5), "a")
	m.Add(ranges.New(10, 20), "a")
	m.Add(ranges.New(4, 12), "b")

	v, ok := m.Get(1)
	require.True(t, ok)
	assert.Equal(t, "a", v)

	v, ok = m.Get(4)
	require.True(t, ok)
	assert.Equal(t, "b", v)

	v, ok = m.Get(12)
	require.True(t, ok)
	assert.Equal(t, "b", v)

	v, ok = m.Get(15)
	require.True(t, ok)
	assert.Equal(t, "a", v)

	assert.Equal(t, 3, m.RangeCount())
}

func TestMapRemoveSplitsEntry(t *testing.T) {
	m := store.NewMap[int, string]()
	m.Add(ranges.New(1, 10), "x")
	m.Remove(5)
	assert.Equal(t, 2, m.RangeCount())
	_, ok := m.Get(5)
	assert.False(t, ok)
	v, ok := m.Get(6)
	require.True(t, ok)
	assert.Equal(t, "x", v)
}

func TestMapSplitOffStraddlingEntry(t *testing.T) {
	m := store.NewMap[int, string]()
	m.Add(ranges.New(1, 20), "z")
	right := m.SplitOff(10)
	v, ok := m.Get(5)
	require.True(t, ok)
	assert.Equal(t, "z", v)
	_, ok = m.Get(10)
	assert.False(t, ok)
	v, ok = right.Get(10)
	require.True(t, ok)
	assert.Equal(t, "z", v)
}

func TestMapCloneIsIndependent(t *testing.T) {
	m := store.NewMap[int, string]()
	m.Add(ranges.New(1, 5), "a")
	c := m.Clone()
	m.Add(ranges.New(10, 15), "a")
	assert.Equal(t, 1, c.RangeCount())
	assert.Equal(t, 2, m.RangeCount())
}

func TestMapAppendMovesAndClears(t *testing.T) {
	a := store.NewMap[int, string]()
	a.Add(ranges.New(1, 5), "a")
	b := store.NewMap[int, string]()
	b.Add(ranges.New(6, 10), "a")
	a.Append(b)
	assert.Equal(t, 1, a.RangeCount())
	assert.True(t, b.IsEmpty())
}

func TestBuildSortedMapSkipsEmptyRanges(t *testing.T) {
	in := []ranges.Value[int, string]{
		ranges.NewValue(ranges.New(5, 1), "x"),
		ranges.NewValue(ranges.New(1, 5), "y"),
	}
	i := 0
	m := store.BuildSortedMap[int, string](func() (ranges.Value[int, string], bool) {
		if i >= len(in) {
			return ranges.Value[int, string]{}, false
		}
		rv := in[i]
		i++
		return rv, true
	})
	assert.Equal(t, 1, m.RangeCount())
	v, ok := m.Get(3)
	require.True(t, ok)
	assert.Equal(t, "y", v)
}
