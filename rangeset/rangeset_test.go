package rangeset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josestg/rangeblaze/ranges"
	"github.com/josestg/rangeblaze/rangeset"
)

func TestInsertCoalescesOverlap(t *testing.T) {
	s := rangeset.New[int]()
	s.InsertRange(ranges.New(1, 5))
	s.InsertRange(ranges.New(3, 8))
	assert.Equal(t, 1, s.RangeCount())
	assert.True(t, s.Contains(6))
	n, ok := s.Len().Uint64()
	require.True(t, ok)
	assert.EqualValues(t, 8, n)
}

func TestInsertAdjacentMerges(t *testing.T) {
	s := rangeset.New[int]()
	s.InsertRange(ranges.New(1, 5))
	s.InsertRange(ranges.New(6, 10))
	assert.Equal(t, 1, s.RangeCount())
	assert.Equal(t, "1..=10", s.String())
}

func TestFromRangesUnsortedOverlapping(t *testing.T) {
	s := rangeset.FromRanges(
		ranges.New(10, 20),
		ranges.New(1, 5),
		ranges.New(15, 25),
	)
	assert.Equal(t, "1..=5, 10..=25", s.String())
}

func TestUnionIntersectionDifference(t *testing.T) {
	a := rangeset.FromRanges(ranges.New(1, 10))
	b := rangeset.FromRanges(ranges.New(5, 15))

	assert.Equal(t, "1..=15", rangeset.Union(a, b).String())
	assert.Equal(t, "5..=10", rangeset.Intersection(a, b).String())
	assert.Equal(t, "1..=4", rangeset.Difference(a, b).String())
	assert.Equal(t, "1..=4, 11..=15", rangeset.SymmetricDifference(a, b).String())
}

func TestSplitOff(t *testing.T) {
	s := rangeset.FromRanges[int](ranges.New(1, 3), ranges.New(17, 17), ranges.New(41, 41))
	right := s.SplitOff(4)
	leftLen, _ := s.Len().Uint64()
	rightLen, _ := right.Len().Uint64()
	assert.EqualValues(t, 3, leftLen)
	assert.EqualValues(t, 2, rightLen)
	assert.Equal(t, "1..=3", s.String())
	assert.Equal(t, "17..=17, 41..=41", right.String())
}

func TestSubsetSupersetDisjoint(t *testing.T) {
	whole := rangeset.FromRanges(ranges.New(1, 10))
	part := rangeset.FromRanges(ranges.New(2, 5))
	elsewhere := rangeset.FromRanges(ranges.New(100, 110))

	assert.True(t, part.IsSubsetOf(whole))
	assert.True(t, whole.IsSupersetOf(part))
	assert.True(t, whole.IsDisjointFrom(elsewhere))
	assert.False(t, whole.IsDisjointFrom(part))
}

func TestWindow(t *testing.T) {
	s := rangeset.FromRanges(ranges.New(1, 10), ranges.New(20, 30))
	var got []ranges.Range[int]
	for r := range s.Window(5, 25) {
		got = append(got, r)
	}
	assert.Equal(t, []ranges.Range[int]{ranges.New(5, 10), ranges.New(20, 25)}, got)
}

func TestRetainFunc(t *testing.T) {
	s := rangeset.FromRanges(ranges.New(1, 10))
	s.RetainFunc(func(x int) bool { return x%2 == 0 })
	assert.Equal(t, "2..=2, 4..=4, 6..=6, 8..=8, 10..=10", s.String())
}

func TestComplement(t *testing.T) {
	s := rangeset.FromRanges[uint8](ranges.New[uint8](10, 20))
	c := rangeset.Complement(s)
	assert.Equal(t, "0..=9, 21..=255", c.String())
}
