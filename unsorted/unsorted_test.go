package unsorted_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/josestg/rangeblaze/ranges"
	"github.com/josestg/rangeblaze/unsorted"
)

func TestNormalizeMergesAdjacentArrivals(t *testing.T) {
	in := []ranges.Range[int]{
		ranges.New(10, 20),
		ranges.New(15, 25),
		ranges.New(100, 110),
	}
	got := unsorted.Normalize(unsorted.FromSlice(in))
	assert.Equal(t, []ranges.Range[int]{
		ranges.New(10, 25),
		ranges.New(100, 110),
	}, got)
}

func TestNormalizeDropsEmptyRanges(t *testing.T) {
	in := []ranges.Range[int]{
		ranges.New(5, 1), // empty: Start > End
		ranges.New(1, 2),
	}
	got := unsorted.Normalize(unsorted.FromSlice(in))
	assert.Equal(t, []ranges.Range[int]{ranges.New(1, 2)}, got)
}

func TestSortedDisjointDoesNotCoalesceNonAdjacentOverlap(t *testing.T) {
	// (10,20) and (15,25) overlap but (1,5) arrives between them, so
	// Normalize alone cannot merge them; this is exactly why
	// rangeset.FromRanges additionally runs disjoint.Union afterward.
	in := []ranges.Range[int]{
		ranges.New(10, 20),
		ranges.New(1, 5),
		ranges.New(15, 25),
	}
	got := unsorted.SortedDisjoint(unsorted.FromSlice(in))
	assert.Equal(t, []ranges.Range[int]{
		ranges.New(1, 5),
		ranges.New(10, 20),
		ranges.New(15, 25),
	}, got)
}

func TestNormalizeMapAssignsPriorityAndSortedStarts(t *testing.T) {
	in := []ranges.Value[int, string]{
		ranges.NewValue(ranges.New(10, 20), "a"),
		ranges.NewValue(ranges.New(1, 5), "b"),
	}
	got := unsorted.PrioritySortedStarts(unsorted.FromSliceMap(in))
	assert.Equal(t, []unsorted.PriorityItem[int, string]{
		{Range: ranges.New(1, 5), Val: "b", Priority: 1},
		{Range: ranges.New(10, 20), Val: "a", Priority: 0},
	}, got)
}

func TestNormalizeMapMergesSameValueTouching(t *testing.T) {
	in := []ranges.Value[int, string]{
		ranges.NewValue(ranges.New(1, 5), "a"),
		ranges.NewValue(ranges.New(6, 10), "a"),
	}
	got := unsorted.NormalizeMap(unsorted.FromSliceMap(in))
	assert.Equal(t, []unsorted.PriorityItem[int, string]{
		{Range: ranges.New(1, 10), Val: "a", Priority: 0},
	}, got)
}
