package disjoint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/josestg/rangeblaze/disjoint"
	"github.com/josestg/rangeblaze/ranges"
)

func rs(prs ...[2]int) []ranges.Range[int] {
	out := make([]ranges.Range[int], len(prs))
	for i, pr := range prs {
		out[i] = ranges.New(pr[0], pr[1])
	}
	return out
}

func TestUnionCoalescesOverlapAndTouch(t *testing.T) {
	a := disjoint.FromSlice(rs([2]int{1, 5}, [2]int{10, 20}))
	b := disjoint.FromSlice(rs([2]int{3, 12}, [2]int{21, 25}))
	got := disjoint.Collect[int](disjoint.Union2[int](a, b))
	assert.Equal(t, rs([2]int{1, 25}), got)
}

func TestUnionKDisjointStreamsStayApart(t *testing.T) {
	a := disjoint.FromSlice(rs([2]int{1, 2}))
	b := disjoint.FromSlice(rs([2]int{10, 12}))
	c := disjoint.FromSlice(rs([2]int{20, 22}))
	got := disjoint.Collect[int](disjoint.UnionK[int](a, b, c))
	assert.Equal(t, rs([2]int{1, 2}, [2]int{10, 12}, [2]int{20, 22}), got)
}

func TestComplementOverFullRange(t *testing.T) {
	in := disjoint.FromSlice([]ranges.Range[int8]{ranges.New[int8](10, 20)})
	got := disjoint.Collect[int8](disjoint.NewComplement[int8](in))
	want := []ranges.Range[int8]{
		ranges.New[int8](-128, 9),
		ranges.New[int8](21, 127),
	}
	assert.Equal(t, want, got)
}

func TestIntersection(t *testing.T) {
	a := disjoint.FromSlice(rs([2]int{1, 10}))
	b := disjoint.FromSlice(rs([2]int{5, 15}))
	got := disjoint.Collect[int](disjoint.Intersection[int](a, b))
	assert.Equal(t, rs([2]int{5, 10}), got)
}

func TestDifference(t *testing.T) {
	a := disjoint.FromSlice(rs([2]int{1, 10}))
	b := disjoint.FromSlice(rs([2]int{5, 15}))
	got := disjoint.Collect[int](disjoint.Difference[int](a, b))
	assert.Equal(t, rs([2]int{1, 4}), got)
}

func TestSymmetricDifference(t *testing.T) {
	a := disjoint.FromSlice(rs([2]int{1, 10}))
	b := disjoint.FromSlice(rs([2]int{5, 15}))
	got := disjoint.Collect[int](disjoint.SymmetricDifference[int](a, b))
	assert.Equal(t, rs([2]int{1, 4}, [2]int{11, 15}), got)
}

func TestSymmetricDifferenceKWayOddCoverage(t *testing.T) {
	a := disjoint.FromSlice(rs([2]int{1, 10}))
	b := disjoint.FromSlice(rs([2]int{1, 10}))
	c := disjoint.FromSlice(rs([2]int{1, 10}))
	got := disjoint.Collect[int](disjoint.SymmetricDifferenceK[int](a, b, c))
	assert.Equal(t, rs([2]int{1, 10}), got)
}

func TestIntersectionKEmptyIsUniverse(t *testing.T) {
	got := disjoint.IntersectionK[int8]()
	n := 0
	for {
		_, ok := got.Next()
		if !ok {
			break
		}
		n++
	}
	assert.Equal(t, 1, n)
}
