package mapdisjoint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/josestg/rangeblaze/disjoint"
	"github.com/josestg/rangeblaze/mapdisjoint"
	"github.com/josestg/rangeblaze/ranges"
)

func TestMaskIntersect(t *testing.T) {
	m := mapStreamOf(
		ranges.NewValue(ranges.New(1, 10), "a"),
		ranges.NewValue(ranges.New(20, 30), "b"),
	)
	mask := disjoint.FromSlice([]ranges.Range[int]{
		ranges.New(5, 8),
		ranges.New(25, 40),
	})
	got := mapdisjoint.CollectMap[int, string](mapdisjoint.NewMaskIntersect[int, string](m, mask))
	assert.Equal(t, []ranges.Value[int, string]{
		ranges.NewValue(ranges.New(5, 8), "a"),
		ranges.NewValue(ranges.New(25, 30), "b"),
	}, got)
}
