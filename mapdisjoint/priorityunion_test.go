package mapdisjoint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/josestg/rangeblaze/mapdisjoint"
	"github.com/josestg/rangeblaze/ranges"
	"github.com/josestg/rangeblaze/unsorted"
)

func collectAll(u *mapdisjoint.PriorityUnion[int, string]) []ranges.Value[int, string] {
	var out []ranges.Value[int, string]
	for {
		rv, ok := u.Next()
		if !ok {
			return out
		}
		out = append(out, rv)
	}
}

func TestPriorityUnion_NoOverlap(t *testing.T) {
	items := []unsorted.PriorityItem[int, string]{
		{Range: ranges.New(1, 3), Val: "a", Priority: 0},
		{Range: ranges.New(5, 8), Val: "b", Priority: 1},
	}
	u := mapdisjoint.NewPriorityUnion[int, string](mapdisjoint.FromPriorityItems(items))
	got := collectAll(u)
	assert.Equal(t, []ranges.Value[int, string]{
		ranges.NewValue(ranges.New(1, 3), "a"),
		ranges.NewValue(ranges.New(5, 8), "b"),
	}, got)
}

func TestPriorityUnion_LaterWinsOnOverlap(t *testing.T) {
	items := []unsorted.PriorityItem[int, string]{
		{Range: ranges.New(1, 10), Val: "a", Priority: 0},
		{Range: ranges.New(5, 15), Val: "b", Priority: 1},
	}
	u := mapdisjoint.NewPriorityUnion[int, string](mapdisjoint.FromPriorityItems(items))
	got := collectAll(u)
	assert.Equal(t, []ranges.Value[int, string]{
		ranges.NewValue(ranges.New(1, 4), "a"),
		ranges.NewValue(ranges.New(5, 15), "b"),
	}, got)
}

func TestPriorityUnion_EarlierWrapsAround(t *testing.T) {
	// The earlier, lower-priority item covers a wider span than the later
	// one, which only beats it in the middle.
	items := []unsorted.PriorityItem[int, string]{
		{Range: ranges.New(1, 20), Val: "a", Priority: 0},
		{Range: ranges.New(5, 10), Val: "b", Priority: 1},
	}
	u := mapdisjoint.NewPriorityUnion[int, string](mapdisjoint.FromPriorityItems(items))
	got := collectAll(u)
	assert.Equal(t, []ranges.Value[int, string]{
		ranges.NewValue(ranges.New(1, 4), "a"),
		ranges.NewValue(ranges.New(5, 10), "b"),
		ranges.NewValue(ranges.New(11, 20), "a"),
	}, got)
}

func TestPriorityUnion_TouchingSameValueFuses(t *testing.T) {
	items := []unsorted.PriorityItem[int, string]{
		{Range: ranges.New(1, 5), Val: "a", Priority: 0},
		{Range: ranges.New(6, 10), Val: "a", Priority: 1},
	}
	u := mapdisjoint.NewPriorityUnion[int, string](mapdisjoint.FromPriorityItems(items))
	got := collectAll(u)
	assert.Equal(t, []ranges.Value[int, string]{
		ranges.NewValue(ranges.New(1, 10), "a"),
	}, got)
}
