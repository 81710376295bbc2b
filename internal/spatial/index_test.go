package spatial

import (
	"testing"

	"github.com/atharv3903/busroute/internal/model"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func testStops() []model.Stop {
	return []model.Stop{
		{ID: "a", Name: "A", Coord: orb.Point{105.80, 21.02}},
		{ID: "b", Name: "B", Coord: orb.Point{105.81, 21.02}},
		{ID: "c", Name: "C", Coord: orb.Point{105.90, 21.10}},
		{ID: "d", Name: "D", Coord: orb.Point{105.805, 21.025}},
	}
}

func TestStopIndexSearch(t *testing.T) {
	idx := NewStopIndex(testStops())
	assert.Equal(t, 4, idx.Len())

	got := idx.Search(orb.Bound{Min: orb.Point{105.79, 21.01}, Max: orb.Point{105.811, 21.03}})
	assert.Equal(t, []int{0, 1, 3}, got)
	assert.Equal(t, "D", idx.Stop(got[2]).Name)

	assert.Empty(t, idx.Search(orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{1, 1}}))
}

func TestStopIndexAround(t *testing.T) {
	idx := NewStopIndex(testStops())

	assert.Equal(t, []int{0}, idx.Around(orb.Point{105.80, 21.02}, 0.001))
	assert.Equal(t, []int{0, 1, 3}, idx.Around(orb.Point{105.805, 21.02}, 0.006))
}

func TestStopIndexEmpty(t *testing.T) {
	idx := NewStopIndex(nil)
	assert.Equal(t, 0, idx.Len())
	assert.Empty(t, idx.Around(orb.Point{0, 0}, 10))
}
