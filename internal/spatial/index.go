package spatial

import (
	"slices"

	"github.com/atharv3903/busroute/internal/model"
	"github.com/paulmach/orb"
	"github.com/tidwall/rtree"
)

// StopIndex answers bounding-box range queries over a fixed stop set.
// Results are positions into the slice the index was built from.
type StopIndex struct {
	tree  rtree.RTreeG[int]
	stops []model.Stop
}

func NewStopIndex(stops []model.Stop) *StopIndex {
	idx := &StopIndex{stops: stops}
	// points are stored as degenerate boxes [lon, lat]
	for i, s := range stops {
		pt := [2]float64{s.Coord.Lon(), s.Coord.Lat()}
		idx.tree.Insert(pt, pt, i)
	}
	return idx
}

func (x *StopIndex) Len() int { return len(x.stops) }

func (x *StopIndex) Stop(i int) model.Stop { return x.stops[i] }

// Search returns the positions of all stops inside b, in ascending order so
// callers see stops in input order regardless of tree layout.
func (x *StopIndex) Search(b orb.Bound) []int {
	var out []int
	x.tree.Search(
		[2]float64{b.Min.Lon(), b.Min.Lat()},
		[2]float64{b.Max.Lon(), b.Max.Lat()},
		func(_, _ [2]float64, i int) bool {
			out = append(out, i)
			return true
		},
	)
	slices.Sort(out)
	return out
}

// Around returns the stops within a square of half-width r centred on p.
func (x *StopIndex) Around(p orb.Point, r float64) []int {
	return x.Search(orb.Bound{Min: p, Max: p}.Pad(r))
}
