package graph

import (
	"sort"

	"github.com/atharv3903/busroute/internal/geo"
	"github.com/atharv3903/busroute/internal/spatial"
	"github.com/paulmach/orb"
)

// sideZero is the cross-product magnitude below which a stop is treated as
// lying on the route itself.
const sideZero = 1e-9

type candidate struct {
	pos  int // index into the stop index
	side float64
	t    float64 // projected distance along the route
}

// matchRoute finds the stops served by line and returns them in travel
// order. Stops on the opposite carriageway are dropped by keeping only the
// majority side, unless that would leave fewer than two stops.
func matchRoute(idx *spatial.StopIndex, line orb.LineString, p Params) []candidate {
	var cands []candidate
	for _, i := range idx.Search(line.Bound().Pad(p.MatchTolerance)) {
		pt := idx.Stop(i).Coord
		if geo.DistanceToLine(line, pt) >= p.MatchTolerance {
			continue
		}
		cands = append(cands, candidate{pos: i, side: geo.Side(line, pt, p.SideEpsilon)})
	}

	cands = filterSide(cands)
	for i := range cands {
		cands[i].t = geo.Project(line, idx.Stop(cands[i].pos).Coord)
	}
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].t < cands[j].t })
	return cands
}

func filterSide(cands []candidate) []candidate {
	pos, neg := 0, 0
	for _, c := range cands {
		switch {
		case c.side > sideZero:
			pos++
		case c.side < -sideZero:
			neg++
		}
	}
	if pos+neg == 0 {
		return cands
	}

	sign := 1.0
	if neg > pos {
		sign = -1
	}
	kept := make([]candidate, 0, len(cands))
	for _, c := range cands {
		if c.side*sign > sideZero {
			kept = append(kept, c)
		}
	}
	if len(kept) < 2 {
		return cands
	}
	return kept
}
