package graph

import (
	"github.com/atharv3903/busroute/internal/model"
	"github.com/atharv3903/busroute/internal/spatial"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// walkSlack absorbs float noise so that a pair exactly at the limit links.
const walkSlack = 1e-12

// linkWalks adds WALK edges between every pair of distinct stops no more
// than maxWalk apart, in both directions, without replacing existing edges.
// It returns the number of edges added.
func linkWalks(g *Graph, idx *spatial.StopIndex, maxWalk float64) int {
	if maxWalk <= 0 {
		return 0
	}
	added := 0
	seen := make(map[[2]int]struct{})

	for i := 0; i < idx.Len(); i++ {
		a := idx.Stop(i)
		for _, j := range idx.Around(a.Coord, maxWalk) {
			if j == i {
				continue
			}
			key := [2]int{min(i, j), max(i, j)}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}

			b := idx.Stop(j)
			d := planar.Distance(a.Coord, b.Coord)
			if d <= 0 || d > maxWalk+walkSlack {
				continue
			}

			ensureNode(g, a)
			ensureNode(g, b)
			if addWalk(g, a, b, d) {
				added++
			}
			if addWalk(g, b, a, d) {
				added++
			}
		}
	}
	return added
}

func addWalk(g *Graph, from, to model.Stop, d float64) bool {
	return g.AddEdge(Edge{
		From:     from.ID,
		To:       to.ID,
		Weight:   d,
		Labels:   []string{model.WalkLabel},
		Geometry: orb.LineString{from.Coord, to.Coord},
	})
}
