package algo

import "github.com/atharv3903/busroute/internal/graph"

// DirectRide is a trip that stays on one route from boarding to alighting.
type DirectRide struct {
	Route   string
	StopIDs []string
}

// FindDirect looks for a single route that visits some start before some
// end. Among all such rides the one with the fewest stops wins; on a tie the
// first one found (starts, then ends, then routes in build order) is kept.
func FindDirect(g *graph.Graph, starts, ends []string) (DirectRide, bool) {
	var best DirectRide
	found := false

	for _, s := range starts {
		for _, e := range ends {
			if s == e {
				continue
			}
			for _, r := range g.Routes() {
				is := r.IndexOf(s)
				if is < 0 {
					continue
				}
				ie := r.IndexOf(e)
				if ie <= is {
					continue
				}
				stops := r.StopIDs[is : ie+1]
				if !found || len(stops) < len(best.StopIDs) {
					best = DirectRide{Route: r.Route, StopIDs: stops}
					found = true
				}
			}
		}
	}
	return best, found
}
