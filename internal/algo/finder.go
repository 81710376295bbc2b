package algo

import (
	"github.com/atharv3903/busroute/internal/graph"
	"github.com/atharv3903/busroute/internal/model"
)

// Path is a raw node sequence together with how it was found.
type Path struct {
	NodeIDs  []string
	Tier     string // model.TierDirect or model.TierWeighted
	Route    string // set for direct rides
	Total    float64
	Explored int
}

// Finder answers stop-name queries over one built graph. It holds no state
// between queries.
type Finder struct {
	G *graph.Graph
}

// Find resolves both queries to candidate nodes and returns, in order of
// preference, the shortest direct ride or the cheapest path over all
// candidate pairs. Errors are *model.NoMatchError or model.ErrNoPath.
func (f Finder) Find(startQuery, endQuery string) (Path, error) {
	starts := Resolve(f.G, startQuery)
	if len(starts) == 0 {
		return Path{}, &model.NoMatchError{Role: "start", Query: startQuery}
	}
	ends := Resolve(f.G, endQuery)
	if len(ends) == 0 {
		return Path{}, &model.NoMatchError{Role: "end", Query: endQuery}
	}

	if ride, ok := FindDirect(f.G, starts, ends); ok {
		return Path{
			NodeIDs: ride.StopIDs,
			Tier:    model.TierDirect,
			Route:   ride.Route,
			Total:   f.pathWeight(ride.StopIDs),
		}, nil
	}
	return f.cheapest(starts, ends)
}

func (f Finder) cheapest(starts, ends []string) (Path, error) {
	ctx := GraphCtx{G: f.G}
	var best Path
	found := false

	for _, s := range starts {
		for _, e := range ends {
			if s == e {
				continue
			}
			nodes, total, explored := Dijkstra(ctx, s, e, EdgeWeight)
			best.Explored += explored
			if nodes == nil {
				continue
			}
			if !found || total < best.Total {
				best.NodeIDs = nodes
				best.Total = total
				found = true
			}
		}
	}
	if !found {
		return Path{}, model.ErrNoPath
	}
	best.Tier = model.TierWeighted
	return best, nil
}

func (f Finder) pathWeight(ids []string) float64 {
	total := 0.0
	for i := 0; i+1 < len(ids); i++ {
		if e, ok := f.G.Edge(ids[i], ids[i+1]); ok {
			total += e.Weight
		}
	}
	return total
}
