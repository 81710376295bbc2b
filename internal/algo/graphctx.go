package algo

import "github.com/atharv3903/busroute/internal/graph"

// GraphCtx is the read-only view the search algorithms walk.
type GraphCtx struct {
	G *graph.Graph
}

func (g GraphCtx) Neighbors(n string) []*graph.Edge {
	return g.G.Out(n)
}

// EdgeWeight is the default cost: the edge's stored distance proxy.
func EdgeWeight(e *graph.Edge) float64 { return e.Weight }
