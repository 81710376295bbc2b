package graph

import (
	"fmt"

	"github.com/atharv3903/busroute/internal/geo"
	"github.com/atharv3903/busroute/internal/model"
	"github.com/atharv3903/busroute/internal/spatial"
	"go.uber.org/zap"
)

// Params are the spatial thresholds used while building, all in coordinate
// units.
type Params struct {
	MatchTolerance float64 // max stop-to-line distance, exclusive
	SideEpsilon    float64 // tangent probe half-width
	MaxWalk        float64 // max walking link length, inclusive; 0 disables
}

// Report summarizes one build.
type Report struct {
	Routes    int
	Used      int
	Skipped   []*model.GeometryError
	BusEdges  int
	WalkEdges int
}

// Build infers the stop graph from the stops held by idx and the route
// geometries. It does not modify its inputs and returns a fresh graph each
// call; routes that cannot be used are reported and skipped.
func Build(idx *spatial.StopIndex, routes []model.RouteGeometry, p Params, logger *zap.Logger) (*Graph, Report) {
	if logger == nil {
		logger = zap.NewNop()
	}
	g := New()
	rep := Report{Routes: len(routes)}

	for _, r := range routes {
		if gerr := addRoute(g, idx, r, p); gerr != nil {
			rep.Skipped = append(rep.Skipped, gerr)
			logger.Warn("route skipped",
				zap.String("route_id", r.ID),
				zap.String("route", r.Name),
				zap.String("reason", gerr.Reason))
			continue
		}
		rep.Used++
	}

	rep.BusEdges = g.EdgeCount()
	rep.WalkEdges = linkWalks(g, idx, p.MaxWalk)

	logger.Info("graph built",
		zap.Int("nodes", g.NodeCount()),
		zap.Int("edges", g.EdgeCount()),
		zap.Int("walk_edges", rep.WalkEdges),
		zap.Int("routes_used", rep.Used),
		zap.Int("routes_skipped", len(rep.Skipped)))
	return g, rep
}

func addRoute(g *Graph, idx *spatial.StopIndex, r model.RouteGeometry, p Params) *model.GeometryError {
	line, err := geo.Normalize(r.Parts)
	if err != nil {
		return &model.GeometryError{RouteID: r.ID, Route: r.Name, Reason: err.Error()}
	}

	matched := matchRoute(idx, line, p)
	if len(matched) < 2 {
		return &model.GeometryError{
			RouteID: r.ID,
			Route:   r.Name,
			Reason:  fmt.Sprintf("matched %d stops, need at least 2", len(matched)),
		}
	}

	ids := make([]string, len(matched))
	for i, m := range matched {
		ids[i] = idx.Stop(m.pos).ID
	}
	g.AddRoute(RouteStops{Route: r.Name, StopIDs: ids})

	for i := 0; i+1 < len(matched); i++ {
		a, b := matched[i], matched[i+1]
		from, to := idx.Stop(a.pos), idx.Stop(b.pos)
		ensureNode(g, from)
		ensureNode(g, to)

		if g.AddLabel(from.ID, to.ID, r.Name) {
			continue
		}
		g.AddEdge(Edge{
			From:     from.ID,
			To:       to.ID,
			Weight:   b.t - a.t,
			Labels:   []string{r.Name},
			Geometry: geo.Substring(line, a.t, b.t),
		})
	}
	return nil
}

func ensureNode(g *Graph, s model.Stop) {
	g.AddNode(Node{ID: s.ID, Name: s.Name, Coord: s.Coord})
}
