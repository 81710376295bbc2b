package algo

import (
	"testing"

	"github.com/atharv3903/busroute/internal/graph"
	"github.com/atharv3903/busroute/internal/model"
	"github.com/atharv3903/busroute/internal/spatial"
	"github.com/paulmach/orb"
	"go.uber.org/zap/zaptest"
)

var testParams = graph.Params{
	MatchTolerance: 0.0003,
	SideEpsilon:    0.0001,
	MaxWalk:        120.0 / 111000,
}

func edge(from, to string, w float64, labels ...string) graph.Edge {
	return graph.Edge{From: from, To: to, Weight: w, Labels: labels}
}

// handGraph builds a graph straight from edges; node names equal their ids.
func handGraph(edges ...graph.Edge) *graph.Graph {
	g := graph.New()
	for _, e := range edges {
		g.AddNode(graph.Node{ID: e.From, Name: e.From})
		g.AddNode(graph.Node{ID: e.To, Name: e.To})
		g.AddEdge(e)
	}
	return g
}

func namedStop(id, name string, lon, lat float64) model.Stop {
	return model.Stop{ID: id, Name: name, Coord: orb.Point{lon, lat}}
}

func line(name string, pts ...orb.Point) model.RouteGeometry {
	return model.RouteGeometry{ID: name, Name: name, Parts: []orb.LineString{pts}}
}

func buildGraph(t *testing.T, stops []model.Stop, routes ...model.RouteGeometry) *graph.Graph {
	t.Helper()
	g, _ := graph.Build(spatial.NewStopIndex(stops), routes, testParams, zaptest.NewLogger(t))
	return g
}
