package graph

import (
	"testing"

	"github.com/atharv3903/busroute/internal/model"
	"github.com/atharv3903/busroute/internal/spatial"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalkEdgesBothWays(t *testing.T) {
	stops := []model.Stop{stop("p", 0, 0), stop("q", 0.0003, 0.0004)}
	g, rep := build(t, stops)

	assert.Equal(t, 2, rep.WalkEdges)
	pq, ok := g.Edge("p", "q")
	require.True(t, ok)
	qp, ok := g.Edge("q", "p")
	require.True(t, ok)

	assert.InDelta(t, 0.0005, pq.Weight, 1e-15)
	assert.Equal(t, pq.Weight, qp.Weight)
	assert.Equal(t, []string{model.WalkLabel}, pq.Labels)
	assert.Equal(t, orb.LineString{{0, 0}, {0.0003, 0.0004}}, pq.Geometry)
	assert.Equal(t, orb.LineString{{0.0003, 0.0004}, {0, 0}}, qp.Geometry)
}

func TestWalkThresholdBoundary(t *testing.T) {
	limit := 120.0 / 111000
	tests := []struct {
		name   string
		offset float64
		linked bool
	}{
		{"exactly at the limit", limit, true},
		{"just beyond the limit", limit + 1e-9, false},
		{"same position", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stops := []model.Stop{stop("a", 105.8, 21.0), stop("b", 105.8, 21.0)}
			stops[1].Coord[0] += tt.offset
			g, _ := build(t, stops)

			_, ab := g.Edge("a", "b")
			_, ba := g.Edge("b", "a")
			assert.Equal(t, tt.linked, ab)
			assert.Equal(t, tt.linked, ba)
		})
	}
}

func TestWalkExactLimitOnAxis(t *testing.T) {
	stops := []model.Stop{stop("a", 0, 0), stop("b", 0.001, 0)}
	g := New()
	n := linkWalks(g, spatial.NewStopIndex(stops), 0.001)

	assert.Equal(t, 2, n)
	e, ok := g.Edge("b", "a")
	require.True(t, ok)
	assert.InDelta(t, 0.001, e.Weight, 1e-15)
}

func TestWalkNeverOverwritesBusEdge(t *testing.T) {
	stops := []model.Stop{stop("a", 0, 0), stop("b", 0.0005, 0)}
	g, rep := build(t, stops, route("R1", orb.LineString{{0, 0}, {0.0005, 0}}))

	assert.Equal(t, 1, rep.BusEdges)
	assert.Equal(t, 1, rep.WalkEdges)

	bus, ok := g.Edge("a", "b")
	require.True(t, ok)
	assert.Equal(t, []string{"R1"}, bus.Labels)

	back, ok := g.Edge("b", "a")
	require.True(t, ok)
	assert.True(t, back.IsWalk())
}

func TestWalkDisabled(t *testing.T) {
	stops := []model.Stop{stop("p", 0, 0), stop("q", 0.0001, 0)}
	p := testParams
	p.MaxWalk = 0
	g, rep := Build(spatial.NewStopIndex(stops), nil, p, nil)

	assert.Equal(t, 0, rep.WalkEdges)
	assert.Equal(t, 0, g.EdgeCount())
	assert.Equal(t, 0, g.NodeCount())
}

func TestWalkLinksOnlyNearbyPairs(t *testing.T) {
	stops := []model.Stop{
		stop("a", 0, 0),
		stop("b", 0.0005, 0),
		stop("c", 0.001, 0),
		stop("far", 0.01, 0),
	}
	g, rep := build(t, stops)

	// a-b, b-c and a-c (0.001 <= 0.00108) in both directions
	assert.Equal(t, 6, rep.WalkEdges)
	_, ok := g.Node("far")
	assert.False(t, ok, "isolated stops never become nodes")
}
