package graph

import (
	"testing"

	"github.com/atharv3903/busroute/internal/model"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraphAddEdgeKeepsOnePerPair(t *testing.T) {
	g := New()
	g.AddNode(Node{ID: "a", Name: "A"})
	g.AddNode(Node{ID: "a", Name: "ignored"})
	g.AddNode(Node{ID: "b", Name: "B"})

	require.True(t, g.AddEdge(Edge{From: "a", To: "b", Weight: 1, Labels: []string{"R2", "R1", "R2"}}))
	assert.False(t, g.AddEdge(Edge{From: "a", To: "b", Weight: 9, Labels: []string{model.WalkLabel}}))

	e, ok := g.Edge("a", "b")
	require.True(t, ok)
	assert.Equal(t, 1.0, e.Weight)
	assert.Equal(t, []string{"R1", "R2"}, e.Labels)

	assert.True(t, g.AddLabel("a", "b", "R0"))
	assert.True(t, g.AddLabel("a", "b", "R1"))
	assert.False(t, g.AddLabel("b", "a", "R1"))
	assert.Equal(t, []string{"R0", "R1", "R2"}, e.Labels)
	assert.True(t, e.HasLabel("R0"))
	assert.False(t, e.HasLabel("R9"))
	assert.False(t, e.IsWalk())

	n, ok := g.Node("a")
	require.True(t, ok)
	assert.Equal(t, "A", n.Name)
	assert.Equal(t, 2, g.NodeCount())
	assert.Equal(t, 1, g.EdgeCount())
	assert.Len(t, g.Out("a"), 1)
	assert.Empty(t, g.Out("b"))
}

func TestGraphOrderIsInsertionOrder(t *testing.T) {
	g := New()
	for _, id := range []string{"z", "m", "a"} {
		g.AddNode(Node{ID: id})
	}
	g.AddEdge(Edge{From: "z", To: "m"})
	g.AddEdge(Edge{From: "a", To: "z"})

	var ids []string
	for _, n := range g.Nodes() {
		ids = append(ids, n.ID)
	}
	assert.Equal(t, []string{"z", "m", "a"}, ids)

	edges := g.Edges()
	require.Len(t, edges, 2)
	assert.Equal(t, "a", edges[1].From)
}

func TestRouteStopsIndexOf(t *testing.T) {
	r := RouteStops{Route: "R1", StopIDs: []string{"a", "b", "c"}}
	assert.Equal(t, 2, r.IndexOf("c"))
	assert.Equal(t, -1, r.IndexOf("x"))
}

func TestWalkEdgeIsWalk(t *testing.T) {
	e := &Edge{Labels: []string{model.WalkLabel}, Geometry: orb.LineString{{0, 0}, {1, 1}}}
	assert.True(t, e.IsWalk())
	assert.True(t, e.HasLabel(model.WalkLabel))
}
