// Package graph holds the directed stop graph and the builder that infers it
// from raw stop points and route lines.
//
// A Graph is assembled once by Build and then only read. Nodes and edges
// keep their insertion order so that everything derived from a graph is
// reproducible for the same input.
package graph

import (
	"slices"

	"github.com/atharv3903/busroute/internal/model"
	"github.com/paulmach/orb"
)

type Node struct {
	ID    string
	Name  string
	Coord orb.Point
}

type Edge struct {
	From     string
	To       string
	Weight   float64
	Labels   []string // sorted, unique
	Geometry orb.LineString
}

func (e *Edge) HasLabel(label string) bool {
	_, ok := slices.BinarySearch(e.Labels, label)
	return ok
}

// IsWalk reports whether the edge can only be covered on foot.
func (e *Edge) IsWalk() bool {
	return len(e.Labels) == 1 && e.Labels[0] == model.WalkLabel
}

func (e *Edge) addLabel(label string) {
	i, ok := slices.BinarySearch(e.Labels, label)
	if !ok {
		e.Labels = slices.Insert(e.Labels, i, label)
	}
}

type EdgeKey struct{ From, To string }

// RouteStops is the ordered stop list a route was matched to.
type RouteStops struct {
	Route   string
	StopIDs []string
}

// IndexOf returns the position of id in the list, or -1.
func (r RouteStops) IndexOf(id string) int {
	return slices.Index(r.StopIDs, id)
}

type Graph struct {
	nodes     map[string]*Node
	nodeOrder []string
	edges     map[EdgeKey]*Edge
	edgeOrder []EdgeKey
	out       map[string][]*Edge
	routes    []RouteStops
}

func New() *Graph {
	return &Graph{
		nodes: make(map[string]*Node),
		edges: make(map[EdgeKey]*Edge),
		out:   make(map[string][]*Edge),
	}
}

// AddNode inserts n unless a node with the same id already exists.
func (g *Graph) AddNode(n Node) {
	if _, ok := g.nodes[n.ID]; ok {
		return
	}
	g.nodes[n.ID] = &n
	g.nodeOrder = append(g.nodeOrder, n.ID)
}

// AddEdge inserts e if no edge occupies (e.From, e.To) yet and reports
// whether it did. Labels are normalized to a sorted set.
func (g *Graph) AddEdge(e Edge) bool {
	k := EdgeKey{e.From, e.To}
	if _, ok := g.edges[k]; ok {
		return false
	}
	labels := slices.Clone(e.Labels)
	slices.Sort(labels)
	e.Labels = slices.Compact(labels)

	g.edges[k] = &e
	g.edgeOrder = append(g.edgeOrder, k)
	g.out[e.From] = append(g.out[e.From], &e)
	return true
}

// AddLabel unions label into the edge (from, to). It reports false when the
// edge does not exist.
func (g *Graph) AddLabel(from, to, label string) bool {
	e, ok := g.edges[EdgeKey{from, to}]
	if !ok {
		return false
	}
	e.addLabel(label)
	return true
}

func (g *Graph) AddRoute(r RouteStops) {
	g.routes = append(g.routes, r)
}

func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

func (g *Graph) Edge(from, to string) (*Edge, bool) {
	e, ok := g.edges[EdgeKey{from, to}]
	return e, ok
}

// Out returns the outgoing edges of id in insertion order.
func (g *Graph) Out(id string) []*Edge {
	return g.out[id]
}

// Nodes returns every node in insertion order.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, len(g.nodeOrder))
	for i, id := range g.nodeOrder {
		out[i] = g.nodes[id]
	}
	return out
}

// Edges returns every edge in insertion order.
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, len(g.edgeOrder))
	for i, k := range g.edgeOrder {
		out[i] = g.edges[k]
	}
	return out
}

// Routes returns the matched stop list of every route, in build order.
func (g *Graph) Routes() []RouteStops {
	return g.routes
}

func (g *Graph) NodeCount() int { return len(g.nodes) }

func (g *Graph) EdgeCount() int { return len(g.edges) }
