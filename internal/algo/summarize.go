package algo

import (
	"fmt"

	"github.com/atharv3903/busroute/internal/graph"
	"github.com/atharv3903/busroute/internal/model"
	"github.com/paulmach/orb"
)

// Summarize collapses a node path into ride segments. Consecutive hops stay
// in one segment while at least one route label is shared by all of them;
// the segment is cut where that set would become empty. The returned
// polyline is every hop's geometry in order, regardless of segmentation.
func Summarize(g *graph.Graph, path []string) ([]model.Segment, []model.LatLon, error) {
	if len(path) < 2 {
		return nil, nil, nil
	}
	edges := make([]*graph.Edge, len(path)-1)
	for i := range edges {
		e, ok := g.Edge(path[i], path[i+1])
		if !ok {
			return nil, nil, fmt.Errorf("summarize: no edge %s -> %s", path[i], path[i+1])
		}
		edges[i] = e
	}

	var segs []model.Segment
	active := edges[0].Labels
	from := 0

	for i := 1; i < len(edges); i++ {
		if common := intersect(active, edges[i].Labels); len(common) > 0 {
			active = common
			continue
		}
		segs = append(segs, segment(g, active, path[from:i+1], edges[from:i]))
		active = edges[i].Labels
		from = i
	}
	segs = append(segs, segment(g, active, path[from:], edges[from:]))

	var line []model.LatLon
	for _, e := range edges {
		line = appendLatLon(line, e.Geometry)
	}
	return segs, line, nil
}

func segment(g *graph.Graph, labels, stops []string, hops []*graph.Edge) model.Segment {
	first, _ := g.Node(stops[0])
	last, _ := g.Node(stops[len(stops)-1])

	names := make([]string, len(stops))
	for i, id := range stops {
		if n, ok := g.Node(id); ok {
			names[i] = n.Name
		}
	}

	var geom []model.LatLon
	for _, h := range hops {
		geom = appendLatLon(geom, h.Geometry)
	}
	return model.Segment{
		StartStop:  first.Name,
		EndStop:    last.Name,
		Route:      DisplayLabel(labels),
		HopCount:   len(stops) - 1,
		StartCoord: model.ToLatLon(first.Coord),
		EndCoord:   model.ToLatLon(last.Coord),
		Stops:      names,
		Geometry:   geom,
	}
}

// DisplayLabel picks the label shown for a segment: the lowest route name,
// or the walk marker when the segment is walked.
func DisplayLabel(labels []string) string {
	for _, l := range labels {
		if l != model.WalkLabel {
			return l
		}
	}
	return model.WalkLabel
}

// intersect merges two sorted label sets.
func intersect(a, b []string) []string {
	var out []string
	for i, j := 0, 0; i < len(a) && j < len(b); {
		switch {
		case a[i] == b[j]:
			out = append(out, a[i])
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return out
}

func appendLatLon(dst []model.LatLon, ls orb.LineString) []model.LatLon {
	for _, p := range ls {
		dst = append(dst, model.ToLatLon(p))
	}
	return dst
}
