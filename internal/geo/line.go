// Package geo holds the planar line operations the graph builder needs:
// projecting a stop onto a route, walking a distance along it, cutting
// sub-lines and telling which side of the route a point lies on.
//
// All distances are in coordinate units (degrees for WGS84 input).
package geo

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Length is the planar length of the line.
func Length(ls orb.LineString) float64 {
	return planar.Length(ls)
}

// DistanceToLine is the planar distance from p to the closest point of ls.
func DistanceToLine(ls orb.LineString, p orb.Point) float64 {
	switch len(ls) {
	case 0:
		return math.Inf(1)
	case 1:
		return planar.Distance(ls[0], p)
	}
	best := math.Inf(1)
	for i := 0; i+1 < len(ls); i++ {
		if d := planar.DistanceFromSegment(ls[i], ls[i+1], p); d < best {
			best = d
		}
	}
	return best
}

// Project returns the distance along ls of the point on ls closest to p.
// When several segments are equally close the earliest one wins.
func Project(ls orb.LineString, p orb.Point) float64 {
	if len(ls) < 2 {
		return 0
	}
	best := math.Inf(1)
	along, result := 0.0, 0.0
	for i := 0; i+1 < len(ls); i++ {
		a, b := ls[i], ls[i+1]
		dx, dy := b[0]-a[0], b[1]-a[1]
		segLen := math.Hypot(dx, dy)

		t := 0.0
		if segLen > 0 {
			t = ((p[0]-a[0])*dx + (p[1]-a[1])*dy) / (segLen * segLen)
			t = math.Max(0, math.Min(1, t))
		}
		q := orb.Point{a[0] + t*dx, a[1] + t*dy}
		if d := planar.DistanceSquared(p, q); d < best {
			best = d
			result = along + t*segLen
		}
		along += segLen
	}
	return result
}

// Interpolate returns the point at distance d along ls, clamped to the ends.
func Interpolate(ls orb.LineString, d float64) orb.Point {
	if len(ls) == 0 {
		return orb.Point{}
	}
	if d <= 0 {
		return ls[0]
	}
	along := 0.0
	for i := 0; i+1 < len(ls); i++ {
		a, b := ls[i], ls[i+1]
		segLen := planar.Distance(a, b)
		if segLen > 0 && along+segLen >= d {
			f := (d - along) / segLen
			return orb.Point{a[0] + f*(b[0]-a[0]), a[1] + f*(b[1]-a[1])}
		}
		along += segLen
	}
	return ls[len(ls)-1]
}

// Substring cuts the part of ls between along-distances from and to.
// The result always has at least two points; a zero-length cut repeats
// its single point.
func Substring(ls orb.LineString, from, to float64) orb.LineString {
	if len(ls) == 0 {
		return nil
	}
	if from > to {
		from, to = to, from
	}
	start := Interpolate(ls, from)
	out := orb.LineString{start}

	along := 0.0
	for i := 1; i < len(ls); i++ {
		along += planar.Distance(ls[i-1], ls[i])
		if along <= from {
			continue
		}
		if along >= to {
			break
		}
		out = append(out, ls[i])
	}
	return append(out, Interpolate(ls, to))
}

// Side reports which side of ls the point p lies on, looking along the
// line's direction: positive is left, negative is right, zero means the side
// could not be determined. The local tangent is sampled eps either side of
// p's projection; eps is clamped to 1% of the line length so the probe never
// runs off the ends.
func Side(ls orb.LineString, p orb.Point, eps float64) float64 {
	total := Length(ls)
	if total == 0 {
		return 0
	}
	eps = math.Min(eps, total*0.01)
	if eps <= 0 {
		return 0
	}

	t := Project(ls, p)
	t0 := math.Max(0, t-eps)
	t1 := math.Min(total, t+eps)
	if t1 == t0 {
		return 0
	}

	p0 := Interpolate(ls, t0)
	p1 := Interpolate(ls, t1)
	dx, dy := p1[0]-p0[0], p1[1]-p0[1]
	ox, oy := p[0]-p0[0], p[1]-p0[1]
	return dx*oy - dy*ox
}
