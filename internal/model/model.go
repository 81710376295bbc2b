package model

import (
	"fmt"
	"slices"
	"strings"

	"github.com/paulmach/orb"
)

// WalkLabel marks an edge that is covered on foot rather than by a route.
const WalkLabel = "WALK"

// DefaultStopName is used for stops that arrive without a name.
const DefaultStopName = "Unknown"

type Stop struct {
	ID    string
	Name  string
	Coord orb.Point // lon, lat
}

type RouteGeometry struct {
	ID    string
	Name  string
	Ref   string
	Parts []orb.LineString
}

// StopName returns name, or DefaultStopName when it is blank.
func StopName(name string) string {
	if strings.TrimSpace(name) == "" {
		return DefaultStopName
	}
	return name
}

// RouteName picks the display name of a route: name, then ref, then an
// id-derived placeholder.
func RouteName(name, ref, id string) string {
	if n := strings.TrimSpace(name); n != "" {
		return n
	}
	if r := strings.TrimSpace(ref); r != "" {
		return r
	}
	return fmt.Sprintf("Route %s", id)
}

// LatLon is a [lat, lon] pair as consumed by map renderers.
type LatLon [2]float64

func ToLatLon(p orb.Point) LatLon { return LatLon{p.Lat(), p.Lon()} }

type Segment struct {
	StartStop  string   `json:"start_stop"`
	EndStop    string   `json:"end_stop"`
	Route      string   `json:"route"`
	HopCount   int      `json:"hop_count"`
	StartCoord LatLon   `json:"start_coord"`
	EndCoord   LatLon   `json:"end_coord"`
	Stops      []string `json:"stops"`
	Geometry   []LatLon `json:"geometry,omitempty"`
}

const (
	TierDirect   = "direct"
	TierWeighted = "weighted"
)

type PathResult struct {
	Segments []Segment `json:"segments"`
	Polyline []LatLon  `json:"polyline"`
	Tier     string    `json:"tier"`
	Total    float64   `json:"total"`
	CacheHit bool      `json:"cache_hit"`
}

// Clone returns a copy of r that shares no slices with it.
func (r *PathResult) Clone() *PathResult {
	c := *r
	c.Polyline = slices.Clone(r.Polyline)
	if r.Segments != nil {
		c.Segments = make([]Segment, len(r.Segments))
		for i, s := range r.Segments {
			s.Stops = slices.Clone(s.Stops)
			s.Geometry = slices.Clone(s.Geometry)
			c.Segments[i] = s
		}
	}
	return &c
}
