// Package feature reads stops and routes from GeoJSON FeatureCollections.
package feature

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/atharv3903/busroute/internal/model"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

var errNoID = errors.New("feature has no id")

// DecodeStops parses a collection of Point features. The stop id is the
// "id" property, falling back to the feature id.
func DecodeStops(data []byte) ([]model.Stop, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, err
	}
	stops := make([]model.Stop, 0, len(fc.Features))
	for i, f := range fc.Features {
		id, ok := FeatureID(f)
		if !ok {
			return nil, fmt.Errorf("stop feature %d: %w", i, errNoID)
		}
		pt, ok := f.Geometry.(orb.Point)
		if !ok {
			return nil, fmt.Errorf("stop %s: want Point geometry, got %s", id, geometryType(f.Geometry))
		}
		stops = append(stops, model.Stop{
			ID:    id,
			Name:  model.StopName(PropString(f.Properties, "name")),
			Coord: pt,
		})
	}
	return stops, nil
}

// DecodeRoutes parses a collection of route features. Features whose
// geometry is not linear are kept with no parts so the graph build reports
// them.
func DecodeRoutes(data []byte) ([]model.RouteGeometry, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, err
	}
	routes := make([]model.RouteGeometry, 0, len(fc.Features))
	for i, f := range fc.Features {
		id, ok := FeatureID(f)
		if !ok {
			id = strconv.Itoa(i)
		}
		ref := PropString(f.Properties, "ref")
		routes = append(routes, model.RouteGeometry{
			ID:    id,
			Name:  model.RouteName(PropString(f.Properties, "name"), ref, id),
			Ref:   ref,
			Parts: RouteParts(f.Geometry),
		})
	}
	return routes, nil
}

// RouteParts flattens a route geometry into its line parts.
func RouteParts(g orb.Geometry) []orb.LineString {
	switch g := g.(type) {
	case orb.LineString:
		return []orb.LineString{g}
	case orb.MultiLineString:
		return []orb.LineString(g)
	case orb.Collection:
		var parts []orb.LineString
		for _, sub := range g {
			parts = append(parts, RouteParts(sub)...)
		}
		return parts
	}
	return nil
}

func FeatureID(f *geojson.Feature) (string, bool) {
	if id, ok := idString(f.Properties["id"]); ok {
		return id, true
	}
	return idString(f.ID)
}

// PropString returns the property as text, formatting numeric values such
// as a route ref of 32.
func PropString(p geojson.Properties, key string) string {
	s, _ := idString(p[key])
	return s
}

func idString(v any) (string, bool) {
	switch v := v.(type) {
	case string:
		return v, v != ""
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	}
	return "", false
}

func geometryType(g orb.Geometry) string {
	if g == nil {
		return "none"
	}
	return g.GeoJSONType()
}
