package db

import (
	"context"
	"fmt"

	"github.com/atharv3903/busroute/internal/model"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// batchSize keeps multi-row inserts well under MySQL's placeholder limit.
const batchSize = 500

var schema = []string{
	`CREATE TABLE IF NOT EXISTS bus_stops (
		stop_id VARCHAR(64) NOT NULL PRIMARY KEY,
		name    VARCHAR(255) NULL,
		lon     DOUBLE NOT NULL,
		lat     DOUBLE NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS bus_routes (
		route_id VARCHAR(64) NOT NULL PRIMARY KEY,
		name     VARCHAR(255) NULL,
		ref      VARCHAR(64) NULL,
		geometry LONGTEXT NOT NULL
	)`,
}

const (
	insertStop  = `INSERT INTO bus_stops (stop_id, name, lon, lat) VALUES (:stop_id, :name, :lon, :lat)`
	insertRoute = `INSERT INTO bus_routes (route_id, name, ref, geometry) VALUES (:route_id, :name, :ref, :geometry)`
)

// Migrate creates the stop and route tables if they are missing.
func (s Store) Migrate(ctx context.Context) error {
	for _, q := range schema {
		if _, err := s.DB.ExecContext(ctx, q); err != nil {
			return err
		}
	}
	return nil
}

// Replace swaps the table contents for stops and routes in one transaction.
func (s Store) Replace(ctx context.Context, stops []model.Stop, routes []model.RouteGeometry) error {
	srows := make([]stopRow, len(stops))
	for i, st := range stops {
		srows[i] = stopRow{ID: st.ID, Lon: st.Coord.Lon(), Lat: st.Coord.Lat()}
		srows[i].Name.String, srows[i].Name.Valid = st.Name, st.Name != ""
	}
	rrows := make([]routeRow, 0, len(routes))
	for _, r := range routes {
		g, err := encodeParts(r.Parts)
		if err != nil {
			return fmt.Errorf("route %s: %w", r.ID, err)
		}
		row := routeRow{ID: r.ID}
		if name := storedRouteName(r); name != "" {
			row.Name.String, row.Name.Valid = name, true
		}
		row.Ref.String, row.Ref.Valid = r.Ref, r.Ref != ""
		row.Geometry.String, row.Geometry.Valid = g, true
		rrows = append(rrows, row)
	}

	tx, err := s.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, q := range []string{`DELETE FROM bus_stops`, `DELETE FROM bus_routes`} {
		if _, err := tx.ExecContext(ctx, q); err != nil {
			return err
		}
	}
	for i := 0; i < len(srows); i += batchSize {
		if _, err := tx.NamedExecContext(ctx, insertStop, srows[i:min(i+batchSize, len(srows))]); err != nil {
			return fmt.Errorf("insert stops: %w", err)
		}
	}
	for i := 0; i < len(rrows); i += batchSize {
		if _, err := tx.NamedExecContext(ctx, insertRoute, rrows[i:min(i+batchSize, len(rrows))]); err != nil {
			return fmt.Errorf("insert routes: %w", err)
		}
	}
	return tx.Commit()
}

// storedRouteName undoes the display fallback of model.RouteName so that a
// route read back from the table gets the same name it was written with.
func storedRouteName(r model.RouteGeometry) string {
	if r.Name == model.RouteName("", r.Ref, r.ID) {
		return ""
	}
	return r.Name
}

func encodeParts(parts []orb.LineString) (string, error) {
	var g orb.Geometry = orb.MultiLineString(parts)
	if len(parts) == 1 {
		g = parts[0]
	}
	data, err := geojson.NewGeometry(g).MarshalJSON()
	if err != nil {
		return "", err
	}
	return string(data), nil
}
