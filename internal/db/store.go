package db

import (
	"context"
	"database/sql"

	"github.com/atharv3903/busroute/internal/feature"
	"github.com/atharv3903/busroute/internal/model"
	"github.com/jmoiron/sqlx"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

const (
	stopsQuery  = `SELECT stop_id, name, lon, lat FROM bus_stops ORDER BY stop_id`
	routesQuery = `SELECT route_id, name, ref, geometry FROM bus_routes ORDER BY route_id`
)

// Store reads the stop and route tables. Route geometry is stored as GeoJSON
// geometry text.
type Store struct {
	DB *sqlx.DB
}

type stopRow struct {
	ID   string         `db:"stop_id"`
	Name sql.NullString `db:"name"`
	Lon  float64        `db:"lon"`
	Lat  float64        `db:"lat"`
}

type routeRow struct {
	ID       string         `db:"route_id"`
	Name     sql.NullString `db:"name"`
	Ref      sql.NullString `db:"ref"`
	Geometry sql.NullString `db:"geometry"`
}

func (s Store) Stops(ctx context.Context) ([]model.Stop, error) {
	var rows []stopRow
	if err := s.DB.SelectContext(ctx, &rows, stopsQuery); err != nil {
		return nil, err
	}

	stops := make([]model.Stop, 0, len(rows))
	for _, r := range rows {
		stops = append(stops, model.Stop{
			ID:    r.ID,
			Name:  model.StopName(r.Name.String),
			Coord: orb.Point{r.Lon, r.Lat},
		})
	}
	return stops, nil
}

// Routes returns every route row. A row whose geometry does not parse is
// returned without parts and gets skipped by the graph build.
func (s Store) Routes(ctx context.Context) ([]model.RouteGeometry, error) {
	var rows []routeRow
	if err := s.DB.SelectContext(ctx, &rows, routesQuery); err != nil {
		return nil, err
	}

	routes := make([]model.RouteGeometry, 0, len(rows))
	for _, r := range rows {
		rg := model.RouteGeometry{
			ID:   r.ID,
			Name: model.RouteName(r.Name.String, r.Ref.String, r.ID),
			Ref:  r.Ref.String,
		}
		if g, err := geojson.UnmarshalGeometry([]byte(r.Geometry.String)); err == nil {
			rg.Parts = feature.RouteParts(g.Geometry())
		}
		routes = append(routes, rg)
	}
	return routes, nil
}

func (s Store) Load(ctx context.Context) ([]model.Stop, []model.RouteGeometry, error) {
	stops, err := s.Stops(ctx)
	if err != nil {
		return nil, nil, &model.DataLoadError{Source: "bus_stops", Err: err}
	}
	routes, err := s.Routes(ctx)
	if err != nil {
		return nil, nil, &model.DataLoadError{Source: "bus_routes", Err: err}
	}
	return stops, routes, nil
}
