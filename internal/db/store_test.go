package db

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/atharv3903/busroute/internal/model"
	"github.com/jmoiron/sqlx"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (Store, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return Store{DB: sqlx.NewDb(conn, "mysql")}, mock
}

func TestStoreStops(t *testing.T) {
	s, mock := newStore(t)
	mock.ExpectQuery(regexp.QuoteMeta(stopsQuery)).WillReturnRows(
		sqlmock.NewRows([]string{"stop_id", "name", "lon", "lat"}).
			AddRow("1", "Kim Mã", 105.82, 21.03).
			AddRow("2", nil, 105.83, 21.04),
	)

	stops, err := s.Stops(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.Stop{
		{ID: "1", Name: "Kim Mã", Coord: orb.Point{105.82, 21.03}},
		{ID: "2", Name: model.DefaultStopName, Coord: orb.Point{105.83, 21.04}},
	}, stops)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreRoutes(t *testing.T) {
	s, mock := newStore(t)
	mock.ExpectQuery(regexp.QuoteMeta(routesQuery)).WillReturnRows(
		sqlmock.NewRows([]string{"route_id", "name", "ref", "geometry"}).
			AddRow("r1", "32", nil, `{"type":"LineString","coordinates":[[0,0],[0,1]]}`).
			AddRow("r2", nil, "E05", `{"type":"MultiLineString","coordinates":[[[0,0],[1,0]],[[1,0],[1,1]]]}`).
			AddRow("r3", nil, nil, `not geojson`),
	)

	routes, err := s.Routes(context.Background())
	require.NoError(t, err)
	require.Len(t, routes, 3)

	assert.Equal(t, model.RouteGeometry{ID: "r1", Name: "32", Parts: []orb.LineString{{{0, 0}, {0, 1}}}}, routes[0])
	assert.Equal(t, "E05", routes[1].Name)
	assert.Equal(t, "E05", routes[1].Ref)
	assert.Len(t, routes[1].Parts, 2)
	assert.Equal(t, "Route r3", routes[2].Name)
	assert.Empty(t, routes[2].Parts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreLoadWrapsErrors(t *testing.T) {
	boom := errors.New("connection refused")

	t.Run("stops", func(t *testing.T) {
		s, mock := newStore(t)
		mock.ExpectQuery(regexp.QuoteMeta(stopsQuery)).WillReturnError(boom)

		_, _, err := s.Load(context.Background())
		require.ErrorIs(t, err, model.ErrDataLoad)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("routes", func(t *testing.T) {
		s, mock := newStore(t)
		mock.ExpectQuery(regexp.QuoteMeta(stopsQuery)).WillReturnRows(
			sqlmock.NewRows([]string{"stop_id", "name", "lon", "lat"}).AddRow("1", "A", 0.0, 0.0))
		mock.ExpectQuery(regexp.QuoteMeta(routesQuery)).WillReturnError(boom)

		_, _, err := s.Load(context.Background())
		var dle *model.DataLoadError
		require.ErrorAs(t, err, &dle)
		assert.Equal(t, "bus_routes", dle.Source)
	})
}
