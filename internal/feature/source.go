package feature

import (
	"context"
	"os"

	"github.com/atharv3903/busroute/internal/model"
)

// FileSource loads stops and routes from two GeoJSON files.
type FileSource struct {
	StopsPath  string
	RoutesPath string
}

func (s FileSource) Load(ctx context.Context) ([]model.Stop, []model.RouteGeometry, error) {
	stops, err := readStops(ctx, s.StopsPath)
	if err != nil {
		return nil, nil, err
	}
	routes, err := readRoutes(ctx, s.RoutesPath)
	if err != nil {
		return nil, nil, err
	}
	return stops, routes, nil
}

func readStops(ctx context.Context, path string) ([]model.Stop, error) {
	data, err := readFile(ctx, path)
	if err != nil {
		return nil, err
	}
	stops, err := DecodeStops(data)
	if err != nil {
		return nil, &model.DataLoadError{Source: path, Err: err}
	}
	return stops, nil
}

func readRoutes(ctx context.Context, path string) ([]model.RouteGeometry, error) {
	data, err := readFile(ctx, path)
	if err != nil {
		return nil, err
	}
	routes, err := DecodeRoutes(data)
	if err != nil {
		return nil, &model.DataLoadError{Source: path, Err: err}
	}
	return routes, nil
}

func readFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &model.DataLoadError{Source: path, Err: err}
	}
	return data, nil
}
