package engine

import (
	"context"

	"github.com/atharv3903/busroute/internal/model"
)

// Source supplies the raw stop and route collections.
type Source interface {
	Load(ctx context.Context) ([]model.Stop, []model.RouteGeometry, error)
}

// StaticSource serves collections already held in memory.
type StaticSource struct {
	Stops  []model.Stop
	Routes []model.RouteGeometry
}

func (s StaticSource) Load(ctx context.Context) ([]model.Stop, []model.RouteGeometry, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	return s.Stops, s.Routes, nil
}
