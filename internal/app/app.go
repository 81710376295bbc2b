// Package app wires configuration into a loaded engine for the binaries.
package app

import (
	"context"

	"github.com/atharv3903/busroute/internal/config"
	"github.com/atharv3903/busroute/internal/db"
	"github.com/atharv3903/busroute/internal/engine"
	"github.com/atharv3903/busroute/internal/feature"
	"github.com/atharv3903/busroute/internal/logging"
	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// NewSource picks the MySQL store when a DSN is configured and the GeoJSON
// files otherwise. The returned func releases the source.
func NewSource(sc config.SourceConfig) (engine.Source, func(), error) {
	if sc.DSN == "" {
		return feature.FileSource{StopsPath: sc.StopsPath, RoutesPath: sc.RoutesPath}, func() {}, nil
	}
	conn, err := sqlx.Open("mysql", sc.DSN)
	if err != nil {
		return nil, nil, err
	}
	return db.Store{DB: conn}, func() { conn.Close() }, nil
}

// Open builds the logger and an engine loaded from the configured source.
// The returned func flushes the logger and closes the source.
func Open(ctx context.Context, cfg config.AppConfig) (*engine.Engine, *zap.Logger, func(), error) {
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return nil, nil, nil, err
	}

	src, closeSrc, err := NewSource(cfg.Source)
	if err != nil {
		return nil, nil, nil, err
	}
	cleanup := func() {
		closeSrc()
		_ = logger.Sync()
	}

	eng, err := engine.New(cfg.Engine, logger)
	if err != nil {
		cleanup()
		return nil, nil, nil, err
	}
	if err := eng.Load(ctx, src); err != nil {
		cleanup()
		return nil, nil, nil, err
	}
	return eng, logger, cleanup, nil
}
