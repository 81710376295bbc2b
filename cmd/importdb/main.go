package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/atharv3903/busroute/internal/config"
	"github.com/atharv3903/busroute/internal/db"
	"github.com/atharv3903/busroute/internal/feature"
	"github.com/atharv3903/busroute/internal/logging"
	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// importdb copies the GeoJSON stop and route files into the MySQL tables
// read by busroute -dsn.
func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	cfg, _, err := config.FromFlags("importdb", args)
	if err != nil {
		return err
	}
	if err := checkConfig(cfg.Source); err != nil {
		return fmt.Errorf("usage: importdb -stops <file> -routes <file> -dsn <mysql_dsn>: %w", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	src := feature.FileSource{StopsPath: cfg.Source.StopsPath, RoutesPath: cfg.Source.RoutesPath}
	stops, routes, err := src.Load(ctx)
	if err != nil {
		logger.Error("read geojson", zap.Error(err))
		return fmt.Errorf("read geojson: %w", err)
	}

	conn, err := sqlx.Open("mysql", cfg.Source.DSN)
	if err != nil {
		return fmt.Errorf("open mysql: %w", err)
	}
	defer conn.Close()

	store := db.Store{DB: conn}
	if err := store.Migrate(ctx); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	start := time.Now()
	if err := store.Replace(ctx, stops, routes); err != nil {
		return fmt.Errorf("import: %w", err)
	}
	logger.Info("import done",
		zap.Int("stops", len(stops)),
		zap.Int("routes", len(routes)),
		zap.Duration("took", time.Since(start)))
	return nil
}

func checkConfig(sc config.SourceConfig) error {
	switch {
	case sc.DSN == "":
		return errors.New("missing -dsn")
	case sc.StopsPath == "" || sc.RoutesPath == "":
		return errors.New("missing -stops or -routes")
	}
	return nil
}
