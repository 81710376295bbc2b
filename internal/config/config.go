package config

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/atharv3903/busroute/internal/engine"
	"github.com/atharv3903/busroute/internal/logging"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// SourceConfig names where stops and routes come from: a MySQL DSN, or a
// pair of GeoJSON files when no DSN is set.
type SourceConfig struct {
	StopsPath  string `yaml:"stops" validate:"required_without=DSN"`
	RoutesPath string `yaml:"routes" validate:"required_without=DSN"`
	DSN        string `yaml:"dsn"`
}

// AppConfig is the root configuration of the busroute binaries.
type AppConfig struct {
	Engine engine.Config  `yaml:"engine"`
	Source SourceConfig   `yaml:"source"`
	Log    logging.Config `yaml:"log"`
}

func Default() AppConfig {
	return AppConfig{
		Engine: engine.DefaultConfig(),
		Log:    logging.DefaultConfig(),
	}
}

func (c AppConfig) Validate() error {
	return validator.New().Struct(c)
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (AppConfig, error) {
	cfg := Default()
	if err := readFile(path, &cfg); err != nil {
		return AppConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return AppConfig{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func readFile(path string, cfg *AppConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}

// applyEnv overlays the environment, including anything a .env file in the
// working directory provides.
func applyEnv(cfg *AppConfig) {
	if v := os.Getenv("BUSROUTE_STOPS"); v != "" {
		cfg.Source.StopsPath = v
	}
	if v := os.Getenv("BUSROUTE_ROUTES"); v != "" {
		cfg.Source.RoutesPath = v
	}
	if v := os.Getenv("DB_DSN"); v != "" {
		cfg.Source.DSN = v
	}
	if v := os.Getenv("BUSROUTE_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}

// FromFlags builds the configuration for a binary named name. Layers apply
// in order: defaults, YAML file (-config or BUSROUTE_CONFIG), environment,
// then flags that were set explicitly. The remaining arguments are
// returned.
func FromFlags(name string, args []string) (AppConfig, []string, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return AppConfig{}, nil, fmt.Errorf(".env: %w", err)
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	var (
		path, stops, routes, dsn, level string
		walk                            float64
		dev                             bool
	)
	fs.StringVar(&path, "config", os.Getenv("BUSROUTE_CONFIG"), "YAML config file")
	fs.StringVar(&stops, "stops", "", "stops GeoJSON file")
	fs.StringVar(&routes, "routes", "", "routes GeoJSON file")
	fs.StringVar(&dsn, "dsn", "", "MySQL DSN; overrides the GeoJSON files")
	fs.Float64Var(&walk, "walk", 0, "max walking distance in meters, 0 disables walking")
	fs.StringVar(&level, "log-level", "", "debug, info, warn or error")
	fs.BoolVar(&dev, "log-dev", false, "human readable logs")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, nil, err
	}

	cfg := Default()
	if path != "" {
		if err := readFile(path, &cfg); err != nil {
			return AppConfig{}, nil, err
		}
	}
	applyEnv(&cfg)

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "stops":
			cfg.Source.StopsPath = stops
		case "routes":
			cfg.Source.RoutesPath = routes
		case "dsn":
			cfg.Source.DSN = dsn
		case "walk":
			cfg.Engine.MaxWalkMeters = walk
		case "log-level":
			cfg.Log.Level = level
		case "log-dev":
			cfg.Log.Development = dev
		}
	})

	if err := cfg.Validate(); err != nil {
		return AppConfig{}, nil, err
	}
	return cfg, fs.Args(), nil
}
