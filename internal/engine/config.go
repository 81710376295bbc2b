package engine

import (
	"github.com/atharv3903/busroute/internal/graph"
	"github.com/go-playground/validator/v10"
)

// Config tunes matching, walking and query behavior. Distances other than
// MaxWalkMeters are in coordinate degrees. FoldDiacritics applies to
// SearchStopsByName only; path queries match case-insensitively on the
// name as written.
type Config struct {
	MatchTolerance  float64 `yaml:"match_tolerance" validate:"gt=0"`
	SideEpsilon     float64 `yaml:"side_epsilon" validate:"gt=0"`
	MaxWalkMeters   float64 `yaml:"max_walk_meters" validate:"gte=0"`
	MetersPerDegree float64 `yaml:"meters_per_degree" validate:"gt=0"`
	FoldDiacritics  bool    `yaml:"fold_diacritics"`
	NearestLimit    int     `yaml:"nearest_limit" validate:"gt=0"`
	SearchLimit     int     `yaml:"search_limit" validate:"gt=0"`
	CacheSize       int     `yaml:"cache_size" validate:"gte=0"`
}

func DefaultConfig() Config {
	return Config{
		MatchTolerance:  0.0003,
		SideEpsilon:     0.0001,
		MaxWalkMeters:   120,
		MetersPerDegree: 111000,
		FoldDiacritics:  true,
		NearestLimit:    5,
		SearchLimit:     10,
		CacheSize:       1024,
	}
}

func (c Config) Validate() error {
	return validator.New().Struct(c)
}

// Params converts the config into graph build parameters.
func (c Config) Params() graph.Params {
	return graph.Params{
		MatchTolerance: c.MatchTolerance,
		SideEpsilon:    c.SideEpsilon,
		MaxWalk:        c.MaxWalkMeters / c.MetersPerDegree,
	}
}
