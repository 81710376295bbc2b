// Package engine ties loading, graph building and querying together behind
// one value that is safe for concurrent queries.
package engine

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/atharv3903/busroute/internal/algo"
	"github.com/atharv3903/busroute/internal/cache"
	"github.com/atharv3903/busroute/internal/graph"
	"github.com/atharv3903/busroute/internal/model"
	"github.com/atharv3903/busroute/internal/spatial"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"go.uber.org/zap"
)

var ErrNotLoaded = errors.New("engine: no data loaded")

// dataset is one loaded stop and route collection. Never mutated.
type dataset struct {
	stops  []model.Stop
	idx    *spatial.StopIndex
	routes []model.RouteGeometry
	epoch  uint64
}

// snapshot is a graph built from one dataset. Never mutated.
type snapshot struct {
	g      *graph.Graph
	report graph.Report
	epoch  uint64
}

type Engine struct {
	cfg    Config
	logger *zap.Logger
	cache  *cache.PathCache

	mu    sync.Mutex // serializes Load and Build
	data  atomic.Pointer[dataset]
	built atomic.Pointer[snapshot]
}

func New(cfg Config, logger *zap.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("engine config: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		cfg:    cfg,
		logger: logger,
		cache:  cache.NewPathCache(cfg.CacheSize),
	}, nil
}

// Load replaces the engine's data with what src returns. The previous graph
// and every cached result are dropped; the next query builds a new graph.
func (e *Engine) Load(ctx context.Context, src Source) error {
	stops, routes, err := src.Load(ctx)
	if err != nil {
		var dle *model.DataLoadError
		if !errors.As(err, &dle) {
			err = &model.DataLoadError{Source: "source", Err: err}
		}
		return err
	}
	if err := checkStops(stops); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.cache.BumpEpoch()
	e.data.Store(&dataset{
		stops:  stops,
		idx:    spatial.NewStopIndex(stops),
		routes: routes,
		epoch:  e.cache.Epoch(),
	})
	e.built.Store(nil)

	e.logger.Info("data loaded",
		zap.Int("stops", len(stops)),
		zap.Int("routes", len(routes)),
	)
	return nil
}

func checkStops(stops []model.Stop) error {
	if len(stops) == 0 {
		return &model.DataLoadError{Source: "stops", Err: errors.New("collection is empty")}
	}
	seen := make(map[string]struct{}, len(stops))
	for _, s := range stops {
		if _, ok := seen[s.ID]; ok {
			return &model.DataLoadError{Source: "stops", Err: fmt.Errorf("duplicate stop id %q", s.ID)}
		}
		seen[s.ID] = struct{}{}
	}
	return nil
}

// Build constructs the graph from the loaded data and publishes it. Queries
// already running keep the graph they started with.
func (e *Engine) Build() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, err := e.buildLocked()
	return err
}

func (e *Engine) buildLocked() (*snapshot, error) {
	ds := e.data.Load()
	if ds == nil {
		return nil, ErrNotLoaded
	}
	g, rep := graph.Build(ds.idx, ds.routes, e.cfg.Params(), e.logger)
	s := &snapshot{g: g, report: rep, epoch: ds.epoch}
	e.built.Store(s)
	return s, nil
}

// current returns the published graph, building it on first use.
func (e *Engine) current() (*snapshot, error) {
	if s := e.built.Load(); s != nil {
		return s, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if s := e.built.Load(); s != nil {
		return s, nil
	}
	e.logger.Debug("building graph on first query")
	return e.buildLocked()
}

// FindPath resolves two stop-name queries and returns the summarized trip.
// Errors are *model.NoMatchError, model.ErrNoPath or ErrNotLoaded.
func (e *Engine) FindPath(start, end string) (*model.PathResult, error) {
	s, err := e.current()
	if err != nil {
		return nil, err
	}

	key := cache.PathKey{
		Start: strings.ToLower(start),
		End:   strings.ToLower(end),
		Epoch: s.epoch,
	}
	if r, ok := e.cache.Get(key); ok {
		hit := r.Clone()
		hit.CacheHit = true
		return hit, nil
	}

	p, err := algo.Finder{G: s.g}.Find(start, end)
	if err != nil {
		return nil, err
	}
	segs, line, err := algo.Summarize(s.g, p.NodeIDs)
	if err != nil {
		return nil, err
	}

	res := &model.PathResult{
		Segments: segs,
		Polyline: line,
		Tier:     p.Tier,
		Total:    p.Total,
	}
	e.cache.Put(key, res.Clone())

	e.logger.Debug("path found",
		zap.String("start", start),
		zap.String("end", end),
		zap.String("tier", p.Tier),
		zap.Int("segments", len(segs)),
		zap.Int("explored", p.Explored),
	)
	return res, nil
}

// NearestStops returns the names of the limit stops closest to (lat, lon),
// nearest first, with repeated names dropped. limit <= 0 uses the configured
// default.
func (e *Engine) NearestStops(lat, lon float64, limit int) []string {
	ds := e.data.Load()
	if ds == nil {
		return nil
	}
	if limit <= 0 {
		limit = e.cfg.NearestLimit
	}

	p := orb.Point{lon, lat}
	order := make([]int, len(ds.stops))
	dist := make([]float64, len(ds.stops))
	for i, s := range ds.stops {
		order[i] = i
		dist[i] = planar.DistanceSquared(p, s.Coord)
	}
	sort.SliceStable(order, func(a, b int) bool { return dist[order[a]] < dist[order[b]] })

	if limit > len(order) {
		limit = len(order)
	}
	names := make([]string, 0, limit)
	for _, i := range order[:limit] {
		names = appendUnique(names, ds.stops[i].Name)
	}
	return names
}

// SearchStopsByName returns stop names containing q, in load order, without
// repeats and capped at the configured search limit. Unlike FindPath it
// trims q, folds diacritics when FoldDiacritics is set, and returns nothing
// for a blank q.
func (e *Engine) SearchStopsByName(q string) []string {
	ds := e.data.Load()
	q = algo.FoldName(strings.TrimSpace(q), e.cfg.FoldDiacritics)
	if ds == nil || q == "" {
		return nil
	}

	var names []string
	for _, s := range ds.stops {
		if !strings.Contains(algo.FoldName(s.Name, e.cfg.FoldDiacritics), q) {
			continue
		}
		names = appendUnique(names, s.Name)
		if len(names) == e.cfg.SearchLimit {
			break
		}
	}
	return names
}

func appendUnique(names []string, name string) []string {
	for _, n := range names {
		if n == name {
			return names
		}
	}
	return append(names, name)
}

// Stops returns the loaded stops. The slice must not be modified.
func (e *Engine) Stops() []model.Stop {
	if ds := e.data.Load(); ds != nil {
		return ds.stops
	}
	return nil
}

type Stats struct {
	Stops         int         `json:"stops"`
	Routes        int         `json:"routes"`
	Built         bool        `json:"built"`
	Nodes         int         `json:"nodes"`
	Edges         int         `json:"edges"`
	BusEdges      int         `json:"bus_edges"`
	WalkEdges     int         `json:"walk_edges"`
	RoutesUsed    int         `json:"routes_used"`
	RoutesSkipped int         `json:"routes_skipped"`
	Cache         cache.Stats `json:"cache"`
}

// Stats describes the loaded data and, once built, the published graph.
func (e *Engine) Stats() Stats {
	st := Stats{Cache: e.cache.Stats()}
	if ds := e.data.Load(); ds != nil {
		st.Stops = len(ds.stops)
		st.Routes = len(ds.routes)
	}
	if s := e.built.Load(); s != nil {
		st.Built = true
		st.Nodes = s.g.NodeCount()
		st.Edges = s.g.EdgeCount()
		st.BusEdges = s.report.BusEdges
		st.WalkEdges = s.report.WalkEdges
		st.RoutesUsed = s.report.Used
		st.RoutesSkipped = len(s.report.Skipped)
	}
	return st
}
