package cache

import (
	"sync"

	"github.com/atharv3903/busroute/internal/model"
	"github.com/bluele/gcache"
)

// defaultPathCapacity is the number of query results kept when no size is
// configured.
const defaultPathCapacity = 1024

// PathKey identifies one query against one data load. Start and End are the
// normalized query strings.
type PathKey struct {
	Start, End string
	Epoch      uint64
}

// PathCache is a bounded LRU of query results. Results from an older epoch
// are never served. It's safe for concurrent use.
type PathCache struct {
	mu    sync.RWMutex
	epoch uint64
	lru   gcache.Cache
}

func NewPathCache(capacity int) *PathCache {
	if capacity <= 0 {
		capacity = defaultPathCapacity
	}
	return &PathCache{lru: gcache.New(capacity).LRU().Build()}
}

func (c *PathCache) Get(k PathKey) (*model.PathResult, bool) {
	if k.Epoch != c.Epoch() {
		return nil, false
	}
	v, err := c.lru.Get(k)
	if err != nil {
		return nil, false
	}
	r, ok := v.(*model.PathResult)
	return r, ok
}

func (c *PathCache) Put(k PathKey, r *model.PathResult) {
	if k.Epoch != c.Epoch() {
		return
	}
	_ = c.lru.Set(k, r)
}

func (c *PathCache) Epoch() uint64 {
	c.mu.RLock()
	e := c.epoch
	c.mu.RUnlock()
	return e
}

// BumpEpoch retires every cached result.
func (c *PathCache) BumpEpoch() {
	c.mu.Lock()
	c.epoch++
	c.mu.Unlock()
	c.lru.Purge()
}

type Stats struct {
	Hits    uint64  `json:"hits"`
	Misses  uint64  `json:"misses"`
	HitRate float64 `json:"hit_rate"`
}

func (c *PathCache) Stats() Stats {
	return Stats{
		Hits:    c.lru.HitCount(),
		Misses:  c.lru.MissCount(),
		HitRate: c.lru.HitRate(),
	}
}
