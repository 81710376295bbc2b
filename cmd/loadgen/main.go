package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/atharv3903/busroute/internal/app"
	"github.com/atharv3903/busroute/internal/config"
	"github.com/atharv3903/busroute/internal/engine"
	"github.com/atharv3903/busroute/internal/model"
	"go.uber.org/zap"
)

// Summary is what one closed-loop run measured.
type Summary struct {
	Requests  int64
	Found     int64
	NoPath    int64
	NoMatch   int64
	Errors    int64
	CacheHits int64
	Min, Max  time.Duration
	Total     time.Duration
}

func (s *Summary) add(o Summary) {
	if s.Requests == 0 || (o.Requests > 0 && o.Min < s.Min) {
		s.Min = o.Min
	}
	if o.Max > s.Max {
		s.Max = o.Max
	}
	s.Requests += o.Requests
	s.Found += o.Found
	s.NoPath += o.NoPath
	s.NoMatch += o.NoMatch
	s.Errors += o.Errors
	s.CacheHits += o.CacheHits
	s.Total += o.Total
}

func (s *Summary) record(lat time.Duration, res *model.PathResult, err error) {
	if s.Requests == 0 || lat < s.Min {
		s.Min = lat
	}
	if lat > s.Max {
		s.Max = lat
	}
	s.Requests++
	s.Total += lat

	switch {
	case err == nil:
		s.Found++
		if res.CacheHit {
			s.CacheHits++
		}
	case errors.Is(err, model.ErrNoPath):
		s.NoPath++
	case errors.Is(err, model.ErrNoMatch):
		s.NoMatch++
	default:
		s.Errors++
	}
}

// runClosedLoop keeps workers querying random stop pairs until ctx ends.
// Each worker draws from its own generator seeded from seed.
func runClosedLoop(ctx context.Context, eng *engine.Engine, names []string, workers int, seed int64) Summary {
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		total Summary
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(rnd *rand.Rand) {
			defer wg.Done()
			var local Summary
			for ctx.Err() == nil {
				from := names[rnd.Intn(len(names))]
				to := names[rnd.Intn(len(names))]

				start := time.Now()
				res, err := eng.FindPath(from, to)
				local.record(time.Since(start), res, err)
			}
			mu.Lock()
			total.add(local)
			mu.Unlock()
		}(rand.New(rand.NewSource(seed + int64(i))))
	}
	wg.Wait()
	return total
}

func stopNames(eng *engine.Engine) []string {
	seen := make(map[string]bool)
	var names []string
	for _, s := range eng.Stops() {
		if !seen[s.Name] {
			seen[s.Name] = true
			names = append(names, s.Name)
		}
	}
	return names
}

func printSummary(s Summary, st engine.Stats, workers int, dur time.Duration) {
	fmt.Println("\n========== LOADGEN SUMMARY ==========")
	fmt.Printf("Workers: %d, Duration: %v\n", workers, dur)
	fmt.Printf("Total Requests: %d\n", s.Requests)
	fmt.Printf("Found: %d, No Path: %d, No Match: %d\n", s.Found, s.NoPath, s.NoMatch)
	fmt.Printf("Errors: %d\n", s.Errors)

	if s.Found > 0 {
		fmt.Printf("PathCache Hit Rate: %.1f%% (hits=%d, misses=%d)\n",
			float64(s.CacheHits)/float64(s.Found)*100, st.Cache.Hits, st.Cache.Misses)
	}

	if s.Requests > 0 {
		fmt.Printf("Throughput: %.1f req/s\n", float64(s.Requests)/dur.Seconds())
		fmt.Printf("Avg Latency: %v\n", s.Total/time.Duration(s.Requests))
		fmt.Printf("Fastest: %v\n", s.Min)
		fmt.Printf("Slowest: %v\n", s.Max)
	}
	fmt.Println("=====================================")
}

func main() {
	cfg, args, err := config.FromFlags("loadgen", os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	dur := 10 * time.Second
	workers := 4
	if len(args) > 0 {
		secs, err := strconv.Atoi(args[0])
		if err != nil {
			log.Fatalf("usage: loadgen [flags] [seconds] [workers]")
		}
		dur = time.Duration(secs) * time.Second
	}
	if len(args) > 1 {
		if workers, err = strconv.Atoi(args[1]); err != nil || workers < 1 {
			log.Fatalf("usage: loadgen [flags] [seconds] [workers]")
		}
	}

	eng, logger, closeFn, err := app.Open(context.Background(), cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer closeFn()

	if err := eng.Build(); err != nil {
		log.Fatal(err)
	}
	names := stopNames(eng)
	if len(names) == 0 {
		log.Fatal("no stops loaded")
	}
	logger.Info("loadgen starting",
		zap.Int("stop_names", len(names)),
		zap.Int("workers", workers),
		zap.Duration("duration", dur))

	ctx, cancel := context.WithTimeout(context.Background(), dur)
	defer cancel()

	s := runClosedLoop(ctx, eng, names, workers, time.Now().UnixNano())
	printSummary(s, eng.Stats(), workers, dur)
}
