package algo

import (
	"container/heap"

	"github.com/atharv3903/busroute/internal/graph"
)

type pqItem struct {
	node string
	dist float64
}

type pq []pqItem

func (p pq) Len() int           { return len(p) }
func (p pq) Less(i, j int) bool { return p[i].dist < p[j].dist }
func (p pq) Swap(i, j int)      { p[i], p[j] = p[j], p[i] }

func (p *pq) Push(x any) {
	*p = append(*p, x.(pqItem))
}

func (p *pq) Pop() any {
	old := *p
	n := len(old)
	item := old[n-1]
	*p = old[:n-1]
	return item
}

// Dijkstra returns the cheapest path from src to dst, its total cost and the
// number of nodes settled on the way. The path is nil when dst cannot be
// reached. cost must never be negative.
func Dijkstra(ctx GraphCtx, src, dst string, cost func(*graph.Edge) float64) ([]string, float64, int) {
	dist := map[string]float64{src: 0}
	prev := map[string]string{}
	settled := map[string]bool{}
	pq := &pq{}
	heap.Push(pq, pqItem{node: src, dist: 0})
	explored := 0

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(pqItem)
		u := cur.node

		// stale entry left behind by a later improvement
		if settled[u] {
			continue
		}
		settled[u] = true

		if u == dst {
			break
		}

		explored++

		for _, e := range ctx.Neighbors(u) {
			nd := dist[u] + cost(e)

			old, found := dist[e.To]

			if !found || nd < old {
				dist[e.To] = nd
				prev[e.To] = u
				heap.Push(pq, pqItem{node: e.To, dist: nd})
			}
		}
	}

	if _, ok := dist[dst]; !ok {
		return nil, 0, explored
	}

	// reconstruct
	path := []string{}
	cur := dst

	for cur != src {
		path = append(path, cur)
		cur = prev[cur]
	}
	path = append(path, src)

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[dst], explored
}
