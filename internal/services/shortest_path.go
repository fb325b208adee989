package services

import (
	"container/heap"
	"courier-route-service/internal/domain"
	"math"
)

type queueItem struct {
	node domain.NodeID
	dist float64
}

// distanceQueue is a min-heap on tentative distance. Stale entries are
// skipped when popped instead of being decreased in place.
type distanceQueue []queueItem

func (q distanceQueue) Len() int           { return len(q) }
func (q distanceQueue) Less(i, j int) bool { return q[i].dist < q[j].dist }
func (q distanceQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *distanceQueue) Push(x any)        { *q = append(*q, x.(queueItem)) }
func (q *distanceQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// dijkstra runs single-source shortest paths from start and stops as soon
// as target is settled. It returns tentative distances and predecessors.
func dijkstra(g Graph, start, target domain.NodeID) (map[domain.NodeID]float64, map[domain.NodeID]domain.NodeID) {
	dist := map[domain.NodeID]float64{start: 0}
	prev := make(map[domain.NodeID]domain.NodeID)
	settled := make(map[domain.NodeID]bool)

	pq := &distanceQueue{{node: start, dist: 0}}
	for pq.Len() > 0 {
		cur := heap.Pop(pq).(queueItem)
		if settled[cur.node] {
			continue
		}
		settled[cur.node] = true

		if cur.node == target {
			break
		}

		for next, w := range g[cur.node] {
			nd := cur.dist + w
			if d, ok := dist[next]; !ok || nd < d {
				dist[next] = nd
				prev[next] = cur.node
				heap.Push(pq, queueItem{node: next, dist: nd})
			}
		}
	}

	return dist, prev
}

// ShortestDistance returns the length of the shortest path from start to target.
//
// It never fails: +Inf is returned when either endpoint is absent from the
// graph or target cannot be reached, so it can serve as an ordering key.
func ShortestDistance(g Graph, start, target domain.NodeID) float64 {
	if !g.Has(start) || !g.Has(target) {
		return math.Inf(1)
	}

	dist, _ := dijkstra(g, start, target)
	d, ok := dist[target]
	if !ok {
		return math.Inf(1)
	}
	return d
}

// ShortestPath returns the nodes of the shortest path from start to target, both included.
//
// The path is rebuilt by walking predecessors back from target. When target
// was never reached there is no predecessor, and the result is just [target].
func ShortestPath(g Graph, start, target domain.NodeID) []domain.NodeID {
	_, prev := dijkstra(g, start, target)

	path := []domain.NodeID{target}
	for at := target; at != start; {
		p, ok := prev[at]
		if !ok {
			break
		}
		path = append(path, p)
		at = p
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
