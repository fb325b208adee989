package services

import (
	"courier-route-service/internal/domain"
	"math"
)

// Graph is an adjacency mapping: node -> neighbor -> segment length.
// Nodes without incident segments are absent rather than mapped to an empty set.
type Graph map[domain.NodeID]map[domain.NodeID]float64

// BuildGraph inserts every segment in both directions.
//
// Parallel segments between the same pair are not merged: the last one
// inserted overwrites the stored length (no minimum, no sum).
func BuildGraph(segments []domain.Segment) Graph {
	g := make(Graph)
	for _, s := range segments {
		g.link(s.Origin, s.Destination, s.Length)
		g.link(s.Destination, s.Origin, s.Length)
	}
	return g
}

func (g Graph) link(from, to domain.NodeID, length float64) {
	neighbors, ok := g[from]
	if !ok {
		neighbors = make(map[domain.NodeID]float64)
		g[from] = neighbors
	}
	neighbors[to] = length
}

// Has reports whether id has at least one adjacency entry.
func (g Graph) Has(id domain.NodeID) bool {
	_, ok := g[id]
	return ok
}

// RouteLength sums the segment lengths along consecutive route nodes.
// A hop with no direct segment makes the total +Inf; repeated nodes cost nothing.
func RouteLength(g Graph, route domain.Route) float64 {
	total := 0.0
	for i := 1; i < len(route); i++ {
		from, to := route[i-1], route[i]
		if from == to {
			continue
		}
		w, ok := g[from][to]
		if !ok {
			return math.Inf(1)
		}
		total += w
	}
	return total
}
