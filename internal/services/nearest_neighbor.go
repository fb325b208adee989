package services

import "courier-route-service/internal/domain"

// nearestTarget returns the index in pending of the target closest to from.
//
// Distances are recomputed on every call since from moves as the route grows.
// Ties, including the all-unreachable case, go to the earliest queued target.
// pending must not be empty.
func nearestTarget(g Graph, from domain.NodeID, pending []domain.NodeID) int {
	best := 0
	bestDistance := ShortestDistance(g, from, pending[0])

	// Select next target by minimum road distance (greedy step).
	for i := 1; i < len(pending); i++ {
		d := ShortestDistance(g, from, pending[i])
		if d < bestDistance {
			best = i
			bestDistance = d
		}
	}

	return best
}
