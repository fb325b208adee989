package services

import (
	"courier-route-service/internal/domain"
	"slices"
)

// PlanSingleCourierRoute orders one courier's pickups and deliveries into a
// single route that starts and ends at the warehouse of the first request.
//
// The route is built greedily: the nearest pending target is travelled to
// next, and a delivery only becomes pending once its pickup has been visited.
// Full road paths are stitched between targets, so the route lists every
// intermediate node. It does not attempt global optimization.
func PlanSingleCourierRoute(g Graph, requests []domain.DeliveryRequest) (domain.Route, error) {
	if len(requests) == 0 {
		return nil, domain.ErrNoDeliveryRequests
	}

	warehouse := requests[0].Warehouse
	route := domain.Route{warehouse}

	byPickup := make(map[domain.NodeID][]domain.DeliveryRequest, len(requests))
	for _, r := range requests {
		byPickup[r.Pickup] = append(byPickup[r.Pickup], r)
	}

	visitedPickups := make(map[domain.NodeID]bool, len(requests))
	// Deliveries are recorded when queued, so none is queued twice.
	pendingDeliveries := make(map[domain.NodeID]bool, len(requests))

	pending := make([]domain.NodeID, 0, 2*len(requests))
	for _, r := range requests {
		pending = append(pending, r.Pickup)
	}

	enqueueDeliveries := func(pickup domain.NodeID) {
		for _, r := range byPickup[pickup] {
			if pendingDeliveries[r.Delivery] {
				continue
			}
			pending = append(pending, r.Delivery)
			pendingDeliveries[r.Delivery] = true
		}
	}

	for len(pending) > 0 {
		i := nearestTarget(g, route.Last(), pending)
		target := pending[i]
		pending = slices.Delete(pending, i, i+1)

		route = appendPath(route, ShortestPath(g, route.Last(), target))

		if visitedPickups[target] {
			// A pickup reached again: its request must still be known.
			if len(byPickup[target]) == 0 {
				return nil, &domain.PlannerInconsistencyError{NodeID: target}
			}
			enqueueDeliveries(target)
		} else {
			visitedPickups[target] = true
			enqueueDeliveries(target)
		}

		for _, r := range requests {
			if !visitedPickups[r.Pickup] && !slices.Contains(pending, r.Pickup) {
				pending = append(pending, r.Pickup)
			}
		}
	}

	route = appendPath(route, ShortestPath(g, route.Last(), warehouse))

	return route, nil
}

// appendPath extends route with path, skipping path's first node when it
// repeats the route's current position.
func appendPath(route domain.Route, path []domain.NodeID) domain.Route {
	if len(path) > 0 && path[0] == route.Last() {
		path = path[1:]
	}
	return append(route, path...)
}
