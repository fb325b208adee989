package services

import (
	"courier-route-service/internal/domain"
	"fmt"
)

// PlanRoutes computes one route per courier that has at least one assigned request.
//
// The graph is built once and shared by every courier. Validation is
// fail-fast for the whole call: one courier referencing a node missing from
// the graph aborts planning for all of them.
func PlanRoutes(
	segments []domain.Segment,
	requests []domain.DeliveryRequest,
	couriers []domain.Courier,
) (domain.CourierRoutes, error) {
	if len(requests) == 0 {
		return nil, domain.ErrNoDeliveryRequests
	}
	if len(couriers) == 0 {
		return nil, domain.ErrNoCouriers
	}

	g := BuildGraph(segments)

	routes := make(domain.CourierRoutes)
	for _, c := range couriers {
		assigned := c.Requests(requests)
		if len(assigned) == 0 {
			continue
		}

		if err := ValidateGraph(g, assigned); err != nil {
			return nil, fmt.Errorf("plan routes: courier %d: %w", c.ID, err)
		}

		route, err := PlanSingleCourierRoute(g, assigned)
		if err != nil {
			return nil, fmt.Errorf("plan routes: courier %d: %w", c.ID, err)
		}
		routes[c.ID] = route
	}

	if len(routes) == 0 {
		return nil, domain.ErrNoAssignedCourier
	}

	return routes, nil
}
