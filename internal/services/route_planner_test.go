package services

import (
	"courier-route-service/internal/domain"
	"errors"
	"fmt"
	"testing"
)

func courierID(v int64) *int64 { return &v }

// starGraph connects warehouse 1 to every leaf, so leaf-to-leaf paths only pass through 1.
func starGraph() Graph {
	return BuildGraph([]domain.Segment{
		{Origin: 1, Destination: 2, Length: 4},
		{Origin: 1, Destination: 3, Length: 1},
		{Origin: 1, Destination: 4, Length: 2},
		{Origin: 1, Destination: 5, Length: 3},
	})
}

func TestPlanSingleCourierRouteLineGraph(t *testing.T) {
	g := BuildGraph([]domain.Segment{
		{Origin: 1, Destination: 2, Length: 10},
		{Origin: 2, Destination: 3, Length: 5},
	})
	requests := []domain.DeliveryRequest{
		{ID: 1, Pickup: 2, Delivery: 3, Warehouse: 1, CourierID: courierID(1)},
	}

	route, err := PlanSingleCourierRoute(g, requests)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The return leg 3 -> 1 is stitched as a full road path through 2.
	if fmt.Sprint(route) != "[1 2 3 2 1]" {
		t.Fatalf("route = %v, want [1 2 3 2 1]", route)
	}
	if got := RouteLength(g, route); got != 30 {
		t.Fatalf("length = %v, want 30", got)
	}
}

func TestPlanSingleCourierRouteHonoursPrecedence(t *testing.T) {
	g := starGraph()
	// Node 3 is the closest to the warehouse but is a delivery whose pickup is 4.
	requests := []domain.DeliveryRequest{
		{ID: 1, Pickup: 4, Delivery: 3, Warehouse: 1},
		{ID: 2, Pickup: 5, Delivery: 2, Warehouse: 1},
	}

	route, err := PlanSingleCourierRoute(g, requests)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if fmt.Sprint(route) != "[1 4 1 3 1 5 1 2 1]" {
		t.Fatalf("route = %v, want [1 4 1 3 1 5 1 2 1]", route)
	}

	for _, r := range requests {
		p, d := route.FirstIndex(r.Pickup), route.FirstIndex(r.Delivery)
		if p < 0 || d < 0 {
			t.Fatalf("request %d not fully visited: pickup at %d, delivery at %d", r.ID, p, d)
		}
		if p >= d {
			t.Errorf("request %d: pickup at %d, delivery at %d", r.ID, p, d)
		}
	}
	if route[0] != 1 || route.Last() != 1 {
		t.Errorf("route %v does not start and end at the warehouse", route)
	}
}

func TestPlanSingleCourierRouteSharedPickup(t *testing.T) {
	g := starGraph()
	requests := []domain.DeliveryRequest{
		{ID: 1, Pickup: 3, Delivery: 4, Warehouse: 1},
		{ID: 2, Pickup: 3, Delivery: 5, Warehouse: 1},
	}

	route, err := PlanSingleCourierRoute(g, requests)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The second copy of pickup 3 is reached at zero cost and adds no node.
	if fmt.Sprint(route) != "[1 3 1 4 1 5 1]" {
		t.Fatalf("route = %v, want [1 3 1 4 1 5 1]", route)
	}
}

func TestPlanSingleCourierRouteDisconnectedTarget(t *testing.T) {
	g := BuildGraph([]domain.Segment{
		{Origin: 1, Destination: 2, Length: 1},
		{Origin: 3, Destination: 4, Length: 1},
	})
	requests := []domain.DeliveryRequest{
		{ID: 1, Pickup: 2, Delivery: 4, Warehouse: 1},
	}

	route, err := PlanSingleCourierRoute(g, requests)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Unreachable targets are appended alone rather than rejected.
	if fmt.Sprint(route) != "[1 2 4 1]" {
		t.Fatalf("route = %v, want [1 2 4 1]", route)
	}
}

func TestPlanSingleCourierRouteUsesFirstWarehouse(t *testing.T) {
	g := starGraph()
	requests := []domain.DeliveryRequest{
		{ID: 1, Pickup: 2, Delivery: 3, Warehouse: 1},
		{ID: 2, Pickup: 4, Delivery: 5, Warehouse: 5},
	}

	route, err := PlanSingleCourierRoute(g, requests)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if route[0] != 1 || route.Last() != 1 {
		t.Fatalf("route %v should start and end at warehouse 1", route)
	}
}

func TestPlanSingleCourierRouteNoRequests(t *testing.T) {
	_, err := PlanSingleCourierRoute(starGraph(), nil)
	if !errors.Is(err, domain.ErrNoDeliveryRequests) {
		t.Fatalf("err = %v, want ErrNoDeliveryRequests", err)
	}
}

func TestNearestTargetTieGoesToEarliest(t *testing.T) {
	g := BuildGraph([]domain.Segment{
		{Origin: 1, Destination: 2, Length: 2},
		{Origin: 1, Destination: 3, Length: 2},
		{Origin: 1, Destination: 4, Length: 1},
	})

	if i := nearestTarget(g, 1, []domain.NodeID{3, 2}); i != 0 {
		t.Fatalf("index = %d, want 0", i)
	}
	if i := nearestTarget(g, 1, []domain.NodeID{3, 2, 4}); i != 2 {
		t.Fatalf("index = %d, want 2", i)
	}
	if i := nearestTarget(g, 1, []domain.NodeID{98, 99}); i != 0 {
		t.Fatalf("index = %d, want 0 when nothing is reachable", i)
	}
}
