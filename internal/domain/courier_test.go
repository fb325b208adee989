package domain

import (
	"errors"
	"fmt"
	"testing"
)

func ptr(v int64) *int64 { return &v }

func TestCourierRequests(t *testing.T) {
	// build test data
	reqs := []DeliveryRequest{
		{ID: 1, Pickup: 10, Delivery: 11, Warehouse: 1, CourierID: ptr(7)},
		{ID: 2, Pickup: 20, Delivery: 21, Warehouse: 1, CourierID: ptr(8)},
		{ID: 3, Pickup: 30, Delivery: 31, Warehouse: 1},
		{ID: 4, Pickup: 40, Delivery: 41, Warehouse: 1, CourierID: ptr(7)},
	}

	courier := NewCourier(7, "  ", 3)

	// call the method under test
	got := courier.Requests(reqs)

	// verify behavior
	if courier.Name != "Courier 3" {
		t.Errorf("name = %q, want %q", courier.Name, "Courier 3")
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 requests, got %d", len(got))
	}
	if got[0].ID != 1 || got[1].ID != 4 {
		t.Errorf("requests = %v, want ids 1 and 4 in order", got)
	}

	if len(NewCourier(9, "", 1).Requests(reqs)) != 0 {
		t.Errorf("courier without assignments should own no request")
	}
}

func TestRouteHelpers(t *testing.T) {
	r := Route{1, 2, 3, 2, 1}
	if r.FirstIndex(2) != 1 {
		t.Errorf("FirstIndex(2) = %d, want 1", r.FirstIndex(2))
	}
	if r.FirstIndex(9) != -1 {
		t.Errorf("FirstIndex(9) = %d, want -1", r.FirstIndex(9))
	}
	if r.Last() != 1 {
		t.Errorf("Last() = %d, want 1", r.Last())
	}

	cr := CourierRoutes{5: r, 2: r, 9: r}
	ids := cr.CourierIDs()
	if fmt.Sprint(ids) != "[2 5 9]" {
		t.Errorf("CourierIDs() = %v, want [2 5 9]", ids)
	}
}

func TestDomainErrors(t *testing.T) {
	req := DeliveryRequest{ID: 4, Pickup: 99, Delivery: 3, Warehouse: 1, CourierID: ptr(1)}
	var err error = fmt.Errorf("plan routes: %w", &GraphIncompleteError{Request: req, Missing: 99})

	var gie *GraphIncompleteError
	if !errors.As(err, &gie) {
		t.Fatalf("expected GraphIncompleteError in chain, got %v", err)
	}
	if gie.Request.ID != 4 || gie.Missing != 99 {
		t.Errorf("unexpected error payload: %+v", gie)
	}

	want := "graph does not contain node 99 for delivery request: DeliveryRequest(id=4 pickup=99 delivery=3 warehouse=1 courier=1)"
	if gie.Error() != want {
		t.Errorf("message = %q, want %q", gie.Error(), want)
	}
}
