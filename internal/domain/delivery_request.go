package domain

import "fmt"

// Represents a single pickup-and-delivery job.
// The warehouse is where the courier starts and ends its route.
// CourierID stays nil until the request is assigned.
type DeliveryRequest struct {
	ID        int64
	Pickup    NodeID
	Delivery  NodeID
	Warehouse NodeID
	CourierID *int64
}

// AssignedTo reports whether the request is assigned to the given courier.
func (r DeliveryRequest) AssignedTo(courierID int64) bool {
	return r.CourierID != nil && *r.CourierID == courierID
}

func (r DeliveryRequest) String() string {
	courier := "none"
	if r.CourierID != nil {
		courier = fmt.Sprintf("%d", *r.CourierID)
	}
	return fmt.Sprintf(
		"DeliveryRequest(id=%d pickup=%d delivery=%d warehouse=%d courier=%s)",
		r.ID, r.Pickup, r.Delivery, r.Warehouse, courier,
	)
}
