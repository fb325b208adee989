package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNoDeliveryRequests is returned when planning is invoked without any request.
	ErrNoDeliveryRequests = errors.New("no delivery requests found")
	// ErrNoCouriers is returned when planning is invoked without any courier.
	ErrNoCouriers = errors.New("no couriers found")
	// ErrNoAssignedCourier is returned when no request is assigned to a known courier.
	ErrNoAssignedCourier = errors.New("no courier has an assigned delivery request")
)

// GraphIncompleteError reports a request whose pickup or delivery node is missing from the road graph.
type GraphIncompleteError struct {
	Request DeliveryRequest
	Missing NodeID
}

func (e *GraphIncompleteError) Error() string {
	return fmt.Sprintf("graph does not contain node %d for delivery request: %s", e.Missing, e.Request)
}

// PlannerInconsistencyError reports a revisited pickup node that no request references.
type PlannerInconsistencyError struct {
	NodeID NodeID
}

func (e *PlannerInconsistencyError) Error() string {
	return fmt.Sprintf("delivery request not found for pickup node %d", e.NodeID)
}
