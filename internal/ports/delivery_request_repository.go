package ports

import (
	"context"
	"courier-route-service/internal/domain"
)

// Port: a boundary for reading and assigning DeliveryRequest entities.
type DeliveryRequestRepository interface {
	// Retrieve all delivery requests available for routing.
	ListDeliveryRequests(ctx context.Context) ([]domain.DeliveryRequest, error)
	// Retrieve one delivery request, or ErrNotFound.
	GetDeliveryRequest(ctx context.Context, id int64) (domain.DeliveryRequest, error)
	// Set the courier of a delivery request and return the updated request.
	AssignCourier(ctx context.Context, requestID, courierID int64) (domain.DeliveryRequest, error)
}
