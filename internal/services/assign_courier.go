package services

import (
	"context"
	"courier-route-service/internal/domain"
	"courier-route-service/internal/platform/obs"
	"courier-route-service/internal/ports"
	"fmt"
)

// AssignCourier hands a delivery request over to a courier.
// Both must exist; a request already assigned to another courier is reassigned.
func AssignCourier(
	ctx context.Context,
	requests ports.DeliveryRequestRepository,
	couriers ports.CourierRepository,
	requestID int64,
	courierID int64,
) (_ domain.DeliveryRequest, err error) {
	defer obs.Time(ctx, "services.AssignCourier")(&err)

	if _, err := couriers.GetCourier(ctx, courierID); err != nil {
		return domain.DeliveryRequest{}, fmt.Errorf("assign courier: courier %d: %w", courierID, err)
	}

	if _, err := requests.GetDeliveryRequest(ctx, requestID); err != nil {
		return domain.DeliveryRequest{}, fmt.Errorf("assign courier: request %d: %w", requestID, err)
	}

	updated, err := requests.AssignCourier(ctx, requestID, courierID)
	if err != nil {
		return domain.DeliveryRequest{}, fmt.Errorf("assign courier: request %d to courier %d: %w", requestID, courierID, err)
	}

	return updated, nil
}
