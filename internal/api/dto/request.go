package dto

type DeliveryRequestResponse struct {
	ID        int64  `json:"id"`
	Pickup    int64  `json:"pickup"`
	Delivery  int64  `json:"delivery"`
	Warehouse int64  `json:"warehouse"`
	CourierID *int64 `json:"courier_id"`
}

type ListDeliveryRequestsResponse struct {
	Requests []DeliveryRequestResponse `json:"requests"`
}

type AssignCourierRequest struct {
	CourierID int64 `json:"courier_id" validate:"required,gt=0"`
}
