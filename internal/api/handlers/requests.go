package handlers

import (
	"courier-route-service/internal/api/dto"
	"courier-route-service/internal/domain"
	"courier-route-service/internal/ports"
	"courier-route-service/internal/services"
	"net/http"
)

// RequestHandler lists delivery requests and assigns them to couriers.
type RequestHandler struct {
	Requests ports.DeliveryRequestRepository
	Couriers ports.CourierRepository
}

func toRequestResponse(d domain.DeliveryRequest) dto.DeliveryRequestResponse {
	return dto.DeliveryRequestResponse{
		ID:        d.ID,
		Pickup:    int64(d.Pickup),
		Delivery:  int64(d.Delivery),
		Warehouse: int64(d.Warehouse),
		CourierID: d.CourierID,
	}
}

func (h *RequestHandler) List(w http.ResponseWriter, r *http.Request) {
	if !allowMethods(w, r, http.MethodGet) {
		return
	}

	requests, err := h.Requests.ListDeliveryRequests(r.Context())
	if err != nil {
		writeServiceError(w, r, "list delivery requests", err)
		return
	}

	res := dto.ListDeliveryRequestsResponse{
		Requests: make([]dto.DeliveryRequestResponse, 0, len(requests)),
	}
	for _, d := range requests {
		res.Requests = append(res.Requests, toRequestResponse(d))
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Assign handles PUT /requests/{id}/courier.
func (h *RequestHandler) Assign(w http.ResponseWriter, r *http.Request) {
	if !allowMethods(w, r, http.MethodPut) {
		return
	}

	requestID, ok := parseID(r.PathValue("id"))
	if !ok {
		writeError(w, r, http.StatusBadRequest, "request id must be a positive integer")
		return
	}

	var req dto.AssignCourierRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	updated, err := services.AssignCourier(r.Context(), h.Requests, h.Couriers, requestID, req.CourierID)
	if err != nil {
		writeServiceError(w, r, "assign courier", err)
		return
	}

	writeJSON(w, r, http.StatusOK, toRequestResponse(updated))
}
