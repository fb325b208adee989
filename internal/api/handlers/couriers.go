package handlers

import (
	"courier-route-service/internal/api/dto"
	"courier-route-service/internal/ports"
	"net/http"
	"strings"
)

type CourierHandler struct {
	Couriers ports.CourierRepository
}

// Collection serves GET (list) and POST (create) on /couriers.
func (h *CourierHandler) Collection(w http.ResponseWriter, r *http.Request) {
	if !allowMethods(w, r, http.MethodGet, http.MethodPost) {
		return
	}

	if r.Method == http.MethodPost {
		h.create(w, r)
		return
	}

	couriers, err := h.Couriers.ListCouriers(r.Context())
	if err != nil {
		writeServiceError(w, r, "list couriers", err)
		return
	}

	res := dto.ListCouriersResponse{Couriers: make([]dto.CourierResponse, 0, len(couriers))}
	for _, c := range couriers {
		res.Couriers = append(res.Couriers, dto.CourierResponse{ID: c.ID, Name: c.Name})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *CourierHandler) create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCourierRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	c, err := h.Couriers.CreateCourier(r.Context(), strings.TrimSpace(req.Name))
	if err != nil {
		writeServiceError(w, r, "create courier", err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.CourierResponse{ID: c.ID, Name: c.Name})
}
