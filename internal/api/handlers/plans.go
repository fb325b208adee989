package handlers

import (
	"courier-route-service/internal/api/dto"
	"courier-route-service/internal/services"
	"math"
	"net/http"
)

type PlanHandler struct {
	Deps services.PlanDeliveriesDeps
}

// Plan computes one route per courier from the stored map, requests and
// assignments. Rejected inputs are answered with 409 or 422.
func (h *PlanHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if !allowMethods(w, r, http.MethodPost) {
		return
	}

	plans, err := services.PlanDeliveries(r.Context(), h.Deps)
	if err != nil {
		writeServiceError(w, r, "plan deliveries", err)
		return
	}

	res := dto.ListPlanResponse{Routes: make([]dto.RoutePlanResponse, 0, len(plans))}
	for _, p := range plans {
		nodes := make([]int64, 0, len(p.Route))
		for _, n := range p.Route {
			nodes = append(nodes, int64(n))
		}

		route := dto.RoutePlanResponse{CourierID: p.CourierID, Nodes: nodes}
		if !math.IsInf(p.TotalLength, 1) {
			length := p.TotalLength
			route.TotalLength = &length
		}
		res.Routes = append(res.Routes, route)
	}

	writeJSON(w, r, http.StatusOK, res)
}
