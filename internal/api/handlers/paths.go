package handlers

import (
	"courier-route-service/internal/api/dto"
	"courier-route-service/internal/domain"
	"courier-route-service/internal/ports"
	"courier-route-service/internal/services"
	"math"
	"net/http"
)

// PathHandler answers point-to-point shortest path queries over the map.
type PathHandler struct {
	Map ports.MapRepository
}

// Get handles GET /paths?from=&to=. Unreachable targets get a null distance
// and no nodes.
func (h *PathHandler) Get(w http.ResponseWriter, r *http.Request) {
	if !allowMethods(w, r, http.MethodGet) {
		return
	}

	q := r.URL.Query()
	from, okFrom := parseID(q.Get("from"))
	to, okTo := parseID(q.Get("to"))
	if !okFrom || !okTo {
		writeError(w, r, http.StatusBadRequest, "from and to must be positive node ids")
		return
	}

	segments, err := h.Map.ListSegments(r.Context())
	if err != nil {
		writeServiceError(w, r, "shortest path", err)
		return
	}

	g := services.BuildGraph(segments)
	start, target := domain.NodeID(from), domain.NodeID(to)

	res := dto.PathResponse{From: from, To: to, Nodes: []int64{}}
	if d := services.ShortestDistance(g, start, target); !math.IsInf(d, 1) {
		res.Distance = &d
		for _, n := range services.ShortestPath(g, start, target) {
			res.Nodes = append(res.Nodes, int64(n))
		}
	}

	writeJSON(w, r, http.StatusOK, res)
}
