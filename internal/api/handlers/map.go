package handlers

import (
	"courier-route-service/internal/api/dto"
	"courier-route-service/internal/ports"
	"net/http"
)

// MapHandler exposes the read-only road map.
type MapHandler struct {
	Map ports.MapRepository
}

func (h *MapHandler) Nodes(w http.ResponseWriter, r *http.Request) {
	if !allowMethods(w, r, http.MethodGet) {
		return
	}

	nodes, err := h.Map.ListNodes(r.Context())
	if err != nil {
		writeServiceError(w, r, "list nodes", err)
		return
	}

	res := dto.ListNodesResponse{Nodes: make([]dto.NodeResponse, 0, len(nodes))}
	for _, n := range nodes {
		res.Nodes = append(res.Nodes, dto.NodeResponse{
			ID:        int64(n.ID),
			Latitude:  n.Position.Lat,
			Longitude: n.Position.Lon,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *MapHandler) Segments(w http.ResponseWriter, r *http.Request) {
	if !allowMethods(w, r, http.MethodGet) {
		return
	}

	segments, err := h.Map.ListSegments(r.Context())
	if err != nil {
		writeServiceError(w, r, "list segments", err)
		return
	}

	res := dto.ListSegmentsResponse{Segments: make([]dto.SegmentResponse, 0, len(segments))}
	for _, s := range segments {
		res.Segments = append(res.Segments, dto.SegmentResponse{
			Origin:      int64(s.Origin),
			Destination: int64(s.Destination),
			Length:      s.Length,
			Name:        s.Name,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
