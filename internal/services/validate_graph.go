package services

import "courier-route-service/internal/domain"

// ValidateGraph checks that every pickup and delivery node of requests is in g.
// It stops at the first offending request.
func ValidateGraph(g Graph, requests []domain.DeliveryRequest) error {
	for _, r := range requests {
		if !g.Has(r.Pickup) {
			return &domain.GraphIncompleteError{Request: r, Missing: r.Pickup}
		}
		if !g.Has(r.Delivery) {
			return &domain.GraphIncompleteError{Request: r, Missing: r.Delivery}
		}
	}
	return nil
}
