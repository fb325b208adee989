package ports

import (
	"context"
	"courier-route-service/internal/domain"
)

// Contract for storing planned routes keyed by a fingerprint of the planning inputs.
type RouteCache interface {
	// Return the cached routes for key; ok is false on a miss.
	Get(ctx context.Context, key string) (routes domain.CourierRoutes, ok bool, err error)
	// Store routes under key, replacing any previous value.
	Put(ctx context.Context, key string, routes domain.CourierRoutes) error
}
