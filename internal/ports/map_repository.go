package ports

import (
	"context"
	"courier-route-service/internal/domain"
)

// Port: a boundary for reading the road network.
type MapRepository interface {
	// Retrieve every node of the road network.
	ListNodes(ctx context.Context) ([]domain.Node, error)
	// Retrieve every road segment, in insertion order.
	ListSegments(ctx context.Context) ([]domain.Segment, error)
}
