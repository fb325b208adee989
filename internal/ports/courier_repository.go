package ports

import (
	"context"
	"courier-route-service/internal/domain"
)

// Port: a boundary for Courier entities.
type CourierRepository interface {
	ListCouriers(ctx context.Context) ([]domain.Courier, error)
	// Retrieve one courier, or ErrNotFound.
	GetCourier(ctx context.Context, id int64) (domain.Courier, error)
	// Persist a new courier. An empty name is replaced by "Courier N".
	CreateCourier(ctx context.Context, name string) (domain.Courier, error)
}
