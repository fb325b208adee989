package repositories

import (
	"context"
	"courier-route-service/internal/domain"
	"courier-route-service/internal/ports"
	"fmt"
	"slices"
	"sync"
)

// Memory is an in-memory implementation of the map, delivery request and
// courier repository ports. It is used for local runs without DATABASE_URL
// and in tests. Memory is safe for concurrent use.
type Memory struct {
	mu            sync.RWMutex
	nodes         []domain.Node
	segments      []domain.Segment
	requests      []domain.DeliveryRequest
	couriers      []domain.Courier
	nextRequestID int64
	nextCourierID int64
}

func NewMemory() *Memory {
	return &Memory{nextRequestID: 1, nextCourierID: 1}
}

func (m *Memory) AddNodes(nodes ...domain.Node) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nodes = append(m.nodes, nodes...)
}

func (m *Memory) AddSegments(segments ...domain.Segment) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.segments = append(m.segments, segments...)
}

// AddDeliveryRequests stores requests, assigning ids to those with ID 0.
func (m *Memory) AddDeliveryRequests(requests ...domain.DeliveryRequest) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range requests {
		if r.ID == 0 {
			r.ID = m.nextRequestID
		}
		if r.ID >= m.nextRequestID {
			m.nextRequestID = r.ID + 1
		}
		m.requests = append(m.requests, cloneRequest(r))
	}
}

// AddCouriers stores couriers, assigning ids to those with ID 0.
func (m *Memory) AddCouriers(couriers ...domain.Courier) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range couriers {
		if c.ID == 0 {
			c.ID = m.nextCourierID
		}
		if c.ID >= m.nextCourierID {
			m.nextCourierID = c.ID + 1
		}
		m.couriers = append(m.couriers, c)
	}
}

func (m *Memory) ListNodes(ctx context.Context) ([]domain.Node, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.nodes), nil
}

func (m *Memory) ListSegments(ctx context.Context) ([]domain.Segment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.segments), nil
}

func (m *Memory) ListDeliveryRequests(ctx context.Context) ([]domain.DeliveryRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.DeliveryRequest, 0, len(m.requests))
	for _, r := range m.requests {
		out = append(out, cloneRequest(r))
	}
	return out, nil
}

func (m *Memory) GetDeliveryRequest(ctx context.Context, id int64) (domain.DeliveryRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, r := range m.requests {
		if r.ID == id {
			return cloneRequest(r), nil
		}
	}
	return domain.DeliveryRequest{}, fmt.Errorf("delivery request %d: %w", id, ports.ErrNotFound)
}

func (m *Memory) AssignCourier(ctx context.Context, requestID, courierID int64) (domain.DeliveryRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.requests {
		if m.requests[i].ID == requestID {
			id := courierID
			m.requests[i].CourierID = &id
			return cloneRequest(m.requests[i]), nil
		}
	}
	return domain.DeliveryRequest{}, fmt.Errorf("delivery request %d: %w", requestID, ports.ErrNotFound)
}

func (m *Memory) ListCouriers(ctx context.Context) ([]domain.Courier, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.couriers), nil
}

func (m *Memory) GetCourier(ctx context.Context, id int64) (domain.Courier, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, c := range m.couriers {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.Courier{}, fmt.Errorf("courier %d: %w", id, ports.ErrNotFound)
}

func (m *Memory) CreateCourier(ctx context.Context, name string) (domain.Courier, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := domain.NewCourier(m.nextCourierID, name, int(m.nextCourierID))
	m.nextCourierID++
	m.couriers = append(m.couriers, c)
	return c, nil
}

func cloneRequest(r domain.DeliveryRequest) domain.DeliveryRequest {
	if r.CourierID != nil {
		id := *r.CourierID
		r.CourierID = &id
	}
	return r
}
