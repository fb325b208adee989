package repositories

import (
	"courier-route-service/internal/domain"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type SeedNode struct {
	ID        int64   `yaml:"id" json:"id"`
	Latitude  float64 `yaml:"latitude" json:"latitude"`
	Longitude float64 `yaml:"longitude" json:"longitude"`
}

type SeedSegment struct {
	Origin      int64   `yaml:"origin" json:"origin"`
	Destination int64   `yaml:"destination" json:"destination"`
	Length      float64 `yaml:"length" json:"length"`
	Name        string  `yaml:"name" json:"name"`
}

type SeedRequest struct {
	Pickup    int64  `yaml:"pickup" json:"pickup"`
	Delivery  int64  `yaml:"delivery" json:"delivery"`
	Warehouse int64  `yaml:"warehouse" json:"warehouse"`
	Courier   *int64 `yaml:"courier" json:"courier"`
}

type SeedCourier struct {
	ID   int64  `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`
}

// Seed is the demo data set: a road map, a warehouse, requests and couriers.
// Requests without their own warehouse use the seed-level one.
type Seed struct {
	Warehouse int64         `yaml:"warehouse" json:"warehouse"`
	Nodes     []SeedNode    `yaml:"nodes" json:"nodes"`
	Segments  []SeedSegment `yaml:"segments" json:"segments"`
	Requests  []SeedRequest `yaml:"requests" json:"requests"`
	Couriers  []SeedCourier `yaml:"couriers" json:"couriers"`
}

// LoadSeed reads and validates a YAML (or JSON) seed file.
func LoadSeed(path string) (*Seed, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load seed: read %q: %w", path, err)
	}

	var seed Seed
	if err := yaml.Unmarshal(bytes, &seed); err != nil {
		return nil, fmt.Errorf("load seed: parse %q: %w", path, err)
	}

	if err := seed.validate(); err != nil {
		return nil, fmt.Errorf("load seed: %w", err)
	}

	return &seed, nil
}

func (s *Seed) validate() error {
	for i, n := range s.Nodes {
		if n.ID <= 0 {
			return fmt.Errorf("invalid node id at index %d: %d", i+1, n.ID)
		}
	}

	for i, seg := range s.Segments {
		if seg.Origin <= 0 || seg.Destination <= 0 {
			return fmt.Errorf("segment at index %d: origin and destination are required", i+1)
		}
		if seg.Length < 0 {
			return fmt.Errorf("segment at index %d: length must be non-negative, got %v", i+1, seg.Length)
		}
	}

	for i := range s.Requests {
		r := &s.Requests[i]
		if r.Pickup <= 0 || r.Delivery <= 0 {
			return fmt.Errorf("request at index %d: pickup and delivery are required", i+1)
		}
		if r.Warehouse == 0 {
			r.Warehouse = s.Warehouse
		}
		if r.Warehouse <= 0 {
			return fmt.Errorf("request at index %d: no warehouse", i+1)
		}
	}

	for i, c := range s.Couriers {
		if c.ID < 0 {
			return fmt.Errorf("invalid courier id at index %d: %d", i+1, c.ID)
		}
	}

	return nil
}

// Domain converts the seed into domain entities. Request ids are left at 0
// so the target store assigns them.
func (s *Seed) Domain() ([]domain.Node, []domain.Segment, []domain.DeliveryRequest, []domain.Courier) {
	nodes := make([]domain.Node, 0, len(s.Nodes))
	for _, n := range s.Nodes {
		nodes = append(nodes, domain.Node{
			ID:       domain.NodeID(n.ID),
			Position: domain.Coordinates{Lat: n.Latitude, Lon: n.Longitude},
		})
	}

	segments := make([]domain.Segment, 0, len(s.Segments))
	for _, seg := range s.Segments {
		segments = append(segments, domain.Segment{
			Origin:      domain.NodeID(seg.Origin),
			Destination: domain.NodeID(seg.Destination),
			Length:      seg.Length,
			Name:        seg.Name,
		})
	}

	requests := make([]domain.DeliveryRequest, 0, len(s.Requests))
	for _, r := range s.Requests {
		requests = append(requests, domain.DeliveryRequest{
			Pickup:    domain.NodeID(r.Pickup),
			Delivery:  domain.NodeID(r.Delivery),
			Warehouse: domain.NodeID(r.Warehouse),
			CourierID: r.Courier,
		})
	}

	couriers := make([]domain.Courier, 0, len(s.Couriers))
	for i, c := range s.Couriers {
		couriers = append(couriers, domain.NewCourier(c.ID, c.Name, i+1))
	}

	return nodes, segments, requests, couriers
}

// SeedMemory loads the seed into an in-memory store.
func SeedMemory(m *Memory, s *Seed) {
	nodes, segments, requests, couriers := s.Domain()
	m.AddNodes(nodes...)
	m.AddSegments(segments...)
	m.AddCouriers(couriers...)
	m.AddDeliveryRequests(requests...)
}
