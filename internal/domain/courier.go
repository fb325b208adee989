package domain

import (
	"fmt"
	"strings"
)

// A courier travels one route per planning run, carrying the requests assigned to it.
type Courier struct {
	ID   int64
	Name string
}

// NewCourier builds a courier, naming it after its position when no name is given.
func NewCourier(id int64, name string, position int) Courier {
	name = strings.TrimSpace(name)
	if name == "" {
		name = fmt.Sprintf("Courier %d", position)
	}
	return Courier{ID: id, Name: name}
}

// Requests returns the subset of requests assigned to the courier, preserving order.
func (c Courier) Requests(all []DeliveryRequest) []DeliveryRequest {
	var out []DeliveryRequest
	for _, r := range all {
		if r.AssignedTo(c.ID) {
			out = append(out, r)
		}
	}
	return out
}
