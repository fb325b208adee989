package domain

import "slices"

// Route is the ordered list of nodes one courier travels, from the warehouse back to it.
type Route []NodeID

// FirstIndex returns the position of the first visit to id, or -1.
func (r Route) FirstIndex(id NodeID) int {
	return slices.Index(r, id)
}

// Last returns the final node of the route. The route must not be empty.
func (r Route) Last() NodeID {
	return r[len(r)-1]
}

// CourierRoutes maps a courier id to its planned route.
// Couriers without assigned requests have no entry.
type CourierRoutes map[int64]Route

// CourierIDs returns the planned courier ids in ascending order.
func (cr CourierRoutes) CourierIDs() []int64 {
	ids := make([]int64, 0, len(cr))
	for id := range cr {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Represents the planned route of a single courier along with its road length.
// A RoutePlan is the output of the planning service and contains no side effects.
type RoutePlan struct {
	CourierID   int64
	Route       Route
	TotalLength float64
}
