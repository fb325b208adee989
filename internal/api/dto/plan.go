package dto

// TotalLength is null when the route jumps between disconnected nodes.
type RoutePlanResponse struct {
	CourierID   int64    `json:"courier_id"`
	Nodes       []int64  `json:"nodes"`
	TotalLength *float64 `json:"total_length"`
}

type ListPlanResponse struct {
	Routes []RoutePlanResponse `json:"routes"`
}
