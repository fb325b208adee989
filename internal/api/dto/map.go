package dto

type NodeResponse struct {
	ID        int64   `json:"id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type ListNodesResponse struct {
	Nodes []NodeResponse `json:"nodes"`
}

type SegmentResponse struct {
	Origin      int64   `json:"origin"`
	Destination int64   `json:"destination"`
	Length      float64 `json:"length"`
	Name        string  `json:"name"`
}

type ListSegmentsResponse struct {
	Segments []SegmentResponse `json:"segments"`
}

// Distance is null when to cannot be reached from from.
type PathResponse struct {
	From     int64    `json:"from"`
	To       int64    `json:"to"`
	Distance *float64 `json:"distance"`
	Nodes    []int64  `json:"nodes"`
}
