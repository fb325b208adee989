package domain

// NodeID identifies an intersection of the road network.
type NodeID int64

// Represents a vertex of the road network.
// Position is informational; routing only relies on the identifier.
type Node struct {
	ID       NodeID
	Position Coordinates
}

// Represents a road segment between two nodes.
// Segments are traversable in both directions regardless of how they were declared.
type Segment struct {
	Origin      NodeID
	Destination NodeID
	Length      float64
	Name        string
}
