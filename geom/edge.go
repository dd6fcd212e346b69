package geom

// Vertex is a topological point with exact identity.
//
// Concrete vertex types must be comparable structs of integer or enum
// coordinates, so that equal vertices always yield equal Points. Two
// distinct vertex values may coincide geometrically when the tiling is
// designed that way; they are never merged.
type Vertex interface {
	// Point derives the vertex's rendering coordinate.
	Point() Point
}

// Edge is a directed boundary segment between two vertices.
//
// Direction matters: a segment shared by two cells appears once per cell,
// in opposite directions, which is what makes interior-edge cancellation
// and wall classification possible. Edge is comparable (and usable as a map
// key) as long as the concrete vertex types are.
type Edge struct {
	Start, End Vertex
}

// Reverse returns the edge with Start and End swapped.
func (e Edge) Reverse() Edge {
	return Edge{Start: e.End, End: e.Start}
}

// Link discards the edge's direction, returning the unordered pair of its
// endpoints. Returns ErrSameEndpoints for a degenerate edge.
func (e Edge) Link() (Link[Vertex], error) {
	return NewLink[Vertex](e.Start, e.End)
}
