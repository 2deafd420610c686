package planar

import "fmt"

// Edge is a canonical undirected edge: V1 is always the smaller vertex ID.
// The zero value is not a valid edge; construct edges with [NewEdge] so the
// canonical ordering holds and Edge values remain comparable map keys.
type Edge struct {
	V1 int
	V2 int
}

// NewEdge returns the canonical edge between a and b, regardless of the
// order the endpoints are given in.
func NewEdge(a, b int) Edge {
	if a > b {
		a, b = b, a
	}
	return Edge{V1: a, V2: b}
}

// Contains reports whether id is one of the edge's endpoints.
func (e Edge) Contains(id int) bool { return id == e.V1 || id == e.V2 }

// Other returns the endpoint opposite id. The second return value is false
// when id is not part of the edge.
func (e Edge) Other(id int) (int, bool) {
	switch id {
	case e.V1:
		return e.V2, true
	case e.V2:
		return e.V1, true
	}
	return 0, false
}

// String returns the edge in "v1-v2" form, e.g. "3-7".
func (e Edge) String() string { return fmt.Sprintf("%d-%d", e.V1, e.V2) }
