package planar

import "errors"

var (
	// ErrVertexNotFound is returned by [Graph.AddEdge] when one or both
	// endpoints do not exist in the graph.
	ErrVertexNotFound = errors.New("vertex not found")

	// ErrDanglingEdge is returned by [Graph.Validate] when an edge
	// references a vertex that does not exist. This indicates corruption,
	// typically from a hand-edited snapshot.
	ErrDanglingEdge = errors.New("edge references missing vertex")

	// ErrIsolatedVertex is returned by [Graph.Validate] when a graph with
	// more than one vertex contains a vertex with no incident edges.
	ErrIsolatedVertex = errors.New("isolated vertex")

	// ErrAsymmetricAdjacency is returned by [Graph.Validate] when the
	// adjacency index disagrees with the edge set.
	ErrAsymmetricAdjacency = errors.New("adjacency index out of sync with edges")

	// ErrInvalidPeriphery is returned by [Graph.Validate] when a graph with
	// three or more vertices has fewer than three periphery vertices, or
	// the periphery names a vertex that does not exist.
	ErrInvalidPeriphery = errors.New("invalid periphery")
)
