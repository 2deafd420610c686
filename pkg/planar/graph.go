package planar

import (
	"fmt"
	"math"
	"sort"

	"github.com/Aayushjha0128/GraphSense/pkg/geom"
)

// Layout constants for the seed triangle. The canvas the original layout is
// tuned for is 800x600, so the triangle is centered at (400, 300).
const (
	TriangleCenterX = 400
	TriangleCenterY = 300
	TriangleRadius  = 100
)

// Graph is a planar triangulated graph with periphery tracking. The zero
// value is not usable; call [New].
type Graph struct {
	vertices  map[int]*Vertex
	edges     map[Edge]struct{}
	adjacency map[int]map[int]struct{}
	periphery []int
	nextID    int
}

// New returns an empty graph. Vertex IDs start at 1.
func New() *Graph {
	return &Graph{
		vertices:  make(map[int]*Vertex),
		edges:     make(map[Edge]struct{}),
		adjacency: make(map[int]map[int]struct{}),
		nextID:    1,
	}
}

// AddVertex creates a vertex at the given position with the given palette
// color and returns its ID. IDs are allocated monotonically and never
// reused, even after removals.
func (g *Graph) AddVertex(x, y float64, color int) int {
	id := g.nextID
	g.nextID++
	g.vertices[id] = &Vertex{
		ID:       id,
		Pos:      geom.Point{X: x, Y: y},
		Color:    color,
		Diameter: DiameterFor(id),
	}
	g.adjacency[id] = make(map[int]struct{})
	return id
}

// PutVertex inserts v verbatim, overwriting any vertex with the same ID and
// initializing an empty adjacency set for new IDs. The ID counter is bumped
// past v.ID so later allocations cannot collide. Snapshot restore uses this
// to rebuild a graph exactly; normal growth should use [Graph.AddVertex].
func (g *Graph) PutVertex(v Vertex) {
	if _, ok := g.adjacency[v.ID]; !ok {
		g.adjacency[v.ID] = make(map[int]struct{})
	}
	vv := v
	g.vertices[v.ID] = &vv
	if v.ID >= g.nextID {
		g.nextID = v.ID + 1
	}
}

// AddEdge adds the canonical undirected edge between a and b. It returns
// true when the edge was added, false without error when the edge already
// exists or a == b, and [ErrVertexNotFound] when either endpoint is
// missing. The graph is never partially mutated.
func (g *Graph) AddEdge(a, b int) (bool, error) {
	if _, ok := g.vertices[a]; !ok {
		return false, fmt.Errorf("add edge %d-%d: %w", a, b, ErrVertexNotFound)
	}
	if _, ok := g.vertices[b]; !ok {
		return false, fmt.Errorf("add edge %d-%d: %w", a, b, ErrVertexNotFound)
	}
	if a == b {
		return false, nil
	}
	e := NewEdge(a, b)
	if _, ok := g.edges[e]; ok {
		return false, nil
	}
	g.edges[e] = struct{}{}
	g.adjacency[a][b] = struct{}{}
	g.adjacency[b][a] = struct{}{}
	return true, nil
}

// RemoveVertex deletes the vertex, its incident edges, and its periphery
// slot. Removing an unknown ID is a no-op.
func (g *Graph) RemoveVertex(id int) {
	if _, ok := g.vertices[id]; !ok {
		return
	}
	for e := range g.edges {
		if e.Contains(id) {
			delete(g.edges, e)
		}
	}
	for n := range g.adjacency[id] {
		delete(g.adjacency[n], id)
	}
	delete(g.vertices, id)
	delete(g.adjacency, id)
	for i, pid := range g.periphery {
		if pid == id {
			g.periphery = append(g.periphery[:i], g.periphery[i+1:]...)
			break
		}
	}
}

// Vertex returns the vertex with the given ID. Callers may move the vertex
// by writing Pos through the returned pointer.
func (g *Graph) Vertex(id int) (*Vertex, bool) {
	v, ok := g.vertices[id]
	return v, ok
}

// HasEdge reports whether the undirected edge between a and b exists.
func (g *Graph) HasEdge(a, b int) bool {
	_, ok := g.edges[NewEdge(a, b)]
	return ok
}

// Neighbors returns the IDs adjacent to id in ascending order. Unknown IDs
// yield an empty slice.
func (g *Graph) Neighbors(id int) []int {
	adj := g.adjacency[id]
	out := make([]int, 0, len(adj))
	for n := range adj {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

// Degree returns the number of edges incident to id.
func (g *Graph) Degree(id int) int { return len(g.adjacency[id]) }

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// NextID returns the ID the next [Graph.AddVertex] call will assign.
func (g *Graph) NextID() int { return g.nextID }

// SetNextID overrides the ID counter. Snapshot restore uses this to carry
// the counter over verbatim; lowering it below existing IDs breaks the
// no-reuse guarantee and is the caller's responsibility.
func (g *Graph) SetNextID(n int) { g.nextID = n }

// VertexIDs returns all vertex IDs in ascending order.
func (g *Graph) VertexIDs() []int {
	ids := make([]int, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Vertices returns all vertices in ascending ID order.
func (g *Graph) Vertices() []*Vertex {
	out := make([]*Vertex, 0, len(g.vertices))
	for _, id := range g.VertexIDs() {
		out = append(out, g.vertices[id])
	}
	return out
}

// Edges returns all edges sorted by (V1, V2).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, len(g.edges))
	for e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].V1 != out[j].V1 {
			return out[i].V1 < out[j].V1
		}
		return out[i].V2 < out[j].V2
	})
	return out
}

// Centroid returns the mean position of all vertices, or the zero point for
// an empty graph.
func (g *Graph) Centroid() geom.Point {
	if len(g.vertices) == 0 {
		return geom.Point{}
	}
	var c geom.Point
	for _, v := range g.vertices {
		c.X += v.Pos.X
		c.Y += v.Pos.Y
	}
	n := float64(len(g.vertices))
	return geom.Point{X: c.X / n, Y: c.Y / n}
}

// Bounds returns the bounding box of all vertex positions. The second
// return value is false for an empty graph.
func (g *Graph) Bounds() (geom.Rect, bool) {
	pts := make([]geom.Point, 0, len(g.vertices))
	for _, v := range g.vertices {
		pts = append(pts, v.Pos)
	}
	return geom.Bounds(pts)
}

// Clear removes all vertices and edges and resets the ID counter to 1.
func (g *Graph) Clear() {
	g.vertices = make(map[int]*Vertex)
	g.edges = make(map[Edge]struct{})
	g.adjacency = make(map[int]map[int]struct{})
	g.periphery = nil
	g.nextID = 1
}

// InitialTriangle resets the graph to the seed state: three fully connected
// vertices 120 degrees apart on a circle of radius [TriangleRadius] around
// ([TriangleCenterX], [TriangleCenterY]), all in palette color 1. The
// periphery is recomputed afterwards.
func (g *Graph) InitialTriangle() {
	g.Clear()
	for i := 0; i < 3; i++ {
		angle := float64(i) * 2 * math.Pi / 3
		x := TriangleCenterX + TriangleRadius*math.Cos(angle)
		y := TriangleCenterY + TriangleRadius*math.Sin(angle)
		g.AddVertex(x, y, 1)
	}
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(3, 1)
	g.UpdatePeriphery()
}

// CheckPlanar reports whether the graph is planar. Growth through periphery
// segments cannot introduce crossings, so this is a documented stub that
// always returns true rather than a real crossing test.
func (g *Graph) CheckPlanar() bool { return true }

// Validate checks structural integrity: every edge endpoint exists, the
// adjacency index mirrors the edge set, no vertex is isolated when the
// graph has more than one, and a graph of three or more vertices has a
// periphery of at least three existing vertices. The first violation found
// is returned as a wrapped sentinel error.
func (g *Graph) Validate() error {
	for e := range g.edges {
		if _, ok := g.vertices[e.V1]; !ok {
			return fmt.Errorf("edge %s: %w", e, ErrDanglingEdge)
		}
		if _, ok := g.vertices[e.V2]; !ok {
			return fmt.Errorf("edge %s: %w", e, ErrDanglingEdge)
		}
		if _, ok := g.adjacency[e.V1][e.V2]; !ok {
			return fmt.Errorf("edge %s: %w", e, ErrAsymmetricAdjacency)
		}
		if _, ok := g.adjacency[e.V2][e.V1]; !ok {
			return fmt.Errorf("edge %s: %w", e, ErrAsymmetricAdjacency)
		}
	}
	for id, adj := range g.adjacency {
		for n := range adj {
			if !g.HasEdge(id, n) {
				return fmt.Errorf("vertex %d neighbor %d: %w", id, n, ErrAsymmetricAdjacency)
			}
		}
	}
	if len(g.vertices) > 1 {
		for _, id := range g.VertexIDs() {
			if len(g.adjacency[id]) == 0 {
				return fmt.Errorf("vertex %d: %w", id, ErrIsolatedVertex)
			}
		}
	}
	if len(g.vertices) >= 3 {
		if len(g.periphery) < 3 {
			return fmt.Errorf("%d periphery vertices for %d graph vertices: %w",
				len(g.periphery), len(g.vertices), ErrInvalidPeriphery)
		}
	}
	for _, id := range g.periphery {
		if _, ok := g.vertices[id]; !ok {
			return fmt.Errorf("periphery vertex %d: %w", id, ErrInvalidPeriphery)
		}
	}
	return nil
}
