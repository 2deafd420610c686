package planar

import "github.com/Aayushjha0128/GraphSense/pkg/geom"

// UpdatePeriphery recomputes the periphery from the current vertex
// positions. With three or more vertices it is the convex hull in clockwise
// order (screen coordinates); vertices strictly inside the hull and
// collinear boundary vertices are excluded. With fewer than three vertices
// the periphery is the vertex IDs in ascending order and carries no
// geometric meaning.
//
// Call this after any structural change or bulk position change. The
// relaxation engine calls it as its first step.
func (g *Graph) UpdatePeriphery() {
	if len(g.vertices) < 3 {
		g.periphery = g.VertexIDs()
		return
	}
	ids := g.VertexIDs()
	pts := make([]geom.Point, len(ids))
	for i, id := range ids {
		pts[i] = g.vertices[id].Pos
	}
	hull := geom.Hull(pts)
	per := make([]int, len(hull))
	for i, idx := range hull {
		per[i] = ids[idx]
	}
	g.periphery = per
}

// Periphery returns a copy of the periphery vertex IDs in clockwise order.
func (g *Graph) Periphery() []int {
	out := make([]int, len(g.periphery))
	copy(out, g.periphery)
	return out
}

// SetPeriphery replaces the periphery verbatim. Snapshot restore uses this
// to preserve the stored order exactly instead of recomputing the hull; the
// IDs are not validated here.
func (g *Graph) SetPeriphery(ids []int) {
	g.periphery = make([]int, len(ids))
	copy(g.periphery, ids)
}

// PeripheryIndex returns the position of id on the periphery, or -1 when id
// is not a periphery vertex.
func (g *Graph) PeripheryIndex(id int) int {
	for i, pid := range g.periphery {
		if pid == id {
			return i
		}
	}
	return -1
}

// OnPeriphery reports whether id is currently a periphery vertex.
func (g *Graph) OnPeriphery(id int) bool { return g.PeripheryIndex(id) >= 0 }

// PeripherySegment returns the periphery vertices from start to end
// inclusive, walking clockwise and wrapping past the end of the cycle when
// needed. When start equals end the segment is that single vertex. An empty
// slice is returned when either endpoint is not on the periphery.
func (g *Graph) PeripherySegment(start, end int) []int {
	si := g.PeripheryIndex(start)
	ei := g.PeripheryIndex(end)
	if si < 0 || ei < 0 {
		return []int{}
	}
	if si <= ei {
		out := make([]int, ei-si+1)
		copy(out, g.periphery[si:ei+1])
		return out
	}
	out := make([]int, 0, len(g.periphery)-si+ei+1)
	out = append(out, g.periphery[si:]...)
	out = append(out, g.periphery[:ei+1]...)
	return out
}

// PeripheryAdjacent reports whether a and b sit next to each other on the
// periphery cycle, including across the wrap point.
func (g *Graph) PeripheryAdjacent(a, b int) bool {
	ai := g.PeripheryIndex(a)
	bi := g.PeripheryIndex(b)
	if ai < 0 || bi < 0 {
		return false
	}
	d := ai - bi
	if d < 0 {
		d = -d
	}
	return d == 1 || d == len(g.periphery)-1
}
