package layout

import (
	"math"
	"sort"
	"time"

	"github.com/Aayushjha0128/GraphSense/pkg/geom"
	"github.com/Aayushjha0128/GraphSense/pkg/observability"
	"github.com/Aayushjha0128/GraphSense/pkg/planar"
)

// Redraw runs one relaxation pass over g. Graphs with fewer than three
// vertices are left untouched. The pass order is fixed: periphery update,
// angular rebalance, edge length adjustment, convexity maintenance,
// diameter refresh. Each step is bounded, so a pass always terminates in
// time linear in vertices plus edges (times the fixed LengthPasses count).
func (e *Engine) Redraw(g *planar.Graph) {
	if g.VertexCount() < 3 {
		return
	}
	began := time.Now()
	g.UpdatePeriphery()
	e.rebalanceAngles(g)
	e.adjustEdgeLengths(g)
	e.maintainConvexity(g)
	refreshDiameters(g)
	observability.Build().OnRelax(g.VertexCount(), time.Since(began))
}

// neighborAngle pairs a neighbor with its bearing from the center vertex.
type neighborAngle struct {
	angle float64
	id    int
}

// rebalanceAngles opens up pairs of edges that meet at less than MinAngle.
// For every vertex the bearings to its neighbors are snapshotted and
// sorted; each circular gap below the minimum rotates the two flanking
// neighbors apart by a quarter of MinAngle, re-placing both at the average
// of their current distances from the center. Gaps are judged against the
// snapshot even though adjustments move neighbors, which keeps every pass
// a single sweep.
func (e *Engine) rebalanceAngles(g *planar.Graph) {
	for _, id := range g.VertexIDs() {
		center, _ := g.Vertex(id)
		neighbors := g.Neighbors(id)
		if len(neighbors) < 2 {
			continue
		}

		angles := make([]neighborAngle, 0, len(neighbors))
		for _, nid := range neighbors {
			n, _ := g.Vertex(nid)
			d := n.Pos.Sub(center.Pos)
			angles = append(angles, neighborAngle{angle: math.Atan2(d.Y, d.X), id: nid})
		}
		sort.Slice(angles, func(i, j int) bool {
			if angles[i].angle != angles[j].angle {
				return angles[i].angle < angles[j].angle
			}
			return angles[i].id < angles[j].id
		})

		for i := range angles {
			next := angles[(i+1)%len(angles)]
			gap := next.angle - angles[i].angle
			if gap < 0 {
				gap += 2 * math.Pi
			}
			if gap < e.cfg.MinAngle {
				e.widenAngle(g, center, angles[i].id, next.id)
			}
		}
	}
}

// widenAngle rotates n1 away clockwise and n2 counterclockwise around the
// center by MinAngle/4 each, placing both at the average of their current
// center distances. Neighbors coincident with the center are left alone.
func (e *Engine) widenAngle(g *planar.Graph, center *planar.Vertex, n1ID, n2ID int) {
	n1, _ := g.Vertex(n1ID)
	n2, _ := g.Vertex(n2ID)

	d1 := n1.Pos.Sub(center.Pos)
	d2 := n2.Pos.Sub(center.Pos)
	if d1.Length() == 0 || d2.Length() == 0 {
		return
	}

	rot := e.cfg.MinAngle / 4
	u1 := geom.Rotate(d1.Normalize(), geom.Point{}, -rot)
	u2 := geom.Rotate(d2.Normalize(), geom.Point{}, rot)

	avg := (d1.Length() + d2.Length()) / 2
	n1.Pos = center.Pos.Add(u1.Scale(avg))
	n2.Pos = center.Pos.Add(u2.Scale(avg))
}

// adjustEdgeLengths pulls edges whose length deviates more than
// EdgeTolerance from the mean back to exactly the mean, recentering both
// endpoints around the edge midpoint. The mean is computed once up front;
// LengthPasses sweeps run over the canonical edge order. Zero length edges
// have no direction to adjust along and are skipped.
func (e *Engine) adjustEdgeLengths(g *planar.Graph) {
	target := g.AverageEdgeLength()
	if target == 0 {
		return
	}
	for range e.cfg.LengthPasses {
		for _, edge := range g.Edges() {
			v1, _ := g.Vertex(edge.V1)
			v2, _ := g.Vertex(edge.V2)

			length := v1.Pos.Distance(v2.Pos)
			if math.Abs(length/target-1) <= e.cfg.EdgeTolerance {
				continue
			}
			dir := v2.Pos.Sub(v1.Pos)
			if dir.Length() == 0 {
				continue
			}
			dir = dir.Normalize()
			mid := v1.Pos.Midpoint(v2.Pos)
			half := target / 2
			v1.Pos = mid.Sub(dir.Scale(half))
			v2.Pos = mid.Add(dir.Scale(half))
		}
	}
}

// maintainConvexity walks consecutive periphery triples and pushes the
// middle vertex of any concave turn (negative cross product in screen
// coordinates) outward from the graph centroid by ConvexityPush units. The
// centroid is recomputed per push because earlier pushes shift it.
func (e *Engine) maintainConvexity(g *planar.Graph) {
	periphery := g.Periphery()
	n := len(periphery)
	if n < 3 {
		return
	}
	for i := range n {
		prev, _ := g.Vertex(periphery[(i-1+n)%n])
		curr, _ := g.Vertex(periphery[i])
		next, _ := g.Vertex(periphery[(i+1)%n])

		cross := curr.Pos.Sub(prev.Pos).Cross(next.Pos.Sub(curr.Pos))
		if cross >= 0 {
			continue
		}
		out := curr.Pos.Sub(g.Centroid())
		if out.Length() == 0 {
			continue
		}
		curr.Pos = curr.Pos.Add(out.Normalize().Scale(e.cfg.ConvexityPush))
	}
}

// refreshDiameters re-derives every draw diameter from its vertex ID.
// Restored snapshots may carry diameters that predate a format change;
// growth never changes an existing ID, so this is usually a no-op.
func refreshDiameters(g *planar.Graph) {
	for _, v := range g.Vertices() {
		v.Diameter = planar.DiameterFor(v.ID)
	}
}
