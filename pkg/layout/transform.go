package layout

import (
	"github.com/Aayushjha0128/GraphSense/pkg/geom"
	"github.com/Aayushjha0128/GraphSense/pkg/planar"
)

// Scale multiplies every vertex position by factor relative to center.
// Structure and the periphery order are unaffected because scaling about a
// point preserves hull membership and winding.
func Scale(g *planar.Graph, factor float64, center geom.Point) {
	for _, v := range g.Vertices() {
		v.Pos = center.Add(v.Pos.Sub(center).Scale(factor))
	}
}

// Translate shifts every vertex position by (dx, dy).
func Translate(g *planar.Graph, dx, dy float64) {
	for _, v := range g.Vertices() {
		v.Pos = v.Pos.Add(geom.Point{X: dx, Y: dy})
	}
}

// FitToBounds scales and recenters the graph so it fills FitPadding of
// bounds. The scale step runs about the current bounding box center and is
// skipped when the graph has zero extent in either axis (a single vertex
// or a collinear axis-aligned line); the translation to the bounds center
// always runs. An empty graph is left untouched.
func (e *Engine) FitToBounds(g *planar.Graph, bounds geom.Rect) {
	bbox, ok := g.Bounds()
	if !ok {
		return
	}

	if bbox.Width() > 0 && bbox.Height() > 0 {
		sx := bounds.Width() * e.cfg.FitPadding / bbox.Width()
		sy := bounds.Height() * e.cfg.FitPadding / bbox.Height()
		Scale(g, min(sx, sy), bbox.Center())
	}

	// The bounding box moved if we scaled; recompute before centering.
	bbox, _ = g.Bounds()
	delta := bounds.Center().Sub(bbox.Center())
	Translate(g, delta.X, delta.Y)
}
