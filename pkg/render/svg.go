// Package render draws graphs. The native [SVG] sink writes the embedded
// layout directly, which keeps output byte-deterministic for caching; the
// Graphviz path ([ToDOT], [RenderSVG], [RenderPNG]) exports the same
// layout with pinned positions for toolchains that speak DOT.
package render

import (
	"bytes"
	"fmt"
	"time"

	"github.com/Aayushjha0128/GraphSense/pkg/config"
	"github.com/Aayushjha0128/GraphSense/pkg/observability"
	"github.com/Aayushjha0128/GraphSense/pkg/planar"
)

// Option configures the SVG sink.
type Option func(*renderer)

type renderer struct {
	palette   config.Palette
	canvas    config.Render
	indexMode bool
	periphery bool
	maxID     int
}

// WithPalette overrides the drawing colors.
func WithPalette(p config.Palette) Option { return func(r *renderer) { r.palette = p } }

// WithCanvas overrides canvas size and stroke widths.
func WithCanvas(c config.Render) Option { return func(r *renderer) { r.canvas = c } }

// WithIndexLabels switches from the color view to the index view: vertices
// render with a neutral fill and their ID as the visual carrier.
func WithIndexLabels() Option { return func(r *renderer) { r.indexMode = true } }

// WithPeripheryHighlight draws a ring through the periphery vertices.
func WithPeripheryHighlight() Option { return func(r *renderer) { r.periphery = true } }

// WithMaxID hides vertices with IDs above id, along with their edges.
// Zero means no limit.
func WithMaxID(id int) Option { return func(r *renderer) { r.maxID = id } }

// SVG renders the graph as a standalone SVG document. Vertices and edges
// are emitted in sorted order, so the same graph and options always
// produce identical bytes.
func SVG(g *planar.Graph, opts ...Option) []byte {
	began := time.Now()
	observability.Render().OnRenderStart("svg")

	r := renderer{
		palette: config.Default().Palette,
		canvas:  config.Default().Render,
	}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		r.canvas.Width, r.canvas.Height, r.canvas.Width, r.canvas.Height)
	fmt.Fprintf(&buf, "  <rect width=\"100%%\" height=\"100%%\" fill=%q/>\n", r.palette.BackgroundColor)

	r.renderEdges(&buf, g)
	if r.periphery {
		r.renderPeripheryRing(&buf, g)
	}
	r.renderVertices(&buf, g)

	buf.WriteString("</svg>\n")
	observability.Render().OnRenderComplete("svg", buf.Len(), time.Since(began), nil)
	return buf.Bytes()
}

// visible reports whether a vertex is under the hide threshold.
func (r *renderer) visible(id int) bool { return r.maxID == 0 || id <= r.maxID }

func (r *renderer) renderEdges(buf *bytes.Buffer, g *planar.Graph) {
	for _, e := range g.Edges() {
		if !r.visible(e.V1) || !r.visible(e.V2) {
			continue
		}
		v1, _ := g.Vertex(e.V1)
		v2, _ := g.Vertex(e.V2)
		fmt.Fprintf(buf, "  <line x1=\"%.2f\" y1=\"%.2f\" x2=\"%.2f\" y2=\"%.2f\" stroke=%q stroke-width=\"%.1f\"/>\n",
			v1.Pos.X, v1.Pos.Y, v2.Pos.X, v2.Pos.Y, r.palette.EdgeColor, r.canvas.EdgeStrokeWidth)
	}
}

func (r *renderer) renderPeripheryRing(buf *bytes.Buffer, g *planar.Graph) {
	var pts []byte
	n := 0
	for _, id := range g.Periphery() {
		if !r.visible(id) {
			continue
		}
		v, ok := g.Vertex(id)
		if !ok {
			continue
		}
		if n > 0 {
			pts = append(pts, ' ')
		}
		pts = fmt.Appendf(pts, "%.2f,%.2f", v.Pos.X, v.Pos.Y)
		n++
	}
	if n < 3 {
		return
	}
	fmt.Fprintf(buf, "  <polygon points=%q fill=\"none\" stroke=%q stroke-width=\"%.1f\" opacity=\"0.6\"/>\n",
		pts, r.palette.PeripheryHighlight, r.canvas.VertexStrokeWidth*2)
}

func (r *renderer) renderVertices(buf *bytes.Buffer, g *planar.Graph) {
	for _, v := range g.Vertices() {
		if !r.visible(v.ID) {
			continue
		}
		fill := r.palette.VertexColor(v.Color)
		label := r.palette.BackgroundColor
		if r.indexMode {
			fill = r.palette.BackgroundColor
			label = r.palette.EdgeColor
		}
		fmt.Fprintf(buf, "  <circle cx=\"%.2f\" cy=\"%.2f\" r=\"%.2f\" fill=%q stroke=%q stroke-width=\"%.1f\"/>\n",
			v.Pos.X, v.Pos.Y, v.Diameter/2, fill, r.palette.EdgeColor, r.canvas.VertexStrokeWidth)
		fmt.Fprintf(buf, "  <text x=\"%.2f\" y=\"%.2f\" text-anchor=\"middle\" dominant-baseline=\"central\" font-family=\"sans-serif\" font-size=\"%.1f\" fill=%q>%d</text>\n",
			v.Pos.X, v.Pos.Y, labelSize(v.Diameter), label, v.ID)
	}
}

// labelSize scales the label with the vertex while keeping it legible.
func labelSize(diameter float64) float64 {
	return min(max(diameter*0.4, 8), 24)
}
