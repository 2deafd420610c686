package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/goccy/go-graphviz"

	"github.com/Aayushjha0128/GraphSense/pkg/config"
	"github.com/Aayushjha0128/GraphSense/pkg/observability"
	"github.com/Aayushjha0128/GraphSense/pkg/planar"
)

// ToDOT converts a graph to Graphviz DOT format. Vertex positions are
// pinned with the "!" suffix so the neato engine keeps the embedded
// layout instead of computing its own. The resulting DOT string can be
// rendered with [RenderSVG] or [RenderPNG].
//
// Graphviz puts the origin at the bottom left, so the Y axis is flipped
// relative to the canvas coordinates used everywhere else.
func ToDOT(g *planar.Graph, opts ...Option) string {
	r := renderer{
		palette: config.Default().Palette,
		canvas:  config.Default().Render,
	}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	fmt.Fprintf(&buf, "  bgcolor=%q;\n", r.palette.BackgroundColor)
	fmt.Fprintf(&buf, "  node [shape=circle, style=filled, fixedsize=true, fontname=\"Helvetica\", color=%q];\n", r.palette.EdgeColor)
	fmt.Fprintf(&buf, "  edge [color=%q];\n", r.palette.EdgeColor)
	buf.WriteString("\n")

	for _, v := range g.Vertices() {
		if !r.visible(v.ID) {
			continue
		}
		fill, font := r.palette.VertexColor(v.Color), r.palette.BackgroundColor
		if r.indexMode {
			fill, font = r.palette.BackgroundColor, r.palette.EdgeColor
		}
		fmt.Fprintf(&buf, "  %q [pos=\"%.2f,%.2f!\", width=%.3f, fillcolor=%q, fontcolor=%q, fontsize=%.1f];\n",
			strconv.Itoa(v.ID), v.Pos.X, -v.Pos.Y, v.Diameter/72, fill, font, labelSize(v.Diameter))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		if !r.visible(e.V1) || !r.visible(e.V2) {
			continue
		}
		fmt.Fprintf(&buf, "  %q -- %q;\n", strconv.Itoa(e.V1), strconv.Itoa(e.V2))
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	var buf bytes.Buffer
	if err := renderDOT(dot, graphviz.SVG, &buf); err != nil {
		return nil, err
	}
	return normalizeViewBox(buf.Bytes()), nil
}

// RenderPNG renders a DOT graph to PNG using Graphviz's built-in
// rasterizer.
func RenderPNG(dot string) ([]byte, error) {
	var buf bytes.Buffer
	if err := renderDOT(dot, graphviz.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderDOT(dot string, format graphviz.Format, buf *bytes.Buffer) (err error) {
	began := time.Now()
	observability.Render().OnRenderStart(string(format))
	defer func() {
		size := 0
		if err == nil {
			size = buf.Len()
		}
		observability.Render().OnRenderComplete(string(format), size, time.Since(began), err)
	}()

	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	if err := gv.Render(ctx, g, format, buf); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.-]+)\s+([0-9.-]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the Graphviz SVG header to a zero-origin
// viewBox with explicit pixel dimensions, which embeds cleanly.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
