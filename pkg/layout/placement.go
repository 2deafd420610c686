package layout

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/Aayushjha0128/GraphSense/pkg/geom"
	"github.com/Aayushjha0128/GraphSense/pkg/planar"
)

var (
	// ErrInvalidSegment is returned by [Engine.PlacePosition] when the
	// requested periphery segment resolves to fewer than two vertices,
	// which happens when an endpoint is off the periphery or start and
	// end name the same vertex.
	ErrInvalidSegment = errors.New("invalid periphery segment")

	// ErrPeripheryTooSmall is returned by [RandomSegment] when the
	// periphery has fewer than two vertices, so no segment exists to
	// attach to.
	ErrPeripheryTooSmall = errors.New("periphery has too few vertices")
)

// Engine runs placement and relaxation against a graph. Engines are
// stateless apart from their configuration and may be shared across graphs,
// though each graph must still be driven from a single goroutine.
type Engine struct {
	cfg Config
}

// New returns an engine using cfg, or [DefaultConfig] when cfg is nil.
func New(cfg *Config) *Engine {
	if cfg == nil {
		c := DefaultConfig()
		return &Engine{cfg: c}
	}
	return &Engine{cfg: *cfg}
}

// Config returns the engine's tuning.
func (e *Engine) Config() Config { return e.cfg }

// PlacePosition computes where a vertex attaching to the clockwise
// periphery segment from start to end should be placed: outward from the
// segment centroid, perpendicular to the start-end chord, at
// PlacementStretch times the average edge length (DefaultEdgeLength when
// the graph has no edges), then pushed to at least VertexSeparation away
// from every existing vertex.
func (e *Engine) PlacePosition(g *planar.Graph, start, end int) (geom.Point, error) {
	segment := g.PeripherySegment(start, end)
	if len(segment) < 2 {
		return geom.Point{}, fmt.Errorf("segment %d..%d: %w", start, end, ErrInvalidSegment)
	}

	pts := make([]geom.Point, len(segment))
	for i, id := range segment {
		v, _ := g.Vertex(id)
		pts[i] = v.Pos
	}
	centroid := geom.Centroid(pts)

	target := g.AverageEdgeLength()
	if target == 0 {
		target = e.cfg.DefaultEdgeLength
	}

	sv, _ := g.Vertex(start)
	ev, _ := g.Vertex(end)
	chord := ev.Pos.Sub(sv.Pos)

	// Degenerate chord: fall back to straight down, the same arbitrary
	// but fixed direction the separation push can then correct.
	perp := geom.Point{X: 0, Y: 1}
	if chord.Length() > 0 {
		perp = chord.Normalize().Perp()
	}
	if perp.Dot(g.Centroid().Sub(centroid)) > 0 {
		perp = perp.Scale(-1)
	}

	pos := centroid.Add(perp.Scale(target * e.cfg.PlacementStretch))
	return e.separate(g, pos), nil
}

// separate pushes pos away from every vertex closer than the separation
// minimum. Vertices are visited in ID order so the result is deterministic;
// a vertex exactly coincident with pos is skipped because no push direction
// exists.
func (e *Engine) separate(g *planar.Graph, pos geom.Point) geom.Point {
	for _, id := range g.VertexIDs() {
		v, _ := g.Vertex(id)
		if pos.Distance(v.Pos) >= e.cfg.VertexSeparation {
			continue
		}
		dir := pos.Sub(v.Pos)
		if dir.Length() == 0 {
			continue
		}
		pos = v.Pos.Add(dir.Normalize().Scale(e.cfg.VertexSeparation))
	}
	return pos
}

// RandomSegment picks a uniformly random adjacent periphery pair (start,
// end) in clockwise order. The caller owns the random source, which keeps
// growth reproducible under a fixed seed.
func RandomSegment(g *planar.Graph, rng *rand.Rand) (int, int, error) {
	periphery := g.Periphery()
	if len(periphery) < 2 {
		return 0, 0, fmt.Errorf("%d periphery vertices: %w", len(periphery), ErrPeripheryTooSmall)
	}
	i := rng.IntN(len(periphery))
	return periphery[i], periphery[(i+1)%len(periphery)], nil
}
