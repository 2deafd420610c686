// Package builder orchestrates graph growth: it seeds the initial
// triangle, picks or validates periphery segments, places vertices through
// the layout engine, and runs the relaxation pass after every insertion.
//
// Failed insertions never leave partial state behind. All validation and
// placement runs before the first structural mutation, and the mutations
// that follow (add vertex, connect segment, relax) cannot fail.
package builder

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/Aayushjha0128/GraphSense/pkg/layout"
	"github.com/Aayushjha0128/GraphSense/pkg/observability"
	"github.com/Aayushjha0128/GraphSense/pkg/planar"
)

var (
	// ErrNotOnPeriphery is returned by [Builder.AddManualVertex] when a
	// named attachment vertex is not currently on the periphery.
	ErrNotOnPeriphery = errors.New("vertex not on periphery")

	// ErrNotAdjacent is returned by [Builder.AddManualVertex] when the two
	// attachment vertices are on the periphery but not next to each other
	// on the cycle.
	ErrNotAdjacent = errors.New("vertices not adjacent on periphery")
)

// paletteSize is the number of vertex colors new vertices draw from.
const paletteSize = 4

// Builder grows a single graph. It is not safe for concurrent use; wrap it
// in a session lock when sharing across goroutines.
type Builder struct {
	graph  *planar.Graph
	engine *layout.Engine
	rng    *rand.Rand
}

// New returns a builder growing g through engine. A nil engine gets the
// default layout tuning. The seed fixes the random source so segment picks
// and vertex colors replay identically.
func New(g *planar.Graph, engine *layout.Engine, seed uint64) *Builder {
	if engine == nil {
		engine = layout.New(nil)
	}
	return &Builder{
		graph:  g,
		engine: engine,
		rng:    rand.New(rand.NewPCG(seed, seed^0xdeadbeef)),
	}
}

// Graph returns the graph being grown.
func (b *Builder) Graph() *planar.Graph { return b.graph }

// Engine returns the layout engine in use.
func (b *Builder) Engine() *layout.Engine { return b.engine }

// StartTriangle resets the graph to the seed triangle.
func (b *Builder) StartTriangle() { b.graph.InitialTriangle() }

// AddRandomVertex grows the graph at a uniformly random periphery segment:
// an adjacent pair (start, end) is drawn, a position outside that segment
// is computed, and the new vertex is connected to both segment vertices
// before one relaxation pass runs. It returns the new vertex ID.
//
// The error is [layout.ErrPeripheryTooSmall] when the periphery has fewer
// than two vertices; the graph is then unchanged.
func (b *Builder) AddRandomVertex() (int, error) {
	start, end, err := layout.RandomSegment(b.graph, b.rng)
	if err != nil {
		return 0, err
	}
	return b.insert(start, end)
}

// AddManualVertex grows the graph at the chosen periphery segment. Start
// and end must both be periphery vertices and adjacent on the cycle; the
// new vertex connects to every vertex of the clockwise segment from start
// to end, which wraps the long way around when start follows end. On any
// error the graph is unchanged.
func (b *Builder) AddManualVertex(start, end int) (int, error) {
	if !b.graph.OnPeriphery(start) {
		return 0, fmt.Errorf("vertex %d: %w", start, ErrNotOnPeriphery)
	}
	if !b.graph.OnPeriphery(end) {
		return 0, fmt.Errorf("vertex %d: %w", end, ErrNotOnPeriphery)
	}
	if !b.graph.PeripheryAdjacent(start, end) {
		return 0, fmt.Errorf("vertices %d and %d: %w", start, end, ErrNotAdjacent)
	}
	return b.insert(start, end)
}

// insert does the shared insertion work. Placement runs first and is the
// last failure point; everything after mutates unconditionally.
func (b *Builder) insert(start, end int) (int, error) {
	began := time.Now()
	observability.Build().OnInsertStart(start, end)

	pos, err := b.engine.PlacePosition(b.graph, start, end)
	if err != nil {
		observability.Build().OnInsertComplete(0, 0, time.Since(began), err)
		return 0, err
	}

	id := b.graph.AddVertex(pos.X, pos.Y, b.randomColor())
	segment := b.graph.PeripherySegment(start, end)
	for _, sid := range segment {
		b.graph.AddEdge(id, sid)
	}
	b.engine.Redraw(b.graph)

	observability.Build().OnInsertComplete(id, len(segment), time.Since(began), nil)
	return id, nil
}

// randomColor draws a palette slot in [1, paletteSize].
func (b *Builder) randomColor() int { return b.rng.IntN(paletteSize) + 1 }

// Validate checks the structural integrity of the grown graph. See
// [planar.Graph.Validate].
func (b *Builder) Validate() error { return b.graph.Validate() }

// CheckPlanar reports whether the graph is planar. Growth through
// periphery segments cannot introduce crossings, so this delegates to the
// store's documented stub.
func (b *Builder) CheckPlanar() bool { return b.graph.CheckPlanar() }
