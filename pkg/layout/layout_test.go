package layout

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/Aayushjha0128/GraphSense/pkg/geom"
	"github.com/Aayushjha0128/GraphSense/pkg/planar"
)

func TestPlacePositionTriangle(t *testing.T) {
	g := planar.New()
	g.InitialTriangle()
	e := New(nil)

	// 3 and 1 are clockwise adjacent on the seed triangle's periphery.
	pos, err := e.PlacePosition(g, 3, 1)
	if err != nil {
		t.Fatalf("PlacePosition: %v", err)
	}

	// Outward from the 3-1 chord at 1.1 times the average edge length.
	want := geom.Point{X: 520.2627944162883, Y: 91.69872981077805}
	if math.Abs(pos.X-want.X) > 1e-6 || math.Abs(pos.Y-want.Y) > 1e-6 {
		t.Errorf("pos = %v, want %v", pos, want)
	}

	// The new position must sit outside the current hull, on the far side
	// of the chord from the graph centroid.
	if pos.Distance(g.Centroid()) <= 100 {
		t.Error("placed position should be outside the seed triangle")
	}
}

func TestPlacePositionInvalidSegment(t *testing.T) {
	g := planar.New()
	g.InitialTriangle()
	e := New(nil)

	if _, err := e.PlacePosition(g, 1, 99); !errors.Is(err, ErrInvalidSegment) {
		t.Errorf("off-periphery endpoint: err = %v, want ErrInvalidSegment", err)
	}
	// start == end resolves to a single-vertex segment.
	if _, err := e.PlacePosition(g, 1, 1); !errors.Is(err, ErrInvalidSegment) {
		t.Errorf("start == end: err = %v, want ErrInvalidSegment", err)
	}
}

func TestSeparatePushesApart(t *testing.T) {
	g := planar.New()
	g.AddVertex(100, 100, 1)
	e := New(nil)

	pos := e.separate(g, geom.Point{X: 105, Y: 100})
	v, _ := g.Vertex(1)
	if d := pos.Distance(v.Pos); d < 20-1e-9 {
		t.Errorf("separation = %f, want >= 20", d)
	}
	// The push keeps the original direction.
	if pos.Y != 100 || pos.X <= 100 {
		t.Errorf("pos = %v, want pushed along +x", pos)
	}

	// Coincident points have no direction to push along.
	pos = e.separate(g, geom.Point{X: 100, Y: 100})
	if pos != (geom.Point{X: 100, Y: 100}) {
		t.Errorf("coincident pos moved to %v", pos)
	}
}

func TestRandomSegmentAdjacent(t *testing.T) {
	g := planar.New()
	g.InitialTriangle()
	rng := rand.New(rand.NewPCG(1, 2))

	for range 20 {
		start, end, err := RandomSegment(g, rng)
		if err != nil {
			t.Fatalf("RandomSegment: %v", err)
		}
		if !g.PeripheryAdjacent(start, end) {
			t.Fatalf("RandomSegment returned non-adjacent pair %d, %d", start, end)
		}
	}
}

func TestRandomSegmentTooSmall(t *testing.T) {
	g := planar.New()
	g.AddVertex(0, 0, 1)
	g.UpdatePeriphery()
	rng := rand.New(rand.NewPCG(1, 2))

	if _, _, err := RandomSegment(g, rng); !errors.Is(err, ErrPeripheryTooSmall) {
		t.Errorf("err = %v, want ErrPeripheryTooSmall", err)
	}
}

func TestRedrawSkipsSmallGraphs(t *testing.T) {
	g := planar.New()
	g.AddVertex(10, 20, 1)
	g.AddVertex(30, 40, 1)
	e := New(nil)

	e.Redraw(g)

	v1, _ := g.Vertex(1)
	v2, _ := g.Vertex(2)
	if v1.Pos != (geom.Point{X: 10, Y: 20}) || v2.Pos != (geom.Point{X: 30, Y: 40}) {
		t.Error("Redraw moved vertices of a graph with fewer than 3 vertices")
	}
}

func TestRedrawWidensSharpAngles(t *testing.T) {
	g := planar.New()
	g.AddVertex(0, 0, 1)
	g.AddVertex(100, 0, 1)
	deg30 := math.Pi / 6
	g.AddVertex(100*math.Cos(deg30), 100*math.Sin(deg30), 1)
	g.AddEdge(1, 2)
	g.AddEdge(1, 3)

	e := New(nil)
	e.Redraw(g)

	c, _ := g.Vertex(1)
	v2, _ := g.Vertex(2)
	v3, _ := g.Vertex(3)
	d2 := v2.Pos.Sub(c.Pos)
	d3 := v3.Pos.Sub(c.Pos)

	cosAngle := d2.Dot(d3) / (d2.Length() * d3.Length())
	angle := math.Acos(cosAngle)
	// 30 degrees opened by MinAngle/4 on each side.
	if math.Abs(angle-math.Pi/3) > 1e-9 {
		t.Errorf("angle after redraw = %v rad, want pi/3", angle)
	}
	// Both neighbors stay at their average distance.
	if math.Abs(d2.Length()-100) > 1e-9 || math.Abs(d3.Length()-100) > 1e-9 {
		t.Errorf("neighbor distances = %f, %f, want 100", d2.Length(), d3.Length())
	}
}

func TestAdjustEdgeLengthsPullsOutliers(t *testing.T) {
	g := planar.New()
	g.AddVertex(0, 0, 1)
	g.AddVertex(100, 0, 1)
	g.AddVertex(0, 100, 1)
	g.AddVertex(300, 100, 1)
	g.AddEdge(1, 2)
	g.AddEdge(3, 4)

	e := New(nil)
	e.adjustEdgeLengths(g)

	// Mean of 100 and 300 is 200; both edges deviate beyond 20% and are
	// recentred to exactly the mean.
	v1, _ := g.Vertex(1)
	v2, _ := g.Vertex(2)
	v3, _ := g.Vertex(3)
	v4, _ := g.Vertex(4)
	if d := v1.Pos.Distance(v2.Pos); math.Abs(d-200) > 1e-9 {
		t.Errorf("edge 1-2 length = %f, want 200", d)
	}
	if d := v3.Pos.Distance(v4.Pos); math.Abs(d-200) > 1e-9 {
		t.Errorf("edge 3-4 length = %f, want 200", d)
	}
	// Midpoints do not move.
	if mid := v1.Pos.Midpoint(v2.Pos); mid != (geom.Point{X: 50, Y: 0}) {
		t.Errorf("edge 1-2 midpoint = %v, want {50 0}", mid)
	}
}

func TestAdjustEdgeLengthsWithinTolerance(t *testing.T) {
	g := planar.New()
	g.AddVertex(0, 0, 1)
	g.AddVertex(110, 0, 1)
	g.AddVertex(0, 50, 1)
	g.AddVertex(90, 50, 1)
	g.AddEdge(1, 2)
	g.AddEdge(3, 4)

	e := New(nil)
	e.adjustEdgeLengths(g)

	// Mean is 100; 110 and 90 are inside the 20% band and must not move.
	v2, _ := g.Vertex(2)
	v4, _ := g.Vertex(4)
	if v2.Pos != (geom.Point{X: 110, Y: 0}) || v4.Pos != (geom.Point{X: 90, Y: 50}) {
		t.Error("edges within tolerance were adjusted")
	}
}

func TestMaintainConvexityPushesDent(t *testing.T) {
	g := planar.New()
	g.AddVertex(0, 0, 1)
	g.AddVertex(80, 120, 1) // concave corner of the quad
	g.AddVertex(200, 200, 1)
	g.AddVertex(0, 200, 1)
	g.SetPeriphery([]int{1, 2, 3, 4})

	before, _ := g.Vertex(2)
	old := before.Pos
	centroid := g.Centroid()

	e := New(nil)
	e.maintainConvexity(g)

	after, _ := g.Vertex(2)
	move := after.Pos.Sub(old)
	if math.Abs(move.Length()-10) > 1e-9 {
		t.Errorf("push distance = %f, want 10", move.Length())
	}
	if move.Dot(old.Sub(centroid)) <= 0 {
		t.Error("push should point away from the centroid")
	}

	// Convex corners stay put.
	v1, _ := g.Vertex(1)
	if v1.Pos != (geom.Point{}) {
		t.Errorf("convex corner moved to %v", v1.Pos)
	}
}

func TestRedrawDeterministic(t *testing.T) {
	build := func() *planar.Graph {
		g := planar.New()
		g.InitialTriangle()
		id := g.AddVertex(520, 92, 2)
		g.AddEdge(id, 3)
		g.AddEdge(id, 1)
		return g
	}

	a := build()
	b := build()
	e := New(nil)
	e.Redraw(a)
	e.Redraw(b)

	for _, id := range a.VertexIDs() {
		va, _ := a.Vertex(id)
		vb, _ := b.Vertex(id)
		if va.Pos != vb.Pos {
			t.Errorf("vertex %d diverged: %v vs %v", id, va.Pos, vb.Pos)
		}
	}
}

func TestScaleAndTranslate(t *testing.T) {
	g := planar.New()
	g.AddVertex(100, 100, 1)
	g.AddVertex(200, 100, 1)

	Scale(g, 2, geom.Point{X: 100, Y: 100})
	v2, _ := g.Vertex(2)
	if v2.Pos != (geom.Point{X: 300, Y: 100}) {
		t.Errorf("after scale v2 = %v, want {300 100}", v2.Pos)
	}
	v1, _ := g.Vertex(1)
	if v1.Pos != (geom.Point{X: 100, Y: 100}) {
		t.Errorf("scale center moved: %v", v1.Pos)
	}

	Translate(g, -10, 5)
	v1, _ = g.Vertex(1)
	if v1.Pos != (geom.Point{X: 90, Y: 105}) {
		t.Errorf("after translate v1 = %v, want {90 105}", v1.Pos)
	}
}

func TestFitToBounds(t *testing.T) {
	g := planar.New()
	g.InitialTriangle()
	e := New(nil)

	bounds := geom.Rect{Min: geom.Point{X: 100, Y: 100}, Max: geom.Point{X: 700, Y: 500}}
	e.FitToBounds(g, bounds)

	bbox, ok := g.Bounds()
	if !ok {
		t.Fatal("graph empty after fit")
	}
	center := bbox.Center()
	if math.Abs(center.X-400) > 1e-9 || math.Abs(center.Y-300) > 1e-9 {
		t.Errorf("bbox center = %v, want (400, 300)", center)
	}
	// The limiting axis fills exactly the padded fraction of the bounds.
	wRatio := bbox.Width() / bounds.Width()
	hRatio := bbox.Height() / bounds.Height()
	limiting := max(wRatio, hRatio)
	if math.Abs(limiting-0.8) > 1e-9 {
		t.Errorf("limiting fill ratio = %f, want 0.8", limiting)
	}
}

func TestFitToBoundsSingleVertex(t *testing.T) {
	g := planar.New()
	g.AddVertex(12, 34, 1)
	e := New(nil)

	e.FitToBounds(g, geom.RectFromSize(800, 600))

	v, _ := g.Vertex(1)
	if v.Pos != (geom.Point{X: 400, Y: 300}) {
		t.Errorf("single vertex = %v, want centered at {400 300}", v.Pos)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if math.Abs(cfg.MinAngle-math.Pi/3) > 1e-12 {
		t.Errorf("MinAngle = %v, want pi/3", cfg.MinAngle)
	}
	if cfg.EdgeTolerance != 0.2 || cfg.VertexSeparation != 20 || cfg.DefaultEdgeLength != 80 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.LengthPasses != 3 {
		t.Errorf("LengthPasses = %d, want 3", cfg.LengthPasses)
	}

	// A nil config means defaults.
	e := New(nil)
	if e.Config() != cfg {
		t.Error("New(nil) should use DefaultConfig")
	}
}
