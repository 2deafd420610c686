package planar

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

func TestAddVertexAllocatesMonotonicIDs(t *testing.T) {
	g := New()
	a := g.AddVertex(0, 0, 1)
	b := g.AddVertex(10, 0, 2)
	if a != 1 || b != 2 {
		t.Fatalf("IDs = %d, %d, want 1, 2", a, b)
	}

	g.RemoveVertex(2)
	c := g.AddVertex(5, 5, 3)
	if c != 3 {
		t.Errorf("ID after removal = %d, want 3 (IDs are never reused)", c)
	}
}

func TestAddEdgeCanonical(t *testing.T) {
	g := New()
	g.AddVertex(0, 0, 1)
	g.AddVertex(10, 0, 1)

	added, err := g.AddEdge(2, 1)
	if err != nil || !added {
		t.Fatalf("AddEdge(2,1) = %v, %v, want true, nil", added, err)
	}

	// Same edge under the opposite orientation is a duplicate.
	added, err = g.AddEdge(1, 2)
	if err != nil {
		t.Fatalf("AddEdge(1,2) error: %v", err)
	}
	if added {
		t.Error("AddEdge(1,2) after AddEdge(2,1) should report a duplicate")
	}
	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount = %d, want 1", g.EdgeCount())
	}
	if !g.HasEdge(1, 2) || !g.HasEdge(2, 1) {
		t.Error("HasEdge should be orientation independent")
	}
}

func TestAddEdgeSelfLoop(t *testing.T) {
	g := New()
	g.AddVertex(0, 0, 1)
	added, err := g.AddEdge(1, 1)
	if err != nil {
		t.Fatalf("self-loop error: %v", err)
	}
	if added {
		t.Error("self-loop should be rejected without error")
	}
	if g.EdgeCount() != 0 {
		t.Errorf("EdgeCount = %d, want 0", g.EdgeCount())
	}
}

func TestAddEdgeMissingVertex(t *testing.T) {
	g := New()
	g.InitialTriangle()

	added, err := g.AddEdge(1, 99)
	if added {
		t.Error("AddEdge with missing endpoint should not add")
	}
	if !errors.Is(err, ErrVertexNotFound) {
		t.Errorf("err = %v, want ErrVertexNotFound", err)
	}
	if g.EdgeCount() != 3 {
		t.Errorf("EdgeCount = %d, want 3 (graph must stay unchanged)", g.EdgeCount())
	}
	if got := g.Neighbors(1); len(got) != 2 {
		t.Errorf("Neighbors(1) = %v, want 2 entries", got)
	}
}

func TestRemoveVertexCleansUp(t *testing.T) {
	g := New()
	g.InitialTriangle()
	id := g.AddVertex(600, 300, 2)
	g.AddEdge(id, 1)
	g.AddEdge(id, 2)
	g.UpdatePeriphery()

	g.RemoveVertex(id)

	if _, ok := g.Vertex(id); ok {
		t.Fatal("vertex still present after removal")
	}
	if g.EdgeCount() != 3 {
		t.Errorf("EdgeCount = %d, want 3", g.EdgeCount())
	}
	for _, n := range g.Neighbors(1) {
		if n == id {
			t.Error("removed vertex still in adjacency of 1")
		}
	}
	for _, p := range g.Periphery() {
		if p == id {
			t.Error("removed vertex still on periphery")
		}
	}
	if err := g.Validate(); err != nil {
		t.Errorf("Validate after removal: %v", err)
	}

	// Removing an unknown ID is a no-op.
	g.RemoveVertex(999)
	if g.VertexCount() != 3 {
		t.Errorf("VertexCount = %d, want 3", g.VertexCount())
	}
}

func TestNeighborsSorted(t *testing.T) {
	g := New()
	for i := 0; i < 4; i++ {
		g.AddVertex(float64(i*10), 0, 1)
	}
	g.AddEdge(2, 4)
	g.AddEdge(2, 1)
	g.AddEdge(2, 3)

	got := g.Neighbors(2)
	want := []int{1, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("Neighbors(2) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Neighbors(2) = %v, want %v", got, want)
		}
	}

	if got := g.Neighbors(42); len(got) != 0 {
		t.Errorf("Neighbors(unknown) = %v, want empty", got)
	}
}

func TestInitialTriangleDeterminism(t *testing.T) {
	g := New()
	g.InitialTriangle()

	if g.VertexCount() != 3 || g.EdgeCount() != 3 {
		t.Fatalf("counts = %d vertices, %d edges, want 3, 3",
			g.VertexCount(), g.EdgeCount())
	}

	// Pairwise distances equal the side of an equilateral triangle with
	// circumradius 100.
	want := 100 * math.Sqrt(3)
	for _, e := range g.Edges() {
		v1, _ := g.Vertex(e.V1)
		v2, _ := g.Vertex(e.V2)
		d := v1.Pos.Distance(v2.Pos)
		if math.Abs(d-want) > 1e-9 {
			t.Errorf("edge %s length = %f, want %f", e, d, want)
		}
	}

	c := g.Centroid()
	if math.Abs(c.X-400) > 1e-9 || math.Abs(c.Y-300) > 1e-9 {
		t.Errorf("Centroid = %v, want (400, 300)", c)
	}

	per := g.Periphery()
	if len(per) != 3 {
		t.Fatalf("periphery = %v, want 3 vertices", per)
	}
	// Hull order is deterministic for fixed positions.
	if per[0] != 3 || per[1] != 1 || per[2] != 2 {
		t.Errorf("periphery = %v, want [3 1 2]", per)
	}

	// Rebuilding yields the identical layout.
	h := New()
	h.InitialTriangle()
	for _, id := range g.VertexIDs() {
		gv, _ := g.Vertex(id)
		hv, _ := h.Vertex(id)
		if gv.Pos != hv.Pos {
			t.Errorf("vertex %d position differs between builds", id)
		}
	}
}

func TestUpdatePeripheryFewVertices(t *testing.T) {
	g := New()
	g.UpdatePeriphery()
	if len(g.Periphery()) != 0 {
		t.Errorf("empty graph periphery = %v, want empty", g.Periphery())
	}

	g.AddVertex(50, 50, 1)
	g.AddVertex(10, 10, 1)
	g.UpdatePeriphery()
	per := g.Periphery()
	if len(per) != 2 || per[0] != 1 || per[1] != 2 {
		t.Errorf("periphery = %v, want [1 2]", per)
	}
}

func TestUpdatePeripheryExcludesInterior(t *testing.T) {
	g := New()
	g.AddVertex(0, 0, 1)
	g.AddVertex(100, 0, 1)
	g.AddVertex(50, 100, 1)
	g.AddVertex(50, 30, 1) // interior
	g.UpdatePeriphery()

	for _, id := range g.Periphery() {
		if id == 4 {
			t.Error("interior vertex on periphery")
		}
	}
	if len(g.Periphery()) != 3 {
		t.Errorf("periphery size = %d, want 3", len(g.Periphery()))
	}
	if g.OnPeriphery(4) {
		t.Error("OnPeriphery(4) = true, want false")
	}
}

func TestPeripherySegment(t *testing.T) {
	g := New()
	for i := 0; i < 5; i++ {
		g.AddVertex(float64(i), float64(i), 1)
	}
	g.SetPeriphery([]int{1, 2, 3, 4, 5})

	got := g.PeripherySegment(2, 4)
	want := []int{2, 3, 4}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("segment(2,4) = %v, want %v", got, want)
	}

	// Wrapping past the end of the cycle.
	got = g.PeripherySegment(5, 2)
	want = []int{5, 1, 2}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("segment(5,2) = %v, want %v", got, want)
	}

	if got := g.PeripherySegment(3, 3); fmt.Sprint(got) != "[3]" {
		t.Errorf("segment(3,3) = %v, want [3]", got)
	}

	if got := g.PeripherySegment(1, 99); len(got) != 0 {
		t.Errorf("segment with off-periphery endpoint = %v, want empty", got)
	}
}

func TestPeripheryAdjacent(t *testing.T) {
	g := New()
	for i := 0; i < 5; i++ {
		g.AddVertex(float64(i), float64(i), 1)
	}
	g.SetPeriphery([]int{1, 2, 3, 4, 5})

	cases := []struct {
		a, b int
		want bool
	}{
		{1, 2, true},
		{2, 1, true},
		{5, 1, true}, // wrap
		{1, 5, true},
		{1, 3, false},
		{2, 5, false},
		{1, 99, false},
	}
	for _, c := range cases {
		if got := g.PeripheryAdjacent(c.a, c.b); got != c.want {
			t.Errorf("PeripheryAdjacent(%d,%d) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestEdgeLengthStats(t *testing.T) {
	g := New()
	if s := g.EdgeLengthStats(); s != (Stats{}) {
		t.Errorf("stats of empty graph = %+v, want zeros", s)
	}

	g.InitialTriangle()
	s := g.EdgeLengthStats()
	want := 100 * math.Sqrt(3)
	if math.Abs(s.Mean-want) > 1e-9 {
		t.Errorf("Mean = %f, want %f", s.Mean, want)
	}
	if s.StdDev > 1e-9 {
		t.Errorf("StdDev = %f, want 0", s.StdDev)
	}
	if math.Abs(s.Min-want) > 1e-9 || math.Abs(s.Max-want) > 1e-9 {
		t.Errorf("Min/Max = %f/%f, want both %f", s.Min, s.Max, want)
	}
}

func TestDiameterFor(t *testing.T) {
	cases := []struct {
		id   int
		want float64
	}{
		{1, 30},
		{9, 30},
		{10, 35},
		{99, 35},
		{100, 40},
	}
	for _, c := range cases {
		if got := DiameterFor(c.id); got != c.want {
			t.Errorf("DiameterFor(%d) = %f, want %f", c.id, got, c.want)
		}
	}
}

func TestPutVertexBumpsNextID(t *testing.T) {
	g := New()
	g.PutVertex(Vertex{ID: 7, Color: 2, Diameter: 30})
	if g.NextID() != 8 {
		t.Errorf("NextID = %d, want 8", g.NextID())
	}
	if id := g.AddVertex(0, 0, 1); id != 8 {
		t.Errorf("AddVertex after PutVertex = %d, want 8", id)
	}

	g.SetNextID(42)
	if g.NextID() != 42 {
		t.Errorf("NextID after SetNextID = %d, want 42", g.NextID())
	}
}

func TestValidateDetectsCorruption(t *testing.T) {
	g := New()
	g.InitialTriangle()
	if err := g.Validate(); err != nil {
		t.Fatalf("Validate(triangle) = %v, want nil", err)
	}

	// Two vertices with no connecting edge.
	h := New()
	h.AddVertex(0, 0, 1)
	h.AddVertex(10, 10, 1)
	if err := h.Validate(); !errors.Is(err, ErrIsolatedVertex) {
		t.Errorf("Validate = %v, want ErrIsolatedVertex", err)
	}

	// Periphery mentioning a vertex that does not exist.
	p := New()
	p.AddVertex(0, 0, 1)
	p.SetPeriphery([]int{9})
	if err := p.Validate(); !errors.Is(err, ErrInvalidPeriphery) {
		t.Errorf("Validate = %v, want ErrInvalidPeriphery", err)
	}
}

func TestClear(t *testing.T) {
	g := New()
	g.InitialTriangle()
	g.Clear()
	if g.VertexCount() != 0 || g.EdgeCount() != 0 || len(g.Periphery()) != 0 {
		t.Error("Clear left data behind")
	}
	if g.NextID() != 1 {
		t.Errorf("NextID after Clear = %d, want 1", g.NextID())
	}
}

func TestCheckPlanar(t *testing.T) {
	g := New()
	g.InitialTriangle()
	if !g.CheckPlanar() {
		t.Error("CheckPlanar = false, want true")
	}
}

func ExampleGraph_PeripherySegment() {
	g := New()
	for i := 0; i < 5; i++ {
		g.AddVertex(float64(i), float64(i), 1)
	}
	g.SetPeriphery([]int{1, 2, 3, 4, 5})

	fmt.Println(g.PeripherySegment(2, 4))
	fmt.Println(g.PeripherySegment(5, 2))
	// Output:
	// [2 3 4]
	// [5 1 2]
}
