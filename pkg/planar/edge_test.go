package planar

import "testing"

func TestNewEdgeCanonicalOrder(t *testing.T) {
	if e := NewEdge(7, 2); e.V1 != 2 || e.V2 != 7 {
		t.Errorf("NewEdge(7,2) = %+v, want V1=2 V2=7", e)
	}
	if NewEdge(2, 7) != NewEdge(7, 2) {
		t.Error("edges with swapped endpoints should be equal")
	}
	if got := NewEdge(7, 2).String(); got != "2-7" {
		t.Errorf("String = %q, want \"2-7\"", got)
	}
}

func TestEdgeOther(t *testing.T) {
	e := NewEdge(3, 5)
	if v, ok := e.Other(3); !ok || v != 5 {
		t.Errorf("Other(3) = %d, %v, want 5, true", v, ok)
	}
	if v, ok := e.Other(5); !ok || v != 3 {
		t.Errorf("Other(5) = %d, %v, want 3, true", v, ok)
	}
	if _, ok := e.Other(9); ok {
		t.Error("Other(9) should report false")
	}
	if !e.Contains(3) || !e.Contains(5) || e.Contains(4) {
		t.Error("Contains misreports endpoints")
	}
}
