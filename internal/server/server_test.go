package server

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Aayushjha0128/GraphSense/pkg/config"
	"github.com/Aayushjha0128/GraphSense/pkg/snapshot"
	"github.com/Aayushjha0128/GraphSense/pkg/store"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	srv := New(config.Default(), nil, store.NewMemoryStore())
	return srv.Router()
}

// do runs one request against the handler and decodes a JSON response
// into out when out is non-nil.
func do(t *testing.T, h http.Handler, method, path string, body, out any) *httptest.ResponseRecorder {
	t.Helper()

	var rd io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		rd = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, rd)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if out != nil {
		if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
			t.Fatalf("decode %s %s response (%d): %v\n%s", method, path, rec.Code, err, rec.Body.String())
		}
	}
	return rec
}

// createGraph makes a session and returns its info.
func createGraph(t *testing.T, h http.Handler) graphInfo {
	t.Helper()
	var gi graphInfo
	rec := do(t, h, http.MethodPost, "/api/graphs", nil, &gi)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create graph status = %d, want 201", rec.Code)
	}
	return gi
}

func TestHealth(t *testing.T) {
	h := newTestHandler(t)
	var resp map[string]string
	rec := do(t, h, http.MethodGet, "/healthz", nil, &resp)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if resp["status"] != "ok" {
		t.Errorf("status field = %q, want ok", resp["status"])
	}
}

func TestCreateGraph(t *testing.T) {
	h := newTestHandler(t)
	gi := createGraph(t, h)

	if gi.ID == "" {
		t.Error("missing session ID")
	}
	if gi.VertexCount != 3 || gi.EdgeCount != 3 {
		t.Errorf("counts = %d/%d, want 3/3", gi.VertexCount, gi.EdgeCount)
	}
	if len(gi.Periphery) != 3 {
		t.Errorf("periphery = %v, want 3 vertices", gi.Periphery)
	}
}

func TestListGraphs(t *testing.T) {
	h := newTestHandler(t)
	a := createGraph(t, h)
	b := createGraph(t, h)

	var resp map[string][]string
	do(t, h, http.MethodGet, "/api/graphs", nil, &resp)
	ids := resp["graphs"]
	if len(ids) != 2 {
		t.Fatalf("listed %d sessions, want 2", len(ids))
	}
	found := map[string]bool{}
	for _, id := range ids {
		found[id] = true
	}
	if !found[a.ID] || !found[b.ID] {
		t.Errorf("list %v missing created sessions %s, %s", ids, a.ID, b.ID)
	}
}

func TestInsertRandomVertex(t *testing.T) {
	h := newTestHandler(t)
	gi := createGraph(t, h)

	var resp insertResponse
	rec := do(t, h, http.MethodPost, "/api/graphs/"+gi.ID+"/vertices",
		insertRequest{Mode: "random"}, &resp)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
	if resp.Vertex.ID != 4 {
		t.Errorf("new vertex ID = %d, want 4", resp.Vertex.ID)
	}
	if resp.VertexCount != 4 || resp.EdgeCount != 5 {
		t.Errorf("counts = %d/%d, want 4/5", resp.VertexCount, resp.EdgeCount)
	}
	if resp.Vertex.ColorIndex < 1 || resp.Vertex.ColorIndex > 4 {
		t.Errorf("color = %d, want 1..4", resp.Vertex.ColorIndex)
	}
}

func TestInsertManualVertex(t *testing.T) {
	h := newTestHandler(t)
	gi := createGraph(t, h)

	// The initial periphery is cyclically adjacent everywhere, so any
	// two distinct seed vertices form a valid segment.
	start, end := gi.Periphery[0], gi.Periphery[1]
	var resp insertResponse
	rec := do(t, h, http.MethodPost, "/api/graphs/"+gi.ID+"/vertices",
		insertRequest{Start: start, End: end}, &resp)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
	if resp.VertexCount != 4 {
		t.Errorf("vertex count = %d, want 4", resp.VertexCount)
	}
}

func TestInsertVertexRejectsOffPeriphery(t *testing.T) {
	h := newTestHandler(t)
	gi := createGraph(t, h)

	rec := do(t, h, http.MethodPost, "/api/graphs/"+gi.ID+"/vertices",
		insertRequest{Start: 99, End: 1}, nil)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422: %s", rec.Code, rec.Body.String())
	}
}

func TestInsertVertexUnknownSession(t *testing.T) {
	h := newTestHandler(t)
	rec := do(t, h, http.MethodPost, "/api/graphs/nope/vertices",
		insertRequest{Mode: "random"}, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	h := newTestHandler(t)
	gi := createGraph(t, h)
	do(t, h, http.MethodPost, "/api/graphs/"+gi.ID+"/vertices", insertRequest{Mode: "random"}, nil)

	var doc snapshot.Document
	rec := do(t, h, http.MethodGet, "/api/graphs/"+gi.ID, nil, &doc)
	if rec.Code != http.StatusOK {
		t.Fatalf("export status = %d, want 200", rec.Code)
	}
	if len(doc.Vertices) != 4 {
		t.Fatalf("exported %d vertices, want 4", len(doc.Vertices))
	}

	// Import into a fresh session and compare shape.
	other := createGraph(t, h)
	var imported graphInfo
	rec = do(t, h, http.MethodPut, "/api/graphs/"+other.ID, doc, &imported)
	if rec.Code != http.StatusOK {
		t.Fatalf("import status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if imported.VertexCount != 4 || imported.EdgeCount != len(doc.Edges) {
		t.Errorf("imported counts = %d/%d, want 4/%d",
			imported.VertexCount, imported.EdgeCount, len(doc.Edges))
	}
}

func TestImportRejectsMalformed(t *testing.T) {
	h := newTestHandler(t)
	gi := createGraph(t, h)

	doc := snapshot.Document{
		Vertices: map[string]snapshot.VertexRecord{"1": {ID: 1}},
		Edges:    []snapshot.EdgeRecord{{V1: 1, V2: 7}},
	}
	rec := do(t, h, http.MethodPut, "/api/graphs/"+gi.ID, doc, nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400: %s", rec.Code, rec.Body.String())
	}
}

func TestDeleteGraph(t *testing.T) {
	h := newTestHandler(t)
	gi := createGraph(t, h)

	rec := do(t, h, http.MethodDelete, "/api/graphs/"+gi.ID, nil, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d, want 204", rec.Code)
	}
	rec = do(t, h, http.MethodGet, "/api/graphs/"+gi.ID, nil, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("get after delete status = %d, want 404", rec.Code)
	}
	rec = do(t, h, http.MethodDelete, "/api/graphs/"+gi.ID, nil, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("double delete status = %d, want 404", rec.Code)
	}
}

func TestCenterGraph(t *testing.T) {
	h := newTestHandler(t)
	gi := createGraph(t, h)

	var resp graphInfo
	rec := do(t, h, http.MethodPost, "/api/graphs/"+gi.ID+"/center",
		centerRequest{Width: 800, Height: 600}, &resp)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if resp.VertexCount != 3 {
		t.Errorf("vertex count = %d, want 3", resp.VertexCount)
	}
}

func TestStats(t *testing.T) {
	h := newTestHandler(t)
	gi := createGraph(t, h)

	var resp statsResponse
	rec := do(t, h, http.MethodGet, "/api/graphs/"+gi.ID+"/stats", nil, &resp)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if resp.VertexCount != 3 || resp.EdgeCount != 3 {
		t.Errorf("counts = %d/%d, want 3/3", resp.VertexCount, resp.EdgeCount)
	}
	if resp.NextVertexID != 4 {
		t.Errorf("next vertex ID = %d, want 4", resp.NextVertexID)
	}
	// The seed triangle is equilateral with circumradius 100.
	want := 100 * math.Sqrt(3)
	if math.Abs(resp.EdgeLengths.Mean-want) > 1e-9 {
		t.Errorf("mean edge length = %g, want %g", resp.EdgeLengths.Mean, want)
	}
	if resp.EdgeLengths.StdDev > 1e-9 {
		t.Errorf("std dev = %g, want 0", resp.EdgeLengths.StdDev)
	}
}

func TestSVG(t *testing.T) {
	h := newTestHandler(t)
	gi := createGraph(t, h)

	req := httptest.NewRequest(http.MethodGet, "/api/graphs/"+gi.ID+"/svg?view=index&periphery=1", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("content type = %q, want image/svg+xml", ct)
	}
	if !strings.Contains(rec.Body.String(), "<svg") {
		t.Error("response is not SVG")
	}

	// A repeat request serves the same bytes from cache.
	rec2 := httptest.NewRecorder()
	h.ServeHTTP(rec2, httptest.NewRequest(http.MethodGet, "/api/graphs/"+gi.ID+"/svg?view=index&periphery=1", nil))
	if !bytes.Equal(rec.Body.Bytes(), rec2.Body.Bytes()) {
		t.Error("repeat render produced different bytes")
	}
}

func TestSVGRejectsBadMaxID(t *testing.T) {
	h := newTestHandler(t)
	gi := createGraph(t, h)

	rec := do(t, h, http.MethodGet, "/api/graphs/"+gi.ID+"/svg?max_id=banana", nil, nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestSaveLoadSnapshotEndpoints(t *testing.T) {
	h := newTestHandler(t)
	gi := createGraph(t, h)
	do(t, h, http.MethodPost, "/api/graphs/"+gi.ID+"/vertices", insertRequest{Mode: "random"}, nil)

	rec := do(t, h, http.MethodPost, "/api/graphs/"+gi.ID+"/save", nameRequest{Name: "demo"}, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("save status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var listed map[string][]string
	do(t, h, http.MethodGet, "/api/snapshots", nil, &listed)
	if got := listed["snapshots"]; len(got) != 1 || got[0] != "demo" {
		t.Errorf("snapshots = %v, want [demo]", got)
	}

	var loaded graphInfo
	rec = do(t, h, http.MethodPost, "/api/graphs/load", nameRequest{Name: "demo"}, &loaded)
	if rec.Code != http.StatusCreated {
		t.Fatalf("load status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
	if loaded.ID == gi.ID {
		t.Error("load reused the source session ID")
	}
	if loaded.VertexCount != 4 {
		t.Errorf("loaded vertex count = %d, want 4", loaded.VertexCount)
	}

	rec = do(t, h, http.MethodDelete, "/api/snapshots/demo", nil, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete snapshot status = %d, want 204", rec.Code)
	}
	rec = do(t, h, http.MethodPost, "/api/graphs/load", nameRequest{Name: "demo"}, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("load deleted snapshot status = %d, want 404", rec.Code)
	}
}

func TestSnapshotEndpointsWithoutStore(t *testing.T) {
	srv := New(config.Default(), nil, nil)
	h := srv.Router()
	gi := createGraph(t, h)

	rec := do(t, h, http.MethodPost, "/api/graphs/"+gi.ID+"/save", nameRequest{Name: "x"}, nil)
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("save status = %d, want 503", rec.Code)
	}
	rec = do(t, h, http.MethodGet, "/api/snapshots", nil, nil)
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("list status = %d, want 503", rec.Code)
	}
}
