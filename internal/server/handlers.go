package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Aayushjha0128/GraphSense/pkg/builder"
	"github.com/Aayushjha0128/GraphSense/pkg/buildinfo"
	"github.com/Aayushjha0128/GraphSense/pkg/cache"
	"github.com/Aayushjha0128/GraphSense/pkg/geom"
	"github.com/Aayushjha0128/GraphSense/pkg/layout"
	"github.com/Aayushjha0128/GraphSense/pkg/planar"
	"github.com/Aayushjha0128/GraphSense/pkg/render"
	"github.com/Aayushjha0128/GraphSense/pkg/snapshot"
	"github.com/Aayushjha0128/GraphSense/pkg/store"
)

// errBadRequest marks client input the server cannot parse: invalid
// JSON bodies or malformed query parameters.
var errBadRequest = errors.New("bad request")

// =============================================================================
// Request / Response Types
// =============================================================================

type errorResponse struct {
	Error string `json:"error"`
}

type graphInfo struct {
	ID          string `json:"id"`
	VertexCount int    `json:"vertex_count"`
	EdgeCount   int    `json:"edge_count"`
	Periphery   []int  `json:"periphery"`
}

type insertRequest struct {
	// Mode is "random" or "manual". Empty defaults to manual when both
	// segment endpoints are given, random otherwise.
	Mode  string `json:"mode"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

type insertResponse struct {
	Vertex      vertexInfo `json:"vertex"`
	VertexCount int        `json:"vertex_count"`
	EdgeCount   int        `json:"edge_count"`
	Periphery   []int      `json:"periphery"`
}

type vertexInfo struct {
	ID         int     `json:"id"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	ColorIndex int     `json:"color_index"`
	Diameter   float64 `json:"diameter"`
}

type centerRequest struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type statsResponse struct {
	VertexCount  int        `json:"vertex_count"`
	EdgeCount    int        `json:"edge_count"`
	NextVertexID int        `json:"next_vertex_id"`
	Periphery    []int      `json:"periphery"`
	EdgeLengths  statsBlock `json:"edge_lengths"`
}

type statsBlock struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

type nameRequest struct {
	Name string `json:"name"`
}

// =============================================================================
// Helpers
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps domain errors onto HTTP statuses: missing things are
// 404, malformed input is 400, structurally valid requests the graph
// rejects are 422.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, ErrSessionNotFound),
		errors.Is(err, store.ErrNotFound),
		errors.Is(err, planar.ErrVertexNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errBadRequest),
		errors.Is(err, snapshot.ErrMalformedSnapshot),
		errors.Is(err, store.ErrInvalidName):
		status = http.StatusBadRequest
	case errors.Is(err, builder.ErrNotOnPeriphery),
		errors.Is(err, builder.ErrNotAdjacent),
		errors.Is(err, layout.ErrInvalidSegment),
		errors.Is(err, layout.ErrPeripheryTooSmall):
		status = http.StatusUnprocessableEntity
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return nil
}

// newBuilder assembles a builder with the configured geometry and seed.
func (s *Server) newBuilder(g *planar.Graph) *builder.Builder {
	cfg := s.cfg.Geometry.LayoutConfig()
	return builder.New(g, layout.New(&cfg), s.cfg.Seed)
}

// info summarizes a session's graph. Callers must hold the session lock.
func info(sess *session) graphInfo {
	g := sess.b.Graph()
	return graphInfo{
		ID:          sess.id,
		VertexCount: g.VertexCount(),
		EdgeCount:   g.EdgeCount(),
		Periphery:   g.Periphery(),
	}
}

// =============================================================================
// Health
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

// =============================================================================
// Session Lifecycle
// =============================================================================

func (s *Server) handleCreateGraph(w http.ResponseWriter, r *http.Request) {
	b := s.newBuilder(planar.New())
	b.StartTriangle()
	sess := s.sessions.add(b)

	sess.mu.Lock()
	resp := info(sess)
	sess.mu.Unlock()

	s.logger.Info("session created", "id", sess.id)
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListGraphs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"graphs": s.sessions.ids()})
}

func (s *Server) handleDeleteGraph(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.sessions.remove(id); err != nil {
		s.writeError(w, err)
		return
	}
	s.logger.Info("session deleted", "id", id)
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// Snapshot Exchange
// =============================================================================

func (s *Server) handleExportGraph(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.get(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	sess.mu.Lock()
	doc := snapshot.Capture(sess.b.Graph())
	sess.mu.Unlock()

	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleImportGraph(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.get(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	var doc snapshot.Document
	if err := decodeBody(r, &doc); err != nil {
		s.writeError(w, err)
		return
	}
	g, err := snapshot.Restore(doc)
	if err != nil {
		s.writeError(w, err)
		return
	}

	sess.mu.Lock()
	sess.b = s.newBuilder(g)
	resp := info(sess)
	sess.mu.Unlock()

	writeJSON(w, http.StatusOK, resp)
}

// =============================================================================
// Graph Operations
// =============================================================================

func (s *Server) handleInsertVertex(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.get(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	var req insertRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	manual := req.Mode == "manual" || (req.Mode == "" && req.Start != 0 && req.End != 0)

	sess.mu.Lock()
	defer sess.mu.Unlock()

	var id int
	if manual {
		id, err = sess.b.AddManualVertex(req.Start, req.End)
	} else {
		id, err = sess.b.AddRandomVertex()
	}
	if err != nil {
		s.writeError(w, err)
		return
	}

	g := sess.b.Graph()
	v, _ := g.Vertex(id)
	writeJSON(w, http.StatusCreated, insertResponse{
		Vertex: vertexInfo{
			ID:         v.ID,
			X:          v.Pos.X,
			Y:          v.Pos.Y,
			ColorIndex: v.Color,
			Diameter:   v.Diameter,
		},
		VertexCount: g.VertexCount(),
		EdgeCount:   g.EdgeCount(),
		Periphery:   g.Periphery(),
	})
}

func (s *Server) handleCenterGraph(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.get(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	req := centerRequest{
		Width:  s.cfg.Render.Width,
		Height: s.cfg.Render.Height,
	}
	if r.ContentLength != 0 {
		if err := decodeBody(r, &req); err != nil {
			s.writeError(w, err)
			return
		}
	}

	bounds := geom.Rect{
		Min: geom.Point{X: 100, Y: 100},
		Max: geom.Point{X: req.Width - 100, Y: req.Height - 100},
	}

	sess.mu.Lock()
	sess.b.Engine().FitToBounds(sess.b.Graph(), bounds)
	resp := info(sess)
	sess.mu.Unlock()

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.get(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	sess.mu.Lock()
	g := sess.b.Graph()
	st := g.EdgeLengthStats()
	resp := statsResponse{
		VertexCount:  g.VertexCount(),
		EdgeCount:    g.EdgeCount(),
		NextVertexID: g.NextID(),
		Periphery:    g.Periphery(),
		EdgeLengths: statsBlock{
			Mean:   st.Mean,
			StdDev: st.StdDev,
			Min:    st.Min,
			Max:    st.Max,
		},
	}
	sess.mu.Unlock()

	writeJSON(w, http.StatusOK, resp)
}

// =============================================================================
// Rendering
// =============================================================================

func (s *Server) handleSVG(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.get(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	q := r.URL.Query()
	indexView := q.Get("view") == "index"
	highlight := q.Get("periphery") == "1" || q.Get("periphery") == "true"
	maxID := 0
	if v := q.Get("max_id"); v != "" {
		maxID, err = strconv.Atoi(v)
		if err != nil || maxID < 0 {
			s.writeError(w, fmt.Errorf("%w: bad max_id %q", errBadRequest, v))
			return
		}
	}

	sess.mu.Lock()
	docBytes, _ := json.Marshal(snapshot.Capture(sess.b.Graph()))
	key := cache.Key("svg", cache.Hash(docBytes), indexView, highlight, maxID)

	data, hit, _ := s.cache.Get(r.Context(), key)
	if !hit {
		opts := []render.Option{
			render.WithPalette(s.cfg.Palette),
			render.WithCanvas(s.cfg.Render),
		}
		if indexView {
			opts = append(opts, render.WithIndexLabels())
		}
		if highlight {
			opts = append(opts, render.WithPeripheryHighlight())
		}
		if maxID > 0 {
			opts = append(opts, render.WithMaxID(maxID))
		}
		data = render.SVG(sess.b.Graph(), opts...)
		s.cache.Set(r.Context(), key, data)
	}
	sess.mu.Unlock()

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write(data)
}

// =============================================================================
// Persistence
// =============================================================================

func (s *Server) handleSaveGraph(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "no snapshot store configured"})
		return
	}
	sess, err := s.sessions.get(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	var req nameRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	sess.mu.Lock()
	doc := snapshot.Capture(sess.b.Graph())
	sess.mu.Unlock()

	if err := s.store.Save(r.Context(), req.Name, doc); err != nil {
		s.writeError(w, err)
		return
	}
	s.logger.Info("snapshot saved", "name", req.Name, "session", sess.id)
	writeJSON(w, http.StatusOK, map[string]string{"name": req.Name})
}

func (s *Server) handleLoadGraph(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "no snapshot store configured"})
		return
	}

	var req nameRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	doc, err := s.store.Load(r.Context(), req.Name)
	if err != nil {
		s.writeError(w, err)
		return
	}
	g, err := snapshot.Restore(doc)
	if err != nil {
		s.writeError(w, err)
		return
	}

	sess := s.sessions.add(s.newBuilder(g))
	sess.mu.Lock()
	resp := info(sess)
	sess.mu.Unlock()

	s.logger.Info("snapshot loaded", "name", req.Name, "session", sess.id)
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListSnapshots(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "no snapshot store configured"})
		return
	}
	names, err := s.store.List(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	if names == nil {
		names = []string{}
	}
	writeJSON(w, http.StatusOK, map[string][]string{"snapshots": names})
}

func (s *Server) handleDeleteSnapshot(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "no snapshot store configured"})
		return
	}
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "name")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
