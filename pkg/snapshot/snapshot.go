package snapshot

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/Aayushjha0128/GraphSense/pkg/geom"
	"github.com/Aayushjha0128/GraphSense/pkg/planar"
)

// ErrMalformedSnapshot is returned by [Restore] and the readers built on
// it when a document is structurally unusable: required fields are
// missing, a vertex key is not an integer or disagrees with its record,
// or an edge references a vertex the document does not define.
var ErrMalformedSnapshot = errors.New("malformed snapshot")

// =============================================================================
// Document - Snapshot Serialization Format
// =============================================================================

// Document is the canonical serialization format for graphs. It is
// human-readable and designed for round-trip fidelity: export, import,
// re-export produces identical bytes.
type Document struct {
	// Vertices is keyed by the stringified vertex ID. JSON object keys
	// must be strings; the key always matches the record's ID field.
	Vertices map[string]VertexRecord `json:"vertices" bson:"vertices"`

	// Edges holds each edge once in canonical orientation (V1 < V2),
	// sorted by (V1, V2).
	Edges []EdgeRecord `json:"edges" bson:"edges"`

	// Periphery is the clockwise periphery order, preserved verbatim.
	Periphery []int `json:"periphery" bson:"periphery"`

	// NextVertexID is the ID the next insertion will allocate.
	NextVertexID int `json:"next_vertex_id" bson:"next_vertex_id"`
}

// VertexRecord is one vertex in a [Document].
type VertexRecord struct {
	ID         int     `json:"id" bson:"id"`
	X          float64 `json:"x" bson:"x"`
	Y          float64 `json:"y" bson:"y"`
	ColorIndex int     `json:"color_index" bson:"color_index"`
	Diameter   float64 `json:"diameter" bson:"diameter"`
}

// EdgeRecord is one edge in a [Document], canonical orientation.
type EdgeRecord struct {
	V1 int `json:"v1_id" bson:"v1_id"`
	V2 int `json:"v2_id" bson:"v2_id"`
}

// =============================================================================
// Conversion
// =============================================================================

// Capture converts g into a Document. The graph is not modified.
func Capture(g *planar.Graph) Document {
	doc := Document{
		Vertices:     make(map[string]VertexRecord, g.VertexCount()),
		Edges:        make([]EdgeRecord, 0, g.EdgeCount()),
		Periphery:    g.Periphery(),
		NextVertexID: g.NextID(),
	}
	for _, v := range g.Vertices() {
		doc.Vertices[strconv.Itoa(v.ID)] = VertexRecord{
			ID:         v.ID,
			X:          v.Pos.X,
			Y:          v.Pos.Y,
			ColorIndex: v.Color,
			Diameter:   v.Diameter,
		}
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, EdgeRecord{V1: e.V1, V2: e.V2})
	}
	return doc
}

// Restore builds a fresh graph from doc. The periphery and next-ID counter
// are taken verbatim; adjacency is rebuilt from the edge list. A zero
// NextVertexID (absent in the source document) falls back to one past the
// highest vertex ID so the no-reuse guarantee holds. On any validation
// failure the returned error wraps [ErrMalformedSnapshot] and no graph is
// returned.
func Restore(doc Document) (*planar.Graph, error) {
	if doc.Vertices == nil {
		return nil, fmt.Errorf("%w: missing vertices", ErrMalformedSnapshot)
	}
	if doc.Edges == nil {
		return nil, fmt.Errorf("%w: missing edges", ErrMalformedSnapshot)
	}

	keys := make([]string, 0, len(doc.Vertices))
	for k := range doc.Vertices {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	g := planar.New()
	for _, k := range keys {
		rec := doc.Vertices[k]
		id, err := strconv.Atoi(k)
		if err != nil {
			return nil, fmt.Errorf("%w: vertex key %q is not an integer", ErrMalformedSnapshot, k)
		}
		if id != rec.ID {
			return nil, fmt.Errorf("%w: vertex key %q names record %d", ErrMalformedSnapshot, k, rec.ID)
		}
		diameter := rec.Diameter
		if diameter == 0 {
			diameter = planar.DiameterFor(rec.ID)
		}
		g.PutVertex(planar.Vertex{
			ID:       rec.ID,
			Pos:      geom.Point{X: rec.X, Y: rec.Y},
			Color:    rec.ColorIndex,
			Diameter: diameter,
		})
	}

	for _, e := range doc.Edges {
		if e.V1 == e.V2 {
			return nil, fmt.Errorf("%w: self-loop edge %d-%d", ErrMalformedSnapshot, e.V1, e.V2)
		}
		if _, err := g.AddEdge(e.V1, e.V2); err != nil {
			return nil, fmt.Errorf("%w: edge %d-%d references undefined vertex", ErrMalformedSnapshot, e.V1, e.V2)
		}
	}

	g.SetPeriphery(doc.Periphery)
	if doc.NextVertexID > 0 {
		g.SetNextID(doc.NextVertexID)
	}
	return g, nil
}
