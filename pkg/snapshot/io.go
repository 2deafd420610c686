package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/Aayushjha0128/GraphSense/pkg/planar"
)

// Marshal converts a graph to indented JSON bytes. Output is deterministic:
// vertex keys and edges are emitted in sorted order.
func Marshal(g *planar.Graph) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeTo(g, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write writes a graph as JSON to w. Use [Marshal] for in-memory
// serialization or [WriteFile] for files.
func Write(g *planar.Graph, w io.Writer) error {
	return writeTo(g, w)
}

// WriteFile writes a graph to a JSON file created with 0644 permissions.
func WriteFile(g *planar.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeTo(g, f)
}

// Read decodes a JSON snapshot from r and restores the graph. Decode
// failures and structural problems both surface as [ErrMalformedSnapshot].
func Read(r io.Reader) (*planar.Graph, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrMalformedSnapshot, err)
	}
	return Restore(doc)
}

// ReadFile reads a snapshot file and restores the graph.
func ReadFile(path string) (*planar.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

func writeTo(g *planar.Graph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Capture(g)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
