// Package config loads GraphSense configuration from TOML files and
// provides the documented defaults. A partial file overrides only the keys
// it names; everything else keeps its default, so a config containing just
//
//	[geometry]
//	vertex_separation = 30
//
// changes one knob. Sections map onto the subsystems that consume them:
// [geometry] feeds the layout engine, [palette] and [render] the
// renderers, [server] the HTTP API, and [store] snapshot persistence.
package config

import (
	"fmt"
	"math"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/Aayushjha0128/GraphSense/pkg/layout"
)

// Config is the full configuration tree.
type Config struct {
	// Seed fixes the random source used for segment picks and vertex
	// colors, making growth reproducible run to run.
	Seed uint64 `toml:"seed"`

	Geometry Geometry `toml:"geometry"`
	Palette  Palette  `toml:"palette"`
	Render   Render   `toml:"render"`
	Server   Server   `toml:"server"`
	Store    Store    `toml:"store"`
}

// Geometry tunes vertex placement and relaxation.
type Geometry struct {
	MinAngleDegrees     float64 `toml:"min_angle_degrees"`
	EdgeLengthTolerance float64 `toml:"edge_length_tolerance"`
	VertexSeparation    float64 `toml:"vertex_separation"`
	DefaultEdgeLength   float64 `toml:"default_edge_length"`
	ConvexityAdjustment float64 `toml:"convexity_adjustment"`
	RedrawIterations    int     `toml:"redraw_iterations"`
}

// Palette holds the drawing colors. VertexColors maps palette slots 1..n
// in order; the remaining colors name single roles.
type Palette struct {
	VertexColors       []string `toml:"vertex_colors"`
	EdgeColor          string   `toml:"edge_color"`
	BackgroundColor    string   `toml:"background_color"`
	PeripheryHighlight string   `toml:"periphery_highlight"`
	SelectedVertex     string   `toml:"selected_vertex"`
}

// Render controls canvas geometry and stroke widths.
type Render struct {
	Width             float64 `toml:"width"`
	Height            float64 `toml:"height"`
	EdgeStrokeWidth   float64 `toml:"edge_stroke_width"`
	VertexStrokeWidth float64 `toml:"vertex_stroke_width"`
	MinZoom           float64 `toml:"min_zoom"`
	MaxZoom           float64 `toml:"max_zoom"`
	ZoomFactor        float64 `toml:"zoom_factor"`
}

// Server configures the HTTP API.
type Server struct {
	Addr string `toml:"addr"`
}

// Store selects and configures snapshot persistence.
type Store struct {
	// Backend is one of "memory", "file", "redis", or "mongo".
	Backend string `toml:"backend"`

	// Dir is the snapshot directory for the file backend.
	Dir string `toml:"dir"`

	// RedisURL is a redis connection URL, e.g. redis://localhost:6379/0.
	RedisURL string `toml:"redis_url"`

	// MongoURI and MongoDatabase locate the mongo backend's collection.
	MongoURI      string `toml:"mongo_uri"`
	MongoDatabase string `toml:"mongo_database"`
}

// Default returns the configuration the system was tuned with.
func Default() Config {
	return Config{
		Seed: 42,
		Geometry: Geometry{
			MinAngleDegrees:     60,
			EdgeLengthTolerance: 0.2,
			VertexSeparation:    20,
			DefaultEdgeLength:   80,
			ConvexityAdjustment: 10,
			RedrawIterations:    3,
		},
		Palette: Palette{
			VertexColors:       []string{"#FF6B6B", "#4ECDC4", "#45B7D1", "#FFA07A"},
			EdgeColor:          "#2C3E50",
			BackgroundColor:    "#FFFFFF",
			PeripheryHighlight: "#FFD93D",
			SelectedVertex:     "#FF1744",
		},
		Render: Render{
			Width:             800,
			Height:            600,
			EdgeStrokeWidth:   2,
			VertexStrokeWidth: 2,
			MinZoom:           0.1,
			MaxZoom:           5.0,
			ZoomFactor:        1.2,
		},
		Server: Server{
			Addr: ":8080",
		},
		Store: Store{
			Backend:       "memory",
			MongoDatabase: "graphsense",
		},
	}
}

// Load reads path and overlays it on the defaults. Unknown keys are
// ignored; a missing or unreadable file is an error. Use [LoadIfPresent]
// when the file is optional.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadIfPresent behaves like [Load] but returns the defaults without error
// when no file exists at path.
func LoadIfPresent(path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// Validate rejects configurations no subsystem could run with.
func (c Config) Validate() error {
	switch c.Store.Backend {
	case "memory", "file", "redis", "mongo":
	default:
		return fmt.Errorf("unknown store backend %q", c.Store.Backend)
	}
	if len(c.Palette.VertexColors) == 0 {
		return fmt.Errorf("palette needs at least one vertex color")
	}
	if c.Geometry.RedrawIterations < 1 {
		return fmt.Errorf("redraw_iterations must be positive, got %d", c.Geometry.RedrawIterations)
	}
	if c.Render.MinZoom <= 0 || c.Render.MaxZoom < c.Render.MinZoom {
		return fmt.Errorf("zoom range [%g, %g] is invalid", c.Render.MinZoom, c.Render.MaxZoom)
	}
	return nil
}

// LayoutConfig converts the geometry section into the layout engine's
// tuning, translating degrees to radians. Knobs the section does not cover
// keep their layout defaults.
func (g Geometry) LayoutConfig() layout.Config {
	cfg := layout.DefaultConfig()
	cfg.MinAngle = g.MinAngleDegrees * math.Pi / 180
	cfg.EdgeTolerance = g.EdgeLengthTolerance
	cfg.VertexSeparation = g.VertexSeparation
	cfg.DefaultEdgeLength = g.DefaultEdgeLength
	cfg.ConvexityPush = g.ConvexityAdjustment
	cfg.LengthPasses = g.RedrawIterations
	return cfg
}

// VertexColor returns the hex color for a palette slot (1-based). Slots
// outside the palette fall back to a neutral gray so corrupt color indexes
// stay visible instead of failing the render.
func (p Palette) VertexColor(slot int) string {
	if slot < 1 || slot > len(p.VertexColors) {
		return "#AAAAAA"
	}
	return p.VertexColors[slot-1]
}
