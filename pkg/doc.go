// Package pkg provides the core libraries for GraphSense planar graph building.
//
// # Overview
//
// GraphSense grows planar triangulated graphs one vertex at a time: every
// insertion attaches to a segment of the convex periphery, connects to each
// segment vertex, and is followed by a bounded relaxation pass that keeps
// the drawing readable. The pkg directory is organized into four main areas:
//
//  1. [planar] - Graph store (vertices, edges, periphery cycle)
//  2. [builder] and [layout] - Growth orchestration and geometry
//  3. [render] - Visualization (SVG, Graphviz DOT/PNG)
//  4. [snapshot], [store], [cache] - Persistence and caching
//
// # Architecture
//
// The typical data flow through GraphSense:
//
//	Seed triangle or loaded snapshot
//	         ↓
//	    [planar] package (graph structure + periphery)
//	         ↓
//	    [builder] package (segment pick, placement, relaxation via [layout])
//	         ↓
//	    [render] package (SVG or DOT output)
//	         ↓
//	    [snapshot] / [store] (persist), [cache] (memoize artifacts)
//
// # Quick Start
//
// Seed a graph, grow it, and render an SVG:
//
//	import (
//	    "github.com/Aayushjha0128/GraphSense/pkg/builder"
//	    "github.com/Aayushjha0128/GraphSense/pkg/planar"
//	    "github.com/Aayushjha0128/GraphSense/pkg/render"
//	)
//
//	// 1. Seed the initial triangle
//	g := planar.New()
//	b := builder.New(g, nil, 42)
//	b.StartTriangle()
//
//	// 2. Grow at random periphery segments
//	for range 25 {
//	    b.AddRandomVertex()
//	}
//
//	// 3. Render to SVG
//	svg := render.SVG(g, render.WithPeripheryHighlight())
//
// # Main Packages
//
// ## Core Domain Logic
//
// [planar] - The graph store. Vertices carry embedded positions and palette
// colors, edges are canonical unordered pairs, and the periphery is maintained
// as a clockwise convex hull cycle. Includes structural integrity checks.
//
// [geom] - Small vector geometry layer (points, rectangles, angles) used by
// everything that touches coordinates.
//
// [layout] - Placement and relaxation engine. Computes positions outside the
// periphery for new vertices, then relaxes angles, edge lengths, and hull
// convexity in bounded passes.
//
// [builder] - Growth orchestration. Seeds the triangle, picks or validates
// periphery segments, and runs insertions that either complete fully or leave
// the graph untouched. Deterministic under a fixed seed.
//
// ## Visualization
//
// [render] - Two output paths: a native byte-deterministic SVG sink, and a
// Graphviz bridge that exports DOT with pinned positions for SVG/PNG
// rasterization.
//
// ## Persistence
//
// [snapshot] - JSON document capture and restore for whole graphs, including
// the periphery and the ID counter.
//
// [store] - Named snapshot persistence with four backends: memory (testing),
// file (CLI), Redis and MongoDB (server deployments).
//
// [cache] - Content-addressed caching for rendered artifacts. Keys hash the
// graph document and render options, so entries never go stale.
//
// ## Supporting Packages
//
// [config] - TOML configuration with validated defaults for geometry, canvas,
// server, and store settings.
//
// [observability] - Hook interfaces for build, cache, and render events.
// No-op by default; backends register implementations at startup.
//
// [buildinfo] - Version and build metadata embedded at link time.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/planar/...   # Specific package
//
// [planar]: https://pkg.go.dev/github.com/Aayushjha0128/GraphSense/pkg/planar
// [geom]: https://pkg.go.dev/github.com/Aayushjha0128/GraphSense/pkg/geom
// [layout]: https://pkg.go.dev/github.com/Aayushjha0128/GraphSense/pkg/layout
// [builder]: https://pkg.go.dev/github.com/Aayushjha0128/GraphSense/pkg/builder
// [render]: https://pkg.go.dev/github.com/Aayushjha0128/GraphSense/pkg/render
// [snapshot]: https://pkg.go.dev/github.com/Aayushjha0128/GraphSense/pkg/snapshot
// [store]: https://pkg.go.dev/github.com/Aayushjha0128/GraphSense/pkg/store
// [cache]: https://pkg.go.dev/github.com/Aayushjha0128/GraphSense/pkg/cache
// [config]: https://pkg.go.dev/github.com/Aayushjha0128/GraphSense/pkg/config
// [observability]: https://pkg.go.dev/github.com/Aayushjha0128/GraphSense/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/Aayushjha0128/GraphSense/pkg/buildinfo
package pkg
