// Package planar provides the graph store at the heart of GraphSense: a
// planar triangulated graph whose outer boundary (the periphery) is tracked
// as an ordered cycle.
//
// # Overview
//
// A [Graph] holds vertices with 2D positions, canonical undirected edges,
// a symmetric adjacency index, and the periphery: the vertex IDs of the
// convex outer boundary in clockwise order (screen coordinates, y growing
// downward). Graphs grow incrementally. New vertices attach to a run of
// consecutive periphery vertices and the periphery is recomputed as the
// convex hull of all vertex positions after every structural change.
//
// # Basic Usage
//
// Create a graph with [New], seed it with [Graph.InitialTriangle], and grow
// it through the builder package. Lower-level mutation is available directly:
//
//	g := planar.New()
//	g.InitialTriangle()
//	id := g.AddVertex(500, 400, 2)
//	g.AddEdge(id, 1)
//	g.UpdatePeriphery()
//
// Query structure with [Graph.Neighbors], [Graph.HasEdge],
// [Graph.PeripherySegment], and [Graph.EdgeLengthStats].
//
// # Invariants
//
// Vertex IDs are allocated monotonically starting at 1 and are never reused
// within a graph's lifetime. Edges are stored once under their canonical
// orientation (smaller ID first), so no self-loops or parallel edges exist.
// The adjacency index always mirrors the edge set. With three or more
// vertices the periphery is the clockwise convex hull; with fewer it is the
// vertex IDs in ascending order and carries no geometric meaning.
//
// All accessors that return collections ([Graph.Vertices], [Graph.Edges],
// [Graph.Neighbors], [Graph.VertexIDs]) do so in sorted order so that
// callers iterating the graph behave deterministically.
//
// # Concurrency
//
// A Graph is not safe for concurrent use. Each instance is meant to be
// owned by one logical session; callers that share a graph across
// goroutines must serialize access themselves.
package planar
