// Package layout places new vertices and keeps the embedded graph
// readable as it grows.
//
// # Overview
//
// Two concerns live here. Placement ([Engine.PlacePosition],
// [RandomSegment]) answers where a new vertex attaching to a periphery
// segment should go: outward from the segment centroid, at a slight
// stretch over the average edge length, pushed apart from any vertex closer
// than the separation minimum. Relaxation ([Engine.Redraw]) runs one
// bounded maintenance pass after each insertion: recompute the periphery,
// open up angles sharper than the minimum, pull edge lengths toward the
// mean, push concave periphery vertices outward, and refresh draw
// diameters.
//
// Relaxation is heuristic on purpose. A single pass with fixed iteration
// counts keeps insertion cost bounded and the motion visually calm; it
// does not try to converge to an equilibrium, so repeated passes keep
// nudging positions. Degenerate directions (coincident vertices) are
// skipped rather than reported.
//
// [Scale], [Translate], and [FitToBounds] apply whole-graph affine
// adjustments; they move every vertex and leave structure untouched.
//
// All iteration is in sorted vertex or canonical edge order, so a given
// graph state always relaxes to the same next state.
package layout
