// Package geom provides the small set of 2D primitives the planar engine
// is built on: points with vector arithmetic, axis-aligned rectangles, and
// a convex hull in screen coordinates (y axis grows downward).
package geom

import "math"

// Point is a position or displacement in screen coordinates.
// The y axis grows downward, matching canvas and SVG conventions.
type Point struct {
	X float64
	Y float64
}

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point { return Point{p.X * s, p.Y * s} }

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }

// Cross returns the z component of the cross product p x q. In screen
// coordinates a negative value means q lies counterclockwise of p when
// viewed on screen.
func (p Point) Cross(q Point) float64 { return p.X*q.Y - p.Y*q.X }

// Length returns the Euclidean norm of p.
func (p Point) Length() float64 { return math.Hypot(p.X, p.Y) }

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 { return p.Sub(q).Length() }

// Normalize returns p scaled to unit length. The zero vector is returned
// unchanged so callers can guard degenerate directions with a length check
// rather than a division-by-zero panic.
func (p Point) Normalize() Point {
	l := p.Length()
	if l == 0 {
		return Point{}
	}
	return Point{p.X / l, p.Y / l}
}

// Perp returns p rotated 90 degrees. Combined with a sign flip this yields
// both normals of a segment direction.
func (p Point) Perp() Point { return Point{-p.Y, p.X} }

// Midpoint returns the point halfway between p and q.
func (p Point) Midpoint(q Point) Point {
	return Point{(p.X + q.X) / 2, (p.Y + q.Y) / 2}
}

// Centroid returns the arithmetic mean of the given points, or the zero
// point when the slice is empty.
func Centroid(pts []Point) Point {
	if len(pts) == 0 {
		return Point{}
	}
	var c Point
	for _, p := range pts {
		c.X += p.X
		c.Y += p.Y
	}
	n := float64(len(pts))
	return Point{c.X / n, c.Y / n}
}

// Rotate returns p rotated by angle radians around origin.
func Rotate(p, origin Point, angle float64) Point {
	s, c := math.Sincos(angle)
	d := p.Sub(origin)
	return Point{
		X: origin.X + d.X*c - d.Y*s,
		Y: origin.Y + d.X*s + d.Y*c,
	}
}
