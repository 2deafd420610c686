package geom

// Rect is an axis-aligned rectangle spanning Min to Max.
type Rect struct {
	Min Point
	Max Point
}

// RectFromSize returns a rectangle anchored at the origin with the given
// width and height.
func RectFromSize(w, h float64) Rect {
	return Rect{Max: Point{w, h}}
}

// Width returns the horizontal extent of r.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the vertical extent of r.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Center returns the midpoint of r.
func (r Rect) Center() Point { return r.Min.Midpoint(r.Max) }

// Bounds returns the tightest rectangle containing all pts. The second
// return value is false when pts is empty.
func Bounds(pts []Point) (Rect, bool) {
	if len(pts) == 0 {
		return Rect{}, false
	}
	r := Rect{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		if p.X < r.Min.X {
			r.Min.X = p.X
		}
		if p.Y < r.Min.Y {
			r.Min.Y = p.Y
		}
		if p.X > r.Max.X {
			r.Max.X = p.X
		}
		if p.Y > r.Max.Y {
			r.Max.Y = p.Y
		}
	}
	return r, true
}
