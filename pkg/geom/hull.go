package geom

import "sort"

// Hull computes the convex hull of pts using the monotone chain algorithm
// and returns the indices of the hull points into pts, ordered clockwise in
// screen coordinates (the y axis grows downward). Collinear points and
// duplicates are dropped from the hull. Fewer than three input points are
// returned as-is, in index order.
//
// Ties on coordinates are broken by index so the result is deterministic
// for any input order the caller fixes.
func Hull(pts []Point) []int {
	n := len(pts)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	if n < 3 {
		return idx
	}

	sort.Slice(idx, func(a, b int) bool {
		pa, pb := pts[idx[a]], pts[idx[b]]
		if pa.X != pb.X {
			return pa.X < pb.X
		}
		if pa.Y != pb.Y {
			return pa.Y < pb.Y
		}
		return idx[a] < idx[b]
	})

	cross := func(o, a, b int) float64 {
		return pts[a].Sub(pts[o]).Cross(pts[b].Sub(pts[o]))
	}

	lower := make([]int, 0, n)
	for _, i := range idx {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], i) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, i)
	}

	upper := make([]int, 0, n)
	for k := n - 1; k >= 0; k-- {
		i := idx[k]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], i) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, i)
	}

	// The last point of each chain is the first point of the other.
	return append(lower[:len(lower)-1], upper[:len(upper)-1]...)
}
