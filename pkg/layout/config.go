package layout

import "math"

// Config tunes the placement and relaxation heuristics. The zero value is
// not useful; start from [DefaultConfig] and override fields as needed.
type Config struct {
	// MinAngle is the smallest allowed angle, in radians, between two
	// edges meeting at a vertex before the rebalance step opens them up.
	MinAngle float64

	// EdgeTolerance is the relative deviation from the mean edge length
	// tolerated before an edge is pulled back toward the mean.
	EdgeTolerance float64

	// VertexSeparation is the minimum distance enforced between a newly
	// placed vertex and every existing vertex.
	VertexSeparation float64

	// DefaultEdgeLength is the placement distance used while the graph
	// has no edges to average over.
	DefaultEdgeLength float64

	// PlacementStretch scales the placement distance beyond the average
	// edge length so fresh vertices land slightly outside the hull.
	PlacementStretch float64

	// ConvexityPush is how far, in layout units, a concave periphery
	// vertex is moved outward per relaxation pass.
	ConvexityPush float64

	// LengthPasses is the fixed number of edge length adjustment sweeps
	// per relaxation pass.
	LengthPasses int

	// FitPadding is the fraction of the target bounds the graph may fill
	// when fitted with [FitToBounds].
	FitPadding float64
}

// DefaultConfig returns the tuning the layout was designed around: a 60
// degree minimum angle, 20% edge length tolerance, 20 unit vertex
// separation, and an 80 unit default edge length.
func DefaultConfig() Config {
	return Config{
		MinAngle:          60 * math.Pi / 180,
		EdgeTolerance:     0.2,
		VertexSeparation:  20,
		DefaultEdgeLength: 80,
		PlacementStretch:  1.1,
		ConvexityPush:     10,
		LengthPasses:      3,
		FitPadding:        0.8,
	}
}
