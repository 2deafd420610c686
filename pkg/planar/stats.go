package planar

import "math"

// Stats summarizes the edge length distribution of a graph.
type Stats struct {
	Mean   float64
	StdDev float64 // population standard deviation
	Min    float64
	Max    float64
}

// EdgeLengthStats returns summary statistics over all edge lengths. A graph
// without edges yields the zero Stats.
func (g *Graph) EdgeLengthStats() Stats {
	if len(g.edges) == 0 {
		return Stats{}
	}
	lengths := make([]float64, 0, len(g.edges))
	for e := range g.edges {
		v1 := g.vertices[e.V1]
		v2 := g.vertices[e.V2]
		lengths = append(lengths, v1.Pos.Distance(v2.Pos))
	}

	s := Stats{Min: lengths[0], Max: lengths[0]}
	var sum float64
	for _, l := range lengths {
		sum += l
		if l < s.Min {
			s.Min = l
		}
		if l > s.Max {
			s.Max = l
		}
	}
	s.Mean = sum / float64(len(lengths))

	var sq float64
	for _, l := range lengths {
		d := l - s.Mean
		sq += d * d
	}
	s.StdDev = math.Sqrt(sq / float64(len(lengths)))
	return s
}

// AverageEdgeLength returns the mean edge length, or 0 when the graph has
// no edges. The layout engine uses this as its target length.
func (g *Graph) AverageEdgeLength() float64 {
	if len(g.edges) == 0 {
		return 0
	}
	var sum float64
	for e := range g.edges {
		sum += g.vertices[e.V1].Pos.Distance(g.vertices[e.V2].Pos)
	}
	return sum / float64(len(g.edges))
}
