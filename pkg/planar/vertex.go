package planar

import (
	"strconv"

	"github.com/Aayushjha0128/GraphSense/pkg/geom"
)

// Vertex is a node of the planar graph. Position is mutable through the
// pointer returned by [Graph.Vertex]; the layout engine moves vertices this
// way. Structural changes (creating or removing vertices and edges) must go
// through Graph methods so the adjacency index and periphery stay coherent.
type Vertex struct {
	ID       int
	Pos      geom.Point
	Color    int     // palette slot, 1 through 4
	Diameter float64 // draw diameter, derived from the ID label width
}

// DiameterFor returns the draw diameter for a vertex ID: a 30 unit base
// plus 5 units for every digit in the label beyond the first, so labels
// keep fitting inside their circle as IDs grow.
func DiameterFor(id int) float64 {
	digits := len(strconv.Itoa(id))
	return 30 + float64(digits-1)*5
}
