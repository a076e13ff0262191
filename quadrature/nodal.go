package quadrature

import (
	"fmt"
	"math"
	"sync"

	"github.com/pengfej/dealii/refcell"
)

// Nodal rules are requested on every basis construction, so each kind's rule
// is built exactly once and shared for the life of the process. A sync.Once
// per kind serializes the first construction; later calls are lock-free
// reads of the stored pointer.
var (
	nodalOnce  [8]sync.Once
	nodalRules [8]*Quadrature
)

// NodalType returns the quadrature whose points coincide with the cell's
// vertices. The weights carry no meaning and are set to +Inf so that any
// accidental use shows up immediately. The returned instance is a shared
// process-wide singleton; callers must not modify it.
func NodalType(k refcell.Kind) *Quadrature {
	switch k {
	case refcell.Line, refcell.Triangle, refcell.Quadrilateral,
		refcell.Tetrahedron, refcell.Pyramid, refcell.Wedge,
		refcell.Hexahedron:
	default:
		panic(fmt.Errorf("no nodal quadrature for %s cells", k))
	}
	nodalOnce[k].Do(func() {
		n := k.NVertices()
		q := &Quadrature{
			Kind:    k,
			Points:  make([][3]float64, n),
			Weights: make([]float64, n),
		}
		for v := 0; v < n; v++ {
			q.Points[v] = k.Vertex(v)
			q.Weights[v] = math.Inf(1)
		}
		nodalRules[k] = q
	})
	return nodalRules[k]
}
