/*
Package mapping selects the geometric mapping family appropriate to each
reference cell kind. It owns no polynomial math: the basis layer constructs
the actual shape functions from the (family, degree) pair selected here.
*/
package mapping

import (
	"fmt"
	"sync"

	"github.com/pengfej/dealii/refcell"
)

// Family identifies a family of geometric mappings
type Family int

const (
	// TensorProduct maps hypercube cells with Q-space polynomials
	TensorProduct Family = iota
	// SimplexP maps simplex cells with P-space polynomials
	SimplexP
	// PyramidP maps pyramid cells with the rational pyramid space
	PyramidP
	// WedgeP maps wedge cells with the triangle-line product space
	WedgeP
)

func (f Family) String() string {
	return [...]string{"TensorProduct", "SimplexP", "PyramidP", "WedgeP"}[f]
}

// Mapping is an immutable selection of a mapping family and polynomial
// degree for one cell kind. Mappings are stateless and safe to share.
type Mapping struct {
	Family Family
	Kind   refcell.Kind
	Degree int
}

func (m *Mapping) String() string {
	return fmt.Sprintf("%s(%s, degree %d)", m.Family, m.Kind, m.Degree)
}

// Default selects the mapping family for the cell kind at the given degree.
// dim is the caller's expected spatial dimension and must match the kind's.
func Default(k refcell.Kind, dim, degree int) *Mapping {
	if k == refcell.Invalid {
		panic(fmt.Errorf("no mapping for Invalid cells"))
	}
	if dim != k.Dimension() {
		panic(fmt.Errorf("%s cells are %dD, caller expects %dD",
			k, k.Dimension(), dim))
	}
	if degree < 1 {
		panic(fmt.Errorf("mapping degree must be positive, got %d", degree))
	}
	switch {
	case k.IsHyperCube():
		return &Mapping{Family: TensorProduct, Kind: k, Degree: degree}
	case k.IsSimplex():
		return &Mapping{Family: SimplexP, Kind: k, Degree: degree}
	case k == refcell.Pyramid:
		return &Mapping{Family: PyramidP, Kind: k, Degree: degree}
	case k == refcell.Wedge:
		return &Mapping{Family: WedgeP, Kind: k, Degree: degree}
	}
	panic(fmt.Errorf("no mapping family for %s cells", k))
}

var (
	linearOnce [8]sync.Once
	linear     [8]*Mapping
)

// DefaultLinear returns the degree one mapping for the kind as a shared
// process-wide singleton. Sharing is safe because mappings are stateless
// once selected.
func DefaultLinear(k refcell.Kind, dim int) *Mapping {
	if k == refcell.Invalid {
		panic(fmt.Errorf("no mapping for Invalid cells"))
	}
	if dim != k.Dimension() {
		panic(fmt.Errorf("%s cells are %dD, caller expects %dD",
			k, k.Dimension(), dim))
	}
	linearOnce[k].Do(func() {
		linear[k] = Default(k, dim, 1)
	})
	return linear[k]
}
