package quadrature

import (
	"fmt"

	"github.com/pengfej/dealii/refcell"
)

// Quadrature is a set of integration points and weights in the coordinates of
// a reference cell. Rules returned by this package integrate constants to the
// cell's reference volume, except the nodal rule whose weights carry no
// meaning.
type Quadrature struct {
	Kind    refcell.Kind
	Points  [][3]float64
	Weights []float64
}

// Len returns the number of quadrature points
func (q *Quadrature) Len() int {
	return len(q.Points)
}

// WeightSum returns the sum of the quadrature weights
func (q *Quadrature) WeightSum() (sum float64) {
	for _, w := range q.Weights {
		sum += w
	}
	return
}

// GaussType returns a Gauss-type rule for the cell with nPoints1D points per
// direction: a tensor-product Gauss rule for hypercube kinds, collapsed
// (Duffy) rules for the simplices, a conical Jacobi-weighted rule for the
// pyramid and a triangle-line product for the wedge
func GaussType(k refcell.Kind, nPoints1D int) *Quadrature {
	if nPoints1D < 1 {
		panic(fmt.Errorf("need at least one quadrature point per direction, got %d",
			nPoints1D))
	}
	switch k {
	case refcell.Line, refcell.Quadrilateral, refcell.Hexahedron:
		return tensorRule(k, nPoints1D)
	case refcell.Triangle, refcell.Tetrahedron:
		return simplexRule(k, nPoints1D)
	case refcell.Pyramid:
		return pyramidRule(nPoints1D)
	case refcell.Wedge:
		return wedgeRule(nPoints1D)
	}
	panic(fmt.Errorf("no Gauss-type quadrature for %s cells", k))
}

// tensorRule is the nPoints1D^dim Gauss product rule on the unit box
func tensorRule(k refcell.Kind, n int) *Quadrature {
	x, w := gauss1D(n)
	dim := k.Dimension()
	total := 1
	for d := 0; d < dim; d++ {
		total *= n
	}
	q := &Quadrature{
		Kind:    k,
		Points:  make([][3]float64, 0, total),
		Weights: make([]float64, 0, total),
	}
	switch dim {
	case 1:
		for i := 0; i < n; i++ {
			q.Points = append(q.Points, [3]float64{x[i]})
			q.Weights = append(q.Weights, w[i])
		}
	case 2:
		for j := 0; j < n; j++ {
			for i := 0; i < n; i++ {
				q.Points = append(q.Points, [3]float64{x[i], x[j]})
				q.Weights = append(q.Weights, w[i]*w[j])
			}
		}
	case 3:
		for kk := 0; kk < n; kk++ {
			for j := 0; j < n; j++ {
				for i := 0; i < n; i++ {
					q.Points = append(q.Points, [3]float64{x[i], x[j], x[kk]})
					q.Weights = append(q.Weights, w[i]*w[j]*w[kk])
				}
			}
		}
	}
	return q
}

// simplexRule collapses the unit-box tensor rule onto the unit simplex via
// the Duffy transform, folding the transform Jacobian into the weights
func simplexRule(k refcell.Kind, n int) *Quadrature {
	x, w := gauss1D(n)
	q := &Quadrature{Kind: k}
	switch k {
	case refcell.Triangle:
		// (xi, eta) -> (xi*(1-eta), eta), Jacobian (1-eta)
		for j := 0; j < n; j++ {
			for i := 0; i < n; i++ {
				q.Points = append(q.Points,
					[3]float64{x[i] * (1. - x[j]), x[j]})
				q.Weights = append(q.Weights, w[i]*w[j]*(1.-x[j]))
			}
		}
	case refcell.Tetrahedron:
		// (xi, eta, zeta) -> (xi*(1-eta)*(1-zeta), eta*(1-zeta), zeta),
		// Jacobian (1-eta)*(1-zeta)^2
		for kk := 0; kk < n; kk++ {
			for j := 0; j < n; j++ {
				for i := 0; i < n; i++ {
					zc := 1. - x[kk]
					q.Points = append(q.Points, [3]float64{
						x[i] * (1. - x[j]) * zc,
						x[j] * zc,
						x[kk],
					})
					q.Weights = append(q.Weights,
						w[i]*w[j]*w[kk]*(1.-x[j])*zc*zc)
				}
			}
		}
	}
	return q
}

// pyramidRule integrates over the pyramid with base [-1,1]^2 and apex height
// one. The base shrinks linearly toward the apex, so the vertical direction
// uses a Jacobi(2,0) rule that absorbs the (1-z)^2 cross-section factor.
func pyramidRule(n int) *Quadrature {
	xb, wb := gauss1D(n)
	xz, wz := jacobiGQ(2, 0, n-1)
	q := &Quadrature{Kind: refcell.Pyramid}
	for kk := 0; kk < n; kk++ {
		z := (xz[kk] + 1.) / 2.
		// dt = 2 dz and (1-t)^2 = 4 (1-z)^2 fold into a 1/8 weight factor
		wZ := wz[kk] / 8.
		for j := 0; j < n; j++ {
			for i := 0; i < n; i++ {
				shrink := 1. - z
				q.Points = append(q.Points, [3]float64{
					(2.*xb[i] - 1.) * shrink,
					(2.*xb[j] - 1.) * shrink,
					z,
				})
				q.Weights = append(q.Weights, 4.*wb[i]*wb[j]*wZ)
			}
		}
	}
	return q
}

// wedgeRule is the product of the triangle rule with a 1D Gauss rule along
// the extrusion axis
func wedgeRule(n int) *Quadrature {
	tri := simplexRule(refcell.Triangle, n)
	xz, wz := gauss1D(n)
	q := &Quadrature{Kind: refcell.Wedge}
	for kk := 0; kk < n; kk++ {
		for p := range tri.Points {
			q.Points = append(q.Points, [3]float64{
				tri.Points[p][0], tri.Points[p][1], xz[kk]})
			q.Weights = append(q.Weights, tri.Weights[p]*wz[kk])
		}
	}
	return q
}
