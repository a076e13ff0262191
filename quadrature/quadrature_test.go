package quadrature

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pengfej/dealii/refcell"
)

func TestGauss1D(t *testing.T) {
	{ // Single point rule is the midpoint with full weight
		x, w := gauss1D(1)
		require.Len(t, x, 1)
		assert.InDelta(t, 0.5, x[0], 1.e-14)
		assert.InDelta(t, 1., w[0], 1.e-14)
	}
	{ // An n point Gauss rule integrates x^(2n-1) exactly on [0,1]
		for n := 1; n <= 6; n++ {
			x, w := gauss1D(n)
			p := 2*n - 1
			var integral float64
			for i := range x {
				integral += w[i] * math.Pow(x[i], float64(p))
			}
			assert.InDelta(t, 1./float64(p+1), integral, 1.e-12, "n=%d", n)
		}
	}
	{ // Jacobi(2,0) total weight is the integral of (1-x)^2 over [-1,1]
		_, w := jacobiGQ(2, 0, 3)
		var sum float64
		for _, wi := range w {
			sum += wi
		}
		assert.InDelta(t, 8./3., sum, 1.e-12)
	}
}

func TestGaussTypeWeightSumsEqualVolume(t *testing.T) {
	kinds := []refcell.Kind{refcell.Line, refcell.Triangle,
		refcell.Quadrilateral, refcell.Tetrahedron, refcell.Pyramid,
		refcell.Wedge, refcell.Hexahedron}
	for _, k := range kinds {
		for n := 1; n <= 4; n++ {
			q := GaussType(k, n)
			assert.Equal(t, k, q.Kind)
			assert.InDelta(t, k.Volume(), q.WeightSum(), 1.e-12,
				"%s n=%d", k, n)
		}
	}
}

func TestGaussTypePointCounts(t *testing.T) {
	assert.Equal(t, 3, GaussType(refcell.Line, 3).Len())
	assert.Equal(t, 9, GaussType(refcell.Quadrilateral, 3).Len())
	assert.Equal(t, 27, GaussType(refcell.Hexahedron, 3).Len())
	assert.Equal(t, 9, GaussType(refcell.Triangle, 3).Len())
	assert.Equal(t, 27, GaussType(refcell.Tetrahedron, 3).Len())
	assert.Equal(t, 27, GaussType(refcell.Pyramid, 3).Len())
	assert.Equal(t, 27, GaussType(refcell.Wedge, 3).Len())
}

func TestGaussTypePointsInsideCell(t *testing.T) {
	{ // Simplex points stay inside the unit simplex
		for _, k := range []refcell.Kind{refcell.Triangle, refcell.Tetrahedron} {
			q := GaussType(k, 4)
			for _, pt := range q.Points {
				var sum float64
				for d := 0; d < k.Dimension(); d++ {
					assert.Greater(t, pt[d], 0.)
					sum += pt[d]
				}
				assert.Less(t, sum, 1.)
			}
		}
	}
	{ // Pyramid points stay inside the shrinking cross section
		q := GaussType(refcell.Pyramid, 4)
		for _, pt := range q.Points {
			shrink := 1. - pt[2]
			assert.Greater(t, pt[2], 0.)
			assert.Less(t, pt[2], 1.)
			assert.Less(t, math.Abs(pt[0]), shrink)
			assert.Less(t, math.Abs(pt[1]), shrink)
		}
	}
}

func TestGaussTypeIntegratesLinears(t *testing.T) {
	// Integral of x over the unit triangle is 1/6, over the tet 1/24
	q := GaussType(refcell.Triangle, 2)
	var integral float64
	for i, pt := range q.Points {
		integral += q.Weights[i] * pt[0]
	}
	assert.InDelta(t, 1./6., integral, 1.e-12)

	q = GaussType(refcell.Tetrahedron, 2)
	integral = 0
	for i, pt := range q.Points {
		integral += q.Weights[i] * pt[0]
	}
	assert.InDelta(t, 1./24., integral, 1.e-12)

	// Integral of z over the pyramid: cross section 4(1-z)^2 gives 1/3
	q = GaussType(refcell.Pyramid, 3)
	integral = 0
	for i, pt := range q.Points {
		integral += q.Weights[i] * pt[2]
	}
	assert.InDelta(t, 1./3., integral, 1.e-12)
}

func TestGaussTypeContractViolations(t *testing.T) {
	assert.Panics(t, func() { GaussType(refcell.Vertex, 2) })
	assert.Panics(t, func() { GaussType(refcell.Invalid, 2) })
	assert.Panics(t, func() { GaussType(refcell.Hexahedron, 0) })
}

func TestNodalTypePointsAreVertices(t *testing.T) {
	for _, k := range []refcell.Kind{refcell.Line, refcell.Triangle,
		refcell.Quadrilateral, refcell.Tetrahedron, refcell.Pyramid,
		refcell.Wedge, refcell.Hexahedron} {
		q := NodalType(k)
		require.Equal(t, k.NVertices(), q.Len(), k.String())
		for v := 0; v < k.NVertices(); v++ {
			assert.Equal(t, k.Vertex(v), q.Points[v])
			assert.True(t, math.IsInf(q.Weights[v], 1))
		}
	}
	assert.Panics(t, func() { NodalType(refcell.Vertex) })
	assert.Panics(t, func() { NodalType(refcell.Invalid) })
}

func TestNodalTypeIsMemoized(t *testing.T) {
	// Concurrent first users must observe a single shared instance
	const goroutines = 16
	results := make([]*Quadrature, goroutines)
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func(g int) {
			defer wg.Done()
			results[g] = NodalType(refcell.Wedge)
		}(g)
	}
	wg.Wait()
	for g := 1; g < goroutines; g++ {
		assert.Same(t, results[0], results[g])
	}
	assert.Same(t, results[0], NodalType(refcell.Wedge))
}
