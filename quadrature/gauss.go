/*
Package quadrature selects numerical integration rules appropriate to each
reference cell kind: tensor-product Gauss rules for the hypercube kinds,
collapsed-coordinate rules for the simplices, and shape-specific conical and
product rules for the pyramid and the wedge. The 1D generator underneath is a
Gauss-Jacobi rule computed by Golub-Welsch eigenvalue decomposition.
*/
package quadrature

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// jacobiGQ returns the N+1 point Gauss quadrature nodes and weights for the
// Jacobi weight (1-x)^alpha (1+x)^beta on [-1,1], via the eigenvalues of the
// symmetric tridiagonal Jacobi matrix
func jacobiGQ(alpha, beta float64, N int) (x, w []float64) {
	if N == 0 {
		x = []float64{-(alpha - beta) / (alpha + beta + 2.)}
		w = []float64{gamma0(alpha, beta)}
		return
	}

	h1 := make([]float64, N+1)
	for i := 0; i < N+1; i++ {
		h1[i] = 2*float64(i) + alpha + beta
	}

	// main diagonal: -1/2*(alpha^2-beta^2)./(h1+2)./h1
	d0 := make([]float64, N+1)
	fac := -.5 * (alpha*alpha - beta*beta)
	for i := 0; i < N+1; i++ {
		val := h1[i]
		d0[i] = fac / (val * (val + 2.))
	}
	// Handle division by zero
	eps := 1.e-16
	if alpha+beta < 10*eps {
		d0[0] = 0.
	}

	// 1st off diagonal: 2./(h1+2).*sqrt(i*(i+alpha+beta)*(i+alpha)*(i+beta)/(h1+1)/(h1+3))
	d1 := make([]float64, N)
	for i := 0; i < N; i++ {
		ip1 := float64(i + 1)
		val := h1[i]
		d1[i] = 2. / (val + 2.)
		d1[i] *= math.Sqrt(ip1 * (ip1 + alpha + beta) * (ip1 + alpha) *
			(ip1 + beta) / ((val + 1.) * (val + 3.)))
	}

	JJ := mat.NewSymDense(N+1, nil)
	for i := 0; i < N+1; i++ {
		JJ.SetSym(i, i, d0[i])
		if i < N {
			JJ.SetSym(i, i+1, d1[i])
		}
	}

	var eig mat.EigenSym
	if ok := eig.Factorize(JJ, true); !ok {
		panic("eigenvalue decomposition failed")
	}
	x = eig.Values(nil)

	VVr := mat.NewDense(N+1, N+1, nil)
	eig.VectorsTo(VVr)
	w = make([]float64, N+1)
	g0 := gamma0(alpha, beta)
	for i := range w {
		v := VVr.At(0, i)
		w[i] = v * v * g0
	}
	return
}

// gamma0 is the total Jacobi weight integral over [-1,1]
func gamma0(alpha, beta float64) float64 {
	ab1 := alpha + beta + 1.
	a1 := alpha + 1.
	b1 := beta + 1.
	return (math.Pow(2., ab1) / ab1) * math.Gamma(a1) * math.Gamma(b1) /
		math.Gamma(ab1)
}

// gauss1D returns the n point Gauss-Legendre rule on [0,1]
func gauss1D(n int) (x, w []float64) {
	x, w = jacobiGQ(0, 0, n-1)
	for i := range x {
		x[i] = (x[i] + 1.) / 2.
		w[i] /= 2.
	}
	return
}
