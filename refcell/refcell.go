package refcell

import (
	"fmt"
)

/*
Kind identifies one of the eight canonical reference cell topologies used to
build meshes, plus an explicit Invalid tag. The integer values are part of the
persistence contract (see serialize.go) and must not be reordered.
*/
type Kind uint8

const (
	Vertex Kind = iota
	Line
	Triangle
	Quadrilateral
	Tetrahedron
	Pyramid
	Wedge
	Hexahedron
	Invalid Kind = 255
)

// Kinds returns the eight concrete cell kinds in tag order
func Kinds() []Kind {
	return []Kind{Vertex, Line, Triangle, Quadrilateral, Tetrahedron,
		Pyramid, Wedge, Hexahedron}
}

func (k Kind) String() string {
	switch k {
	case Vertex:
		return "Vertex"
	case Line:
		return "Line"
	case Triangle:
		return "Tri"
	case Quadrilateral:
		return "Quad"
	case Tetrahedron:
		return "Tet"
	case Pyramid:
		return "Pyramid"
	case Wedge:
		return "Wedge"
	case Hexahedron:
		return "Hex"
	}
	return "Invalid"
}

// Dimension returns the spatial dimension of the cell
func (k Kind) Dimension() int {
	switch k {
	case Vertex:
		return 0
	case Line:
		return 1
	case Triangle, Quadrilateral:
		return 2
	case Tetrahedron, Pyramid, Wedge, Hexahedron:
		return 3
	}
	panic(fmt.Errorf("unsupported cell kind %d", uint8(k)))
}

// NVertices returns the number of vertices of the cell
func (k Kind) NVertices() int {
	switch k {
	case Vertex:
		return 1
	case Line:
		return 2
	case Triangle:
		return 3
	case Quadrilateral, Tetrahedron:
		return 4
	case Pyramid:
		return 5
	case Wedge:
		return 6
	case Hexahedron:
		return 8
	}
	panic(fmt.Errorf("unsupported cell kind %d", uint8(k)))
}

// NFaces returns the number of (dim-1)-dimensional faces of the cell
func (k Kind) NFaces() int {
	switch k {
	case Vertex:
		return 0
	case Line:
		return 2
	case Triangle:
		return 3
	case Quadrilateral:
		return 4
	case Tetrahedron:
		return 4
	case Pyramid, Wedge:
		return 5
	case Hexahedron:
		return 6
	}
	panic(fmt.Errorf("unsupported cell kind %d", uint8(k)))
}

// IsHyperCube reports whether the cell is a tensor product of unit intervals
func (k Kind) IsHyperCube() bool {
	switch k {
	case Vertex, Line, Quadrilateral, Hexahedron:
		return true
	case Triangle, Tetrahedron, Pyramid, Wedge:
		return false
	}
	panic(fmt.Errorf("unsupported cell kind %d", uint8(k)))
}

// IsSimplex reports whether the cell is a simplex
func (k Kind) IsSimplex() bool {
	switch k {
	case Vertex, Line, Triangle, Tetrahedron:
		return true
	case Quadrilateral, Pyramid, Wedge, Hexahedron:
		return false
	}
	panic(fmt.Errorf("unsupported cell kind %d", uint8(k)))
}

// Volume returns the measure of the reference cell
func (k Kind) Volume() float64 {
	switch k {
	case Vertex:
		return 0
	case Line:
		return 1
	case Triangle:
		return 1. / 2.
	case Quadrilateral:
		return 1
	case Tetrahedron:
		return 1. / 6.
	case Pyramid:
		return 4. / 3.
	case Wedge:
		return 1. / 2.
	case Hexahedron:
		return 1
	}
	panic(fmt.Errorf("unsupported cell kind %d", uint8(k)))
}

// Canonical vertex coordinates per kind. Only the leading Dimension() entries
// of each point are meaningful. The pyramid base spans [-1,1]^2 with the apex
// at unit height; all other cells live in the unit box/simplex.
var (
	lineVertices = [2][3]float64{{0}, {1}}
	triVertices  = [3][3]float64{{0, 0}, {1, 0}, {0, 1}}
	quadVertices = [4][3]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	tetVertices  = [4][3]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	pyrVertices  = [5][3]float64{
		{-1, -1, 0}, {1, -1, 0}, {-1, 1, 0}, {1, 1, 0}, {0, 0, 1}}
	wedgeVertices = [6][3]float64{
		{1, 0, 0}, {0, 1, 0}, {0, 0, 0}, {1, 0, 1}, {0, 1, 1}, {0, 0, 1}}
	hexVertices = [8][3]float64{
		{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0},
		{0, 0, 1}, {1, 0, 1}, {0, 1, 1}, {1, 1, 1}}
)

// Vertex returns the canonical coordinates of vertex i. The trailing
// components beyond Dimension() are zero.
func (k Kind) Vertex(i int) [3]float64 {
	if i < 0 || i >= k.NVertices() {
		panic(fmt.Errorf("vertex index %d out of range for %s cell", i, k))
	}
	switch k {
	case Vertex:
		return [3]float64{}
	case Line:
		return lineVertices[i]
	case Triangle:
		return triVertices[i]
	case Quadrilateral:
		return quadVertices[i]
	case Tetrahedron:
		return tetVertices[i]
	case Pyramid:
		return pyrVertices[i]
	case Wedge:
		return wedgeVertices[i]
	case Hexahedron:
		return hexVertices[i]
	}
	panic(fmt.Errorf("unsupported cell kind %d", uint8(k)))
}

// Barycenter returns the center of mass of the reference cell
func (k Kind) Barycenter() [3]float64 {
	switch k {
	case Vertex:
		return [3]float64{}
	case Line:
		return [3]float64{1. / 2.}
	case Triangle:
		return [3]float64{1. / 3., 1. / 3.}
	case Quadrilateral:
		return [3]float64{1. / 2., 1. / 2.}
	case Tetrahedron:
		return [3]float64{1. / 4., 1. / 4., 1. / 4.}
	case Pyramid:
		return [3]float64{0, 0, 1. / 4.}
	case Wedge:
		return [3]float64{1. / 3., 1. / 3., 1. / 2.}
	case Hexahedron:
		return [3]float64{1. / 2., 1. / 2., 1. / 2.}
	}
	panic(fmt.Errorf("unsupported cell kind %d", uint8(k)))
}
