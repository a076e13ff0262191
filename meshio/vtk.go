/*
Package meshio translates the library's internal cell numbering to and from
external mesh file conventions: VTK, ExodusII, UNV (I-deas universal files)
and Gmsh. Every table here is an external contract reproduced literally from
the tools that consume the files; a single wrong entry silently corrupts
every cell written in that format.
*/
package meshio

import (
	"fmt"

	"github.com/pengfej/dealii/refcell"
)

// VTK cell type codes for linear, quadratic and high-order Lagrange
// geometries
const (
	vtkVertex     = 1
	vtkLine       = 3
	vtkTriangle   = 5
	vtkQuad       = 9
	vtkTetra      = 10
	vtkHexahedron = 12
	vtkWedge      = 13
	vtkPyramid    = 14

	vtkQuadraticEdge       = 21
	vtkQuadraticTriangle   = 22
	vtkQuadraticQuad       = 23
	vtkQuadraticTetra      = 24
	vtkQuadraticHexahedron = 25
	vtkQuadraticWedge      = 26
	vtkQuadraticPyramid    = 27

	vtkLagrangeCurve         = 68
	vtkLagrangeTriangle      = 69
	vtkLagrangeQuadrilateral = 70
	vtkLagrangeTetrahedron   = 71
	vtkLagrangeHexahedron    = 72
	vtkLagrangeWedge         = 73
	vtkLagrangePyramid       = 74

	// VTKInvalid is the sentinel returned for the Invalid kind; it is never
	// written to a file
	VTKInvalid = -1
)

// VTKLinearType returns the VTK cell type code for the linear version of the
// cell
func VTKLinearType(k refcell.Kind) int {
	switch k {
	case refcell.Vertex:
		return vtkVertex
	case refcell.Line:
		return vtkLine
	case refcell.Triangle:
		return vtkTriangle
	case refcell.Quadrilateral:
		return vtkQuad
	case refcell.Tetrahedron:
		return vtkTetra
	case refcell.Pyramid:
		return vtkPyramid
	case refcell.Wedge:
		return vtkWedge
	case refcell.Hexahedron:
		return vtkHexahedron
	}
	return VTKInvalid
}

// VTKQuadraticType returns the VTK cell type code for the quadratic version
// of the cell
func VTKQuadraticType(k refcell.Kind) int {
	switch k {
	case refcell.Vertex:
		return vtkVertex
	case refcell.Line:
		return vtkQuadraticEdge
	case refcell.Triangle:
		return vtkQuadraticTriangle
	case refcell.Quadrilateral:
		return vtkQuadraticQuad
	case refcell.Tetrahedron:
		return vtkQuadraticTetra
	case refcell.Pyramid:
		return vtkQuadraticPyramid
	case refcell.Wedge:
		return vtkQuadraticWedge
	case refcell.Hexahedron:
		return vtkQuadraticHexahedron
	}
	return VTKInvalid
}

// VTKLagrangeType returns the VTK cell type code for the arbitrary-order
// Lagrange version of the cell
func VTKLagrangeType(k refcell.Kind) int {
	switch k {
	case refcell.Vertex:
		return vtkVertex
	case refcell.Line:
		return vtkLagrangeCurve
	case refcell.Triangle:
		return vtkLagrangeTriangle
	case refcell.Quadrilateral:
		return vtkLagrangeQuadrilateral
	case refcell.Tetrahedron:
		return vtkLagrangeTetrahedron
	case refcell.Pyramid:
		return vtkLagrangePyramid
	case refcell.Wedge:
		return vtkLagrangeWedge
	case refcell.Hexahedron:
		return vtkLagrangeHexahedron
	}
	return VTKInvalid
}

// VTKVertexToInternal maps a VTK vertex index to the internal vertex index
// for the same corner. VTK and the internal numbering agree except for the
// hypercube-footed kinds, where VTK counts corners counter-clockwise
// (see the VTK file format manual) while the internal numbering is
// lexicographic.
func VTKVertexToInternal(k refcell.Kind, vertex int) int {
	if vertex < 0 || vertex >= k.NVertices() {
		panic(fmt.Errorf("VTK vertex %d out of range for %s cell", vertex, k))
	}
	switch k {
	case refcell.Vertex, refcell.Line, refcell.Triangle,
		refcell.Tetrahedron, refcell.Wedge:
		return vertex
	case refcell.Quadrilateral:
		return [4]int{0, 1, 3, 2}[vertex]
	case refcell.Pyramid:
		return [5]int{0, 1, 3, 2, 4}[vertex]
	case refcell.Hexahedron:
		return [8]int{0, 1, 3, 2, 4, 5, 7, 6}[vertex]
	}
	panic(fmt.Errorf("no VTK vertex numbering for %s cells", k))
}
