package meshio

import (
	"fmt"

	"github.com/pengfej/dealii/refcell"
)

// GmshElementType returns the Gmsh elm-type code for the linear version of
// the cell (Gmsh calls the wedge a prism)
func GmshElementType(k refcell.Kind) int {
	switch k {
	case refcell.Vertex:
		return 15
	case refcell.Line:
		return 1
	case refcell.Triangle:
		return 2
	case refcell.Quadrilateral:
		return 3
	case refcell.Tetrahedron:
		return 4
	case refcell.Pyramid:
		return 7
	case refcell.Wedge:
		return 6
	case refcell.Hexahedron:
		return 5
	}
	panic(fmt.Errorf("no Gmsh element type for %s cells", k))
}

// KindFromGmshType returns the cell kind for a linear Gmsh elm-type code.
// Mesh readers use this to classify incoming elements; unknown codes
// (including the higher-order Gmsh types) report ok == false.
func KindFromGmshType(code int) (k refcell.Kind, ok bool) {
	switch code {
	case 15:
		return refcell.Vertex, true
	case 1:
		return refcell.Line, true
	case 2:
		return refcell.Triangle, true
	case 3:
		return refcell.Quadrilateral, true
	case 4:
		return refcell.Tetrahedron, true
	case 5:
		return refcell.Hexahedron, true
	case 6:
		return refcell.Wedge, true
	case 7:
		return refcell.Pyramid, true
	}
	return refcell.Invalid, false
}
