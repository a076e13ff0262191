package meshio

import (
	"fmt"

	"github.com/pengfej/dealii/refcell"
)

// ExodusVertexToInternal maps an ExodusII vertex index to the internal vertex
// index for the same corner
func ExodusVertexToInternal(k refcell.Kind, vertex int) int {
	if vertex < 0 || vertex >= k.NVertices() {
		panic(fmt.Errorf("Exodus vertex %d out of range for %s cell", vertex, k))
	}
	switch k {
	case refcell.Line, refcell.Triangle, refcell.Tetrahedron:
		return vertex
	case refcell.Quadrilateral:
		return [4]int{0, 1, 3, 2}[vertex]
	case refcell.Hexahedron:
		return [8]int{0, 1, 3, 2, 4, 5, 7, 6}[vertex]
	case refcell.Wedge:
		return [6]int{2, 1, 0, 5, 4, 3}[vertex]
	case refcell.Pyramid:
		return [5]int{0, 1, 3, 2, 4}[vertex]
	}
	panic(fmt.Errorf("no Exodus vertex numbering for %s cells", k))
}

// ExodusFaceToInternal maps an ExodusII side (face) index to the internal
// face index
func ExodusFaceToInternal(k refcell.Kind, face int) int {
	if face < 0 || face >= k.NFaces() {
		panic(fmt.Errorf("Exodus face %d out of range for %s cell", face, k))
	}
	switch k {
	case refcell.Line, refcell.Triangle:
		return face
	case refcell.Quadrilateral:
		return [4]int{2, 1, 3, 0}[face]
	case refcell.Tetrahedron:
		return [4]int{1, 3, 2, 0}[face]
	case refcell.Hexahedron:
		return [6]int{2, 1, 3, 0, 4, 5}[face]
	case refcell.Wedge:
		return [5]int{3, 4, 2, 0, 1}[face]
	case refcell.Pyramid:
		return [5]int{3, 2, 4, 1, 0}[face]
	}
	panic(fmt.Errorf("no Exodus face numbering for %s cells", k))
}
