package meshio

import (
	"fmt"

	"github.com/pengfej/dealii/refcell"
)

// UNVVertexToInternal maps a UNV (I-deas universal file, section 2412) vertex
// index to the internal vertex index.
//
// There is no authoritative specification for this numbering; the tables were
// worked backwards from files produced by actual UNV tools, which use a
// clockwise scheme starting at the bottom right vertex. Treat these values as
// a fragile contract: preserve them literally, do not re-derive them.
func UNVVertexToInternal(k refcell.Kind, vertex int) int {
	if vertex < 0 || vertex >= k.NVertices() {
		panic(fmt.Errorf("UNV vertex %d out of range for %s cell", vertex, k))
	}
	switch k {
	case refcell.Line:
		return vertex
	case refcell.Quadrilateral:
		return [4]int{1, 0, 2, 3}[vertex]
	case refcell.Hexahedron:
		return [8]int{6, 7, 5, 4, 2, 3, 1, 0}[vertex]
	}
	panic(fmt.Errorf("no UNV vertex numbering for %s cells", k))
}
