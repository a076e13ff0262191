package refcell

import (
	"fmt"
)

// Face incidence tables: for each face, the parent-local vertex indices that
// bound it, listed so that face normals point outward. Quadrilateral line
// faces are ordered x=0, x=1, y=0, y=1; hexahedron quad faces pair up by axis
// the same way.
var (
	lineFaces  = [][]int{{0}, {1}}
	triFaces   = [][]int{{0, 1}, {1, 2}, {2, 0}}
	quadFaces  = [][]int{{0, 2}, {1, 3}, {0, 1}, {2, 3}}
	tetFaces   = [][]int{{0, 1, 2}, {1, 0, 3}, {0, 2, 3}, {2, 1, 3}}
	pyrFaces   = [][]int{{0, 1, 2, 3}, {0, 2, 4}, {3, 1, 4}, {1, 0, 4}, {2, 3, 4}}
	wedgeFaces = [][]int{
		{1, 0, 2}, {3, 4, 5}, {0, 1, 3, 4}, {1, 2, 4, 5}, {2, 0, 5, 3}}
	hexFaces = [][]int{
		{0, 2, 4, 6}, {1, 3, 5, 7}, {0, 4, 1, 5},
		{3, 7, 2, 6}, {0, 1, 2, 3}, {4, 5, 6, 7}}
)

func (k Kind) faceTable() [][]int {
	switch k {
	case Line:
		return lineFaces
	case Triangle:
		return triFaces
	case Quadrilateral:
		return quadFaces
	case Tetrahedron:
		return tetFaces
	case Pyramid:
		return pyrFaces
	case Wedge:
		return wedgeFaces
	case Hexahedron:
		return hexFaces
	}
	panic(fmt.Errorf("cell kind %s has no faces", k))
}

// FaceKind returns the reference cell kind of face f
func (k Kind) FaceKind(f int) Kind {
	if f < 0 || f >= k.NFaces() {
		panic(fmt.Errorf("face index %d out of range for %s cell", f, k))
	}
	switch k {
	case Line:
		return Vertex
	case Triangle, Quadrilateral:
		return Line
	case Tetrahedron:
		return Triangle
	case Hexahedron:
		return Quadrilateral
	case Pyramid:
		if f == 0 {
			return Quadrilateral
		}
		return Triangle
	case Wedge:
		if f < 2 {
			return Triangle
		}
		return Quadrilateral
	}
	panic(fmt.Errorf("unsupported cell kind %d", uint8(k)))
}

// FaceVertices returns the parent-local vertex indices bounding face f.
// The returned slice aliases a fixed table and must not be modified.
func (k Kind) FaceVertices(f int) []int {
	if f < 0 || f >= k.NFaces() {
		panic(fmt.Errorf("face index %d out of range for %s cell", f, k))
	}
	return k.faceTable()[f]
}

// ConnectedFaces instantiates the face table against a cell's global vertex
// ids, yielding one global vertex list per face. Mesh connectivity code keys
// these lists (sorted) to match faces between neighboring cells.
func (k Kind) ConnectedFaces(vertices []int) [][]int {
	if len(vertices) != k.NVertices() {
		panic(fmt.Errorf("%s cell needs %d vertices, got %d",
			k, k.NVertices(), len(vertices)))
	}
	table := k.faceTable()
	faces := make([][]int, len(table))
	for f, local := range table {
		faces[f] = make([]int, len(local))
		for i, v := range local {
			faces[f][i] = vertices[v]
		}
	}
	return faces
}
