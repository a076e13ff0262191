package refcell

import (
	"fmt"
)

// Orientation permutation tables. When two cells share a line or face they may
// list its vertices in different orders; the orientation index names the
// relative permutation so mesh connectivity can reconcile the two orderings
// without comparing coordinates. Entry 0 is the identity in every table. The
// triangle table is the full symmetric group on three slots, the
// quadrilateral table the dihedral group of the square in the cell's own
// (non-cyclic) vertex numbering.
var (
	lineVertexPermutations = [2][]int{
		{0, 1},
		{1, 0},
	}
	triangleVertexPermutations = [6][]int{
		{0, 1, 2},
		{0, 2, 1},
		{2, 0, 1},
		{2, 1, 0},
		{1, 2, 0},
		{1, 0, 2},
	}
	quadrilateralVertexPermutations = [8][]int{
		{0, 1, 2, 3},
		{0, 2, 1, 3},
		{2, 3, 0, 1},
		{2, 0, 3, 1},
		{3, 2, 1, 0},
		{3, 1, 2, 0},
		{1, 0, 3, 2},
		{1, 3, 0, 2},
	}
)

// NumOrientations returns the number of relative orderings two cells sharing
// an entity of this kind can disagree by
func NumOrientations(k Kind) int {
	switch k {
	case Line:
		return 2
	case Triangle:
		return 6
	case Quadrilateral:
		return 8
	}
	panic(fmt.Errorf("no orientation table for %s entities", k))
}

// Permutation returns the slot ordering realizing the given orientation
// index. The returned slice aliases a fixed table and must not be modified.
func Permutation(k Kind, orientation int) []int {
	if orientation < 0 || orientation >= NumOrientations(k) {
		panic(fmt.Errorf("orientation %d out of range for %s entities",
			orientation, k))
	}
	switch k {
	case Line:
		return lineVertexPermutations[orientation]
	case Triangle:
		return triangleVertexPermutations[orientation]
	}
	return quadrilateralVertexPermutations[orientation]
}

// OrientationIndex returns the orientation whose permutation equals verts.
// It is the inverse of Permutation: a neighbor cell that enumerates the
// shared entity's slots as verts relative to our numbering has this
// orientation. Panics if verts matches no table entry.
func OrientationIndex(k Kind, verts []int) int {
	n := NumOrientations(k)
	for o := 0; o < n; o++ {
		if equalInts(Permutation(k, o), verts) {
			return o
		}
	}
	panic(fmt.Errorf("%v is not a registered ordering of %s entity slots",
		verts, k))
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
