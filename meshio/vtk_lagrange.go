package meshio

import (
	"fmt"

	"github.com/pengfej/dealii/refcell"
)

// High-order VTK Lagrange cells list their nodes stratum by stratum: the
// corner vertices first, then the interior nodes of each edge, then each
// face, then (in 3D) the body block. The two functions below convert a
// node's lexicographic grid coordinates to its position in that ordering.
// The arithmetic follows Kitware's vtkHigherOrderQuadrilateral/-Hexahedron
// sources and must reproduce their output bit for bit; both run in constant
// time because writers call them once per node of every cell.

// VTKLagrangeNodeIndex2 converts lexicographic node coordinates n within a
// grid of res[d] intervals per direction to the VTK Lagrange node index of a
// Quadrilateral cell. A coordinate is on the boundary if it is 0 or equal to
// its resolution.
func VTKLagrangeNodeIndex2(k refcell.Kind, n, res [2]int) int {
	if k != refcell.Quadrilateral {
		panic(fmt.Errorf("no 2D VTK Lagrange numbering for %s cells", k))
	}
	i, j := n[0], n[1]
	if i < 0 || i > res[0] || j < 0 || j > res[1] {
		panic(fmt.Errorf("node %v out of range for resolution %v", n, res))
	}

	ibdy := i == 0 || i == res[0]
	jbdy := j == 0 || j == res[1]
	// How many boundaries do we lie on at once?
	nbdy := 0
	if ibdy {
		nbdy++
	}
	if jbdy {
		nbdy++
	}

	if nbdy == 2 { // Vertex node, somewhere in [0,3]
		idx := 0
		if i != 0 {
			idx = 1
			if j != 0 {
				idx = 2
			}
		} else if j != 0 {
			idx = 3
		}
		return idx
	}

	offset := 4
	if nbdy == 1 { // Edge node
		if !ibdy { // On i axis
			if j != 0 {
				return (i - 1) + (res[0] - 1 + res[1] - 1) + offset
			}
			return (i - 1) + offset
		}
		// On j axis
		if i != 0 {
			return (j - 1) + (res[0] - 1) + offset
		}
		return (j - 1) + 2*(res[0]-1) + (res[1] - 1) + offset
	}

	// nbdy == 0: face node, row major within the interior block
	offset += 2 * (res[0] - 1 + res[1] - 1)
	return offset + (i - 1) + (res[0]-1)*(j-1)
}

// VTKLagrangeNodeIndex3 converts lexicographic node coordinates n to the VTK
// Lagrange node index of a Hexahedron cell. legacyFormat selects the
// historical ordering of the four vertical edges (VTK listed them clockwise
// when viewed from the top face before its node numbering change, and
// counter-clockwise after); both conventions remain in circulation and both
// must be reproducible.
func VTKLagrangeNodeIndex3(k refcell.Kind, n, res [3]int, legacyFormat bool) int {
	if k != refcell.Hexahedron {
		panic(fmt.Errorf("no 3D VTK Lagrange numbering for %s cells", k))
	}
	i, j, kk := n[0], n[1], n[2]
	if i < 0 || i > res[0] || j < 0 || j > res[1] || kk < 0 || kk > res[2] {
		panic(fmt.Errorf("node %v out of range for resolution %v", n, res))
	}

	ibdy := i == 0 || i == res[0]
	jbdy := j == 0 || j == res[1]
	kbdy := kk == 0 || kk == res[2]
	nbdy := 0
	if ibdy {
		nbdy++
	}
	if jbdy {
		nbdy++
	}
	if kbdy {
		nbdy++
	}

	// Corner index in the VTK convention: ij selects within [0,3] as in 2D,
	// the k boundary adds the top four
	corner := func(i, j int) int {
		if i != 0 {
			if j != 0 {
				return 2
			}
			return 1
		}
		if j != 0 {
			return 3
		}
		return 0
	}

	if nbdy == 3 { // Vertex node, somewhere in [0,7]
		idx := corner(i, j)
		if kk != 0 {
			idx += 4
		}
		return idx
	}

	offset := 8
	if nbdy == 2 { // Edge node
		if !ibdy { // On i axis
			r := (i - 1) + offset
			if j != 0 {
				r += res[0] - 1 + res[1] - 1
			}
			if kk != 0 {
				r += 2 * (res[0] - 1 + res[1] - 1)
			}
			return r
		}
		if !jbdy { // On j axis
			r := (j - 1) + offset
			if i != 0 {
				r += res[0] - 1
			} else {
				r += 2*(res[0]-1) + res[1] - 1
			}
			if kk != 0 {
				r += 2 * (res[0] - 1 + res[1] - 1)
			}
			return r
		}
		// On k axis: the four vertical edges. The legacy convention walks
		// them clockwise seen from the top, the current one mirrors the
		// corner ordering.
		offset += 4*(res[0]-1) + 4*(res[1]-1)
		var edge int
		if legacyFormat {
			if i != 0 {
				edge = 1
				if j != 0 {
					edge = 3
				}
			} else if j != 0 {
				edge = 2
			}
		} else {
			edge = corner(i, j)
		}
		return (kk - 1) + (res[2]-1)*edge + offset
	}

	offset += 4 * (res[0] - 1 + res[1] - 1 + res[2] - 1)
	if nbdy == 1 { // Face node
		if ibdy { // On i-normal face
			r := (j - 1) + (res[1]-1)*(kk-1) + offset
			if i != 0 {
				r += (res[1] - 1) * (res[2] - 1)
			}
			return r
		}
		offset += 2 * (res[1] - 1) * (res[2] - 1)
		if jbdy { // On j-normal face
			r := (i - 1) + (res[0]-1)*(kk-1) + offset
			if j != 0 {
				r += (res[2] - 1) * (res[0] - 1)
			}
			return r
		}
		// On k-normal face
		offset += 2 * (res[2] - 1) * (res[0] - 1)
		r := (i - 1) + (res[0]-1)*(j-1) + offset
		if kk != 0 {
			r += (res[0] - 1) * (res[1] - 1)
		}
		return r
	}

	// nbdy == 0: body node
	offset += 2 * ((res[1]-1)*(res[2]-1) + (res[2]-1)*(res[0]-1) +
		(res[0]-1)*(res[1]-1))
	return offset + (i - 1) + (res[0]-1)*((j-1)+(res[1]-1)*(kk-1))
}
