package meshio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pengfej/dealii/refcell"
)

func TestQuadNodeIndexLinear(t *testing.T) {
	// Order 1: the four grid corners are exactly the VTK quad corners
	res := [2]int{1, 1}
	assert.Equal(t, 0, VTKLagrangeNodeIndex2(refcell.Quadrilateral, [2]int{0, 0}, res))
	assert.Equal(t, 1, VTKLagrangeNodeIndex2(refcell.Quadrilateral, [2]int{1, 0}, res))
	assert.Equal(t, 2, VTKLagrangeNodeIndex2(refcell.Quadrilateral, [2]int{1, 1}, res))
	assert.Equal(t, 3, VTKLagrangeNodeIndex2(refcell.Quadrilateral, [2]int{0, 1}, res))
}

func TestQuadNodeIndexCubic(t *testing.T) {
	// Order 3: corners, then the interior nodes of the four edges walked
	// bottom, right, top, left, then the row-major interior block
	res := [2]int{3, 3}
	expected := map[[2]int]int{
		{0, 0}: 0, {3, 0}: 1, {3, 3}: 2, {0, 3}: 3,
		{1, 0}: 4, {2, 0}: 5, // bottom edge
		{3, 1}: 6, {3, 2}: 7, // right edge
		{1, 3}: 8, {2, 3}: 9, // top edge
		{0, 1}: 10, {0, 2}: 11, // left edge
		{1, 1}: 12, {2, 1}: 13, {1, 2}: 14, {2, 2}: 15, // interior
	}
	for n, want := range expected {
		assert.Equal(t, want,
			VTKLagrangeNodeIndex2(refcell.Quadrilateral, n, res), "node %v", n)
	}
}

func TestQuadNodeIndexIsBijective(t *testing.T) {
	for _, res := range [][2]int{{1, 1}, {2, 2}, {3, 2}, {4, 4}, {5, 3}} {
		total := (res[0] + 1) * (res[1] + 1)
		seen := make([]bool, total)
		for j := 0; j <= res[1]; j++ {
			for i := 0; i <= res[0]; i++ {
				idx := VTKLagrangeNodeIndex2(refcell.Quadrilateral, [2]int{i, j}, res)
				require.GreaterOrEqual(t, idx, 0)
				require.Less(t, idx, total, "res %v node (%d,%d)", res, i, j)
				require.False(t, seen[idx], "res %v index %d repeated", res, idx)
				seen[idx] = true
			}
		}
	}
}

func TestHexNodeIndexLinear(t *testing.T) {
	res := [3]int{1, 1, 1}
	expected := map[[3]int]int{
		{0, 0, 0}: 0, {1, 0, 0}: 1, {1, 1, 0}: 2, {0, 1, 0}: 3,
		{0, 0, 1}: 4, {1, 0, 1}: 5, {1, 1, 1}: 6, {0, 1, 1}: 7,
	}
	for n, want := range expected {
		for _, legacy := range []bool{false, true} {
			assert.Equal(t, want,
				VTKLagrangeNodeIndex3(refcell.Hexahedron, n, res, legacy),
				"node %v legacy=%v", n, legacy)
		}
	}
}

func TestHexVerticalEdgeConventions(t *testing.T) {
	// Order 2: one interior node per edge. The twelve edge nodes occupy
	// indices 8..19; the four vertical edges are the last four, and the two
	// conventions disagree exactly on the two that sit above corners 2 and 3.
	res := [3]int{2, 2, 2}
	vertical := func(i, j int, legacy bool) int {
		return VTKLagrangeNodeIndex3(refcell.Hexahedron, [3]int{i, j, 1}, res, legacy)
	}

	// Current convention mirrors the corner ordering
	assert.Equal(t, 16, vertical(0, 0, false))
	assert.Equal(t, 17, vertical(2, 0, false))
	assert.Equal(t, 18, vertical(2, 2, false))
	assert.Equal(t, 19, vertical(0, 2, false))

	// Legacy convention walks them clockwise seen from the top
	assert.Equal(t, 16, vertical(0, 0, true))
	assert.Equal(t, 17, vertical(2, 0, true))
	assert.Equal(t, 18, vertical(0, 2, true))
	assert.Equal(t, 19, vertical(2, 2, true))

	// All non-vertical nodes agree between the conventions
	for kk := 0; kk <= 2; kk++ {
		for j := 0; j <= 2; j++ {
			for i := 0; i <= 2; i++ {
				if kk == 1 && (i == 0 || i == 2) && (j == 0 || j == 2) {
					continue
				}
				n := [3]int{i, j, kk}
				assert.Equal(t,
					VTKLagrangeNodeIndex3(refcell.Hexahedron, n, res, false),
					VTKLagrangeNodeIndex3(refcell.Hexahedron, n, res, true),
					"node %v", n)
			}
		}
	}
}

func TestHexNodeIndexStrata(t *testing.T) {
	// Order 3 hex: 8 vertices, 12 edges x 2 nodes, 6 faces x 4 nodes, 8 body
	// nodes. Verify the stratum boundaries.
	res := [3]int{3, 3, 3}
	idx := func(i, j, k int) int {
		return VTKLagrangeNodeIndex3(refcell.Hexahedron, [3]int{i, j, k}, res, false)
	}

	assert.Equal(t, 8, idx(1, 0, 0))  // first edge node
	assert.Equal(t, 32, idx(0, 1, 1)) // first face node (x=0 face)
	assert.Equal(t, 56, idx(1, 1, 1)) // first body node
	assert.Equal(t, 63, idx(2, 2, 2)) // last body node
	assert.Equal(t, 6, idx(3, 3, 3))  // top far corner
	assert.Equal(t, 31, idx(0, 3, 2)) // last vertical edge node
}

func TestHexNodeIndexIsBijective(t *testing.T) {
	for _, res := range [][3]int{{1, 1, 1}, {2, 2, 2}, {3, 2, 4}, {3, 3, 3}} {
		for _, legacy := range []bool{false, true} {
			total := (res[0] + 1) * (res[1] + 1) * (res[2] + 1)
			seen := make([]bool, total)
			for kk := 0; kk <= res[2]; kk++ {
				for j := 0; j <= res[1]; j++ {
					for i := 0; i <= res[0]; i++ {
						idx := VTKLagrangeNodeIndex3(refcell.Hexahedron,
							[3]int{i, j, kk}, res, legacy)
						require.GreaterOrEqual(t, idx, 0)
						require.Less(t, idx, total,
							"res %v node (%d,%d,%d)", res, i, j, kk)
						require.False(t, seen[idx],
							"res %v legacy=%v index %d repeated", res, legacy, idx)
						seen[idx] = true
					}
				}
			}
		}
	}
}

func TestNodeIndexContractViolations(t *testing.T) {
	assert.Panics(t, func() {
		VTKLagrangeNodeIndex2(refcell.Triangle, [2]int{0, 0}, [2]int{1, 1})
	})
	assert.Panics(t, func() {
		VTKLagrangeNodeIndex2(refcell.Quadrilateral, [2]int{2, 0}, [2]int{1, 1})
	})
	assert.Panics(t, func() {
		VTKLagrangeNodeIndex3(refcell.Quadrilateral, [3]int{0, 0, 0}, [3]int{1, 1, 1}, false)
	})
	assert.Panics(t, func() {
		VTKLagrangeNodeIndex3(refcell.Hexahedron, [3]int{0, 0, -1}, [3]int{1, 1, 1}, false)
	})
}
