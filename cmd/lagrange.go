/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/pengfej/dealii/meshio"
	"github.com/pengfej/dealii/refcell"
)

// lagrangeCmd represents the lagrange command
var lagrangeCmd = &cobra.Command{
	Use:   "lagrange",
	Short: "Print the VTK Lagrange node ordering for a quad or hex at a given order",
	Long: `Print the lexicographic to VTK Lagrange node index table for a
Quadrilateral or Hexahedron cell at a given polynomial order. Writers call
this translation once per node of every high order cell, so the command also
offers a profiling mode that sweeps a large grid under a CPU profile.`,
	Run: func(cmd *cobra.Command, args []string) {
		shape, _ := cmd.Flags().GetString("shape")
		order, _ := cmd.Flags().GetInt("order")
		legacy, _ := cmd.Flags().GetBool("legacy")
		prof, _ := cmd.Flags().GetBool("profile")
		if order < 1 {
			fmt.Printf("error: order must be positive, got %d\n", order)
			os.Exit(1)
		}
		switch shape {
		case "quad":
			if prof {
				defer profile.Start(profile.CPUProfile).Stop()
				sweepQuad(order)
				return
			}
			printQuadTable(order)
		case "hex":
			if prof {
				defer profile.Start(profile.CPUProfile).Stop()
				sweepHex(order, legacy)
				return
			}
			printHexTable(order, legacy)
		default:
			fmt.Printf("error: shape must be quad or hex, got %q\n", shape)
			os.Exit(1)
		}
	},
}

func printQuadTable(order int) {
	res := [2]int{order, order}
	fmt.Printf("# %s order %d, lexicographic (i,j) -> VTK Lagrange index\n",
		refcell.Quadrilateral, order)
	for j := 0; j <= order; j++ {
		for i := 0; i <= order; i++ {
			idx := meshio.VTKLagrangeNodeIndex2(refcell.Quadrilateral,
				[2]int{i, j}, res)
			fmt.Printf("%d %d\t%d\n", i, j, idx)
		}
	}
}

func printHexTable(order int, legacy bool) {
	res := [3]int{order, order, order}
	fmt.Printf("# %s order %d legacy=%v, lexicographic (i,j,k) -> VTK Lagrange index\n",
		refcell.Hexahedron, order, legacy)
	for k := 0; k <= order; k++ {
		for j := 0; j <= order; j++ {
			for i := 0; i <= order; i++ {
				idx := meshio.VTKLagrangeNodeIndex3(refcell.Hexahedron,
					[3]int{i, j, k}, res, legacy)
				fmt.Printf("%d %d %d\t%d\n", i, j, k, idx)
			}
		}
	}
}

// The sweeps exercise the translation the way a writer does: once per node
// over a large grid, accumulating a checksum so the calls cannot be
// optimized away
func sweepQuad(order int) {
	const repeats = 2000
	res := [2]int{order, order}
	var sum int
	for r := 0; r < repeats; r++ {
		for j := 0; j <= order; j++ {
			for i := 0; i <= order; i++ {
				sum += meshio.VTKLagrangeNodeIndex2(refcell.Quadrilateral,
					[2]int{i, j}, res)
			}
		}
	}
	fmt.Printf("swept %d nodes, checksum %d\n",
		repeats*(order+1)*(order+1), sum)
}

func sweepHex(order int, legacy bool) {
	const repeats = 200
	res := [3]int{order, order, order}
	var sum int
	for r := 0; r < repeats; r++ {
		for k := 0; k <= order; k++ {
			for j := 0; j <= order; j++ {
				for i := 0; i <= order; i++ {
					sum += meshio.VTKLagrangeNodeIndex3(refcell.Hexahedron,
						[3]int{i, j, k}, res, legacy)
				}
			}
		}
	}
	fmt.Printf("swept %d nodes, checksum %d\n",
		repeats*(order+1)*(order+1)*(order+1), sum)
}

func init() {
	rootCmd.AddCommand(lagrangeCmd)
	lagrangeCmd.Flags().StringP("shape", "s", "hex", "cell shape: quad or hex")
	lagrangeCmd.Flags().IntP("order", "o", 2, "polynomial order (grid intervals per direction)")
	lagrangeCmd.Flags().BoolP("legacy", "l", false, "use the legacy vertical edge ordering for hexes")
	lagrangeCmd.Flags().BoolP("profile", "p", false, "sweep a large grid under a CPU profile instead of printing")
}
