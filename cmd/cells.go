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

	"github.com/ghodss/yaml"
	"github.com/spf13/cobra"

	"github.com/pengfej/dealii/meshio"
	"github.com/pengfej/dealii/refcell"
)

// CellReport is the YAML summary emitted per reference cell kind
type CellReport struct {
	Name        string       `yaml:"Name"`
	Tag         int          `yaml:"Tag"`
	Dimension   int          `yaml:"Dimension"`
	NVertices   int          `yaml:"NVertices"`
	NFaces      int          `yaml:"NFaces"`
	Volume      float64      `yaml:"Volume"`
	HyperCube   bool         `yaml:"HyperCube"`
	Simplex     bool         `yaml:"Simplex"`
	Vertices    [][]float64  `yaml:"Vertices"`
	Faces       []FaceReport `yaml:"Faces"`
	VTKLinear   int          `yaml:"VTKLinearType"`
	VTKLagrange int          `yaml:"VTKLagrangeType"`
	GmshType    int          `yaml:"GmshType"`
}

// FaceReport describes one face of a cell
type FaceReport struct {
	Kind     string `yaml:"Kind"`
	Vertices []int  `yaml:"Vertices"`
}

// cellsCmd represents the cells command
var cellsCmd = &cobra.Command{
	Use:   "cells",
	Short: "Print the topology and format codes of every reference cell kind",
	Long:  `Print the topology and format codes of every reference cell kind`,
	Run: func(cmd *cobra.Command, args []string) {
		reports := make([]CellReport, 0, 8)
		for _, k := range refcell.Kinds() {
			reports = append(reports, buildReport(k))
		}
		out, err := yaml.Marshal(reports)
		if err != nil {
			panic(err)
		}
		fmt.Printf("%s", out)
	},
}

func buildReport(k refcell.Kind) CellReport {
	r := CellReport{
		Name:        k.String(),
		Tag:         int(k),
		Dimension:   k.Dimension(),
		NVertices:   k.NVertices(),
		NFaces:      k.NFaces(),
		Volume:      k.Volume(),
		HyperCube:   k.IsHyperCube(),
		Simplex:     k.IsSimplex(),
		VTKLinear:   meshio.VTKLinearType(k),
		VTKLagrange: meshio.VTKLagrangeType(k),
	}
	if k != refcell.Invalid {
		r.GmshType = meshio.GmshElementType(k)
	}
	for v := 0; v < k.NVertices(); v++ {
		pt := k.Vertex(v)
		r.Vertices = append(r.Vertices, pt[:k.Dimension()])
	}
	for f := 0; f < k.NFaces(); f++ {
		r.Faces = append(r.Faces, FaceReport{
			Kind:     k.FaceKind(f).String(),
			Vertices: k.FaceVertices(f),
		})
	}
	return r
}

func init() {
	rootCmd.AddCommand(cellsCmd)
}
