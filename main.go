package main

import (
	"github.com/pengfej/dealii/cmd"
)

func main() {
	cmd.Execute()
}
