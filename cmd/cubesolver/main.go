// cubesolver - CLI for scrambling and solving a 3x3 Rubik's Cube with A* search.
package main

import (
	"github.com/SeamusWaldron/cubesolver/internal/cli"
)

func main() {
	cli.Execute()
}
