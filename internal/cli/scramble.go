package cli

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesolver"
)

var (
	scrambleMoves int
	scrambleSeed  uint64
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate a random scramble",
	Long: `Generate a random scramble from the supported U/D/R/L move vocabulary
and print the move sequence together with the resulting cube state.

Use --seed for a reproducible scramble.`,
	RunE: runScramble,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().IntVar(&scrambleMoves, "moves", 12, "Number of scramble moves")
	scrambleCmd.Flags().Uint64Var(&scrambleSeed, "seed", 0, "Random seed (0 = random)")
}

func runScramble(cmd *cobra.Command, args []string) error {
	if scrambleMoves < 1 {
		return fmt.Errorf("--moves must be at least 1")
	}

	cube, moves := newScramble(scrambleMoves)

	fmt.Println("Scramble:", cubesolver.FormatMoves(moves))
	fmt.Println()
	fmt.Print(renderCube(cube))
	return nil
}

// newScramble generates a scramble, seeded if --seed was given.
func newScramble(count int) (*cubesolver.Cube, []cubesolver.Move) {
	if scrambleSeed != 0 {
		rng := rand.New(rand.NewPCG(scrambleSeed, 0))
		return cubesolver.ScrambleWith(rng, count)
	}
	return cubesolver.Scramble(count)
}
