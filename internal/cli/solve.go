package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesolver"
	"github.com/SeamusWaldron/cubesolver/internal/oracle"
	"github.com/SeamusWaldron/cubesolver/internal/storage"
)

var (
	solveRandom         int
	solveUseOracle      bool
	solveOracleInterval int
	solveTimeout        time.Duration
	solveNoSave         bool
)

var solveCmd = &cobra.Command{
	Use:   "solve [scramble moves...]",
	Short: "Solve a scrambled cube",
	Long: `Solve a cube scrambled by the given move sequence, e.g.:

  cubesolver solve R U R' U'

With --random N a random N-move scramble is generated instead.
Unrecognized move tokens are skipped. The attempt is recorded to the
solve history unless --no-save is given.`,
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().IntVar(&solveRandom, "random", 0, "Generate a random scramble of N moves")
	solveCmd.Flags().BoolVar(&solveUseOracle, "oracle", false, "Consult the OpenAI heuristic oracle")
	solveCmd.Flags().IntVar(&solveOracleInterval, "oracle-interval", 15, "Consult the oracle once per N heuristic calls")
	solveCmd.Flags().DurationVar(&solveTimeout, "timeout", 2*time.Minute, "Give up after this long")
	solveCmd.Flags().BoolVar(&solveNoSave, "no-save", false, "Do not record the attempt")
}

func runSolve(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	var start *cubesolver.Cube
	var scramble []cubesolver.Move
	switch {
	case solveRandom > 0:
		start, scramble = newScramble(solveRandom)
	case len(args) > 0:
		scramble = cubesolver.ParseMoves(strings.Join(args, " "))
		if len(scramble) == 0 {
			return fmt.Errorf("no valid moves in scramble (supported: U D R L with ' and 2 suffixes)")
		}
		start = cubesolver.Solved().ApplyMoves(scramble)
	default:
		return fmt.Errorf("provide a scramble sequence or --random N")
	}

	fmt.Println("Scramble:", cubesolver.FormatMoves(scramble))
	fmt.Print(renderCube(start))
	fmt.Println()

	opts := []cubesolver.Option{
		cubesolver.WithLogger(logger),
		cubesolver.WithOracleInterval(solveOracleInterval),
	}
	if solveUseOracle {
		o, err := oracle.NewOpenAI(logger)
		if err != nil {
			return fmt.Errorf("oracle setup failed: %w", err)
		}
		opts = append(opts, cubesolver.WithOracle(o))
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), solveTimeout)
	defer cancel()

	result, err := cubesolver.Solve(ctx, start, opts...)
	if err != nil {
		return fmt.Errorf("search interrupted: %w", err)
	}

	printResult(start, result)

	if !solveNoSave {
		if err := saveAttempt(scramble, result); err != nil {
			logger.Warn("could not record attempt", "error", err)
		}
	}
	return nil
}

func printResult(start *cubesolver.Cube, result cubesolver.Result) {
	if len(result.Moves) == 0 {
		fmt.Println("No solution found.")
	} else {
		fmt.Printf("Solution (%d moves): %s\n", len(result.Moves), result.Solution())
		if !start.ApplyMoves(result.Moves).IsSolved() {
			// Should never happen; loud is better than silent here.
			fmt.Println("WARNING: solution does not reach the solved state")
		}
	}
	fmt.Printf("States explored: %d\n", result.StatesExplored)
	fmt.Printf("Time: %s\n", result.Duration.Round(time.Millisecond))
}

func saveAttempt(scramble []cubesolver.Move, result cubesolver.Result) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewAttemptRepository(db)
	_, err = repo.Create(storage.Attempt{
		Scramble:       cubesolver.FormatMoves(scramble),
		Solution:       result.Solution(),
		Solved:         len(result.Moves) > 0,
		MoveCount:      len(result.Moves),
		StatesExplored: result.StatesExplored,
		DurationMs:     result.Duration.Milliseconds(),
		OracleUsed:     solveUseOracle,
	})
	return err
}
