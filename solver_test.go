package cubesolver

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveSingleMoveScramble(t *testing.T) {
	start := Solved().Apply(R)

	result, err := Solve(context.Background(), start)
	require.NoError(t, err)

	require.Len(t, result.Moves, 1, "a one-move scramble should have a one-move solution")
	assert.True(t, start.ApplyMoves(result.Moves).IsSolved(),
		"solution %s should solve the cube", result.Solution())
	assert.Greater(t, result.StatesExplored, 0)
}

func TestSolveSexyMoveScramble(t *testing.T) {
	scramble := []Move{U, R, UPrime, RPrime}
	start := Solved().ApplyMoves(scramble)

	result, err := Solve(context.Background(), start)
	require.NoError(t, err)

	require.NotEmpty(t, result.Moves)
	assert.LessOrEqual(t, len(result.Moves), 4,
		"U R U' R' must be solvable in at most 4 moves, got %s", result.Solution())
	assert.True(t, start.ApplyMoves(result.Moves).IsSolved())
}

func TestSolveAlreadySolved(t *testing.T) {
	result, err := Solve(context.Background(), Solved())
	require.NoError(t, err)

	assert.Empty(t, result.Moves, "solved input needs no moves")
	assert.Equal(t, 1, result.StatesExplored)
}

func TestSolveSeededScrambleRoundTrip(t *testing.T) {
	start, scramble := ScrambleWith(rand.New(rand.NewPCG(7, 0)), 5)

	result, err := Solve(context.Background(), start)
	require.NoError(t, err)

	require.NotEmpty(t, result.Moves, "scramble %s should be solvable", FormatMoves(scramble))
	assert.True(t, start.ApplyMoves(result.Moves).IsSolved(),
		"solution %s should solve scramble %s", result.Solution(), FormatMoves(scramble))
}

func TestSolveDeeperScrambleRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping deep search in short mode")
	}

	start, scramble := ScrambleWith(rand.New(rand.NewPCG(11, 0)), 6)

	result, err := Solve(context.Background(), start)
	require.NoError(t, err)

	require.NotEmpty(t, result.Moves, "scramble %s should be solvable", FormatMoves(scramble))
	assert.True(t, start.ApplyMoves(result.Moves).IsSolved())
}

func TestStepDrivenSearch(t *testing.T) {
	ctx := context.Background()
	start := Solved().ApplyMoves([]Move{R, U2, LPrime})

	s := NewSearch(ctx, start)
	require.Equal(t, StatusRunning, s.Status())

	steps := 0
	lastVisited := 0
	for s.Step(ctx) == StatusRunning {
		steps++
		// The visited set only ever grows while the search runs.
		require.GreaterOrEqual(t, s.Visited(), lastVisited)
		lastVisited = s.Visited()
	}

	require.Equal(t, StatusSolved, s.Status())
	result := s.Result()
	assert.True(t, start.ApplyMoves(result.Moves).IsSolved())
	assert.Equal(t, result.StatesExplored, s.Visited())
	// Each step expands exactly one state.
	assert.Equal(t, steps+1, result.StatesExplored)

	// Step after completion is a no-op.
	assert.Equal(t, StatusSolved, s.Step(ctx))
}

func TestSearchDeterministicExpansion(t *testing.T) {
	ctx := context.Background()
	start := Solved().ApplyMoves([]Move{R, U, D2})

	a, err := Solve(ctx, start)
	require.NoError(t, err)
	b, err := Solve(ctx, start)
	require.NoError(t, err)

	assert.Equal(t, a.Solution(), b.Solution(),
		"identical searches must expand identically and return the same path")
	assert.Equal(t, a.StatesExplored, b.StatesExplored)
}

func TestSolveWithOracle(t *testing.T) {
	// An aggressive (every call) oracle must not break correctness,
	// whatever numbers it returns.
	o := &fakeOracle{replies: []string{"3", "roughly 5", "garbage", "1"}}
	start := Solved().ApplyMoves([]Move{R, U, RPrime})

	result, err := Solve(context.Background(), start,
		WithOracle(o), WithOracleInterval(1))
	require.NoError(t, err)

	require.NotEmpty(t, result.Moves)
	assert.True(t, start.ApplyMoves(result.Moves).IsSolved())
	assert.Greater(t, o.calls, 0, "oracle should have been consulted")
}

func TestSolveCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start, _ := ScrambleWith(rand.New(rand.NewPCG(3, 0)), 6)
	result, err := Solve(ctx, start)

	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, result.Moves)
	assert.Greater(t, result.StatesExplored, 0, "progress snapshot should survive cancellation")
}

func TestResultSnapshotWhileRunning(t *testing.T) {
	ctx := context.Background()
	start, _ := ScrambleWith(rand.New(rand.NewPCG(9, 0)), 6)

	s := NewSearch(ctx, start)
	s.Step(ctx)
	s.Step(ctx)

	r := s.Result()
	assert.Empty(t, r.Moves, "no solution before the search finishes")
	assert.Equal(t, s.Visited(), r.StatesExplored)
	assert.Greater(t, r.Duration, time.Duration(0))
}
