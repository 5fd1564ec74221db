package cubesolver

import (
	"math/rand/v2"
	"testing"
)

func TestScrambleReturnsMatchingSequence(t *testing.T) {
	cube, moves := Scramble(10)

	if len(moves) != 10 {
		t.Fatalf("Scramble(10) returned %d moves", len(moves))
	}

	// The returned sequence must reproduce the returned state.
	replay := Solved().ApplyMoves(moves)
	if !replay.Equal(cube) {
		t.Error("Replaying the scramble sequence should reproduce the scrambled state")
	}
}

func TestScrambleInverseRestoresSolved(t *testing.T) {
	cube, moves := Scramble(15)
	if !cube.ApplyMoves(InverseMoves(moves)).IsSolved() {
		t.Error("Undoing the scramble should restore the solved state")
	}
}

func TestScrambleWithSeedIsDeterministic(t *testing.T) {
	a, aMoves := ScrambleWith(rand.New(rand.NewPCG(42, 0)), 12)
	b, bMoves := ScrambleWith(rand.New(rand.NewPCG(42, 0)), 12)

	if !a.Equal(b) {
		t.Error("Same seed should produce the same scrambled state")
	}
	if FormatMoves(aMoves) != FormatMoves(bMoves) {
		t.Errorf("Same seed should produce the same sequence: %q vs %q",
			FormatMoves(aMoves), FormatMoves(bMoves))
	}
}

func TestScrambleStaysInVocabulary(t *testing.T) {
	_, moves := Scramble(50)
	for _, m := range moves {
		if _, err := ParseMove(m.Notation()); err != nil {
			t.Errorf("Scramble produced a move outside the vocabulary: %v", m)
		}
	}
}
