package cubesolver

import (
	"errors"
	"testing"
)

func TestParseMoveVocabulary(t *testing.T) {
	cases := []struct {
		in   string
		want Move
	}{
		{"U", U}, {"U'", UPrime}, {"U2", U2},
		{"D", D}, {"D'", DPrime}, {"D2", D2},
		{"R", R}, {"R'", RPrime}, {"R2", R2},
		{"L", L}, {"L'", LPrime}, {"L2", L2},
	}

	for _, tc := range cases {
		got, err := ParseMove(tc.in)
		if err != nil {
			t.Errorf("ParseMove(%q) returned error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseMove(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseMoveRejectsUnsupported(t *testing.T) {
	// F/B turns exist on a real cube but are outside this library's
	// vocabulary and must be rejected like any other junk token.
	for _, in := range []string{"", "F", "B", "F'", "B2", "X", "R3", "U''", "M"} {
		if _, err := ParseMove(in); !errors.Is(err, ErrInvalidNotation) {
			t.Errorf("ParseMove(%q) should return ErrInvalidNotation, got %v", in, err)
		}
	}
}

func TestParseMovesSkipsUnknownTokens(t *testing.T) {
	moves := ParseMoves("R F U' xyz L2 B2 D")
	want := []Move{R, UPrime, L2, D}

	if len(moves) != len(want) {
		t.Fatalf("ParseMoves returned %d moves, want %d: %v", len(moves), len(want), moves)
	}
	for i := range want {
		if moves[i] != want[i] {
			t.Errorf("moves[%d] = %v, want %v", i, moves[i], want[i])
		}
	}
}

func TestFormatMovesRoundTrip(t *testing.T) {
	in := "R U' D2 L' U2 R2"
	if got := FormatMoves(ParseMoves(in)); got != in {
		t.Errorf("FormatMoves(ParseMoves(%q)) = %q", in, got)
	}

	if got := FormatMoves(nil); got != "" {
		t.Errorf("FormatMoves(nil) = %q, want empty", got)
	}
}

func TestMoveInverse(t *testing.T) {
	cases := []struct {
		in, want Move
	}{
		{R, RPrime},
		{RPrime, R},
		{R2, R2},
		{UPrime, U},
		{D2, D2},
	}
	for _, tc := range cases {
		if got := tc.in.Inverse(); got != tc.want {
			t.Errorf("%v.Inverse() = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestInverseMovesUndoesSequence(t *testing.T) {
	seq := ParseMoves("R U2 D' L R'")
	c := Solved().ApplyMoves(seq).ApplyMoves(InverseMoves(seq))
	if !c.IsSolved() {
		t.Error("Applying a sequence then its inverse should restore solved")
		t.Log(c.String())
	}
}

func TestMoveNotation(t *testing.T) {
	if got := RPrime.Notation(); got != "R'" {
		t.Errorf("RPrime.Notation() = %q, want R'", got)
	}
	if got := U2.String(); got != "U2" {
		t.Errorf("U2.String() = %q, want U2", got)
	}
}
