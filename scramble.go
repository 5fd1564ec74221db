package cubesolver

import "math/rand/v2"

// Scramble applies count moves chosen uniformly at random from the
// 12-move vocabulary to a solved cube. It returns the resulting state and
// the exact sequence applied, so the scramble is reproducible and the
// solver's output can be verified against it.
func Scramble(count int) (*Cube, []Move) {
	return ScrambleWith(nil, count)
}

// ScrambleWith is Scramble with an explicit random source for
// deterministic scrambles. A nil source uses the shared global one.
func ScrambleWith(r *rand.Rand, count int) (*Cube, []Move) {
	intN := rand.IntN
	if r != nil {
		intN = r.IntN
	}

	c := Solved()
	moves := make([]Move, 0, count)
	for i := 0; i < count; i++ {
		m := AllMoves[intN(len(AllMoves))]
		moves = append(moves, m)
		c = c.Apply(m)
	}
	return c, moves
}
