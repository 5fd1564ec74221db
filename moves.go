package cubesolver

// Predefined moves for convenience.
// Use these instead of constructing Move structs manually.
//
// Example:
//
//	c := cubesolver.Solved().Apply(cubesolver.R).Apply(cubesolver.UPrime)
var (
	// Up face moves
	U      = Move{Face: FaceU, Turn: CW}     // Up clockwise
	UPrime = Move{Face: FaceU, Turn: CCW}    // Up counter-clockwise
	U2     = Move{Face: FaceU, Turn: Double} // Up 180

	// Down face moves
	D      = Move{Face: FaceD, Turn: CW}     // Down clockwise
	DPrime = Move{Face: FaceD, Turn: CCW}    // Down counter-clockwise
	D2     = Move{Face: FaceD, Turn: Double} // Down 180

	// Right face moves
	R      = Move{Face: FaceR, Turn: CW}     // Right clockwise
	RPrime = Move{Face: FaceR, Turn: CCW}    // Right counter-clockwise
	R2     = Move{Face: FaceR, Turn: Double} // Right 180

	// Left face moves
	L      = Move{Face: FaceL, Turn: CW}     // Left clockwise
	LPrime = Move{Face: FaceL, Turn: CCW}    // Left counter-clockwise
	L2     = Move{Face: FaceL, Turn: Double} // Left 180
)

// AllMoves is the full move vocabulary, in the order the search engine
// expands neighbors. The order is fixed so that expansion (and therefore
// tie-breaking between equal-cost paths) is deterministic.
var AllMoves = []Move{
	U, UPrime, U2,
	D, DPrime, D2,
	R, RPrime, R2,
	L, LPrime, L2,
}
