package cubesolver

import "strings"

// Face represents a turnable face in standard notation.
//
// Only the Up, Down, Right and Left faces are turnable in this library.
// Front/Back turns and slice/wide moves are deliberately out of scope:
// the solver, scrambler and notation parser all operate on the subgroup
// generated by the 12 U/D/R/L moves.
type Face string

const (
	FaceU Face = "U" // Up
	FaceD Face = "D" // Down
	FaceR Face = "R" // Right
	FaceL Face = "L" // Left
)

// Turn represents the direction and magnitude of a face turn.
type Turn int

const (
	CW     Turn = 1  // Clockwise (90 degrees)
	CCW    Turn = -1 // Counter-clockwise (90 degrees)
	Double Turn = 2  // Half turn (180 degrees)
)

// Move represents a single face turn.
type Move struct {
	Face Face // Which face to turn
	Turn Turn // Direction and amount
}

// Notation returns the standard cube notation string for this move.
// Examples: R, R', R2, U, U', U2
func (m Move) Notation() string {
	suffix := ""
	switch m.Turn {
	case CCW:
		suffix = "'"
	case Double:
		suffix = "2"
	}
	return string(m.Face) + suffix
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// Inverse returns the inverse of this move.
// R becomes R', R' becomes R, R2 stays R2.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case CW:
		inv.Turn = CCW
	case CCW:
		inv.Turn = CW
	// Double is its own inverse
	}
	return inv
}

// ParseMove parses a standard notation string into a Move.
// Examples: R, R', R2, U, U', U2
// Returns ErrInvalidNotation for tokens outside the supported
// 12-move vocabulary (including F/B turns).
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Move{}, ErrInvalidNotation
	}

	var face Face
	switch s[0] {
	case 'U', 'u':
		face = FaceU
	case 'D', 'd':
		face = FaceD
	case 'R', 'r':
		face = FaceR
	case 'L', 'l':
		face = FaceL
	default:
		return Move{}, ErrInvalidNotation
	}

	turn := CW // Default is clockwise
	if len(s) > 1 {
		switch s[1:] {
		case "'", "`":
			turn = CCW
		case "2":
			turn = Double
		case "2'", "2`":
			turn = Double // Same as 180
		default:
			return Move{}, ErrInvalidNotation
		}
	}

	return Move{Face: face, Turn: turn}, nil
}

// ParseMoves parses a whitespace-separated sequence of moves.
// Example: "R U R' U'"
// Unrecognized tokens are skipped, not errored.
func ParseMoves(s string) []Move {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for _, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			continue // Skip invalid tokens
		}
		moves = append(moves, move)
	}

	return moves
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// InverseMoves returns the sequence that undoes moves: each move
// inverted, in reverse order.
func InverseMoves(moves []Move) []Move {
	inv := make([]Move, len(moves))
	for i, m := range moves {
		inv[len(moves)-1-i] = m.Inverse()
	}
	return inv
}
