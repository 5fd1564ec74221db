package cubesolver

import "strings"

// Color represents a sticker color.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Orange Color = 1 // Left face when solved
	Green  Color = 2 // Front face when solved
	Red    Color = 3 // Right face when solved
	Blue   Color = 4 // Back face when solved
	Yellow Color = 5 // Down face when solved
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Orange:
		return "O"
	case Green:
		return "G"
	case Red:
		return "R"
	case Blue:
		return "B"
	case Yellow:
		return "Y"
	default:
		return "?"
	}
}

// Side identifies one of the six faces of the cube model.
// This is distinct from Face, which is used for move notation.
type Side int

const (
	SideUp    Side = 0
	SideLeft  Side = 1
	SideFront Side = 2
	SideRight Side = 3
	SideBack  Side = 4
	SideDown  Side = 5
)

func (s Side) String() string {
	switch s {
	case SideUp:
		return "Up"
	case SideLeft:
		return "Left"
	case SideFront:
		return "Front"
	case SideRight:
		return "Right"
	case SideBack:
		return "Back"
	case SideDown:
		return "Down"
	default:
		return "?"
	}
}

// Cube represents a 3x3 Rubik's cube.
// Each side has 9 facelets indexed row-major as:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// viewed facing that side directly. The center (index 4) never moves.
type Cube struct {
	// Facelets[side][position] = color
	Facelets [6][9]Color
}

// Solved returns a cube in the solved state: each side filled uniformly
// with its own color (Up=White, Left=Orange, Front=Green, Right=Red,
// Back=Blue, Down=Yellow).
func Solved() *Cube {
	c := &Cube{}
	for side := 0; side < 6; side++ {
		for i := 0; i < 9; i++ {
			c.Facelets[side][i] = Color(side)
		}
	}
	return c
}

// Clone creates a deep copy of the cube.
func (c *Cube) Clone() *Cube {
	clone := &Cube{}
	clone.Facelets = c.Facelets
	return clone
}

// Equal reports whether both cubes have identical facelets at every
// position. No whole-cube rotations are considered: two cubes related by
// reorienting the entire puzzle are not equal.
func (c *Cube) Equal(other *Cube) bool {
	return c.Facelets == other.Facelets
}

// IsSolved returns true if the cube is in the solved state.
func (c *Cube) IsSolved() bool {
	for side := 0; side < 6; side++ {
		for i := 0; i < 9; i++ {
			if c.Facelets[side][i] != Color(side) {
				return false
			}
		}
	}
	return true
}

// Key returns a canonical 54-character encoding of the cube state, one
// color letter per facelet in fixed side order. Two cubes produce the
// same key iff they have identical facelets, which makes the key safe
// for visited-set deduplication.
func (c *Cube) Key() string {
	var b [54]byte
	for side := 0; side < 6; side++ {
		for i := 0; i < 9; i++ {
			b[side*9+i] = colorLetters[c.Facelets[side][i]]
		}
	}
	return string(b[:])
}

var colorLetters = [6]byte{'W', 'O', 'G', 'R', 'B', 'Y'}

// Mismatches counts facelets that differ between c and other.
func (c *Cube) Mismatches(other *Cube) int {
	n := 0
	for side := 0; side < 6; side++ {
		for i := 0; i < 9; i++ {
			if c.Facelets[side][i] != other.Facelets[side][i] {
				n++
			}
		}
	}
	return n
}

// Describe returns a face-by-face color listing of the cube, suitable
// for showing to a human or to the heuristic oracle.
func (c *Cube) Describe() string {
	var b strings.Builder
	for side := Side(0); side < 6; side++ {
		b.WriteString(side.String())
		b.WriteString(": ")
		for i := 0; i < 9; i++ {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(c.Facelets[side][i].String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// String returns a flat-net text representation of the cube.
func (c *Cube) String() string {
	var b strings.Builder

	// Up face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		for col := 0; col < 3; col++ {
			b.WriteString(c.Facelets[SideUp][row*3+col].String() + " ")
		}
		b.WriteByte('\n')
	}

	// Left, Front, Right, Back faces (side by side)
	for row := 0; row < 3; row++ {
		for _, side := range []Side{SideLeft, SideFront, SideRight, SideBack} {
			for col := 0; col < 3; col++ {
				b.WriteString(c.Facelets[side][row*3+col].String() + " ")
			}
		}
		b.WriteByte('\n')
	}

	// Down face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		for col := 0; col < 3; col++ {
			b.WriteString(c.Facelets[SideDown][row*3+col].String() + " ")
		}
		b.WriteByte('\n')
	}

	return b.String()
}
