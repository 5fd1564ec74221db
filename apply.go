package cubesolver

// Move application via precomputed permutation tables.
//
// Each of the 12 legal moves is bound at package init to a permutation of
// the 54 facelet positions (flat index side*9+pos). Applying a move is a
// single table-driven copy into a fresh Cube, so moves are pure functions:
// the input cube is never modified.

// perm maps each destination facelet to its source: perm[dst] = src.
type perm [54]int

var movePerms map[Move]*perm

func init() {
	movePerms = buildMovePerms()
}

// faceRotCW is the source index for each destination index when a single
// face turns 90 degrees clockwise: corners 0->2->8->6->0, edges 1->5->7->3->1.
var faceRotCW = [9]int{6, 3, 0, 7, 4, 1, 8, 5, 2}

// sideRings lists, for each turnable face, the four facelet triplets on
// the adjacent sides in the order they travel under a clockwise turn:
// the contents of ring[0] move to ring[1], ring[1] to ring[2], and so on.
var sideRings = map[Face][4][3]int{
	// U: top rows travel Front -> Left -> Back -> Right
	FaceU: {
		{at(SideFront, 0), at(SideFront, 1), at(SideFront, 2)},
		{at(SideLeft, 0), at(SideLeft, 1), at(SideLeft, 2)},
		{at(SideBack, 0), at(SideBack, 1), at(SideBack, 2)},
		{at(SideRight, 0), at(SideRight, 1), at(SideRight, 2)},
	},
	// D: bottom rows travel Front -> Right -> Back -> Left
	FaceD: {
		{at(SideFront, 6), at(SideFront, 7), at(SideFront, 8)},
		{at(SideRight, 6), at(SideRight, 7), at(SideRight, 8)},
		{at(SideBack, 6), at(SideBack, 7), at(SideBack, 8)},
		{at(SideLeft, 6), at(SideLeft, 7), at(SideLeft, 8)},
	},
	// R: right columns travel Up -> Back -> Down -> Front
	// (the Back column is inverted because Back is viewed mirrored)
	FaceR: {
		{at(SideUp, 2), at(SideUp, 5), at(SideUp, 8)},
		{at(SideBack, 6), at(SideBack, 3), at(SideBack, 0)},
		{at(SideDown, 2), at(SideDown, 5), at(SideDown, 8)},
		{at(SideFront, 2), at(SideFront, 5), at(SideFront, 8)},
	},
	// L: left columns travel Up -> Front -> Down -> Back
	FaceL: {
		{at(SideUp, 0), at(SideUp, 3), at(SideUp, 6)},
		{at(SideFront, 0), at(SideFront, 3), at(SideFront, 6)},
		{at(SideDown, 0), at(SideDown, 3), at(SideDown, 6)},
		{at(SideBack, 8), at(SideBack, 5), at(SideBack, 2)},
	},
}

// at returns the flat facelet index for a side and position.
func at(s Side, pos int) int {
	return int(s)*9 + pos
}

// faceSide maps a move face to the cube side it rotates.
func faceSide(f Face) Side {
	switch f {
	case FaceU:
		return SideUp
	case FaceD:
		return SideDown
	case FaceR:
		return SideRight
	default:
		return SideLeft
	}
}

func buildMovePerms() map[Move]*perm {
	out := make(map[Move]*perm, 12)
	for _, face := range []Face{FaceU, FaceD, FaceR, FaceL} {
		cw := clockwisePerm(face)
		out[Move{Face: face, Turn: CW}] = cw
		out[Move{Face: face, Turn: CCW}] = invertPerm(cw)
		out[Move{Face: face, Turn: Double}] = composePerm(cw, cw)
	}
	return out
}

// clockwisePerm builds the permutation for a single clockwise quarter turn:
// the turned face rotates in place and the four adjacent triplets cycle.
func clockwisePerm(face Face) *perm {
	p := identityPerm()

	base := int(faceSide(face)) * 9
	for i := 0; i < 9; i++ {
		p[base+i] = base + faceRotCW[i]
	}

	ring := sideRings[face]
	for i := 0; i < 4; i++ {
		next := ring[(i+1)%4]
		for k := 0; k < 3; k++ {
			p[next[k]] = ring[i][k]
		}
	}

	return p
}

func identityPerm() *perm {
	p := &perm{}
	for i := range p {
		p[i] = i
	}
	return p
}

func invertPerm(p *perm) *perm {
	inv := &perm{}
	for dst, src := range p {
		inv[src] = dst
	}
	return inv
}

func composePerm(a, b *perm) *perm {
	// Applying a then b: the value at b[dst] came from a[b[dst]].
	c := &perm{}
	for dst := range c {
		c[dst] = a[b[dst]]
	}
	return c
}

// Apply returns a new cube with the move applied. The receiver is left
// untouched, so callers may safely retain the pre-move state.
func (c *Cube) Apply(m Move) *Cube {
	p, ok := movePerms[m]
	if !ok {
		// Not part of the 12-move vocabulary; treat as a no-op.
		return c.Clone()
	}

	next := &Cube{}
	for dst := 0; dst < 54; dst++ {
		src := p[dst]
		next.Facelets[dst/9][dst%9] = c.Facelets[src/9][src%9]
	}
	return next
}

// ApplyMoves applies a sequence of moves in order, returning the final state.
func (c *Cube) ApplyMoves(moves []Move) *Cube {
	cur := c
	for _, m := range moves {
		cur = cur.Apply(m)
	}
	return cur
}
