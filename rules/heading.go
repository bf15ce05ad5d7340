package rules

// Heading is the direction the snake's head points relative to its neck. The
// board is made of diagonals, so there are four of them.
type Heading int

const (
	// HeadingUpRight is the initial heading.
	HeadingUpRight Heading = iota
	// HeadingDownRight faces right with the vertical axis inverted.
	HeadingDownRight
	// HeadingDownLeft faces left with the vertical axis inverted.
	HeadingDownLeft
	// HeadingUpLeft faces left.
	HeadingUpLeft
)

// headingTurns[h][cornerX][cornerY] is the heading after a move. A corner on an
// axis flips the heading along that axis; a straight run keeps it.
var headingTurns = [4][2][2]Heading{
	HeadingUpRight: {
		{HeadingUpRight, HeadingDownRight},
		{HeadingUpLeft, HeadingDownLeft},
	},
	HeadingDownRight: {
		{HeadingDownRight, HeadingUpRight},
		{HeadingDownLeft, HeadingUpLeft},
	},
	HeadingDownLeft: {
		{HeadingDownLeft, HeadingUpLeft},
		{HeadingDownRight, HeadingUpRight},
	},
	HeadingUpLeft: {
		{HeadingUpLeft, HeadingDownLeft},
		{HeadingUpRight, HeadingDownRight},
	},
}

// Turn returns the heading after moving through corners on the given axes.
func (h Heading) Turn(cornerX, cornerY bool) Heading {
	return headingTurns[h][b2i(cornerX)][b2i(cornerY)]
}

// FacingRight reports whether the right-hand neighbor tables apply.
func (h Heading) FacingRight() bool {
	return h == HeadingUpRight || h == HeadingDownRight
}

// FacingUp reports whether steering is taken as-is. When false, left and right
// are swapped before the lookup.
func (h Heading) FacingUp() bool {
	return h == HeadingUpRight || h == HeadingUpLeft
}

func (h Heading) String() string {
	switch h {
	case HeadingUpRight:
		return "up-right"
	case HeadingDownRight:
		return "down-right"
	case HeadingDownLeft:
		return "down-left"
	case HeadingUpLeft:
		return "up-left"
	}
	return "unknown"
}

// HeadingOf converts the facing flags into a heading.
func HeadingOf(facingRight, facingUp bool) Heading {
	switch {
	case facingRight && facingUp:
		return HeadingUpRight
	case facingRight:
		return HeadingDownRight
	case facingUp:
		return HeadingUpLeft
	}
	return HeadingDownLeft
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
