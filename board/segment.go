package board

import (
	"fmt"

	"github.com/pkg/errors"
)

// SegmentID identifies a segment. It is an index into the graph arena.
type SegmentID int

// NoSegment marks the absence of a segment, e.g. before the first cherry.
const NoSegment SegmentID = -1

// Point is a grid coordinate. X grows to the right and Y grows downwards.
type Point struct {
	X int
	Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Steer is a steering command relative to the snake's current heading. The
// values double as indexes into a segment's neighbor tables.
type Steer int

const (
	// SteerLeft turns left at the next junction.
	SteerLeft Steer = 0
	// SteerStraight keeps going straight, the default when no input is given.
	SteerStraight Steer = 1
	// SteerRight turns right at the next junction.
	SteerRight Steer = 2
)

// Mirror swaps left and right. Straight is unaffected.
func (s Steer) Mirror() Steer {
	switch s {
	case SteerLeft:
		return SteerRight
	case SteerRight:
		return SteerLeft
	}
	return s
}

// Valid reports whether s is one of the three steering commands.
func (s Steer) Valid() bool {
	return s >= SteerLeft && s <= SteerRight
}

func (s Steer) String() string {
	switch s {
	case SteerLeft:
		return "left"
	case SteerStraight:
		return "straight"
	case SteerRight:
		return "right"
	}
	return fmt.Sprintf("steer(%d)", int(s))
}

// ParseSteer converts "l", "s", "r" (or the full words) into a Steer.
func ParseSteer(v string) (Steer, error) {
	switch v {
	case "l", "L", "left":
		return SteerLeft, nil
	case "s", "S", "straight", "":
		return SteerStraight, nil
	case "r", "R", "right":
		return SteerRight, nil
	}
	return SteerStraight, errors.Errorf("board: unknown steering command %q", v)
}

// Side selects which of a segment's two neighbor tables is consulted. The snake
// uses the right-hand table while it is facing right.
type Side int

const (
	// SideLeft is the table used while facing left.
	SideLeft Side = iota
	// SideRight is the table used while facing right.
	SideRight
)

// SideFor returns the table side for the given facing.
func SideFor(facingRight bool) Side {
	if facingRight {
		return SideRight
	}
	return SideLeft
}

// Segment is one light in the playfield.
type Segment struct {
	ID    SegmentID
	Start Point
	End   Point

	left  [3]SegmentID
	right [3]SegmentID
}

// LeftX is the smallest x of the two endpoints.
func (s *Segment) LeftX() int {
	if s.Start.X < s.End.X {
		return s.Start.X
	}
	return s.End.X
}

// TopY is the smallest y of the two endpoints, which is the top-most on screen.
func (s *Segment) TopY() int {
	if s.Start.Y < s.End.Y {
		return s.Start.Y
	}
	return s.End.Y
}

// Midpoint returns the centre of the segment in grid units.
func (s *Segment) Midpoint() (float64, float64) {
	return float64(s.Start.X+s.End.X) / 2, float64(s.Start.Y+s.End.Y) / 2
}

// Neighbor returns the segment reached from s on the given table side.
func (s *Segment) Neighbor(side Side, steer Steer) SegmentID {
	if side == SideRight {
		return s.right[steer]
	}
	return s.left[steer]
}

// Touches reports whether s and o share an endpoint.
func (s *Segment) Touches(o *Segment) bool {
	return s.Start == o.Start || s.Start == o.End || s.End == o.Start || s.End == o.End
}
