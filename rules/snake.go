package rules

import (
	"github.com/battlesnakeio/placman/board"
	"github.com/pkg/errors"
)

// Snake is the player. Length is the target size; the body catches up to it
// one move at a time after a Grow.
type Snake struct {
	Body    Body
	Length  int
	Heading Heading
}

// MoveResult describes what a single Move did.
type MoveResult struct {
	// Head is the segment the snake tried to move onto.
	Head board.SegmentID
	// Trimmed is set when the tail was dropped before the collision check.
	Trimmed bool
	// Collided is set when Head was already part of the body. The head was
	// not pushed in that case.
	Collided bool
}

// NewSnake returns a snake reset onto start.
func NewSnake(start board.SegmentID) Snake {
	s := Snake{}
	s.Reset(start)
	return s
}

// Reset puts the snake back onto a single segment with length 1 and the
// initial heading.
func (s *Snake) Reset(start board.SegmentID) {
	s.Body.Clear()
	// cannot fail on an empty body
	_ = s.Body.Push(start)
	s.Length = 1
	s.Heading = HeadingUpRight
}

// Grow raises the target length by one. The body stops being trimmed until it
// reaches the new length.
func (s *Snake) Grow() {
	if s.Length < board.SegmentCount {
		s.Length++
	}
}

// Head returns the newest body segment, or board.NoSegment for an empty body.
func (s *Snake) Head() board.SegmentID {
	h, err := s.Body.Head()
	if err != nil {
		return board.NoSegment
	}
	return h
}

// Contains reports whether the snake covers id.
func (s *Snake) Contains(id board.SegmentID) bool {
	return s.Body.Contains(id)
}

// Move advances the snake one segment in the steered direction.
func (s *Snake) Move(g *board.Graph, steer board.Steer) (MoveResult, error) {
	if !steer.Valid() {
		return MoveResult{}, errors.Errorf("rules: invalid steering command %d", steer)
	}
	head, err := s.Body.Head()
	if err != nil {
		return MoveResult{}, errors.Wrap(err, "rules: move")
	}

	// Below the horizontal the board is mirrored, so left and right swap.
	if !s.Heading.FacingUp() {
		steer = steer.Mirror()
	}
	next := g.Next(head, board.SideFor(s.Heading.FacingRight()), steer)
	s.Heading = s.Heading.Turn(g.SameLeftX(next, head), g.SameTopY(next, head))

	res := MoveResult{Head: next}
	if s.Body.Len() >= s.Length {
		if _, err := s.Body.PopTail(); err != nil {
			return res, errors.Wrap(err, "rules: trim tail")
		}
		res.Trimmed = true
	}

	if s.Body.Contains(next) {
		res.Collided = true
		return res, nil
	}
	if err := s.Body.Push(next); err != nil {
		return res, errors.Wrap(err, "rules: push head")
	}
	return res, nil
}
