package rules

import (
	"github.com/battlesnakeio/placman/board"
	"github.com/pkg/errors"
)

var (
	// ErrBodyFull is returned when pushing onto a body that already covers
	// every segment. Valid play never gets there.
	ErrBodyFull = errors.New("rules: body is full")
	// ErrBodyEmpty is returned when reading from an empty body.
	ErrBodyEmpty = errors.New("rules: body is empty")
)

// Body is the ordered list of segments the snake occupies. Index 0 is the
// tail (oldest), the last index is the head (newest). Body is a value type;
// copying it copies the queue.
type Body struct {
	segments [board.SegmentCount]board.SegmentID
	length   int
}

// Len returns the number of occupied segments.
func (b *Body) Len() int {
	return b.length
}

// Push appends a new head.
func (b *Body) Push(id board.SegmentID) error {
	if b.length == len(b.segments) {
		return ErrBodyFull
	}
	b.segments[b.length] = id
	b.length++
	return nil
}

// PopTail removes and returns the oldest segment.
func (b *Body) PopTail() (board.SegmentID, error) {
	if b.length == 0 {
		return board.NoSegment, ErrBodyEmpty
	}
	tail := b.segments[0]
	copy(b.segments[:b.length-1], b.segments[1:b.length])
	b.length--
	b.segments[b.length] = board.NoSegment
	return tail, nil
}

// Head returns the newest segment.
func (b *Body) Head() (board.SegmentID, error) {
	if b.length == 0 {
		return board.NoSegment, ErrBodyEmpty
	}
	return b.segments[b.length-1], nil
}

// Tail returns the oldest segment.
func (b *Body) Tail() (board.SegmentID, error) {
	if b.length == 0 {
		return board.NoSegment, ErrBodyEmpty
	}
	return b.segments[0], nil
}

// At returns the segment at index i, counted from the tail.
func (b *Body) At(i int) board.SegmentID {
	if i < 0 || i >= b.length {
		return board.NoSegment
	}
	return b.segments[i]
}

// Contains reports whether id is part of the body.
func (b *Body) Contains(id board.SegmentID) bool {
	for i := 0; i < b.length; i++ {
		if b.segments[i] == id {
			return true
		}
	}
	return false
}

// Clear empties the body.
func (b *Body) Clear() {
	for i := 0; i < b.length; i++ {
		b.segments[i] = board.NoSegment
	}
	b.length = 0
}

// Segments returns a copy of the occupied segments, tail first.
func (b *Body) Segments() []board.SegmentID {
	out := make([]board.SegmentID, b.length)
	copy(out, b.segments[:b.length])
	return out
}
